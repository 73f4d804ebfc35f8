package filesystem

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brettbedarf/dirsh"
)

func TestNewTree(t *testing.T) {
	t.Parallel()

	tree, err := NewTree("alice")
	require.NoError(t, err)

	root := tree.Root()
	assert.Equal(t, uint64(RootID), root.NodeID())
	assert.Equal(t, "alice", root.Name())
	assert.True(t, root.IsDir())
	assert.Same(t, root, tree.Cwd(), "cursor must start at the root")
	assert.Equal(t, 1, tree.Len())
	assert.NotEqual(t, uuid.Nil, tree.ID())

	other, err := NewTree("alice")
	require.NoError(t, err)
	assert.NotEqual(t, tree.ID(), other.ID())
}

func TestNewTree_InvalidRootName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"bad name", "a.b", "a/b", "x!"} {
		tree, err := NewTree(name)
		assert.Nil(t, tree)
		assert.ErrorIs(t, err, ErrInvalidName, "root %q", name)
	}
}

// An empty username is accepted; the root path is just the suffix.
func TestNewTree_EmptyRootName(t *testing.T) {
	t.Parallel()

	tree, err := NewTree("")
	require.NoError(t, err)
	assert.Equal(t, "/", tree.Root().FullPath())
}

func TestTree_Node(t *testing.T) {
	t.Parallel()
	tree := newTestTree(t)

	dir, err := tree.Root().CreateSubdirectory("a")
	require.NoError(t, err)

	got, ok := tree.Node(NodeID(dir.NodeID()))
	require.True(t, ok)
	assert.Same(t, dir, got)

	_, ok = tree.Node(0)
	assert.False(t, ok)
	_, ok = tree.Node(99)
	assert.False(t, ok)
}

func TestTree_Cd(t *testing.T) {
	t.Parallel()

	tree, err := NewTree("alice")
	require.NoError(t, err)
	root := tree.Root()
	docs, err := root.CreateSubdirectory("docs")
	require.NoError(t, err)
	_, err = root.CreateFile("notes.txt")
	require.NoError(t, err)

	require.NoError(t, tree.Cd("docs"))
	assert.Same(t, docs, tree.Cwd())
	assert.Equal(t, "alice/docs/", tree.Cwd().FullPath())

	require.NoError(t, tree.Cd(".."))
	assert.Same(t, root, tree.Cwd())

	require.NoError(t, tree.Cd("docs/"), "trailing slash must resolve")
	assert.Same(t, docs, tree.Cwd())

	require.NoError(t, tree.Cd("/"))
	assert.Same(t, root, tree.Cwd())
}

func TestTree_Cd_ParentAtRootIsNoop(t *testing.T) {
	t.Parallel()
	tree := newTestTree(t)

	assert.NoError(t, tree.Cd(".."))
	assert.Same(t, tree.Root(), tree.Cwd())
	assert.NoError(t, tree.Cd(".."))
	assert.Same(t, tree.Root(), tree.Cwd())
}

func TestTree_Cd_Errors(t *testing.T) {
	t.Parallel()
	tree := newTestTree(t)
	_, err := tree.Root().CreateFile("a.txt")
	require.NoError(t, err)

	err = tree.Cd("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	var nameErr *NameError
	require.ErrorAs(t, err, &nameErr)
	assert.Equal(t, "cd", nameErr.Op)
	assert.Equal(t, "missing", nameErr.Name)

	err = tree.Cd("a.txt")
	assert.ErrorIs(t, err, ErrNotADirectory)

	assert.Same(t, tree.Root(), tree.Cwd(), "failed cd must not move the cursor")
}

func TestTree_AddNode(t *testing.T) {
	t.Parallel()
	tree, err := NewTree("seed")
	require.NoError(t, err)

	file, err := tree.AddNode(&dirsh.NodeRequest{Path: "docs/notes/todo.md", Type: dirsh.FileNodeType})
	require.NoError(t, err)
	assert.Equal(t, "seed/docs/notes/todo.md", file.FullPath())
	assert.False(t, file.IsDir())

	dir, err := tree.AddNode(&dirsh.NodeRequest{Path: "/docs/archive/", Type: dirsh.DirNodeType})
	require.NoError(t, err)
	assert.Equal(t, "seed/docs/archive/", dir.FullPath())

	docs, ok := tree.Root().FindChild("docs")
	require.True(t, ok)
	assert.Equal(t, []string{"notes/", "archive/"}, docs.ListChildren(), "existing ancestors must be reused")
	assert.Equal(t, 5, tree.Len())
}

func TestTree_AddNode_ExistingDirIsReused(t *testing.T) {
	t.Parallel()
	tree := newTestTree(t)

	first, err := tree.AddNode(&dirsh.NodeRequest{Path: "a/b", Type: dirsh.DirNodeType})
	require.NoError(t, err)
	again, err := tree.AddNode(&dirsh.NodeRequest{Path: "a/b", Type: dirsh.DirNodeType})
	require.NoError(t, err)
	assert.Same(t, first, again)
	assert.Equal(t, 3, tree.Len())
}

func TestTree_AddNode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   []dirsh.NodeRequest
		req     dirsh.NodeRequest
		wantErr error
	}{
		{
			name:    "duplicate_file",
			setup:   []dirsh.NodeRequest{{Path: "a.txt", Type: dirsh.FileNodeType}},
			req:     dirsh.NodeRequest{Path: "a.txt", Type: dirsh.FileNodeType},
			wantErr: ErrDuplicateName,
		},
		{
			name:    "dir_over_file",
			setup:   []dirsh.NodeRequest{{Path: "a.txt", Type: dirsh.FileNodeType}},
			req:     dirsh.NodeRequest{Path: "a.txt", Type: dirsh.DirNodeType},
			wantErr: ErrDuplicateName,
		},
		{
			name:    "file_over_dir",
			setup:   []dirsh.NodeRequest{{Path: "a", Type: dirsh.DirNodeType}},
			req:     dirsh.NodeRequest{Path: "a", Type: dirsh.FileNodeType},
			wantErr: ErrDuplicateName,
		},
		{
			name:    "file_in_path",
			setup:   []dirsh.NodeRequest{{Path: "a", Type: dirsh.FileNodeType}},
			req:     dirsh.NodeRequest{Path: "a/b", Type: dirsh.FileNodeType},
			wantErr: ErrNotADirectory,
		},
		{
			name:    "invalid_segment",
			req:     dirsh.NodeRequest{Path: "bad.dir/a.txt", Type: dirsh.FileNodeType},
			wantErr: ErrInvalidName,
		},
		{
			name:    "empty_segment",
			req:     dirsh.NodeRequest{Path: "a//b", Type: dirsh.DirNodeType},
			wantErr: ErrInvalidName,
		},
		{
			name:    "reserved_file",
			req:     dirsh.NodeRequest{Path: "a/..", Type: dirsh.FileNodeType},
			wantErr: ErrReservedName,
		},
		{
			name:    "invalid_leaf_below_new_dirs",
			req:     dirsh.NodeRequest{Path: "a/b/c d.txt", Type: dirsh.FileNodeType},
			wantErr: ErrInvalidName,
		},
		{
			name:    "invalid_dir_leaf_below_existing_dir",
			setup:   []dirsh.NodeRequest{{Path: "a", Type: dirsh.DirNodeType}},
			req:     dirsh.NodeRequest{Path: "a/b/c.d", Type: dirsh.DirNodeType},
			wantErr: ErrInvalidName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tree := newTestTree(t)
			for _, req := range tt.setup {
				_, err := tree.AddNode(&req)
				require.NoError(t, err)
			}
			before := tree.Len()

			node, err := tree.AddNode(&tt.req)
			assert.Nil(t, node)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, tree.Len(), "a failed request must not create ancestors")
		})
	}
}

func TestTree_AddNode_InvalidRequest(t *testing.T) {
	t.Parallel()
	tree := newTestTree(t)

	_, err := tree.AddNode(&dirsh.NodeRequest{Path: "a", Type: "symlink"})
	assert.ErrorContains(t, err, "unknown node type")

	_, err = tree.AddNode(&dirsh.NodeRequest{Path: "", Type: dirsh.DirNodeType})
	assert.ErrorContains(t, err, "empty path")

	_, err = tree.AddNode(&dirsh.NodeRequest{Path: "/", Type: dirsh.DirNodeType})
	assert.ErrorIs(t, err, ErrInvalidName)
	assert.Equal(t, 1, tree.Len())
}
