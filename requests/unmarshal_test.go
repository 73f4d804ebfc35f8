package requests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brettbedarf/dirsh"
)

func TestUnmarshalNodes_JSON(t *testing.T) {
	t.Parallel()

	data := []byte(`[
		{"type": "dir", "path": "docs"},
		{"type": "file", "path": "docs/readme.md"},
		{"path": "src/"},
		{"path": "src/main.go"}
	]`)

	reqs, err := UnmarshalNodes(data, JSONFormat)
	require.NoError(t, err)
	assert.Equal(t, []dirsh.NodeRequest{
		{Path: "docs", Type: dirsh.DirNodeType},
		{Path: "docs/readme.md", Type: dirsh.FileNodeType},
		{Path: "src/", Type: dirsh.DirNodeType},
		{Path: "src/main.go", Type: dirsh.FileNodeType},
	}, reqs)
}

func TestUnmarshalNodes_YAML(t *testing.T) {
	t.Parallel()

	data := []byte(`
- type: dir
  path: docs
- path: docs/notes.txt
- type: dir
  path: docs/archive
`)

	reqs, err := UnmarshalNodes(data, YAMLFormat)
	require.NoError(t, err)
	assert.Equal(t, []dirsh.NodeRequest{
		{Path: "docs", Type: dirsh.DirNodeType},
		{Path: "docs/notes.txt", Type: dirsh.FileNodeType},
		{Path: "docs/archive", Type: dirsh.DirNodeType},
	}, reqs)
}

func TestUnmarshalNodes_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		format  Format
		wantErr string
	}{
		{"malformed_json", `[{`, JSONFormat, "failed to unmarshal nodes"},
		{"malformed_yaml", "- path: [", YAMLFormat, "failed to unmarshal nodes"},
		{"unknown_type", `[{"type": "symlink", "path": "a"}]`, JSONFormat, "node 0: unknown node type"},
		{"empty_path", `[{"path": "a"}, {"type": "dir"}]`, JSONFormat, "node 1: empty path"},
		{"bad_format", `[]`, Format("toml"), "unsupported nodes format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalNodes([]byte(tt.data), tt.format)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadNodesFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "nodes.yml")
	require.NoError(t, os.WriteFile(path, []byte("- path: a/b/\n"), 0o600))

	reqs, err := LoadNodesFile(path)
	require.NoError(t, err)
	assert.Equal(t, []dirsh.NodeRequest{{Path: "a/b/", Type: dirsh.DirNodeType}}, reqs)
}

func TestLoadNodesFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := LoadNodesFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err), "expected not exist error, got %v", err)

	path := filepath.Join(dir, "nodes.txt")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o600))
	_, err = LoadNodesFile(path)
	assert.ErrorContains(t, err, "unknown nodes file extension")
}
