// Package shell dispatches tokenized command lines against a [filesystem.Tree]
// and drives the interactive read loop.
package shell

import (
	"io"

	"github.com/brettbedarf/dirsh/filesystem"
	"github.com/brettbedarf/dirsh/internal/util"
)

// Shell maps command lines onto tree operations. Command output goes to out.
type Shell struct {
	tree   *filesystem.Tree
	out    io.Writer
	logger util.Logger
}

func New(tree *filesystem.Tree, out io.Writer) *Shell {
	return &Shell{
		tree:   tree,
		out:    out,
		logger: util.GetLogger("Shell").With().Stringer("tree", tree.ID()).Logger(),
	}
}

func (s *Shell) Tree() *filesystem.Tree {
	return s.tree
}

// Prompt returns the current directory's full path followed by suffix
func (s *Shell) Prompt(suffix string) string {
	return s.tree.Cwd().FullPath() + suffix
}

// Exec runs one tokenized line. Empty lines are ignored.
//
// The command name is matched first and its argument count checked before
// anything runs, so a known command with the wrong arity fails with [ErrArity]
// rather than [ErrUnknownCommand]. quit reports true and ends the session.
func (s *Shell) Exec(tokens []string) (quit bool, err error) {
	if len(tokens) == 0 {
		return false, nil
	}
	name, args := tokens[0], tokens[1:]

	cmd, ok := lookup(name)
	if !ok {
		err = &CommandError{Command: name, Err: ErrUnknownCommand}
		s.logger.Debug().Err(err).Msg("Command not found")
		return false, err
	}
	if len(args) != cmd.arity() {
		err = &CommandError{Command: name, Got: len(args), Want: cmd.arity(), Err: ErrArity}
		s.logger.Debug().Err(err).Strs("args", args).Msg("Wrong argument count")
		return false, err
	}

	if err := cmd.run(s, args); err != nil {
		s.logger.Debug().Err(err).Str("cmd", name).Str("cwd", s.tree.Cwd().FullPath()).Msg("Command failed")
		return false, err
	}
	s.logger.Trace().Str("cmd", name).Strs("args", args).Msg("Command succeeded")
	return cmd.quit, nil
}
