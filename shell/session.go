package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/brettbedarf/dirsh/config"
	"github.com/brettbedarf/dirsh/filesystem"
	"github.com/brettbedarf/dirsh/internal/util"
)

// Session is the console harness around a [Shell]: it reads lines from in,
// prints prompts, listings and error messages to out.
type Session struct {
	cfg    *config.Config
	in     *bufio.Reader
	out    io.Writer
	logger util.Logger
}

func NewSession(in io.Reader, out io.Writer, cfg *config.Config) *Session {
	return &Session{
		cfg:    cfg,
		in:     bufio.NewReader(in),
		out:    out,
		logger: util.GetLogger("Session"),
	}
}

// Login creates the user's tree. A configured username is used as is and
// must be valid; otherwise the user is asked until a valid name is entered.
//
// Returns [io.ErrUnexpectedEOF] if input ends before a name is accepted.
func (s *Session) Login() (*filesystem.Tree, error) {
	if s.cfg.Username != "" {
		return filesystem.NewTree(s.cfg.Username)
	}

	for {
		fmt.Fprint(s.out, s.cfg.UsernamePrompt)
		line, err := s.readLine()
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read username: %w", err)
		}
		tree, err := filesystem.NewTree(line)
		if err != nil {
			s.logger.Debug().Err(err).Msg("Rejected username")
			fmt.Fprintln(s.out, Message(err))
			continue
		}
		return tree, nil
	}
}

// Run reads and executes lines until quit or end of input. Errors from a
// single line are printed and never end the session; only read failures are
// returned.
func (s *Session) Run(sh *Shell) error {
	for {
		fmt.Fprint(s.out, sh.Prompt(s.cfg.PromptSuffix))

		line, err := s.readLine()
		if errors.Is(err, io.EOF) {
			s.logger.Debug().Msg("End of input")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read command: %w", err)
		}

		quit, err := sh.Exec(Tokenize(line))
		if err != nil {
			fmt.Fprintln(s.out, Message(err))
			continue
		}
		if quit {
			return nil
		}
	}
}

// readLine returns the next line without its line ending. Lines have no
// length limit. A last line missing its newline is still returned; io.EOF
// comes with the call after it.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
