package shell

import (
	"fmt"
	"strings"
)

type command struct {
	name string
	args []string // Argument placeholders; their count is the command's arity
	quit bool     // Ends the session after running
	run  func(s *Shell, args []string) error
}

func (c command) arity() int {
	return len(c.args)
}

func (c command) usage() string {
	if len(c.args) == 0 {
		return c.name
	}
	return c.name + " <" + strings.Join(c.args, "> <") + ">"
}

var commands = []command{
	{name: "quit", quit: true, run: func(*Shell, []string) error { return nil }},
	{name: "mkdir", args: []string{"name"}, run: runMkdir},
	{name: "touch", args: []string{"name"}, run: runTouch},
	{name: "ls", run: runLs},
	{name: "cd", args: []string{"name"}, run: runCd},
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func runMkdir(s *Shell, args []string) error {
	_, err := s.tree.Cwd().CreateSubdirectory(args[0])
	return err
}

func runTouch(s *Shell, args []string) error {
	_, err := s.tree.Cwd().CreateFile(args[0])
	return err
}

func runLs(s *Shell, _ []string) error {
	for _, name := range s.tree.Cwd().ListChildren() {
		if _, err := fmt.Fprintln(s.out, name); err != nil {
			return err
		}
	}
	return nil
}

func runCd(s *Shell, args []string) error {
	return s.tree.Cd(args[0])
}
