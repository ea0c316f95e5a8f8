// Package cli provides a minimal command dispatcher connecting pipekit
// pipelines to the command line. It contains no pipeline logic of its own:
// commands are plain functions, typically closing over a Runner and an
// item source.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kbukum/pipekit/util"
)

// Command is one registered command.
type Command struct {
	Name string
	Help string
	Run  func(args []string) error
}

// App dispatches a single bare argument to a registered command. On missing
// or unknown input it prints the usage text and the available command names.
type App struct {
	name  string
	usage string
	out   io.Writer
	cmds  []Command
}

// New creates an App with the given name and usage text.
func New(name, usage string) *App {
	return &App{name: name, usage: usage, out: os.Stdout}
}

// SetOutput redirects usage and help output, mainly for tests.
func (a *App) SetOutput(w io.Writer) { a.out = w }

// Command registers a named command. Registration order is preserved in
// help output; on duplicate names the first registration wins at dispatch.
func (a *App) Command(name, help string, run func(args []string) error) {
	a.cmds = append(a.cmds, Command{Name: name, Help: help, Run: run})
}

// Names returns the registered command names in registration order,
// without duplicates.
func (a *App) Names() []string {
	return util.Unique(util.Map(a.cmds, func(c Command) string { return c.Name }))
}

// Run dispatches args[0] to its command, passing the remaining arguments
// through. A missing or unknown command prints usage and the command list.
func (a *App) Run(args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return nil
	}
	for _, c := range a.cmds {
		if c.Name == args[0] {
			return c.Run(args[1:])
		}
	}
	fmt.Fprintf(a.out, "unknown command: %s\n", args[0])
	a.printUsage()
	return nil
}

func (a *App) printUsage() {
	if a.usage != "" {
		fmt.Fprintln(a.out, strings.TrimSpace(a.usage))
	}
	fmt.Fprintln(a.out, "Command options: "+strings.Join(a.Names(), ", "))
}
