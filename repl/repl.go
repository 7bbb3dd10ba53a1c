// Package repl implements Klug's Read-Eval-Print Loop: a line-oriented
// interactive session over chzyer/readline with colourised output via
// fatih/color. Grounded directly on go-mix's repl/repl.go (same two
// libraries, same banner/prompt/history shape); the evaluation core it
// drives is swapped for the klug package's Parse/Run.
package repl

import (
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	klug "github.com/klugscript/klug"
	"github.com/klugscript/klug/config"
	"github.com/klugscript/klug/scope"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the shell-facing presentation details; none of it is
// consumed by the language core itself.
type Repl struct {
	cfg config.Config
}

// New creates a Repl from a loaded configuration.
func New(cfg config.Config) *Repl {
	return &Repl{cfg: cfg}
}

func (r *Repl) printBanner(writer io.Writer) {
	line := strings.Repeat("-", 48)
	if !r.cfg.Color {
		color.NoColor = true
	}

	blueColor.Fprintf(writer, "%s\n", line)
	greenColor.Fprintf(writer, "%s\n", r.cfg.Banner)
	blueColor.Fprintf(writer, "%s\n", line)
	yellowColor.Fprintf(writer, "Version: %s | License: %s\n", r.cfg.Version, r.cfg.License)
	blueColor.Fprintf(writer, "%s\n", line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to klug!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", line)
}

// Start runs the read-eval-print loop until EOF, an error from
// readline, or the user typing ".exit". All declarations typed across
// the session share one environment, per spec.md's ordering guarantee
// that side effects of an earlier run are visible to a later one.
func (r *Repl) Start(writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.cfg.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	env := scope.New()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		rl.SaveHistory(line)
		r.evalLine(writer, line, env)
	}
}

// evalLine runs one line of input against env and prints either the
// resulting value (to writer) or a diagnostic (to stderr), never letting
// a malformed line kill the session.
func (r *Repl) evalLine(writer io.Writer, line string, env *scope.Scope) {
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}

	v, hasValue, diagErr := klug.Run(line, env)
	if diagErr != nil {
		redColor.Fprintf(os.Stderr, "%s\n", diagErr.Render())
		return
	}
	if hasValue {
		yellowColor.Fprintf(writer, "%s\n", v.String())
	}
}
