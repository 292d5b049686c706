/*
File    : lazic/internal/repl/repl.go

Package repl implements an interactive read-eval-print loop for lazic,
built on chzyer/readline for line editing and history and fatih/color
for result/error feedback. One REPL owns one long-lived root Context
and one function table, so that "def" and "let" issued at the prompt
remain visible to later input, the way top-level statements in a file
remain visible to later top-level statements.
*/
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/lazic-lang/lazic/internal/config"
	"github.com/lazic-lang/lazic/internal/ctx"
	"github.com/lazic-lang/lazic/internal/eval"
	"github.com/lazic-lang/lazic/internal/object"
	"github.com/lazic-lang/lazic/internal/parser"
	"github.com/lazic-lang/lazic/internal/symtab"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const banner = `  _               _
 | |__ _ _______ (_)__
 | / _` + "`" + ` |_ / _ \/ / _|
 |_\__,_/__\___/_\__|`

// REPL is one interactive session: its own symbol table, evaluator,
// function table, and root context.
type REPL struct {
	Prompt string

	syms *symtab.Table
	ev   *eval.Evaluator
	root *ctx.Context
}

// New builds a REPL ready to Start, applying cfg's recursion-depth
// guard to the underlying evaluator.
func New(cfg config.Config) *REPL {
	syms := symtab.New()
	ev := eval.New(syms)
	cfg.Apply(ev)
	return &REPL{
		Prompt: "lazic> ",
		syms:   syms,
		ev:     ev,
		root:   ctx.New(),
	}
}

// Start runs the loop on the local terminal, using readline for line
// editing and history, until the user exits or input ends.
func (r *REPL) Start(writer io.Writer) error {
	r.ev.SetWriter(writer)
	r.printBanner(writer)

	rl, err := readline.NewEx(&readline.Config{Prompt: r.Prompt})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			fmt.Fprintln(writer, "bye")
			return nil
		}
		if r.step(writer, line) {
			return nil
		}
		rl.SaveHistory(line)
	}
}

// ServeConn runs the loop over a plain byte stream -- a net.Conn in
// "lazic serve" -- reading newline-delimited input with bufio.Scanner
// rather than readline, since readline's line editing assumes a local
// terminal. Line editing and history are therefore local-REPL-only
// features; a served session still gets the same forms, meta-commands,
// and persistent bindings.
func (r *REPL) ServeConn(rw io.ReadWriter) error {
	r.ev.SetWriter(rw)
	r.printBanner(rw)

	scanner := bufio.NewScanner(rw)
	for scanner.Scan() {
		if r.step(rw, scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}

// step processes one line of input, returning true if the session
// should end.
func (r *REPL) step(writer io.Writer, line string) (exit bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	handled, exit := r.handleMeta(writer, line)
	if exit {
		fmt.Fprintln(writer, "bye")
		return true
	}
	if handled {
		return false
	}
	r.evalLine(writer, line)
	return false
}

// handleMeta intercepts REPL-only meta-commands, which are never
// language forms: /exit, /scope, /reset.
func (r *REPL) handleMeta(writer io.Writer, line string) (handled bool, exit bool) {
	switch line {
	case "/exit":
		return true, true
	case "/scope":
		r.printScope(writer)
		return true, false
	case "/reset":
		r.root = ctx.New()
		r.ev.Funcs.Reset()
		cyanColor.Fprintln(writer, "scope and functions cleared")
		return true, false
	default:
		return false, false
	}
}

// evalLine parses line as a Program and evaluates it in a clone of the
// REPL's root context, committing the clone back as the new root on
// success so that later lines see any new bindings -- the REPL-level
// analogue of section 4.7's "Program top level clones once per
// statement" rule.
func (r *REPL) evalLine(writer io.Writer, line string) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", rec)
		}
	}()

	p := parser.New(line, r.syms)
	prog, err := p.ParseProgram()
	if err != nil {
		redColor.Fprintf(writer, "%v\n", err)
		return
	}

	// Each statement runs directly in clone (not through ExecuteProgram,
	// which clones again per statement), so a top-level let lands in
	// clone and survives into the next line.
	clone := r.root.Clone()
	res := object.ResultNull
	for _, stmt := range prog.Children {
		res, err = r.ev.Execute(ctx.NewThunk(symtab.KeyStar, stmt, clone))
		if err != nil {
			redColor.Fprintf(writer, "%v\n", err)
			return
		}
	}
	r.root = clone
	yellowColor.Fprintf(writer, "%s\n", res.String())
}

func (r *REPL) printScope(writer io.Writer) {
	thunks := r.root.Thunks()
	if len(thunks) == 0 {
		cyanColor.Fprintln(writer, "(empty)")
		return
	}
	for _, t := range thunks {
		state := "unforced"
		if t.Forced() {
			state = t.Result.String()
		}
		cyanColor.Fprintf(writer, "%s = %s\n", r.syms.Name(t.Name), state)
	}
}

func (r *REPL) printBanner(writer io.Writer) {
	line := strings.Repeat("-", 40)
	blueColor.Fprintf(writer, "%s\n", line)
	greenColor.Fprintf(writer, "%s\n", banner)
	blueColor.Fprintf(writer, "%s\n", line)
	cyanColor.Fprintln(writer, "/exit to quit, /scope to inspect bindings, /reset to clear them")
	blueColor.Fprintf(writer, "%s\n", line)
}
