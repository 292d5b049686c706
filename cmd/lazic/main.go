/*
File    : lazic/cmd/lazic/main.go

Package main is lazic's command-line entry point: a cobra.Command tree
wrapping file execution, the REPL, evaluation tracing, and a TCP REPL
server. This is the only package in the module allowed to write to
stderr and call os.Exit -- everything under internal/ returns errors.
*/
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lazic-lang/lazic/internal/ast"
	"github.com/lazic-lang/lazic/internal/config"
	"github.com/lazic-lang/lazic/internal/ctx"
	"github.com/lazic-lang/lazic/internal/eval"
	"github.com/lazic-lang/lazic/internal/parser"
	"github.com/lazic-lang/lazic/internal/repl"
	"github.com/lazic-lang/lazic/internal/symtab"
	"github.com/lazic-lang/lazic/internal/trace"
)

const version = "v1.0.0"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:     "lazic [file]",
		Short:   "lazic is an interpreter for a small lazy s-expression language",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("missing source file argument")
			}
			return runFile(args[0])
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a lazic.yaml config file")

	root.AddCommand(runCmd(), replCmd(), traceCmd(), serveCmd())

	if err := root.Execute(); err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "Execute a lazic source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(args[0])
		},
	}
}

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive read-eval-print loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return repl.New(cfg).Start(os.Stdout)
		},
	}
}

func traceCmd() *cobra.Command {
	var filter string
	var verbose bool
	c := &cobra.Command{
		Use:   "trace <file>",
		Short: "Run a file and emit a JSON evaluation trace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(args[0], filter, verbose)
		},
	}
	c.Flags().StringVar(&filter, "filter", "", "gjson path to extract from the trace instead of printing it whole")
	c.Flags().BoolVar(&verbose, "verbose", false, "also record every named thunk force, not just top-level results")
	return c
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve <port>",
		Short: "Start a TCP REPL server, one session per connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(args[0])
		},
	}
}

// runFile implements the exact bare-invocation contract: read the
// file, parse and evaluate it as one Program, and print its final
// Result unless it is NULL. A missing or unreadable file, a parse
// error, or an evaluation error are all fatal with a nonzero exit.
func runFile(path string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", path, err)
	}

	syms := symtab.New()
	p := parser.New(string(src), syms)
	prog, err := p.ParseProgram()
	if err != nil {
		return err
	}

	ev := eval.New(syms)
	cfg.Apply(ev)

	res, err := ev.ExecuteProgram(prog, ctx.New(), nil)
	if err != nil {
		return err
	}
	if res.Kind != ast.Null {
		yellowColor.Println(res.String())
	}
	return nil
}

func runTrace(path, filter string, verbose bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", path, err)
	}

	syms := symtab.New()
	p := parser.New(string(src), syms)
	prog, err := p.ParseProgram()
	if err != nil {
		return err
	}

	ev := eval.New(syms)
	cfg.Apply(ev)

	rec := trace.New()
	rec.Verbose = verbose
	ev.OnForce = rec.Hook(syms)

	if _, err := ev.ExecuteProgram(prog, ctx.New(), rec.RecordStatement); err != nil {
		return err
	}

	if filter != "" {
		fmt.Println(trace.Query(rec.Bytes(), filter))
	} else {
		fmt.Println(string(rec.Bytes()))
	}
	return nil
}

// runServe starts a TCP listener handing each connection its own REPL
// session backed by its own Evaluator, Context, and function table --
// connections never share interpreter state.
func runServe(port string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("could not listen on port %s: %w", port, err)
	}
	defer ln.Close()
	cyanColor.Printf("lazic REPL server listening on :%s\n", port)

	for {
		conn, err := ln.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "accept error: %v\n", err)
			continue
		}
		go handleConn(conn, cfg)
	}
}

func handleConn(conn net.Conn, cfg config.Config) {
	defer conn.Close()
	cyanColor.Printf("client connected: %s\n", conn.RemoteAddr())
	session := repl.New(cfg)
	if err := session.ServeConn(conn); err != nil {
		redColor.Fprintf(os.Stderr, "session error: %v\n", err)
	}
	cyanColor.Printf("client disconnected: %s\n", conn.RemoteAddr())
}
