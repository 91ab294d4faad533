// Package main provides the docfmt CLI tool.
//
// Usage:
//
//	docfmt format <input>
//
// The input is either the path of an existing .json, .toml or .yaml file,
// which is rewritten in place, or inline JSON/TOML/YAML text, which is
// printed to standard output in pretty-printed form.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/yacchi/docfmt/formatter"
)

const usage = "Usage: docfmt format <file_path>"

func main() {
	a := &app{
		fs:     afero.NewOsFs(),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	a.run(context.Background(), os.Args[1:])
}

// app carries the process environment so the CLI can run against an
// in-memory filesystem and buffers in tests.
type app struct {
	fs     afero.Fs
	stdout io.Writer
	stderr io.Writer
}

// run dispatches the command line. It always returns normally: failures are
// reported on the standard streams and the process exits 0.
func (a *app) run(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(a.stderr, usage)
		return
	}

	cmd, input := args[0], args[1]
	switch cmd {
	case "format":
		a.format(ctx, input)
	default:
		fmt.Fprintf(a.stdout, "Unknown command: %s\n", cmd)
		fmt.Fprintln(a.stdout, usage)
	}
}

func (a *app) format(ctx context.Context, input string) {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(a.stderr))

	f := formatter.New(input,
		formatter.WithFs(a.fs),
		formatter.WithStdout(a.stdout),
		formatter.WithLogger(logger),
	)
	if err := f.Run(ctx); err != nil {
		colorFor(a.stderr, color.FgRed).Fprintf(a.stderr, "Error formatting: %v\n", err)
		return
	}
	colorFor(a.stdout, color.FgGreen).Fprintln(a.stdout, "Formatted successfully.")
}

// colorFor returns a color that is only applied when w is a terminal.
func colorFor(w io.Writer, attr color.Attribute) *color.Color {
	c := color.New(attr)
	if isTerminal(w) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
