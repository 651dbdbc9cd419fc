// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/cli"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/go-secure-stdlib/functional/internal/gen"
)

// baseCommand carries the flags shared by every subcommand.
type baseCommand struct {
	ui cli.Ui

	flagMatrix   string
	flagOut      string
	flagPackage  string
	flagLogLevel string

	logger hclog.Logger
}

func (c *baseCommand) flagSet(name string) *flag.FlagSet {
	f := flag.NewFlagSet(name, flag.ContinueOnError)
	f.SetOutput(io.Discard)
	f.StringVar(&c.flagMatrix, "matrix", "", "Path to an HCL matrix file. Defaults to the built-in matrix.")
	f.StringVar(&c.flagOut, "out", ".", "Directory the generated files live in.")
	f.StringVar(&c.flagPackage, "package", gen.DefaultPackage, "Package clause of the generated files.")
	f.StringVar(&c.flagLogLevel, "log-level", "info", "Log level: trace, debug, info, warn or error.")
	return f
}

// parse parses args and sets up the logger. A non-zero return is the exit
// code to stop with.
func (c *baseCommand) parse(name string, args []string) int {
	f := c.flagSet(name)
	if err := f.Parse(args); err != nil {
		c.ui.Error(err.Error())
		return 1
	}
	if f.NArg() > 0 {
		c.ui.Error(fmt.Sprintf("unexpected arguments: %s", strings.Join(f.Args(), " ")))
		return 1
	}
	level := hclog.LevelFromString(c.flagLogLevel)
	if level == hclog.NoLevel {
		c.ui.Error(fmt.Sprintf("unknown log level %q", c.flagLogLevel))
		return 1
	}
	c.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "funcgen",
		Level:  level,
		Output: &uiWriter{ui: c.ui},
	})
	return 0
}

func (c *baseCommand) matrix() (*gen.Matrix, error) {
	if c.flagMatrix == "" {
		c.logger.Debug("using built-in matrix")
		return gen.ParseMatrix(gen.DefaultMatrix)
	}
	c.logger.Debug("loading matrix", "path", c.flagMatrix)
	return gen.LoadMatrixFile(c.flagMatrix)
}

func (c *baseCommand) genOpts() []gen.Option {
	return []gen.Option{
		gen.WithPackage(c.flagPackage),
		gen.WithLogger(c.logger),
	}
}

// uiWriter routes log lines to the error stream of a cli.Ui.
type uiWriter struct {
	ui cli.Ui
}

func (w *uiWriter) Write(p []byte) (int, error) {
	w.ui.Error(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

const sharedHelp = `
  -matrix=<path>       Path to an HCL matrix file. Defaults to the built-in
                       matrix.

  -out=<dir>           Directory the generated files live in. Defaults to ".".

  -package=<name>      Package clause of the generated files. Defaults to
                       "functional".

  -log-level=<level>   Log level: trace, debug, info, warn or error. Defaults
                       to "info".
`

type GenerateCommand struct {
	baseCommand
}

func (c *GenerateCommand) Synopsis() string {
	return "Render the generated sources"
}

func (c *GenerateCommand) Help() string {
	return strings.TrimSpace(`
Usage: funcgen generate [options]

  Renders the per-kind aliases and AndThenTo methods described by the matrix
  and writes them to the output directory.

Options:
` + sharedHelp)
}

func (c *GenerateCommand) Run(args []string) int {
	if code := c.parse("generate", args); code != 0 {
		return code
	}
	m, err := c.matrix()
	if err != nil {
		c.ui.Error(fmt.Sprintf("Error loading matrix: %s", err))
		return 1
	}
	files, err := gen.Render(m, c.genOpts()...)
	if err != nil {
		c.ui.Error(fmt.Sprintf("Error rendering: %s", err))
		return 1
	}
	if err := gen.Write(files, c.flagOut, c.genOpts()...); err != nil {
		c.ui.Error(fmt.Sprintf("Error writing files: %s", err))
		return 1
	}
	c.ui.Output(fmt.Sprintf("Generated %d files for %d kinds", len(files), len(m.Kinds)))
	return 0
}

type CheckCommand struct {
	baseCommand
}

func (c *CheckCommand) Synopsis() string {
	return "Verify the generated sources are up to date"
}

func (c *CheckCommand) Help() string {
	return strings.TrimSpace(`
Usage: funcgen check [options]

  Renders the matrix and compares the result against the files in the
  output directory. Exits 2 when any file is missing or stale.

Options:
` + sharedHelp)
}

func (c *CheckCommand) Run(args []string) int {
	if code := c.parse("check", args); code != 0 {
		return code
	}
	m, err := c.matrix()
	if err != nil {
		c.ui.Error(fmt.Sprintf("Error loading matrix: %s", err))
		return 1
	}
	err = gen.Check(m, c.flagOut, c.genOpts()...)
	if err == nil {
		c.ui.Output("Generated files are up to date")
		return 0
	}

	var merr *multierror.Error
	if !errors.As(err, &merr) {
		c.ui.Error(fmt.Sprintf("Error checking files: %s", err))
		return 1
	}
	for _, e := range merr.Errors {
		var drift *gen.DriftError
		if !errors.As(e, &drift) {
			c.ui.Error(fmt.Sprintf("Error checking files: %s", e))
			return 1
		}
		c.ui.Error(drift.Error())
	}
	c.ui.Error("Run 'go generate' to refresh the generated files")
	return 2
}

type KindsCommand struct {
	baseCommand
}

func (c *KindsCommand) Synopsis() string {
	return "List the element kinds of the matrix"
}

func (c *KindsCommand) Help() string {
	return strings.TrimSpace(`
Usage: funcgen kinds [options]

  Prints every kind of the matrix with its Go type, one per line.

Options:
` + sharedHelp)
}

func (c *KindsCommand) Run(args []string) int {
	if code := c.parse("kinds", args); code != 0 {
		return code
	}
	m, err := c.matrix()
	if err != nil {
		c.ui.Error(fmt.Sprintf("Error loading matrix: %s", err))
		return 1
	}
	for _, k := range m.Kinds {
		c.ui.Output(fmt.Sprintf("%s\t%s", k.Name, k.Type))
	}
	return 0
}
