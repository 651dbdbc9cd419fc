// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Command funcgen stamps out the per-kind surface of the functional package
// from an HCL matrix.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/cli"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}))
}

func run(args []string, ui cli.Ui) int {
	c := cli.NewCLI("funcgen", version)
	c.Args = args
	c.Commands = commands(ui)

	exitStatus, err := c.Run()
	if err != nil {
		ui.Error(fmt.Sprintf("Error executing CLI: %s", err))
		return 1
	}
	return exitStatus
}

func commands(ui cli.Ui) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"generate": func() (cli.Command, error) {
			return &GenerateCommand{baseCommand: baseCommand{ui: ui}}, nil
		},
		"check": func() (cli.Command, error) {
			return &CheckCommand{baseCommand: baseCommand{ui: ui}}, nil
		},
		"kinds": func() (cli.Command, error) {
			return &KindsCommand{baseCommand: baseCommand{ui: ui}}, nil
		},
	}
}
