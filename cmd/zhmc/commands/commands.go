// Copyright 2026 The zhmc-go Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete zhmc CLI command tree.
package commands

import (
	"fmt"

	"github.com/zhmcclient/zhmc-go/cmd/zhmc/cli"
	sessioncmd "github.com/zhmcclient/zhmc-go/cmd/zhmc/session"
	"github.com/zhmcclient/zhmc-go/lib/version"
)

// Root builds and returns the complete zhmc CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "zhmc",
		Description: `zhmc: command line client for the IBM Z HMC.

Manage stored HMC sessions and their certificate verification
settings from the command line.`,
		Subcommands: []*cli.Command{
			sessioncmd.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("zhmc %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Store a session for the production HMC",
				Command:     "zhmc session add prod --host hmc1.example.com --userid opsadmin",
			},
			{
				Description: "List all stored sessions",
				Command:     "zhmc session list",
			},
			{
				Description: "Show one session as JSON",
				Command:     "zhmc session show prod --json",
			},
		},
	}
}
