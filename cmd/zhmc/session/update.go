// Copyright 2026 The zhmc-go Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/zhmcclient/zhmc-go/cmd/zhmc/cli"
)

type updateParams struct {
	cli.PropertySyntax
	File       FileConfig
	Properties []string `flag:"property,p" desc:"session field in name=value property syntax (repeatable)"`
}

func updateCommand() *cli.Command {
	var params updateParams

	return &cli.Command{
		Name:    "update",
		Summary: "Update fields of a stored session",
		Usage:   "zhmc session update [<name>] -p <field>=<value> ... [flags]",
		Description: `Update fields of a stored session.

Field values use the name=value property syntax: bare or quoted
strings, integers, floats, true/false/null, and nested arrays and
objects. The quote, separator, and assignment characters are
configurable for values that contain them literally.`,
		Examples: []cli.Example{
			{
				Description: "Point a session at a different HMC",
				Command:     "zhmc session update prod -p host=hmc2.example.com",
			},
			{
				Description: "Disable certificate verification",
				Command:     "zhmc session update prod -p ca_verify=false -p ca_cert_path=null",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("update", &params)
		},
		Run: func(args []string) error {
			name, err := sessionName("update", args)
			if err != nil {
				return err
			}

			if len(params.Properties) == 0 {
				return fmt.Errorf("session update requires at least one --property")
			}

			parser, err := params.Parser()
			if err != nil {
				return err
			}
			updates, err := cli.ParseProperties(parser, params.Properties)
			if err != nil {
				return err
			}

			if err := params.File.Open().Update(name, updates); err != nil {
				return err
			}
			cli.NewCommandLogger().Info("session updated",
				"session", name, "fields", len(updates))
			return nil
		},
	}
}
