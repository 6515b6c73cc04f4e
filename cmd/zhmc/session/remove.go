// Copyright 2026 The zhmc-go Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"github.com/spf13/pflag"

	"github.com/zhmcclient/zhmc-go/cmd/zhmc/cli"
)

type removeParams struct {
	File FileConfig
}

func removeCommand() *cli.Command {
	var params removeParams

	return &cli.Command{
		Name:    "remove",
		Summary: "Remove a stored session",
		Usage:   "zhmc session remove [<name>] [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("remove", &params)
		},
		Run: func(args []string) error {
			name, err := sessionName("remove", args)
			if err != nil {
				return err
			}

			if err := params.File.Open().Remove(name); err != nil {
				return err
			}
			cli.NewCommandLogger().Info("session removed", "session", name)
			return nil
		},
	}
}
