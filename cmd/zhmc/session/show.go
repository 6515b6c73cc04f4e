// Copyright 2026 The zhmc-go Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/zhmcclient/zhmc-go/cmd/zhmc/cli"
)

type showParams struct {
	cli.JSONOutput
	File FileConfig
}

func showCommand() *cli.Command {
	var params showParams

	return &cli.Command{
		Name:    "show",
		Summary: "Show one stored session",
		Usage:   "zhmc session show [<name>] [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("show", &params)
		},
		Run: func(args []string) error {
			name, err := sessionName("show", args)
			if err != nil {
				return err
			}

			session, err := params.File.Open().Get(name)
			if err != nil {
				return err
			}
			entry := makeEntry(name, session)

			if done, err := params.EmitJSON(entry); done {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintf(tw, "Name:\t%s\n", entry.Name)
			fmt.Fprintf(tw, "Host:\t%s\n", entry.Host)
			fmt.Fprintf(tw, "Userid:\t%s\n", entry.Userid)
			fmt.Fprintf(tw, "Session ID:\t%s\n", entry.SessionID)
			fmt.Fprintf(tw, "CA verify:\t%t\n", entry.CAVerify)
			fmt.Fprintf(tw, "CA cert path:\t%s\n", entry.CACertPath)
			fmt.Fprintf(tw, "Created:\t%s\n", entry.CreationTime)
			return tw.Flush()
		},
	}
}
