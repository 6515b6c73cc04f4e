// Copyright 2026 The zhmc-go Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/zhmcclient/zhmc-go/cmd/zhmc/cli"
	"github.com/zhmcclient/zhmc-go/lib/sessionfile"
)

// sessionEntry is one row of "session list" output. The session ID is
// reduced to a masked placeholder (or empty) before it reaches any
// output path.
type sessionEntry struct {
	Name         string `json:"name"`
	Host         string `json:"host"`
	Userid       string `json:"userid"`
	SessionID    string `json:"session_id"`
	CAVerify     bool   `json:"ca_verify"`
	CACertPath   string `json:"ca_cert_path,omitempty"`
	CreationTime string `json:"creation_time"`
}

type listParams struct {
	cli.JSONOutput
	File FileConfig
}

func listCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List all stored sessions",
		Usage:   "zhmc session list [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("list", &params)
		},
		Run: func(args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("session list takes no arguments, got %v", args)
			}

			sessions, err := params.File.Open().List()
			if err != nil {
				return err
			}

			entries := make([]sessionEntry, 0, len(sessions))
			for name, session := range sessions {
				entries = append(entries, makeEntry(name, session))
			}
			sort.Slice(entries, func(i, j int) bool {
				return entries[i].Name < entries[j].Name
			})

			if done, err := params.EmitJSON(entries); done {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "NAME\tHOST\tUSERID\tCA VERIFY\tCREATED")
			for _, entry := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%s\n",
					entry.Name, entry.Host, entry.Userid, entry.CAVerify, entry.CreationTime)
			}
			return tw.Flush()
		},
	}
}

// makeEntry converts a stored session to an output row with the
// session ID masked.
func makeEntry(name string, session sessionfile.Session) sessionEntry {
	entry := sessionEntry{
		Name:         name,
		Host:         session.Host,
		Userid:       session.Userid,
		CAVerify:     session.CAVerify,
		CreationTime: session.CreationTime,
	}
	if session.SessionID != "" {
		entry.SessionID = sessionfile.Masked
	}
	if session.CACertPath != nil {
		entry.CACertPath = *session.CACertPath
	}
	return entry
}
