// Copyright 2026 The zhmc-go Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/zhmcclient/zhmc-go/cmd/zhmc/cli"
	"github.com/zhmcclient/zhmc-go/lib/sessionfile"
)

// FileConfig holds the shared --session-file flag for commands that
// operate on the session file. An empty path falls back to the
// ZHMC_SESSION_FILEPATH environment variable, then to the default
// file in the home directory.
//
// FileConfig implements [cli.FlagBinder]; embed it in a params struct
// to pick up the flag.
type FileConfig struct {
	Path string
}

// AddFlags registers --session-file on the given flag set.
func (c *FileConfig) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&c.Path, "session-file", "",
		"path to the session file (default: $"+sessionfile.EnvFilepath+" or "+sessionfile.DefaultFilepath+")")
}

// Open returns a session file store for the configured path.
func (c *FileConfig) Open() *sessionfile.SessionFile {
	return sessionfile.New(c.Path)
}

// sessionName resolves the positional session name argument. An
// omitted name selects the default session.
func sessionName(command string, args []string) (string, error) {
	switch len(args) {
	case 0:
		return sessionfile.DefaultSessionName, nil
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("session %s takes at most one argument: the session name", command)
	}
}

// Command returns the "session" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "session",
		Summary: "Manage stored HMC sessions",
		Description: `Manage stored HMC sessions.

Sessions are named records in a YAML session file, each holding the
HMC host, userid, session ID, and certificate verification settings
for one logon. The session ID is masked in all command output.`,
		Subcommands: []*cli.Command{
			listCommand(),
			showCommand(),
			addCommand(),
			removeCommand(),
			updateCommand(),
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
				Description: "Change the host of a stored session",
				Command:     "zhmc session update prod -p host=hmc2.example.com",
			},
		},
	}
}
