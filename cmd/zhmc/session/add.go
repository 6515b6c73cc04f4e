// Copyright 2026 The zhmc-go Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/zhmcclient/zhmc-go/cmd/zhmc/cli"
	"github.com/zhmcclient/zhmc-go/lib/secret"
	"github.com/zhmcclient/zhmc-go/lib/sessionfile"
)

type addParams struct {
	File      FileConfig
	Host      string `flag:"host" desc:"HMC host (hostname or IP address)"`
	Userid    string `flag:"userid" desc:"HMC userid the session belongs to"`
	SessionID string `flag:"session-id" desc:"HMC session ID (prompted for when omitted)"`
	CACert    string `flag:"ca-cert" desc:"path to the CA certificate used to verify the HMC certificate"`
	NoVerify  bool   `flag:"no-verify" desc:"disable HMC certificate verification"`
}

func addCommand() *cli.Command {
	var params addParams

	return &cli.Command{
		Name:    "add",
		Summary: "Add a new stored session",
		Usage:   "zhmc session add [<name>] --host <host> --userid <userid> [flags]",
		Description: `Add a new stored session.

The session ID is read from --session-id when given, and prompted for
otherwise. The interactive prompt disables terminal echo so the
session ID never appears on screen.`,
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("add", &params)
		},
		Run: func(args []string) error {
			name, err := sessionName("add", args)
			if err != nil {
				return err
			}

			if params.Host == "" {
				return fmt.Errorf("--host is required")
			}
			if params.Userid == "" {
				return fmt.Errorf("--userid is required")
			}
			if params.CACert != "" && params.NoVerify {
				return fmt.Errorf("--ca-cert and --no-verify are mutually exclusive")
			}

			logger := cli.NewCommandLogger().With("command", "session/add", "session", name)

			sessionID := params.SessionID
			if sessionID == "" {
				buffer, err := secret.Prompt("Session ID: ")
				if err != nil {
					return fmt.Errorf("reading session ID: %w", err)
				}
				defer buffer.Close()
				sessionID = buffer.String()
			}

			session := sessionfile.Session{
				Host:      params.Host,
				Userid:    params.Userid,
				SessionID: sessionID,
				CAVerify:  !params.NoVerify,
			}
			if params.CACert != "" {
				certPath := params.CACert
				session.CACertPath = &certPath
			}
			if params.NoVerify {
				logger.Warn("HMC certificate verification is disabled for this session",
					"host", params.Host)
			}

			if err := params.File.Open().Add(name, session); err != nil {
				return err
			}
			logger.Info("session added", "host", params.Host, "userid", params.Userid)
			return nil
		},
	}
}
