// Copyright 2026 The zhmc-go Authors
// SPDX-License-Identifier: Apache-2.0

package sessionfile

import (
	"fmt"
	"regexp"
	"time"
)

// TimeFormat is the layout of the creation_time field: UTC, second
// resolution.
const TimeFormat = "2006-01-02 15:04:05"

// Masked replaces the session ID in any displayed representation of a
// session. It never appears in the persisted file.
const Masked = "********"

// DefaultSessionName is the session name used when the caller does not
// select one.
const DefaultSessionName = "default"

// namePattern constrains session names: lowercase letters, digits, and
// underscore.
var namePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// ValidName reports whether name is an acceptable session name.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// Session is one logged-in HMC session as recorded in the session
// file. All fields are required in persisted form; CACertPath may be
// null (nil) when the default CA chain is used or verification is
// disabled.
type Session struct {
	// Host is the HMC host, as hostname or IP address.
	Host string `yaml:"host"`

	// Userid is the HMC userid the session was created for.
	Userid string `yaml:"userid"`

	// SessionID is the HMC session ID. Sensitive: it must never be
	// displayed; use [Session.String] for any human-facing rendering.
	SessionID string `yaml:"session_id"`

	// CAVerify indicates whether the HMC certificate is validated.
	CAVerify bool `yaml:"ca_verify"`

	// CACertPath is the path of the CA certificate file or directory
	// used for validation, or nil for the default CA chain.
	CACertPath *string `yaml:"ca_cert_path"`

	// CreationTime is when the session was stored, in [TimeFormat] in
	// the UTC timezone. Set by the store on Add and Update; caller
	// values are ignored.
	CreationTime string `yaml:"creation_time"`
}

// String renders the session for display and debugging with the
// session ID masked. This is intentionally separate from the YAML
// serialization path, which persists the real session ID.
func (s Session) String() string {
	caCertPath := "null"
	if s.CACertPath != nil {
		caCertPath = *s.CACertPath
	}
	return fmt.Sprintf("Session(host=%s, userid=%s, session_id=%s, ca_verify=%t, ca_cert_path=%s, creation_time=%s)",
		s.Host, s.Userid, Masked, s.CAVerify, caCertPath, s.CreationTime)
}

// nowString formats t for the creation_time field.
func nowString(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}

// cloneSessions copies a session map so that mutations can be
// validated and written before the cached data is replaced.
func cloneSessions(data map[string]Session) map[string]Session {
	next := make(map[string]Session, len(data)+1)
	for name, session := range data {
		next[name] = session
	}
	return next
}
