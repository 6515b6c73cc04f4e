// Copyright 2026 The zhmc-go Authors
// SPDX-License-Identifier: Apache-2.0

// Package session implements the "zhmc session" command group for
// managing stored HMC sessions: list, show, add, remove, and update
// against the YAML session file.
package session
