// Copyright 2026 The zhmc-go Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command tree framework for the zhmc binary:
// command dispatch with typo suggestions, reflective flag binding from
// struct tags, structured logging setup, JSON output helpers, and the
// shared HMC property syntax flags.
//
// Commands are plain [Command] values organized in a tree. Leaf
// commands declare their flags through a params struct bound with
// [FlagsFromParams]; shared flag groups implement [FlagBinder] and are
// embedded in params structs.
package cli
