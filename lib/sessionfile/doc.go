// Copyright 2026 The zhmc-go Authors
// SPDX-License-Identifier: Apache-2.0

// Package sessionfile manages the zhmc session file: a YAML file that
// records logged-in HMC sessions (host, userid, session ID, CA
// verification policy, creation time) across CLI invocations.
//
// The file maps session names to session records. [SessionFile] loads
// it lazily on first access, creating an empty file with owner-only
// permissions when it does not exist. Every mutation validates the
// complete data against the file schema, rewrites the whole file, and
// resets permissions to owner-only read/write.
//
// Failures are reported through a small taxonomy so callers can
// distinguish an absent session ([*NotFoundError], [*AlreadyExistsError])
// from a damaged file ([*FormatError]) and from an environment problem
// ([*FileError]). All taxonomy types implement the [Error] marker
// interface for broad matching with [errors.As].
//
// The session ID is sensitive: [Session.String] masks it, and display
// code must use that path. The persisted file stores the real session
// ID in clear text and relies on the owner-only file permissions.
//
// There is no cross-process locking. Concurrent mutations of the same
// file from multiple processes are a read-modify-write race where the
// last writer wins; callers needing that must coordinate externally.
package sessionfile
