// Copyright 2026 The zhmc-go Authors
// SPDX-License-Identifier: Apache-2.0

// Package secret holds HMC session IDs and passwords in memory that is
// protected against the usual leak paths.
//
// [Buffer] allocates memory outside the Go heap via mmap(MAP_ANONYMOUS),
// locks it into physical RAM via mlock (preventing swap), and marks it
// excluded from core dumps via madvise(MADV_DONTDUMP). On Close, the
// memory is zeroed, unlocked, and unmapped. Because the memory lives
// outside the Go heap, the garbage collector cannot copy or relocate
// it, so secret material does not persist after release.
//
// Secrets enter the package through [NewFromBytes] (copies into
// protected memory and zeros the source), [ReadFromPath] (file path or
// "-" for stdin), and [Prompt] (interactive entry with terminal echo
// disabled). Access via [Buffer.Bytes] (slice into the mmap region) or
// [Buffer.String] (heap copy for API boundaries that need a string).
// After Close, any access panics. Close is idempotent.
//
// Depends on golang.org/x/sys/unix and golang.org/x/term.
package secret
