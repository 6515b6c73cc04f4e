// Copyright 2026 The zhmc-go Authors
// SPDX-License-Identifier: Apache-2.0

package sessionfile

import "fmt"

// Error is the marker interface implemented by every error kind this
// package produces, so callers can match the whole taxonomy at once:
//
//	var sessionErr sessionfile.Error
//	if errors.As(err, &sessionErr) { ... }
type Error interface {
	error
	sessionFileError()
}

// NotFoundError reports that the named session does not exist in the
// session file.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("session not found in session file: %s", e.Name)
}

func (*NotFoundError) sessionFileError() {}

// AlreadyExistsError reports that a session with the given name is
// already present in the session file.
type AlreadyExistsError struct {
	Name string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("session already exists in session file: %s", e.Name)
}

func (*AlreadyExistsError) sessionFileError() {}

// FileNotFoundError reports that the session file does not exist. The
// store auto-creates missing files, so this is only returned by
// [OpenExisting], for callers that require a pre-existing file.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("session file not found: %s", e.Path)
}

func (*FileNotFoundError) sessionFileError() {}

// FileError reports an OS-level failure creating, reading, or writing
// the session file.
type FileError struct {
	Path string
	Op   string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("session file %s could not be %s: %v", e.Path, e.Op, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

func (*FileError) sessionFileError() {}

// FormatError reports that the session file content is not usable:
// either the file is not valid YAML (Detail is set) or it parses but
// violates the file schema (Element, Rule, and Value identify the
// offending part).
type FormatError struct {
	Path string

	// Detail describes a YAML syntax failure, verbatim from the
	// decoder. Empty for schema violations.
	Detail string

	// Element is the path of the offending element within the file,
	// e.g. "prod.ca_verify". Empty for syntax failures.
	Element string

	// Rule is the violated schema rule in human-readable form.
	Rule string

	// Value is a rendering of the offending value.
	Value string
}

func (e *FormatError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("invalid YAML syntax in session file %s: %s", e.Path, e.Detail)
	}
	return fmt.Sprintf("invalid data format in session file %s: offending element: %s; schema rule: %s; value: %s",
		e.Path, e.Element, e.Rule, e.Value)
}

func (*FormatError) sessionFileError() {}

// syntaxError builds a FormatError for undecodable YAML.
func syntaxError(path string, err error) *FormatError {
	return &FormatError{Path: path, Detail: err.Error()}
}

// schemaError builds a FormatError for a schema violation at element.
func schemaError(path, element, rule, value string) *FormatError {
	return &FormatError{Path: path, Element: element, Rule: rule, Value: value}
}
