// Copyright 2026 The zhmc-go Authors
// SPDX-License-Identifier: Apache-2.0

package sessionfile

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFilepath is the session file used when neither an explicit
// path nor the environment variable selects one. The leading "~/" is
// expanded against the user's home directory.
const DefaultFilepath = "~/.zhmc_sessions.yml"

// EnvFilepath is the environment variable that overrides the default
// session file path. Used for test isolation.
const EnvFilepath = "ZHMC_SESSION_FILEPATH"

// filePerm is the permission the session file is created with and
// reset to after every write. The file holds session IDs in clear
// text; owner-only access is the protection.
const filePerm fs.FileMode = 0o600

// emptyFileContent is written when the store creates a missing file.
const emptyFileContent = "{}\n"

// SessionFile provides access to one session file. The file content is
// loaded on first access and cached for the lifetime of the store
// instance; every mutation validates the full data, rewrites the file,
// and updates the cache. Instances over different paths are fully
// independent.
//
// A SessionFile must not be shared across goroutines without external
// synchronization, and concurrent processes mutating the same file
// race (see the package documentation).
type SessionFile struct {
	path string

	// data is the cached file content, nil until the first successful
	// load. A failed load leaves it nil so the next access retries,
	// which keeps failing until the file is externally fixed.
	data map[string]Session

	// now is the clock used to stamp creation_time. Tests override it.
	now func() time.Time
}

// New returns a store for the session file at path. An empty path
// falls back to the EnvFilepath environment variable, then to
// DefaultFilepath. No I/O happens until the first operation.
func New(path string) *SessionFile {
	return &SessionFile{path: resolvePath(path), now: time.Now}
}

// OpenExisting returns a store for the session file at path, requiring
// the file to already exist: a missing file is a [*FileNotFoundError]
// instead of being auto-created.
func OpenExisting(path string) (*SessionFile, error) {
	resolved := resolvePath(path)
	if _, err := os.Stat(resolved); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &FileNotFoundError{Path: resolved}
		}
		return nil, &FileError{Path: resolved, Op: "read", Err: err}
	}
	return &SessionFile{path: resolved, now: time.Now}, nil
}

// resolvePath applies the path fallback chain and expands a leading
// "~/" against the home directory.
func resolvePath(path string) string {
	if path == "" {
		path = os.Getenv(EnvFilepath)
	}
	if path == "" {
		path = DefaultFilepath
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return path
}

// Path returns the resolved path of the session file.
func (f *SessionFile) Path() string {
	return f.path
}

// List returns all sessions in the file, keyed by session name. A
// missing file is created empty and yields an empty map.
func (f *SessionFile) List() (map[string]Session, error) {
	data, err := f.ensureLoaded()
	if err != nil {
		return nil, err
	}
	sessions := make(map[string]Session, len(data))
	for name, session := range data {
		sessions[name] = session
	}
	return sessions, nil
}

// Get returns the session stored under name.
func (f *SessionFile) Get(name string) (Session, error) {
	data, err := f.ensureLoaded()
	if err != nil {
		return Session{}, err
	}
	session, ok := data[name]
	if !ok {
		return Session{}, &NotFoundError{Name: name}
	}
	return session, nil
}

// Add stores session under name and persists the file. The session's
// CreationTime is set to the current UTC time regardless of the value
// supplied. Fails with [*AlreadyExistsError] when name is present; the
// file is left unmodified in every failure case.
func (f *SessionFile) Add(name string, session Session) error {
	data, err := f.ensureLoaded()
	if err != nil {
		return err
	}
	if _, ok := data[name]; ok {
		return &AlreadyExistsError{Name: name}
	}

	session.CreationTime = nowString(f.now())
	next := cloneSessions(data)
	next[name] = session
	if err := f.save(next); err != nil {
		return err
	}
	f.data = next
	return nil
}

// Remove deletes the session stored under name and persists the file.
func (f *SessionFile) Remove(name string) error {
	data, err := f.ensureLoaded()
	if err != nil {
		return err
	}
	if _, ok := data[name]; !ok {
		return &NotFoundError{Name: name}
	}

	next := cloneSessions(data)
	delete(next, name)
	if err := f.save(next); err != nil {
		return err
	}
	f.data = next
	return nil
}

// Update merges the given fields into the session stored under name,
// re-stamps CreationTime to the current UTC time, and persists the
// file. Field keys are the persisted field names (host, userid,
// session_id, ca_verify, ca_cert_path); a creation_time key is ignored
// since the store stamps it. Fields not mentioned keep their values.
func (f *SessionFile) Update(name string, updates map[string]any) error {
	data, err := f.ensureLoaded()
	if err != nil {
		return err
	}
	session, ok := data[name]
	if !ok {
		return &NotFoundError{Name: name}
	}

	// Sorted key order for deterministic error reporting.
	keys := make([]string, 0, len(updates))
	for key := range updates {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := applyField(&session, f.path, name, key, updates[key]); err != nil {
			return err
		}
	}
	session.CreationTime = nowString(f.now())

	next := cloneSessions(data)
	next[name] = session
	if err := f.save(next); err != nil {
		return err
	}
	f.data = next
	return nil
}

// applyField sets one named field on session, rejecting unknown fields
// and wrongly-typed values with a schema error before anything is
// written.
func applyField(session *Session, path, name, key string, value any) error {
	element := name + "." + key
	switch key {
	case "host", "userid", "session_id":
		text, ok := value.(string)
		if !ok {
			return schemaError(path, element, "must be a string", fmt.Sprintf("%v", value))
		}
		switch key {
		case "host":
			session.Host = text
		case "userid":
			session.Userid = text
		case "session_id":
			session.SessionID = text
		}
	case "ca_verify":
		verify, ok := value.(bool)
		if !ok {
			return schemaError(path, element, "must be a boolean", fmt.Sprintf("%v", value))
		}
		session.CAVerify = verify
	case "ca_cert_path":
		switch v := value.(type) {
		case nil:
			session.CACertPath = nil
		case string:
			session.CACertPath = &v
		default:
			return schemaError(path, element, "must be a string or null", fmt.Sprintf("%v", value))
		}
	case "creation_time":
		// Ignored: the store stamps creation_time itself.
	default:
		return schemaError(path, element, "unknown session field", fmt.Sprintf("%v", value))
	}
	return nil
}

// ensureLoaded returns the cached data, loading the file on first use.
// Load failures are not cached: the store retries on the next access
// and keeps failing while the file remains broken.
func (f *SessionFile) ensureLoaded() (map[string]Session, error) {
	if f.data != nil {
		return f.data, nil
	}
	data, err := f.load()
	if err != nil {
		return nil, err
	}
	f.data = data
	return data, nil
}

// load reads, parses, and validates the session file. A missing file
// is created empty (owner-only permissions) and yields empty data.
func (f *SessionFile) load() (map[string]Session, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return f.create()
		}
		return nil, &FileError{Path: f.path, Op: "read", Err: err}
	}

	var document yaml.Node
	if err := yaml.Unmarshal(raw, &document); err != nil {
		return nil, syntaxError(f.path, err)
	}
	root := documentRoot(&document)
	if err := validateFileNode(f.path, root); err != nil {
		return nil, err
	}

	sessions := make(map[string]Session)
	if root != nil {
		if err := root.Decode(&sessions); err != nil {
			return nil, syntaxError(f.path, err)
		}
	}
	return sessions, nil
}

// create writes a new empty session file with owner-only permissions.
func (f *SessionFile) create() (map[string]Session, error) {
	if err := os.WriteFile(f.path, []byte(emptyFileContent), filePerm); err != nil {
		return nil, &FileError{Path: f.path, Op: "created", Err: err}
	}
	// WriteFile's mode is narrowed by the umask but never widened;
	// chmod guarantees the exact permission either way.
	if err := os.Chmod(f.path, filePerm); err != nil {
		return nil, &FileError{Path: f.path, Op: "created", Err: err}
	}
	return map[string]Session{}, nil
}

// save validates data against the file schema and rewrites the whole
// file. Permissions are reset to owner-only after every write.
func (f *SessionFile) save(data map[string]Session) error {
	if err := validateData(f.path, data); err != nil {
		return err
	}

	var buffer bytes.Buffer
	encoder := yaml.NewEncoder(&buffer)
	encoder.SetIndent(4)
	if err := encoder.Encode(data); err != nil {
		return &FileError{Path: f.path, Op: "written", Err: err}
	}
	if err := encoder.Close(); err != nil {
		return &FileError{Path: f.path, Op: "written", Err: err}
	}

	if err := os.WriteFile(f.path, buffer.Bytes(), filePerm); err != nil {
		return &FileError{Path: f.path, Op: "written", Err: err}
	}
	if err := os.Chmod(f.path, filePerm); err != nil {
		return &FileError{Path: f.path, Op: "written", Err: err}
	}
	return nil
}

// validateData checks in-memory data before it is written. The Session
// struct makes field-level violations unrepresentable, so the only
// dynamic rule is the session name pattern.
func validateData(path string, data map[string]Session) error {
	for name := range data {
		if !ValidName(name) {
			return schemaError(path, name, "session name must match ^[a-z0-9_]+$", name)
		}
	}
	return nil
}
