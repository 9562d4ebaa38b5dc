// Package session holds the client-local login state: who is signed in
// and when they last logged in. Nothing secret is persisted. Views read
// it through the Provider interface so tests can substitute a fake.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// User is the identity the rest of the client treats as ambient state.
type User struct {
	EmpID     int    `json:"emp_id"`
	EmpCode   string `json:"emp_code"`
	Name      string `json:"name"`
	Token     string `json:"token"`
	LastLogin string `json:"last_login"`
}

// Provider is the read side of session state. CurrentUser returns nil
// when nobody is signed in.
type Provider interface {
	CurrentUser() (*User, error)
	OnChange(ctx context.Context, fn func(*User))
}

// ValidationError marks stored session data that could not be parsed.
// The store clears the corrupt entry before returning it, so the next
// read prompts a fresh login instead of looping on the same failure.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("corrupt session data at %s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

const pollInterval = time.Second

// FileStore persists the session as a JSON file, usually under the
// user's config directory.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath places the session file under the OS config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "pms", "session.json"), nil
}

func (s *FileStore) CurrentUser() (*User, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var u User
	if err := json.Unmarshal(raw, &u); err != nil {
		os.Remove(s.path)
		return nil, &ValidationError{Path: s.path, Err: err}
	}
	return &u, nil
}

// Save writes the signed-in user, stamping LastLogin when unset.
func (s *FileStore) Save(u User) error {
	if u.LastLogin == "" {
		u.LastLogin = time.Now().UTC().Format(time.RFC3339)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(u, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

// Clear signs the user out.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// OnChange polls the store once a second and invokes fn when the signed
// in identity changes, including sign-out (fn receives nil). The watcher
// stops when ctx is cancelled.
func (s *FileStore) OnChange(ctx context.Context, fn func(*User)) {
	go func() {
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()

		last, _ := s.CurrentUser()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if ctx.Err() != nil {
					return
				}
				current, err := s.CurrentUser()
				if err != nil {
					continue
				}
				if !sameUser(last, current) {
					last = current
					fn(current)
				}
			}
		}
	}()
}

func sameUser(a, b *User) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.EmpID == b.EmpID && a.EmpCode == b.EmpCode && a.Token == b.Token
}
