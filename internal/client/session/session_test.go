package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func storeAt(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	return NewFileStore(path), path
}

func TestCurrentUserMissingFile(t *testing.T) {
	s, _ := storeAt(t)
	u, err := s.CurrentUser()
	if err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if u != nil {
		t.Fatalf("want nil user, got %+v", u)
	}
}

func TestSaveAndLoad(t *testing.T) {
	s, _ := storeAt(t)
	if err := s.Save(User{EmpID: 7, EmpCode: "kyc10019", Name: "Asha", Token: "tok"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	u, err := s.CurrentUser()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if u == nil || u.EmpID != 7 || u.EmpCode != "kyc10019" {
		t.Fatalf("loaded %+v", u)
	}
	if u.LastLogin == "" {
		t.Fatal("LastLogin not stamped")
	}
	if _, err := time.Parse(time.RFC3339, u.LastLogin); err != nil {
		t.Fatalf("LastLogin %q not RFC3339: %v", u.LastLogin, err)
	}
}

func TestCorruptSessionClearedAndReported(t *testing.T) {
	s, path := storeAt(t)
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := s.CurrentUser()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %T: %v", err, err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("corrupt session file was not cleared")
	}

	// The next read behaves like a fresh sign-out, not a repeat failure.
	u, err := s.CurrentUser()
	if err != nil || u != nil {
		t.Fatalf("after clear: user=%+v err=%v", u, err)
	}
}

func TestClearIdempotent(t *testing.T) {
	s, _ := storeAt(t)
	if err := s.Clear(); err != nil {
		t.Fatalf("clear on empty store: %v", err)
	}
	if err := s.Save(User{EmpID: 1, EmpCode: "x"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if u, _ := s.CurrentUser(); u != nil {
		t.Fatalf("user survived clear: %+v", u)
	}
}

func TestSessionFileNeverHoldsPassword(t *testing.T) {
	s, path := storeAt(t)
	if err := s.Save(User{EmpID: 1, EmpCode: "kyc10019", Token: "tok"}); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(strings.ToLower(string(raw)), "password") {
		t.Fatalf("session file mentions a password: %s", raw)
	}
}

func TestOnChangeStopsWithContext(t *testing.T) {
	s, _ := storeAt(t)
	ctx, cancel := context.WithCancel(context.Background())

	fired := make(chan *User, 4)
	s.OnChange(ctx, func(u *User) { fired <- u })
	cancel()

	if err := s.Save(User{EmpID: 2, EmpCode: "y"}); err != nil {
		t.Fatal(err)
	}
	select {
	case u := <-fired:
		t.Fatalf("watcher fired after cancel: %+v", u)
	case <-time.After(1500 * time.Millisecond):
	}
}
