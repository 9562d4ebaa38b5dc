package employee

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

const tokenTTL = 12 * time.Hour

type Service struct {
	Store     StoreAPI
	JWTSecret string
}

func NewService(store StoreAPI, jwtSecret string) *Service {
	return &Service{Store: store, JWTSecret: jwtSecret}
}

// Authenticate checks credentials and returns the employee record plus a
// signed session token. Inactive employees cannot log in. The lookup failure
// and the password mismatch collapse into one error so callers cannot probe
// which usernames exist.
func (s *Service) Authenticate(ctx context.Context, username, password string) (Employee, string, error) {
	emp, err := s.Store.ByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Employee{}, "", ErrInvalidCredentials
		}
		return Employee{}, "", err
	}
	if !emp.Active {
		return Employee{}, "", ErrInvalidCredentials
	}
	if err := CheckPassword(emp.PasswordHash, password); err != nil {
		return Employee{}, "", ErrInvalidCredentials
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if err := s.Store.TouchLastLogin(ctx, emp.EmpID, now); err != nil {
		return Employee{}, "", err
	}
	emp.LastLoginDate = now

	token, err := GenerateToken(s.JWTSecret, Claims{EmpID: emp.EmpID, EmpCode: emp.EmpCode}, tokenTTL)
	if err != nil {
		return Employee{}, "", err
	}
	return emp, token, nil
}

func (s *Service) Profile(ctx context.Context, empCode string) (Employee, error) {
	return s.Store.ByCode(ctx, empCode)
}
