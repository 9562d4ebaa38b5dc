package authhandler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"pms/internal/domain/employee"
)

type fakeStore struct {
	emp Employee
}

type Employee = employee.Employee

func (f *fakeStore) ByCode(ctx context.Context, empCode string) (Employee, error) {
	if f.emp.EmpCode == empCode {
		return f.emp, nil
	}
	return Employee{}, pgx.ErrNoRows
}

func (f *fakeStore) ByUsername(ctx context.Context, username string) (Employee, error) {
	if f.emp.EmpCode == username || f.emp.Email == username {
		return f.emp, nil
	}
	return Employee{}, pgx.ErrNoRows
}

func (f *fakeStore) TouchLastLogin(ctx context.Context, empID int, when string) error {
	return nil
}

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	hash, err := employee.HashPassword("secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	store := &fakeStore{emp: Employee{
		EmpID:        7,
		EmpCode:      "kyc10019",
		Email:        "demo@example.com",
		Active:       true,
		PasswordHash: hash,
	}}

	r := chi.NewRouter()
	NewHandler(employee.NewService(store, "test-secret")).RegisterRoutes(r)
	return r
}

func TestHandleLogin(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/e/login",
		strings.NewReader(`{"username":"kyc10019","password":"secret"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Token    string   `json:"token"`
		Employee Employee `json:"employee"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Token == "" {
		t.Fatal("no token in response")
	}
	if body.Employee.EmpID != 7 {
		t.Fatalf("employee = %+v", body.Employee)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatal("response leaks password material")
	}
}

func TestHandleLoginRejections(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "wrong password", body: `{"username":"kyc10019","password":"bad"}`, wantStatus: http.StatusUnauthorized},
		{name: "unknown user", body: `{"username":"ghost","password":"secret"}`, wantStatus: http.StatusUnauthorized},
		{name: "missing fields", body: `{"username":"","password":""}`, wantStatus: http.StatusBadRequest},
		{name: "malformed json", body: `{`, wantStatus: http.StatusBadRequest},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(t)
			req := httptest.NewRequest(http.MethodPost, "/e/login", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tc.wantStatus, rec.Body.String())
			}

			var errBody struct {
				Error string `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &errBody); err != nil {
				t.Fatalf("error body not {error} JSON: %v", err)
			}
			if errBody.Error == "" {
				t.Fatal("empty error message")
			}
		})
	}
}
