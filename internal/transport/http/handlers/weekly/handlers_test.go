package weeklyhandler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"pms/internal/domain/employee"
	"pms/internal/domain/weekly"
	"pms/internal/transport/http/middleware"
)

type fakeStore struct {
	listing []weekly.WeekListing
	rows    map[weekly.RowKey]weekly.WeekSummary
	saved   []weekly.WeekSummary
}

func (f *fakeStore) ListSummaries(ctx context.Context, empID int) ([]weekly.WeekSummary, error) {
	return nil, nil
}

func (f *fakeStore) Stats(ctx context.Context, empID int) (weekly.WeekStats, bool, error) {
	return weekly.WeekStats{}, false, nil
}

func (f *fakeStore) WeekListing(ctx context.Context, empID, limit int) ([]weekly.WeekListing, error) {
	if len(f.listing) > limit {
		return f.listing[:limit], nil
	}
	return f.listing, nil
}

func (f *fakeStore) FreshWeek(ctx context.Context, empID, weekID int) (weekly.WeekSummary, error) {
	return weekly.WeekSummary{}, pgx.ErrNoRows
}

func (f *fakeStore) GetRow(ctx context.Context, key weekly.RowKey) (weekly.WeekSummary, error) {
	row, ok := f.rows[key]
	if !ok {
		return weekly.WeekSummary{}, pgx.ErrNoRows
	}
	return row, nil
}

func (f *fakeStore) UpsertRow(ctx context.Context, row weekly.WeekSummary) error {
	f.saved = append(f.saved, row)
	return nil
}

const testSecret = "test-secret"

func newTestRouter(store *fakeStore) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Auth(testSecret))
	NewHandler(weekly.NewService(store)).RegisterRoutes(r)
	return r
}

func authedRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()
	token, err := employee.GenerateToken(testSecret,
		employee.Claims{EmpID: 7, EmpCode: "kyc10019"}, time.Minute)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestWeekListingRequiresAuth(t *testing.T) {
	router := newTestRouter(&fakeStore{})

	req := httptest.NewRequest(http.MethodGet, "/e/weeklisting/7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestWeekListing(t *testing.T) {
	store := &fakeStore{listing: []weekly.WeekListing{
		{WeekID: 31, WeekNumber: 31, Status: "S"},
		{WeekID: 30, WeekNumber: 30, Status: "U"},
	}}
	router := newTestRouter(store)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, http.MethodGet, "/e/weeklisting/7", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var listing []weekly.WeekListing
	if err := json.Unmarshal(rec.Body.Bytes(), &listing); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(listing) != 2 || listing[0].WeekID != 31 {
		t.Fatalf("listing = %+v", listing)
	}
}

func TestWeekListingBadParam(t *testing.T) {
	router := newTestRouter(&fakeStore{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, http.MethodGet, "/e/weeklisting/abc", ""))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetRowNotFound(t *testing.T) {
	router := newTestRouter(&fakeStore{rows: map[weekly.RowKey]weekly.WeekSummary{}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, http.MethodPost, "/e/getwsrow",
		`{"emp_id":7,"week_id":31,"co_id":1}`))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestGetRow(t *testing.T) {
	key := weekly.RowKey{EmpID: 7, WeekID: 31, CoID: 1}
	store := &fakeStore{rows: map[weekly.RowKey]weekly.WeekSummary{
		key: {EmpID: 7, WeekID: 31, CoID: 1, Efforts: 38.5, Status: "S"},
	}}
	router := newTestRouter(store)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, http.MethodPost, "/e/getwsrow",
		`{"emp_id":7,"week_id":31,"co_id":1}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var row weekly.WeekSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &row); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if row.Efforts != 38.5 || row.Status != "S" {
		t.Fatalf("row = %+v", row)
	}
}

func TestPostRow(t *testing.T) {
	store := &fakeStore{}
	router := newTestRouter(store)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, http.MethodPost, "/e/postwsrow",
		`{"ws_emp_id":7,"ws_week_id":31,"ws_co_id":1,"ws_efforts":40,"ws_status":"S"}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if len(store.saved) != 1 {
		t.Fatalf("saved %d rows", len(store.saved))
	}
	row := store.saved[0]
	if row.Efforts != 40 || row.Status != "S" {
		t.Fatalf("row = %+v", row)
	}
	// Service defaults applied on the way through.
	if row.SubmittedOn == "" || row.ActiveStatus != "Y" {
		t.Fatalf("defaults missing: %+v", row)
	}
}

func TestPostRowRequiresKeys(t *testing.T) {
	router := newTestRouter(&fakeStore{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(t, http.MethodPost, "/e/postwsrow", `{"ws_efforts":40}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
