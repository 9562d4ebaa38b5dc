package weeklyhandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"pms/internal/domain/weekly"
	"pms/internal/transport/http/api"
	"pms/internal/transport/http/middleware"
)

type Handler struct {
	Service *weekly.Service
}

func NewHandler(service *weekly.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/e/ws/{empId}", h.handleSummaries)
		r.Get("/e/weeklisting/{empId}", h.handleWeekListing)
		r.Get("/e/freshweek/{empId}/{weekId}", h.handleFreshWeek)
		r.Post("/e/getwsrow", h.handleGetRow)
		r.Post("/e/postwsrow", h.handlePostRow)
	})
}

func (h *Handler) handleSummaries(w http.ResponseWriter, r *http.Request) {
	empID, ok := intParam(w, r, "empId")
	if !ok {
		return
	}
	page, err := h.Service.Summaries(r.Context(), empID)
	if err != nil {
		slog.Warn("week summaries failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "failed to load week summaries")
		return
	}
	api.WriteJSON(w, http.StatusOK, page)
}

func (h *Handler) handleWeekListing(w http.ResponseWriter, r *http.Request) {
	empID, ok := intParam(w, r, "empId")
	if !ok {
		return
	}
	listing, err := h.Service.WeekListing(r.Context(), empID)
	if err != nil {
		slog.Warn("week listing failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "failed to load week listing")
		return
	}
	api.WriteJSON(w, http.StatusOK, listing)
}

func (h *Handler) handleFreshWeek(w http.ResponseWriter, r *http.Request) {
	empID, ok := intParam(w, r, "empId")
	if !ok {
		return
	}
	weekID, ok := intParam(w, r, "weekId")
	if !ok {
		return
	}

	row, err := h.Service.FreshWeek(r.Context(), empID, weekID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			api.Fail(w, http.StatusNotFound, "week not found")
			return
		}
		slog.Warn("fresh week failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "failed to build week template")
		return
	}
	api.WriteJSON(w, http.StatusOK, row)
}

func (h *Handler) handleGetRow(w http.ResponseWriter, r *http.Request) {
	var key weekly.RowKey
	if err := json.NewDecoder(r.Body).Decode(&key); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	row, err := h.Service.GetRow(r.Context(), key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			api.Fail(w, http.StatusNotFound, "week row not found")
			return
		}
		slog.Warn("get week row failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "failed to load week row")
		return
	}
	api.WriteJSON(w, http.StatusOK, row)
}

func (h *Handler) handlePostRow(w http.ResponseWriter, r *http.Request) {
	var row weekly.WeekSummary
	if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if row.EmpID == 0 || row.WeekID == 0 {
		api.Fail(w, http.StatusBadRequest, "ws_emp_id and ws_week_id are required")
		return
	}

	if err := h.Service.SaveRow(r.Context(), row); err != nil {
		slog.Warn("save week row failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "failed to save week row")
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

func intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	value, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return value, true
}
