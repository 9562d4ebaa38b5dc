package goalshandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"pms/internal/domain/goals"
	"pms/internal/domain/weekly"
	"pms/internal/transport/http/api"
	"pms/internal/transport/http/middleware"
)

type Handler struct {
	Service *goals.Service
}

func NewHandler(service *goals.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/e/wg/{empId}", h.handleWeeklyGoals)
		r.Get("/e/goals/{empId}", h.handleCatalog)
		r.Post("/e/getwgrow", h.handleGetRow)
		r.Post("/e/postwgrow", h.handlePostRow)
	})
}

func (h *Handler) handleWeeklyGoals(w http.ResponseWriter, r *http.Request) {
	empID, err := strconv.Atoi(chi.URLParam(r, "empId"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid empId")
		return
	}
	weeks, err := parseWeeks(r.URL.Query().Get("weeks"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid weeks parameter")
		return
	}

	page, err := h.Service.WeeklyGoals(r.Context(), empID, weeks)
	if err != nil {
		slog.Warn("weekly goals failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "failed to load weekly goals")
		return
	}
	api.WriteJSON(w, http.StatusOK, page)
}

func (h *Handler) handleCatalog(w http.ResponseWriter, r *http.Request) {
	empID, err := strconv.Atoi(chi.URLParam(r, "empId"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid empId")
		return
	}

	entries, err := h.Service.Catalog(r.Context(), empID)
	if err != nil {
		slog.Warn("goal catalog failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "failed to load goal catalog")
		return
	}
	api.WriteJSON(w, http.StatusOK, entries)
}

func (h *Handler) handleGetRow(w http.ResponseWriter, r *http.Request) {
	var key weekly.RowKey
	if err := json.NewDecoder(r.Body).Decode(&key); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	row, err := h.Service.GetRow(r.Context(), key.GoalRecID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			api.Fail(w, http.StatusNotFound, "goal row not found")
			return
		}
		slog.Warn("get goal row failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "failed to load goal row")
		return
	}
	api.WriteJSON(w, http.StatusOK, row)
}

func (h *Handler) handlePostRow(w http.ResponseWriter, r *http.Request) {
	var row goals.Goal
	if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if row.RecID == 0 && (row.EmpID == 0 || row.GoalID == "") {
		api.Fail(w, http.StatusBadRequest, "goal_emp_id and goal_id are required for new rows")
		return
	}

	recID, err := h.Service.SaveRow(r.Context(), row)
	if err != nil {
		slog.Warn("save goal row failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "failed to save goal row")
		return
	}
	api.WriteJSON(w, http.StatusOK, map[string]int{"goal_rec_id": recID})
}

// parseWeeks reads the comma-separated weeks filter. Empty means all.
func parseWeeks(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	weeks := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		weeks = append(weeks, n)
	}
	return weeks, nil
}
