package employeehandler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"pms/internal/domain/employee"
	"pms/internal/transport/http/api"
	"pms/internal/transport/http/middleware"
)

type Handler struct {
	Service *employee.Service
}

func NewHandler(service *employee.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequireAuth).Get("/e/employee/{empCode}", h.handleProfile)
}

func (h *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	empCode := chi.URLParam(r, "empCode")

	emp, err := h.Service.Profile(r.Context(), empCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			api.Fail(w, http.StatusNotFound, "employee not found")
			return
		}
		slog.Warn("profile lookup failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "failed to load employee")
		return
	}
	api.WriteJSON(w, http.StatusOK, emp)
}
