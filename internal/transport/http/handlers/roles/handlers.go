package roleshandler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"pms/internal/domain/roles"
	"pms/internal/transport/http/api"
	"pms/internal/transport/http/middleware"
)

type Handler struct {
	Service *roles.Service
}

func NewHandler(service *roles.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/e/roles/{empId}", h.handleRoles)
		r.Get("/e/roles/{empId}/{flag}", h.handleRoles)
	})
}

func (h *Handler) handleRoles(w http.ResponseWriter, r *http.Request) {
	empID, err := strconv.Atoi(chi.URLParam(r, "empId"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid empId")
		return
	}
	flag := chi.URLParam(r, "flag")

	sheet, err := h.Service.SheetFor(r.Context(), empID, flag)
	if err != nil {
		if flag != "" && flag != roles.FlagAll && flag != roles.FlagEditable {
			api.Fail(w, http.StatusBadRequest, "unknown roles flag")
			return
		}
		slog.Warn("roles lookup failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "failed to load roles")
		return
	}
	api.WriteJSON(w, http.StatusOK, sheet)
}
