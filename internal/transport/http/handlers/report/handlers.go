package reporthandler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"pms/internal/domain/employee"
	"pms/internal/domain/goals"
	"pms/internal/domain/weekly"
	"pms/internal/report"
	"pms/internal/transport/http/api"
	"pms/internal/transport/http/middleware"
)

type Handler struct {
	Employees *employee.Service
	Weekly    *weekly.Service
	Goals     *goals.Service
	ReportDir string
}

func NewHandler(employees *employee.Service, weeklySvc *weekly.Service, goalsSvc *goals.Service, reportDir string) *Handler {
	return &Handler{Employees: employees, Weekly: weeklySvc, Goals: goalsSvc, ReportDir: reportDir}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RequireAuth).Get("/e/report/{empId}/{weekId}", h.handleWeeklyReport)
}

func (h *Handler) handleWeeklyReport(w http.ResponseWriter, r *http.Request) {
	empID, err := strconv.Atoi(chi.URLParam(r, "empId"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid empId")
		return
	}
	weekID, err := strconv.Atoi(chi.URLParam(r, "weekId"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid weekId")
		return
	}

	rep, err := h.assemble(r, empID, weekID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			api.Fail(w, http.StatusNotFound, "week not found")
			return
		}
		slog.Warn("report assembly failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "failed to build report")
		return
	}

	if err := os.MkdirAll(h.ReportDir, 0o755); err != nil {
		slog.Warn("report dir create failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "failed to build report")
		return
	}
	filePath := filepath.Join(h.ReportDir, fmt.Sprintf("weekly-%d-%d.pdf", empID, weekID))
	if err := report.Render(rep, filePath); err != nil {
		slog.Warn("report render failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "failed to render report")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(filePath)))
	http.ServeFile(w, r, filePath)
}

func (h *Handler) assemble(r *http.Request, empID, weekID int) (report.WeeklyReport, error) {
	ctx := r.Context()

	week, err := h.Weekly.FreshWeek(ctx, empID, weekID)
	if err != nil {
		return report.WeeklyReport{}, err
	}
	if row, err := h.Weekly.GetRow(ctx, weekly.RowKey{
		EmpID: empID, WeekNumber: week.WeekNumber, CoID: week.CoID, WeekID: weekID,
	}); err == nil {
		week = row
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return report.WeeklyReport{}, err
	}

	emp, err := h.Employees.Profile(ctx, week.EmpCode)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return report.WeeklyReport{}, err
	}

	page, err := h.Goals.WeeklyGoals(ctx, empID, []int{week.WeekNumber})
	if err != nil {
		return report.WeeklyReport{}, err
	}

	return report.WeeklyReport{Employee: emp, Week: week, Goals: page.Goals}, nil
}
