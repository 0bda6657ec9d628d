package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type ReportService interface {
	SalesByDay(ctx context.Context, id entities.Identity, from, to time.Time) ([]entities.SalesByDay, error)
	SalesByCategory(ctx context.Context, id entities.Identity, from, to time.Time) ([]entities.SalesByCategory, error)
}

type ReportHandler struct {
	logger *slog.Logger
	svc    ReportService
}

func NewReportHandler(logger *slog.Logger, svc ReportService) *ReportHandler {
	return &ReportHandler{
		logger: logger.With(slog.String("handler", "report")),
		svc:    svc,
	}
}

func (h *ReportHandler) Init(r chi.Router) {
	r.Get("/reports/sales/daily", h.SalesByDay)
	r.Get("/reports/sales/categories", h.SalesByCategory)
}

// SalesByDay
// @Summary      Daily sales
// @Tags         reports
// @Security     BearerAuth
// @Param        from  query     string  true  "First day, YYYY-MM-DD"
// @Param        to    query     string  true  "Last day, YYYY-MM-DD"
// @Success      200   {array}   SalesByDay
// @Failure      403   {object}  utils.ErrorResponse "Admins only"
// @Router       /reports/sales/daily [get]
func (h *ReportHandler) SalesByDay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	from, to, ok := reportRange(w, r)
	if !ok {
		return
	}
	rows, err := h.svc.SalesByDay(ctx, identity(r), from, to)
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to build daily sales report")
		return
	}
	utils.WriteJSON(w, mapSlice(rows, SalesByDayEntityToJSON), http.StatusOK)
}

// SalesByCategory
// @Summary      Sales by category
// @Tags         reports
// @Security     BearerAuth
// @Param        from  query     string  true  "First day, YYYY-MM-DD"
// @Param        to    query     string  true  "Last day, YYYY-MM-DD"
// @Success      200   {array}   SalesByCategory
// @Failure      403   {object}  utils.ErrorResponse "Admins only"
// @Router       /reports/sales/categories [get]
func (h *ReportHandler) SalesByCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	from, to, ok := reportRange(w, r)
	if !ok {
		return
	}
	rows, err := h.svc.SalesByCategory(ctx, identity(r), from, to)
	if err != nil {
		writeError(ctx, h.logger, w, err, "failed to build category sales report")
		return
	}
	utils.WriteJSON(w, mapSlice(rows, SalesByCategoryEntityToJSON), http.StatusOK)
}

// reportRange parses an inclusive day range into [from, to+1d).
func reportRange(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	q := r.URL.Query()
	from, err := time.Parse(time.DateOnly, q.Get("from"))
	if err != nil {
		utils.WriteError(w, "invalid from date", string(entities.CodeInvalidInput), http.StatusBadRequest)
		return time.Time{}, time.Time{}, false
	}
	to, err := time.Parse(time.DateOnly, q.Get("to"))
	if err != nil {
		utils.WriteError(w, "invalid to date", string(entities.CodeInvalidInput), http.StatusBadRequest)
		return time.Time{}, time.Time{}, false
	}
	return from, to.AddDate(0, 0, 1), true
}
