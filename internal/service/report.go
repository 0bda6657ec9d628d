package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/auth"
	"github.com/SergeyBogomolovv/shop-service/internal/entities"
)

type ReportRepo interface {
	SalesByDay(ctx context.Context, from, to time.Time) ([]entities.SalesByDay, error)
	SalesByCategory(ctx context.Context, from, to time.Time) ([]entities.SalesByCategory, error)
}

const maxReportRange = 366 * 24 * time.Hour

type reportService struct {
	logger *slog.Logger
	repo   ReportRepo
}

func NewReportService(logger *slog.Logger, repo ReportRepo) *reportService {
	return &reportService{
		logger: logger.With(slog.String("service", "report")),
		repo:   repo,
	}
}

func (s *reportService) SalesByDay(ctx context.Context, id entities.Identity, from, to time.Time) ([]entities.SalesByDay, error) {
	if err := authorizeReport(id, from, to); err != nil {
		return nil, err
	}
	return s.repo.SalesByDay(ctx, from, to)
}

func (s *reportService) SalesByCategory(ctx context.Context, id entities.Identity, from, to time.Time) ([]entities.SalesByCategory, error) {
	if err := authorizeReport(id, from, to); err != nil {
		return nil, err
	}
	return s.repo.SalesByCategory(ctx, from, to)
}

func authorizeReport(id entities.Identity, from, to time.Time) error {
	if err := auth.Authorize(id, "view reports", entities.RoleAdmin); err != nil {
		return err
	}
	if !from.Before(to) {
		return entities.InvalidInput("report range start must be before its end")
	}
	if to.Sub(from) > maxReportRange {
		return entities.InvalidInput("report range must not exceed one year")
	}
	return nil
}
