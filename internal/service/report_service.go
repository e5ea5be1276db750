// backend-go/internal/service/report_service.go
package service

import (
	"context"
	"time"

	"github.com/andresuchdata/sellerstock/backend-go/internal/cache"
	"github.com/andresuchdata/sellerstock/backend-go/internal/config"
	"github.com/andresuchdata/sellerstock/backend-go/internal/domain"
	"github.com/andresuchdata/sellerstock/backend-go/internal/forecast"
	"github.com/andresuchdata/sellerstock/backend-go/internal/report"
	"github.com/andresuchdata/sellerstock/backend-go/internal/repository"
	"github.com/rs/zerolog/log"
)

// ReportService computes the monthly profit, inventory history and sales
// forecast reports. Results are cached per item; cache failures degrade to
// recomputation, never to request failure.
type ReportService struct {
	sales      repository.SaleRepository
	inventory  repository.InventoryRepository
	reports    cache.ReportCache
	forecaster forecast.Forecaster
	cfg        config.ForecastConfig
}

func NewReportService(
	sales repository.SaleRepository,
	inventory repository.InventoryRepository,
	reports cache.ReportCache,
	forecaster forecast.Forecaster,
	cfg config.ForecastConfig,
) *ReportService {
	return &ReportService{
		sales:      sales,
		inventory:  inventory,
		reports:    reports,
		forecaster: forecaster,
		cfg:        cfg,
	}
}

// MonthlyProfit returns the per-month profit and margin for one item, or for
// all items when itemID is zero.
func (s *ReportService) MonthlyProfit(ctx context.Context, itemID int64) ([]domain.MonthlyProfit, error) {
	if rows, found, err := s.reports.GetProfit(ctx, itemID); err != nil {
		log.Warn().Err(err).Msg("profit cache read failed")
	} else if found {
		return rows, nil
	}

	sales, err := s.sales.ListSales(ctx, itemID)
	if err != nil {
		return nil, err
	}

	rows := report.MonthlyProfitMargin(sales)
	if err := s.reports.SetProfit(ctx, itemID, rows); err != nil {
		log.Warn().Err(err).Msg("profit cache write failed")
	}
	return rows, nil
}

// InventoryHistory back-projects end-of-month stock levels from the current
// lot totals and the transaction log.
func (s *ReportService) InventoryHistory(ctx context.Context, itemID int64) ([]domain.MonthlyLevel, error) {
	if rows, found, err := s.reports.GetHistory(ctx, itemID); err != nil {
		log.Warn().Err(err).Msg("history cache read failed")
	} else if found {
		return rows, nil
	}

	lots, err := s.inventory.ListLots(ctx, itemID)
	if err != nil {
		return nil, err
	}
	txns, err := s.inventory.ListTransactions(ctx, itemID)
	if err != nil {
		return nil, err
	}

	rows := report.MonthlyInventoryLevels(lots, txns)
	if err := s.reports.SetHistory(ctx, itemID, rows); err != nil {
		log.Warn().Err(err).Msg("history cache write failed")
	}
	return rows, nil
}

// SalesForecast resamples the item's sales into a weekly series and projects
// it horizon weeks ahead, falling back to the configured default when horizon
// is zero. Returns ErrInsufficientData when the history is too short for the
// seasonal model.
func (s *ReportService) SalesForecast(ctx context.Context, itemID int64, horizon int) (*domain.ForecastReport, error) {
	if horizon <= 0 {
		horizon = s.cfg.HorizonWeeks
	}
	if horizon <= 0 {
		horizon = 52
	}

	if rep, found, err := s.reports.GetForecast(ctx, itemID, horizon); err != nil {
		log.Warn().Err(err).Msg("forecast cache read failed")
	} else if found {
		return rep, nil
	}

	sales, err := s.sales.ListSales(ctx, itemID)
	if err != nil {
		return nil, err
	}

	series := forecast.WeeklyQuantitySeries(sales)

	fitCtx := ctx
	if s.cfg.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		fitCtx, cancel = context.WithTimeout(ctx, time.Duration(s.cfg.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	projected, err := s.forecaster.Forecast(fitCtx, series, horizon)
	if err != nil {
		return nil, err
	}

	rep := &domain.ForecastReport{Observed: series, Forecast: projected}
	if err := s.reports.SetForecast(ctx, itemID, horizon, rep); err != nil {
		log.Warn().Err(err).Msg("forecast cache write failed")
	}
	return rep, nil
}
