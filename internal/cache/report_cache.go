package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/andresuchdata/sellerstock/backend-go/internal/config"
	"github.com/andresuchdata/sellerstock/backend-go/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	reportKeyPrefix     = "report"
	reportScanBatchSize = 100
)

// ReportCache memoizes the expensive report and forecast computations.
// Every write operation on the ledger or sales log invalidates the
// affected item's entries.
type ReportCache interface {
	GetProfit(ctx context.Context, itemID int64) ([]domain.MonthlyProfit, bool, error)
	SetProfit(ctx context.Context, itemID int64, rows []domain.MonthlyProfit) error
	GetHistory(ctx context.Context, itemID int64) ([]domain.MonthlyLevel, bool, error)
	SetHistory(ctx context.Context, itemID int64, rows []domain.MonthlyLevel) error
	GetForecast(ctx context.Context, itemID int64, horizon int) (*domain.ForecastReport, bool, error)
	SetForecast(ctx context.Context, itemID int64, horizon int, report *domain.ForecastReport) error

	// InvalidateItem drops the item's cached reports and the all-items
	// aggregates, which any single-item write also stales.
	InvalidateItem(ctx context.Context, itemID int64) error
	InvalidateAll(ctx context.Context) error
}

type redisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopReportCache struct{}

func NewReportCache(cfg config.CacheConfig) (ReportCache, error) {
	if !cfg.Enabled {
		return &noopReportCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisReportCache{
		client: client,
		ttl:    ttl,
	}, nil
}

func NewNoopReportCache() ReportCache {
	return &noopReportCache{}
}

func (c *redisReportCache) GetProfit(ctx context.Context, itemID int64) ([]domain.MonthlyProfit, bool, error) {
	var rows []domain.MonthlyProfit
	found, err := c.get(ctx, profitKey(itemID), &rows)
	return rows, found, err
}

func (c *redisReportCache) SetProfit(ctx context.Context, itemID int64, rows []domain.MonthlyProfit) error {
	return c.set(ctx, profitKey(itemID), rows)
}

func (c *redisReportCache) GetHistory(ctx context.Context, itemID int64) ([]domain.MonthlyLevel, bool, error) {
	var rows []domain.MonthlyLevel
	found, err := c.get(ctx, historyKey(itemID), &rows)
	return rows, found, err
}

func (c *redisReportCache) SetHistory(ctx context.Context, itemID int64, rows []domain.MonthlyLevel) error {
	return c.set(ctx, historyKey(itemID), rows)
}

func (c *redisReportCache) GetForecast(ctx context.Context, itemID int64, horizon int) (*domain.ForecastReport, bool, error) {
	var report domain.ForecastReport
	found, err := c.get(ctx, forecastKey(itemID, horizon), &report)
	if !found || err != nil {
		return nil, found, err
	}
	return &report, true, nil
}

func (c *redisReportCache) SetForecast(ctx context.Context, itemID int64, horizon int, report *domain.ForecastReport) error {
	return c.set(ctx, forecastKey(itemID, horizon), report)
}

func (c *redisReportCache) InvalidateItem(ctx context.Context, itemID int64) error {
	for _, prefix := range invalidationPrefixes(itemID) {
		if err := deleteKeysWithPrefix(ctx, c.client, prefix, reportScanBatchSize); err != nil {
			return err
		}
	}
	return nil
}

func (c *redisReportCache) InvalidateAll(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, reportKeyPrefix+":", reportScanBatchSize)
}

func (c *redisReportCache) get(ctx context.Context, key string, out interface{}) (bool, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get failed: %w", err)
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return false, fmt.Errorf("decode report cache: %w", err)
	}
	return true, nil
}

func (c *redisReportCache) set(ctx context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode report cache: %w", err)
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (n *noopReportCache) GetProfit(ctx context.Context, itemID int64) ([]domain.MonthlyProfit, bool, error) {
	return nil, false, nil
}

func (n *noopReportCache) SetProfit(ctx context.Context, itemID int64, rows []domain.MonthlyProfit) error {
	return nil
}

func (n *noopReportCache) GetHistory(ctx context.Context, itemID int64) ([]domain.MonthlyLevel, bool, error) {
	return nil, false, nil
}

func (n *noopReportCache) SetHistory(ctx context.Context, itemID int64, rows []domain.MonthlyLevel) error {
	return nil
}

func (n *noopReportCache) GetForecast(ctx context.Context, itemID int64, horizon int) (*domain.ForecastReport, bool, error) {
	return nil, false, nil
}

func (n *noopReportCache) SetForecast(ctx context.Context, itemID int64, horizon int, report *domain.ForecastReport) error {
	return nil
}

func (n *noopReportCache) InvalidateItem(ctx context.Context, itemID int64) error {
	return nil
}

func (n *noopReportCache) InvalidateAll(ctx context.Context) error {
	return nil
}

// invalidationPrefixes lists the key prefixes removed when an item changes:
// the item's own entries plus the all-items aggregates, which are keyed under
// item 0 and go stale on any write.
func invalidationPrefixes(itemID int64) []string {
	prefixes := []string{itemPrefix(itemID)}
	if itemID != 0 {
		prefixes = append(prefixes, itemPrefix(0))
	}
	return prefixes
}

func itemPrefix(itemID int64) string {
	return fmt.Sprintf("%s:item:%d:", reportKeyPrefix, itemID)
}

func profitKey(itemID int64) string {
	return fmt.Sprintf("%s:item:%d:profit", reportKeyPrefix, itemID)
}

func historyKey(itemID int64) string {
	return fmt.Sprintf("%s:item:%d:history", reportKeyPrefix, itemID)
}

func forecastKey(itemID int64, horizon int) string {
	return fmt.Sprintf("%s:item:%d:forecast:h%d", reportKeyPrefix, itemID, horizon)
}
