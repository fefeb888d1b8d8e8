// Package stats rolls persisted activity up into the windowed KPIs shown on
// the dashboard.
package stats

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/joshu-sajeev/trendplanner/internal/config"
	"github.com/joshu-sajeev/trendplanner/internal/logger"
	"github.com/joshu-sajeev/trendplanner/internal/models"
	"golang.org/x/sync/errgroup"
)

const defaultFanOut = 4

type Engine struct {
	store  Store
	log    *logger.Logger
	now    func() time.Time
	fanOut int
}

func NewEngine(store Store, log *logger.Logger) *Engine {
	return &Engine{store: store, log: log, now: time.Now, fanOut: defaultFanOut}
}

// WithClock replaces the time source.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// PercentChange is the one-decimal percentage delta from prev to curr. A
// zero prev yields 0.
func PercentChange(curr, prev float64) float64 {
	if prev == 0 {
		return 0
	}
	return math.Round(((curr-prev)/prev)*1000) / 10
}

// RefreshWorkspace recomputes the trailing window ending now and upserts it.
// Re-running with the same clock reading rewrites the same row.
func (e *Engine) RefreshWorkspace(ctx context.Context, workspaceID string) (*models.DashboardStats, error) {
	now := e.now().Truncate(time.Second)
	periodStart := now.AddDate(0, 0, -config.StatsWindowDays)
	prevStart := periodStart.AddDate(0, 0, -config.StatsWindowDays)

	topics, err := e.store.LatestTopicCount(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	content, err := e.store.CountContentCreated(ctx, workspaceID, periodStart, now)
	if err != nil {
		return nil, err
	}
	prevContent, err := e.store.CountContentCreated(ctx, workspaceID, prevStart, periodStart)
	if err != nil {
		return nil, err
	}

	cur, err := e.store.AnalyticsWindow(ctx, workspaceID, periodStart, now)
	if err != nil {
		return nil, err
	}
	prev, err := e.store.AnalyticsWindow(ctx, workspaceID, prevStart, periodStart)
	if err != nil {
		return nil, err
	}

	prevReach := float64(prev.Reach)
	if prevReach == 0 {
		prevReach = 1
	}

	engagement := 0.0
	if cur.Days > 0 {
		engagement = cur.AvgEngagement
	}
	prevEngagement := 1.0
	if prev.Days > 0 {
		prevEngagement = prev.AvgEngagement
	}

	row := &models.DashboardStats{
		WorkspaceID:            workspaceID,
		PeriodStart:            periodStart,
		PeriodEnd:              now,
		TrendingTopicsCount:    topics,
		ContentGeneratedCount:  int(content),
		TotalReach:             int(cur.Reach),
		EngagementRate:         engagement,
		TrendingTopicsChange:   0,
		ContentGeneratedChange: PercentChange(float64(content), float64(prevContent)),
		TotalReachChange:       PercentChange(float64(cur.Reach), prevReach),
		EngagementRateChange:   PercentChange(engagement, prevEngagement),
	}

	saved, err := e.store.UpsertStats(ctx, row)
	if err != nil {
		return nil, err
	}

	e.log.Info("Stats refreshed",
		"workspace_id", workspaceID,
		"content", content,
		"reach", cur.Reach,
		"topics", topics,
	)
	return saved, nil
}

// RefreshAll refreshes every workspace. One failing workspace does not stop
// the others; all failures are returned joined.
func (e *Engine) RefreshAll(ctx context.Context) error {
	ids, err := e.store.ListWorkspaceIDs(ctx)
	if err != nil {
		return err
	}

	var (
		mu   sync.Mutex
		errs []error
		g    errgroup.Group
	)
	g.SetLimit(e.fanOut)

	for _, id := range ids {
		g.Go(func() error {
			if _, err := e.RefreshWorkspace(ctx, id); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("workspace %s: %w", id, err))
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	e.log.Info("Stats rollup finished", "workspaces", len(ids), "failed", len(errs))
	return errors.Join(errs...)
}
