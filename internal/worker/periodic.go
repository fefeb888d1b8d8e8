package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/joshu-sajeev/trendplanner/internal/config"
	"github.com/joshu-sajeev/trendplanner/internal/dto"
	"github.com/joshu-sajeev/trendplanner/internal/queue"
)

// HandleStatsRefresh recomputes dashboard stats for the workspace in the
// payload, or for every workspace when none is given.
func (r *Runner) HandleStatsRefresh(ctx context.Context, task queue.Task) error {
	var payload dto.StatsTaskPayload
	if err := task.Decode(&payload); err != nil {
		return queue.Permanent(err)
	}

	if payload.WorkspaceID == "" {
		return r.Stats.RefreshAll(ctx)
	}
	if _, err := r.Stats.RefreshWorkspace(ctx, payload.WorkspaceID); err != nil {
		return fmt.Errorf("refresh workspace %s: %w", payload.WorkspaceID, err)
	}
	return nil
}

// HandleAnalyticsRefresh makes sure every workspace has an analytics row
// for yesterday. Existing rows are left untouched.
func (r *Runner) HandleAnalyticsRefresh(ctx context.Context, _ queue.Task) error {
	ids, err := r.Analytics.ListWorkspaceIDs(ctx)
	if err != nil {
		return fmt.Errorf("list workspaces: %w", err)
	}

	now := r.now().UTC()
	yesterday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)

	var errs []error
	inserted := 0
	for _, id := range ids {
		created, err := r.Analytics.EnsureAnalyticsDay(ctx, id, yesterday)
		if err != nil {
			errs = append(errs, fmt.Errorf("workspace %s: %w", id, err))
			continue
		}
		if created {
			inserted++
		}
	}

	r.log.Info("analytics refresh done", "date", yesterday.Format(time.DateOnly), "workspaces", len(ids), "inserted", inserted)
	return errors.Join(errs...)
}

// RegisterPeriodic installs the stats and analytics refresh crons.
func RegisterPeriodic(s queue.PeriodicScheduler, statsSpec, analyticsSpec string) error {
	statsTask, err := queue.NewTask(config.TaskStatsRefresh, dto.StatsTaskPayload{})
	if err != nil {
		return err
	}
	if err := s.RegisterCron(statsSpec, statsTask); err != nil {
		return fmt.Errorf("register stats cron: %w", err)
	}

	analyticsTask, err := queue.NewTask(config.TaskAnalyticsRefresh, struct{}{})
	if err != nil {
		return err
	}
	if err := s.RegisterCron(analyticsSpec, analyticsTask); err != nil {
		return fmt.Errorf("register analytics cron: %w", err)
	}
	return nil
}
