package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/joshu-sajeev/trendplanner/common"
	"github.com/joshu-sajeev/trendplanner/internal/config"
	"github.com/joshu-sajeev/trendplanner/internal/dto"
	"github.com/joshu-sajeev/trendplanner/internal/models"
	"github.com/joshu-sajeev/trendplanner/internal/normalize"
	"github.com/joshu-sajeev/trendplanner/internal/queue"
	"github.com/joshu-sajeev/trendplanner/internal/textgen"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const defaultPillar = "authority"

// HandleContentGeneration runs a CONTENT_GENERATION job to completion.
func (r *Runner) HandleContentGeneration(ctx context.Context, task queue.Task) error {
	job, err := r.claim(ctx, task)
	if err != nil || job == nil {
		return err
	}

	var params textgen.ContentParams
	if err := json.Unmarshal(job.Payload, &params); err != nil {
		return r.fail(ctx, job.ID, queue.Permanent(fmt.Errorf("decode job payload: %w", err)))
	}

	raw, err := r.generate(ctx, textgen.ContentJobInstructions, textgen.ContentJobInput(params))
	if err != nil {
		return r.fail(ctx, job.ID, err)
	}

	content := normalize.GenerateContent(raw)
	result, err := json.Marshal(content)
	if err != nil {
		return r.fail(ctx, job.ID, queue.Permanent(fmt.Errorf("encode result: %w", err)))
	}
	item := contentItem(job.WorkspaceID, params, content)

	err = r.retry(ctx, "persist", r.opts.StepRetries, func(ctx context.Context) error {
		return permanentIfStale(r.Jobs.CompleteContentJob(ctx, job.ID, datatypes.JSON(result), item))
	})
	if err != nil {
		return r.fail(ctx, job.ID, err)
	}

	r.log.Info("content job completed", "job_id", job.ID, "content_item_id", item.ID)
	return nil
}

// HandleTrendResearch runs a TREND_RESEARCH job to completion.
func (r *Runner) HandleTrendResearch(ctx context.Context, task queue.Task) error {
	job, err := r.claim(ctx, task)
	if err != nil || job == nil {
		return err
	}

	var params textgen.ResearchParams
	if err := json.Unmarshal(job.Payload, &params); err != nil {
		return r.fail(ctx, job.ID, queue.Permanent(fmt.Errorf("decode job payload: %w", err)))
	}
	params = params.WithDefaults()

	raw, err := r.generate(ctx, textgen.ResearchJobInstructions, textgen.ResearchJobInput(params))
	if err != nil {
		return r.fail(ctx, job.ID, err)
	}

	report := trendReport(job.WorkspaceID, params, normalize.Research(raw))
	result, err := json.Marshal(dto.ResearchJobResult{ReportID: report.ID, TopicCount: len(report.Topics)})
	if err != nil {
		return r.fail(ctx, job.ID, queue.Permanent(fmt.Errorf("encode result: %w", err)))
	}

	err = r.retry(ctx, "persist", r.opts.StepRetries, func(ctx context.Context) error {
		return permanentIfStale(r.Jobs.CompleteResearchJob(ctx, job.ID, datatypes.JSON(result), report))
	})
	if err != nil {
		return r.fail(ctx, job.ID, err)
	}

	r.log.Info("research job completed", "job_id", job.ID, "report_id", report.ID, "topics", len(report.Topics))
	return nil
}

// claim loads the job named by task and moves it to RUNNING. A nil job with
// a nil error means there is nothing to do.
func (r *Runner) claim(ctx context.Context, task queue.Task) (*models.Job, error) {
	var payload dto.JobTaskPayload
	if err := task.Decode(&payload); err != nil {
		return nil, queue.Permanent(err)
	}
	if payload.JobID == "" {
		return nil, queue.Permanent(errors.New("job task without job id"))
	}

	job, err := r.Jobs.Get(ctx, payload.JobID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.log.Warn("job not found, skipping", "job_id", payload.JobID)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load job %s: %w", payload.JobID, err)
	}
	if job.Status != config.JobStatusPending {
		r.log.Debug("job already claimed", "job_id", job.ID, "status", job.Status)
		return nil, nil
	}

	ok, err := r.Jobs.MarkRunning(ctx, job.ID)
	if err != nil {
		return nil, fmt.Errorf("mark job %s running: %w", job.ID, err)
	}
	if !ok {
		return nil, nil
	}
	return job, nil
}

// fail records err on the job and returns it as permanent, since the job is
// now terminal. A job interrupted by shutdown is released instead.
func (r *Runner) fail(ctx context.Context, jobID string, err error) error {
	dctx, cancel := detached(ctx)
	defer cancel()

	if errors.Is(ctx.Err(), context.Canceled) {
		r.log.Warn("job interrupted, releasing", "job_id", jobID, "error", err)
		if relErr := r.Jobs.ReleaseRunning(dctx, jobID); relErr != nil {
			r.log.Error("failed to release job", "job_id", jobID, "error", relErr)
		}
		return fmt.Errorf("job %s interrupted: %w", jobID, ctx.Err())
	}

	msg := failureMessage(err)
	r.log.Error("job failed", "job_id", jobID, "error", err)
	if markErr := r.Jobs.MarkFailed(dctx, jobID, msg); markErr != nil {
		r.log.Error("failed to record job failure", "job_id", jobID, "error", markErr)
	}
	return queue.Permanent(err)
}

func permanentIfStale(err error) error {
	if errors.Is(err, common.ErrStaleTransition) {
		return queue.Permanent(err)
	}
	return err
}

func contentItem(workspaceID string, p textgen.ContentParams, c normalize.GeneratedContent) *models.ContentItem {
	return &models.ContentItem{
		WorkspaceID:          workspaceID,
		Platform:             p.Platform,
		Theme:                p.Topic,
		Hook:                 generatedField(c.Generated, "Hook"),
		Caption:              generatedField(c.Generated, "Caption"),
		Hashtags:             datatypes.JSONSlice[string](strings.Fields(generatedField(c.Generated, "Hashtags"))),
		CTA:                  generatedField(c.Generated, "CTA"),
		ContentPillar:        defaultPillar,
		EngagementPrediction: 50,
		Status:               config.ContentStatusDraft,
	}
}

// generatedField looks name up exactly, then case-insensitively.
func generatedField(generated map[string]string, name string) string {
	if v, ok := generated[name]; ok {
		return strings.TrimSpace(v)
	}
	for k, v := range generated {
		if strings.EqualFold(k, name) {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func trendReport(workspaceID string, p textgen.ResearchParams, data normalize.ResearchData) *models.TrendReport {
	report := &models.TrendReport{
		ID:          uuid.NewString(),
		WorkspaceID: workspaceID,
		Niche:       p.Niche,
		Audience:    p.Audience,
		Market:      p.Market,
		Tone:        p.Tone,
		Topics:      make([]models.TrendTopic, 0, len(data.TrendingTopics)),
	}
	for _, t := range data.TrendingTopics {
		report.Topics = append(report.Topics, models.TrendTopic{
			ReportID:  report.ID,
			Topic:     t.Topic,
			Score:     t.Score,
			Longevity: t.Longevity,
			Platforms: datatypes.JSONSlice[string](t.Platforms),
			Category:  t.Category,
			Growth:    t.Growth,
			Volume:    t.Volume,
			Keywords:  datatypes.JSONSlice[string](t.Keywords),
		})
	}
	return report
}
