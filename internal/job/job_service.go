package job

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/joshu-sajeev/trendplanner/common"
	"github.com/joshu-sajeev/trendplanner/internal/config"
	"github.com/joshu-sajeev/trendplanner/internal/dto"
	"github.com/joshu-sajeev/trendplanner/internal/logger"
	"github.com/joshu-sajeev/trendplanner/internal/models"
	"github.com/joshu-sajeev/trendplanner/internal/queue"
	"github.com/joshu-sajeev/trendplanner/internal/textgen"
	"gorm.io/datatypes"
)

const (
	statusQueued = "queued"

	enqueueTimeout = 5 * time.Second
	requeueBatch   = 100
)

// Costs is the credit price of each job type.
type Costs struct {
	ContentGeneration int
	TrendResearch     int
}

type JobService struct {
	repo  JobRepoInterface
	queue queue.Enqueuer
	costs Costs
	log   *logger.Logger
	now   func() time.Time
}

func NewJobService(repo JobRepoInterface, q queue.Enqueuer, costs Costs, log *logger.Logger) *JobService {
	return &JobService{repo: repo, queue: q, costs: costs, log: log, now: time.Now}
}

var _ JobServiceInterface = (*JobService)(nil)

// SubmitContentGeneration charges the caller and queues a content job.
func (s *JobService) SubmitContentGeneration(ctx context.Context, userID, workspaceID string, req *dto.GenerateContentRequest) (*dto.SubmitJobResponse, error) {
	params := textgen.ContentParams{
		Platform:  req.Platform,
		Topic:     req.Topic,
		Tone:      req.Tone,
		IncludeAB: req.IncludeAB,
	}
	return s.submit(ctx, userID, workspaceID, config.JobTypeContentGeneration, params, s.costs.ContentGeneration)
}

// SubmitTrendResearch charges the caller and queues a research job. Blank
// parameters take their defaults at submission.
func (s *JobService) SubmitTrendResearch(ctx context.Context, userID, workspaceID string, req *dto.ResearchTrendsRequest) (*dto.SubmitJobResponse, error) {
	params := textgen.ResearchParams{
		Niche:    req.Niche,
		Audience: req.Audience,
		Market:   req.Market,
		Tone:     req.Tone,
	}.WithDefaults()
	return s.submit(ctx, userID, workspaceID, config.JobTypeTrendResearch, params, s.costs.TrendResearch)
}

func (s *JobService) submit(ctx context.Context, userID, workspaceID string, jobType config.JobType, payload any, cost int) (*dto.SubmitJobResponse, error) {
	if err := common.CheckContext(ctx); err != nil {
		return nil, err
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return nil, common.Errf(http.StatusInternalServerError, "failed to encode job payload")
	}

	job := &models.Job{
		UserID:      userID,
		WorkspaceID: workspaceID,
		JobType:     jobType,
		Payload:     datatypes.JSON(b),
	}
	if err := s.repo.CreateCharged(ctx, job, cost); err != nil {
		return nil, common.FromRepoError(err, "user not found", "failed to create job")
	}

	s.dispatch(ctx, job)

	return &dto.SubmitJobResponse{JobID: job.ID, Status: statusQueued}, nil
}

// dispatch hands the job to the queue. The job row is already committed, so
// a failure here only delays execution until the janitor requeues it.
func (s *JobService) dispatch(ctx context.Context, job *models.Job) bool {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), enqueueTimeout)
	defer cancel()

	task, err := queue.NewTask(taskTypeFor(job.JobType), dto.JobTaskPayload{JobID: job.ID})
	if err != nil {
		s.log.Error("failed to build job task", "job_id", job.ID, "error", err)
		return false
	}

	handle, err := s.queue.Enqueue(ctx, task)
	if err != nil {
		s.log.Warn("enqueue failed, job left pending", "job_id", job.ID, "error", err)
		return false
	}

	if err := s.repo.SetExecutionHandle(ctx, job.ID, handle); err != nil {
		s.log.Warn("failed to record execution handle", "job_id", job.ID, "handle", handle, "error", err)
	}
	return true
}

func taskTypeFor(t config.JobType) string {
	if t == config.JobTypeTrendResearch {
		return config.TaskTrendResearch
	}
	return config.TaskContentGenerate
}

// GetJob returns the job if it belongs to userID.
func (s *JobService) GetJob(ctx context.Context, userID, id string) (*dto.JobResponse, error) {
	if err := common.CheckContext(ctx); err != nil {
		return nil, err
	}

	job, err := s.repo.GetForUser(ctx, id, userID)
	if err != nil {
		return nil, common.FromRepoError(err, "job not found", "failed to get job")
	}

	resp := &dto.JobResponse{
		ID:          job.ID,
		JobType:     string(job.JobType),
		Status:      string(job.Status),
		CreditsUsed: job.CreditsUsed,
		CreatedAt:   job.CreatedAt,
		CompletedAt: job.CompletedAt,
	}
	if len(job.Result) > 0 {
		resp.Result = json.RawMessage(job.Result)
	}
	if job.Error != "" {
		msg := job.Error
		resp.Error = &msg
	}
	return resp, nil
}

// RequeueStale re-enqueues PENDING jobs created more than olderThan ago.
// Duplicate deliveries are harmless since only one worker can claim a job.
func (s *JobService) RequeueStale(ctx context.Context, olderThan time.Duration) (int, error) {
	jobs, err := s.repo.ListStalePending(ctx, s.now().Add(-olderThan), requeueBatch)
	if err != nil {
		return 0, err
	}

	n := 0
	for i := range jobs {
		if s.dispatch(ctx, &jobs[i]) {
			n++
		}
	}
	return n, nil
}
