package config

type JobStatus string
type JobType string
type ContentStatus string
type PostStatus string

const (
	JobTypeContentGeneration JobType = "CONTENT_GENERATION"
	JobTypeTrendResearch     JobType = "TREND_RESEARCH"
)

const (
	JobStatusPending   JobStatus = "PENDING"
	JobStatusRunning   JobStatus = "RUNNING"
	JobStatusCompleted JobStatus = "COMPLETED"
	JobStatusFailed    JobStatus = "FAILED"
)

const (
	ContentStatusDraft      ContentStatus = "DRAFT"
	ContentStatusScheduled  ContentStatus = "SCHEDULED"
	ContentStatusGenerating ContentStatus = "GENERATING"
	ContentStatusPublished  ContentStatus = "PUBLISHED"
)

const (
	PostStatusPending    PostStatus = "PENDING"
	PostStatusProcessing PostStatus = "PROCESSING"
	PostStatusPublished  PostStatus = "PUBLISHED"
	PostStatusFailed     PostStatus = "FAILED"
)

// Task types routed through the queue.
const (
	TaskContentGenerate  = "content:generate"
	TaskTrendResearch    = "trends:research"
	TaskPostPublish      = "post:publish"
	TaskStatsRefresh     = "stats:refresh"
	TaskAnalyticsRefresh = "analytics:refresh"
)

const (
	DefaultTimezone = "America/New_York"
	StatsWindowDays = 7
)

var (
	AllowedContentStatuses = []ContentStatus{
		ContentStatusDraft, ContentStatusScheduled, ContentStatusGenerating, ContentStatusPublished,
	}
	ContentPillars = []string{"viral", "authority", "community", "conversion"}
	PillarColors   = map[string]string{
		"viral":      "#8B5CF6",
		"authority":  "#3B82F6",
		"community":  "#10B981",
		"conversion": "#F59E0B",
	}
	DefaultPillarColor = "#6B7280"
)

// Terminal reports whether no further transitions are allowed.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}
