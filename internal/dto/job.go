package dto

import (
	"encoding/json"
	"time"
)

type GenerateContentRequest struct {
	Platform  string `json:"platform" validate:"required,max=32"`
	Topic     string `json:"topic" validate:"required,max=500"`
	Tone      string `json:"tone" validate:"required,max=64"`
	IncludeAB bool   `json:"includeAB"`
}

type ResearchTrendsRequest struct {
	Niche    string `json:"niche" validate:"max=200"`
	Audience string `json:"audience" validate:"max=200"`
	Market   string `json:"market" validate:"max=200"`
	Tone     string `json:"tone" validate:"max=64"`
}

type SubmitJobResponse struct {
	JobID  string `json:"jobId"`
	Status string `json:"status"`
}

type JobResponse struct {
	ID          string          `json:"id"`
	JobType     string          `json:"jobType"`
	Status      string          `json:"status"`
	CreditsUsed int             `json:"creditsUsed"`
	Result      json.RawMessage `json:"result"`
	Error       *string         `json:"error"`
	CreatedAt   time.Time       `json:"createdAt"`
	CompletedAt *time.Time      `json:"completedAt"`
}

// JobTaskPayload is the queue payload for job tasks. The job row holds
// everything else.
type JobTaskPayload struct {
	JobID string `json:"jobId"`
}

type ResearchJobResult struct {
	ReportID   string `json:"reportId"`
	TopicCount int    `json:"topicCount"`
}
