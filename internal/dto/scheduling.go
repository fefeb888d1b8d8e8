package dto

import "time"

type SchedulePostRequest struct {
	ContentItemID string    `json:"contentItemId" validate:"required"`
	ScheduledAt   time.Time `json:"scheduledAt" validate:"required"`
	Timezone      string    `json:"timezone" validate:"omitempty,max=64"`
}

type SchedulePostResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type CancelPostResponse struct {
	Cancelled bool `json:"cancelled"`
}

type ContentSummary struct {
	ID            string `json:"id"`
	Platform      string `json:"platform"`
	Theme         string `json:"theme"`
	Hook          string `json:"hook"`
	ContentPillar string `json:"contentPillar"`
	Status        string `json:"status"`
}

type ScheduledPostResponse struct {
	ID            string          `json:"id"`
	ContentItemID string          `json:"contentItemId"`
	ScheduledAt   time.Time       `json:"scheduledAt"`
	Timezone      string          `json:"timezone"`
	Status        string          `json:"status"`
	Error         string          `json:"error,omitempty"`
	PublishedAt   *time.Time      `json:"publishedAt"`
	ContentItem   *ContentSummary `json:"contentItem,omitempty"`
}

// PublishTaskPayload pins a publish task to the schedule it was created for.
type PublishTaskPayload struct {
	PostID        string    `json:"postId"`
	ContentItemID string    `json:"contentItemId"`
	ScheduledAt   time.Time `json:"scheduledAt"`
}
