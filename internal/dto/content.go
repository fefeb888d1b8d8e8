package dto

import "time"

type ContentItemResponse struct {
	ID                   string     `json:"id"`
	Platform             string     `json:"platform"`
	PostType             string     `json:"postType"`
	Theme                string     `json:"theme"`
	Hook                 string     `json:"hook"`
	Caption              string     `json:"caption"`
	Hashtags             []string   `json:"hashtags"`
	CTA                  string     `json:"cta"`
	BestTime             string     `json:"bestTime"`
	ContentPillar        string     `json:"contentPillar"`
	EngagementPrediction int        `json:"engagementPrediction"`
	Status               string     `json:"status"`
	ScheduledDay         *int       `json:"scheduledDay"`
	ScheduledDate        *time.Time `json:"scheduledDate"`
	Script               string     `json:"script,omitempty"`
	Slides               []string   `json:"slides,omitempty"`
	ThreadParts          []string   `json:"threadParts,omitempty"`
	CreatedAt            time.Time  `json:"createdAt"`
}

type ContentListResponse struct {
	Items      []ContentItemResponse `json:"items"`
	NextCursor *string               `json:"nextCursor"`
}

type UpdateContentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=DRAFT SCHEDULED GENERATING PUBLISHED"`
}
