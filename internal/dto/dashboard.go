package dto

import "time"

type DashboardStatsResponse struct {
	TrendingTopicsCount    int        `json:"trendingTopicsCount"`
	ContentGeneratedCount  int        `json:"contentGeneratedCount"`
	TotalReach             int        `json:"totalReach"`
	EngagementRate         float64    `json:"engagementRate"`
	TrendingTopicsChange   float64    `json:"trendingTopicsChange"`
	ContentGeneratedChange float64    `json:"contentGeneratedChange"`
	TotalReachChange       float64    `json:"totalReachChange"`
	EngagementRateChange   float64    `json:"engagementRateChange"`
	PeriodStart            *time.Time `json:"periodStart"`
	PeriodEnd              *time.Time `json:"periodEnd"`
	IsStale                bool       `json:"isStale"`
}

type TrendTopicResponse struct {
	ID        string   `json:"id"`
	Topic     string   `json:"topic"`
	Score     float64  `json:"score"`
	Longevity string   `json:"longevity"`
	Platforms []string `json:"platforms"`
	Category  string   `json:"category"`
	Growth    float64  `json:"growth"`
	Volume    string   `json:"volume"`
	Keywords  []string `json:"keywords"`
}

type EngagementPoint struct {
	Date       string `json:"date"`
	Engagement int    `json:"engagement"`
	Reach      int    `json:"reach"`
	Followers  int    `json:"followers"`
	Clicks     int    `json:"clicks"`
}

type PlatformShare struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

type PillarShare struct {
	Name       string  `json:"name"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

type WeeklyPoint struct {
	Week       string `json:"week"`
	Engagement int    `json:"engagement"`
	Followers  int    `json:"followers"`
}

type HeatmapRow struct {
	Time string `json:"time"`
	Mon  int    `json:"mon"`
	Tue  int    `json:"tue"`
	Wed  int    `json:"wed"`
	Thu  int    `json:"thu"`
	Fri  int    `json:"fri"`
	Sat  int    `json:"sat"`
	Sun  int    `json:"sun"`
}

type CompetitorResponse struct {
	Name           string  `json:"name"`
	Followers      int     `json:"followers"`
	PostsPerMonth  int     `json:"postsPerMonth"`
	EngagementRate float64 `json:"engagementRate"`
	GrowthRate     float64 `json:"growthRate"`
	IsYou          bool    `json:"isYou"`
}

type RefreshResponse struct {
	Queued bool `json:"queued"`
}

// StatsTaskPayload scopes a refresh to one workspace. Empty means all.
type StatsTaskPayload struct {
	WorkspaceID string `json:"workspaceId,omitempty"`
}
