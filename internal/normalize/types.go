package normalize

type TrendTopic struct {
	ID        any      `json:"id"`
	Topic     string   `json:"topic"`
	Score     float64  `json:"score"`
	Longevity string   `json:"longevity"`
	Platforms []string `json:"platforms"`
	Category  string   `json:"category"`
	Growth    float64  `json:"growth"`
	Volume    string   `json:"volume"`
	Keywords  []string `json:"keywords"`
}

type CalendarEvent struct {
	ID                   any      `json:"id"`
	Day                  int      `json:"day"`
	Date                 string   `json:"date"`
	Platform             string   `json:"platform"`
	PostType             string   `json:"postType"`
	Theme                string   `json:"theme"`
	Hook                 string   `json:"hook"`
	Caption              string   `json:"caption"`
	Hashtags             []string `json:"hashtags"`
	CTA                  string   `json:"cta"`
	BestTime             string   `json:"bestTime"`
	ContentPillar        string   `json:"contentPillar"`
	EngagementPrediction float64  `json:"engagementPrediction"`
	Status               string   `json:"status"`
	Script               string   `json:"script,omitempty"`
	Slides               []string `json:"slides,omitempty"`
	ThreadParts          []string `json:"threadParts,omitempty"`
}

type AnalyticsPoint struct {
	Day        string  `json:"day"`
	Engagement float64 `json:"engagement"`
	Reach      float64 `json:"reach"`
	Followers  float64 `json:"followers"`
	Clicks     float64 `json:"clicks"`
}

type Competitor struct {
	Name       string  `json:"name"`
	Followers  float64 `json:"followers"`
	Posts      float64 `json:"posts"`
	Engagement float64 `json:"engagement"`
	Growth     float64 `json:"growth"`
}

type EngagementByTime struct {
	Time string  `json:"time"`
	Mon  float64 `json:"mon"`
	Tue  float64 `json:"tue"`
	Wed  float64 `json:"wed"`
	Thu  float64 `json:"thu"`
	Fri  float64 `json:"fri"`
	Sat  float64 `json:"sat"`
	Sun  float64 `json:"sun"`
}

type WeeklyPoint struct {
	Week       string  `json:"week"`
	Engagement float64 `json:"engagement"`
	Followers  float64 `json:"followers"`
}

// Slice is one segment of a breakdown chart.
type Slice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

type BootstrapData struct {
	TrendingTopics    []TrendTopic       `json:"trendingTopics"`
	SampleCalendar    []CalendarEvent    `json:"sampleCalendar"`
	AnalyticsData     []AnalyticsPoint   `json:"analyticsData"`
	WeeklyAnalytics   []WeeklyPoint      `json:"weeklyAnalytics"`
	PlatformBreakdown []Slice            `json:"platformBreakdown"`
	CompetitorData    []Competitor       `json:"competitorData"`
	ContentPillarData []Slice            `json:"contentPillarData"`
	EngagementByTime  []EngagementByTime `json:"engagementByTime"`
	NicheOptions      []string           `json:"nicheOptions"`
	AudienceOptions   []string           `json:"audienceOptions"`
	ToneOptions       []string           `json:"toneOptions"`
	MarketOptions     []string           `json:"marketOptions"`
}

type ResearchData struct {
	TrendingTopics []TrendTopic `json:"trendingTopics"`
}

type GeneratedContent struct {
	Fields      []string          `json:"fields"`
	Generated   map[string]string `json:"generated"`
	ABVariation *string           `json:"abVariation"`
}
