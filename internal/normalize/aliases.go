package normalize

// Ordered alias tables. The first key present in the source object wins.
var (
	TrendingTopicsAliases    = []string{"trendingTopics", "trending_topics", "topics", "trendTopics"}
	SampleCalendarAliases    = []string{"sampleCalendar", "sample_calendar", "calendar", "calendarItems"}
	AnalyticsDataAliases     = []string{"analyticsData", "analytics_data", "analytics"}
	WeeklyAnalyticsAliases   = []string{"weeklyAnalytics", "weekly_analytics", "weeklyData"}
	PlatformBreakdownAliases = []string{"platformBreakdown", "platform_breakdown", "platformData"}
	CompetitorDataAliases    = []string{"competitorData", "competitor_data", "competitors"}
	ContentPillarDataAliases = []string{"contentPillarData", "content_pillar_data", "pillarData", "contentPillars"}
	EngagementByTimeAliases  = []string{"engagementByTime", "engagement_by_time", "timeEngagement", "engagementOverTime"}
	NicheOptionsAliases      = []string{"nicheOptions", "niche_options", "niches"}
	AudienceOptionsAliases   = []string{"audienceOptions", "audience_options", "audiences"}
	ToneOptionsAliases       = []string{"toneOptions", "tone_options", "tones"}
	MarketOptionsAliases     = []string{"marketOptions", "market_options", "markets"}

	FieldsAliases      = []string{"fields", "fieldNames", "contentFields"}
	GeneratedAliases   = []string{"generated", "content", "generatedContent"}
	ABVariationAliases = []string{"abVariation", "ab_variation", "abVariant", "ab_variant"}
)

var (
	longevities   = []string{"short-term", "mid-term", "evergreen"}
	pillars       = []string{"viral", "authority", "community", "conversion"}
	eventStatuses = []string{"draft", "scheduled", "published", "generating"}
)

var weekdays = []struct {
	short string
	long  string
}{
	{"mon", "monday"},
	{"tue", "tuesday"},
	{"wed", "wednesday"},
	{"thu", "thursday"},
	{"fri", "friday"},
	{"sat", "saturday"},
	{"sun", "sunday"},
}
