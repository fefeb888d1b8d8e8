// Package normalize maps loosely shaped model output onto the fixed
// response schemas. Every function here is pure and never fails.
package normalize

import "strings"

func Bootstrap(raw any) BootstrapData {
	src := object(raw)

	return BootstrapData{
		TrendingTopics:    mapItems(pickArray(src, TrendingTopicsAliases), trendTopic),
		SampleCalendar:    mapItems(pickArray(src, SampleCalendarAliases), calendarEvent),
		AnalyticsData:     mapItems(pickArray(src, AnalyticsDataAliases), analyticsPoint),
		WeeklyAnalytics:   mapItems(pickArray(src, WeeklyAnalyticsAliases), weeklyPoint),
		PlatformBreakdown: mapItems(pickArray(src, PlatformBreakdownAliases), slice),
		CompetitorData:    mapItems(pickArray(src, CompetitorDataAliases), competitor),
		ContentPillarData: mapItems(pickArray(src, ContentPillarDataAliases), slice),
		EngagementByTime:  mapItems(pickArray(src, EngagementByTimeAliases), engagementByTime),
		NicheOptions:      pickStrings(src, NicheOptionsAliases),
		AudienceOptions:   pickStrings(src, AudienceOptionsAliases),
		ToneOptions:       pickStrings(src, ToneOptionsAliases),
		MarketOptions:     pickStrings(src, MarketOptionsAliases),
	}
}

// Research normalizes a trend research response. A bare array is treated
// as the topic list.
func Research(raw any) ResearchData {
	items, ok := raw.([]any)
	if !ok {
		items = pickArray(object(raw), TrendingTopicsAliases)
	}
	return ResearchData{TrendingTopics: mapItems(items, trendTopic)}
}

func GenerateContent(raw any) GeneratedContent {
	src := object(raw)

	out := GeneratedContent{
		Fields:    []string{},
		Generated: map[string]string{},
	}

	if v, ok := pick(src, FieldsAliases); ok {
		out.Fields = stringsOrEmpty(v)
	}

	if v, ok := pick(src, GeneratedAliases); ok {
		if gen, isObj := v.(map[string]any); isObj {
			for key, val := range gen {
				out.Generated[key] = generatedValue(val)
			}
		}
	}

	if v, ok := pick(src, ABVariationAliases); ok {
		if s, isStr := v.(string); isStr {
			out.ABVariation = &s
		}
	}

	return out
}

func generatedValue(v any) string {
	if list, ok := stringList(v); ok {
		return strings.Join(list, " ")
	}
	return toString(v)
}

func pickArray(src map[string]any, aliases []string) []any {
	v, _ := pick(src, aliases)
	return asArray(v)
}

func pickStrings(src map[string]any, aliases []string) []string {
	v, _ := pick(src, aliases)
	return stringsOrEmpty(v)
}

// mapItems applies fn to every object element, dropping anything else.
func mapItems[T any](items []any, fn func(map[string]any, int) T) []T {
	out := make([]T, 0, len(items))
	for i, el := range items {
		item, ok := el.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, fn(item, i))
	}
	return out
}

func trendTopic(item map[string]any, i int) TrendTopic {
	platforms, ok := stringList(item["platforms"])
	if !ok {
		platforms = []string{"Instagram"}
	}

	volume := "10K"
	if v := item["volume"]; v != nil {
		volume = toString(v)
	}

	return TrendTopic{
		ID:        idOr(item["id"], i+1),
		Topic:     firstString(item, "Unknown Topic", "topic", "name", "title"),
		Score:     numberOr(item, 70, "score"),
		Longevity: oneOf(toString(item["longevity"]), longevities, "mid-term"),
		Platforms: platforms,
		Category:  firstString(item, "General", "category"),
		Growth:    numberOr(item, 0, "growth"),
		Volume:    volume,
		Keywords:  stringsOrEmpty(item["keywords"]),
	}
}

func calendarEvent(item map[string]any, i int) CalendarEvent {
	ev := CalendarEvent{
		ID:                   idOr(item["id"], i+1),
		Day:                  intOr(item["day"], i+1),
		Date:                 firstString(item, "", "date"),
		Platform:             firstString(item, "Instagram", "platform"),
		PostType:             firstString(item, "Post", "postType", "post_type"),
		Theme:                firstString(item, "Content", "theme", "title"),
		Hook:                 firstString(item, "", "hook"),
		Caption:              firstString(item, "", "caption"),
		Hashtags:             stringsOrEmpty(item["hashtags"]),
		CTA:                  firstString(item, "", "cta"),
		BestTime:             firstString(item, "12:00 PM", "bestTime", "best_time"),
		ContentPillar:        oneOf(firstString(item, "", "contentPillar", "content_pillar"), pillars, "authority"),
		EngagementPrediction: numberOr(item, 50, "engagementPrediction", "engagement_prediction"),
		Status:               oneOf(firstString(item, "", "status"), eventStatuses, "draft"),
	}

	if truthy(item["script"]) {
		ev.Script = toString(item["script"])
	}
	ev.Slides = optionalList(item["slides"])
	ev.ThreadParts = optionalList(item["threadParts"])

	return ev
}

func optionalList(v any) []string {
	if !truthy(v) {
		return nil
	}
	if list, ok := stringList(v); ok {
		return list
	}
	return []string{toString(v)}
}

func analyticsPoint(item map[string]any, _ int) AnalyticsPoint {
	return AnalyticsPoint{
		Day:        firstString(item, "", "day", "date", "label"),
		Engagement: numberOr(item, 0, "engagement"),
		Reach:      numberOr(item, 0, "reach"),
		Followers:  numberOr(item, 0, "followers"),
		Clicks:     numberOr(item, 0, "clicks"),
	}
}

func competitor(item map[string]any, _ int) Competitor {
	return Competitor{
		Name:       firstString(item, "Unknown", "name"),
		Followers:  numberOr(item, 0, "followers", "you"),
		Posts:      numberOr(item, 20, "posts", "postsPerMonth"),
		Engagement: numberOr(item, 3.0, "engagement", "engagementRate"),
		Growth:     numberOr(item, 0, "growth", "growthRate"),
	}
}

func engagementByTime(item map[string]any, _ int) EngagementByTime {
	days := make([]float64, len(weekdays))
	for i, d := range weekdays {
		days[i] = numberOr(item, 0, d.short, d.long, "engagement")
	}
	return EngagementByTime{
		Time: firstString(item, "12:00 PM", "time", "hour"),
		Mon:  days[0],
		Tue:  days[1],
		Wed:  days[2],
		Thu:  days[3],
		Fri:  days[4],
		Sat:  days[5],
		Sun:  days[6],
	}
}

func weeklyPoint(item map[string]any, _ int) WeeklyPoint {
	return WeeklyPoint{
		Week:       firstString(item, "W1", "week", "label"),
		Engagement: numberOr(item, 0, "engagement"),
		Followers:  numberOr(item, 0, "followers", "reach"),
	}
}

func slice(item map[string]any, _ int) Slice {
	return Slice{
		Name:  firstString(item, "", "name", "label"),
		Value: numberOr(item, 0, "value", "percentage"),
		Color: firstString(item, "#6B7280", "color"),
	}
}
