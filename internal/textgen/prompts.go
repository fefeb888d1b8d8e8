package textgen

import (
	"fmt"
	"strings"
)

const (
	BootstrapInstructions = "Return only JSON for social trend app datasets."
	BootstrapInput        = "Return JSON with keys: trendingTopics, sampleCalendar, analyticsData, weeklyAnalytics, platformBreakdown, competitorData, contentPillarData, engagementByTime, nicheOptions, audienceOptions, toneOptions, marketOptions. Use realistic values and include 30 sampleCalendar items."

	ResearchInstructions = "You are a trend research strategist. Return only JSON."
	CopyInstructions     = "You are an expert social copywriter. Return only JSON."

	ContentJobInstructions  = "You are an expert social media copywriter. Return ONLY valid JSON, no markdown."
	ResearchJobInstructions = "You are a trend research strategist. Return ONLY valid JSON."
)

type ResearchParams struct {
	Niche    string `json:"niche"`
	Audience string `json:"audience"`
	Market   string `json:"market"`
	Tone     string `json:"tone"`
}

// WithDefaults fills blank fields.
func (p ResearchParams) WithDefaults() ResearchParams {
	p.Niche = orDefault(p.Niche, "general")
	p.Audience = orDefault(p.Audience, "general")
	p.Market = orDefault(p.Market, "global")
	p.Tone = orDefault(p.Tone, "educational")
	return p
}

type ContentParams struct {
	Platform  string `json:"platform"`
	Topic     string `json:"topic"`
	Tone      string `json:"tone"`
	IncludeAB bool   `json:"includeAB"`
}

func ResearchInput(p ResearchParams) string {
	p = p.WithDefaults()
	return fmt.Sprintf(
		`Generate 12 trending topics for niche %s, audience %s, market %s, tone %s. Return as {"trendingTopics":[...]} with id/topic/score/longevity/platforms/category/growth/volume/keywords.`,
		p.Niche, p.Audience, p.Market, p.Tone,
	)
}

func CopyInput(p ContentParams) string {
	return fmt.Sprintf(
		`Platform: %s. Topic: %s. Tone: %s. Return JSON: {"fields":[...],"generated":{"field":"text"},"abVariation":string|null}`,
		p.Platform, p.Topic, p.Tone,
	)
}

func ContentJobInput(p ContentParams) string {
	ab, abValue := "no", "null"
	if p.IncludeAB {
		ab, abValue = "yes", `"alternative caption text here"`
	}

	var b strings.Builder
	b.WriteString("Generate social media content for:\n")
	fmt.Fprintf(&b, "- Platform: %s\n", p.Platform)
	fmt.Fprintf(&b, "- Topic: %s\n", p.Topic)
	fmt.Fprintf(&b, "- Tone: %s\n", p.Tone)
	fmt.Fprintf(&b, "- Include A/B variation: %s\n\n", ab)
	b.WriteString("Return JSON: {\n")
	b.WriteString(`  "fields": ["Hook", "Caption", "Hashtags", "CTA"],` + "\n")
	b.WriteString(`  "generated": { "Hook": "...", "Caption": "...", "Hashtags": "...", "CTA": "..." },` + "\n")
	fmt.Fprintf(&b, `  "abVariation": %s`+"\n}", abValue)
	return b.String()
}

func ResearchJobInput(p ResearchParams) string {
	p = p.WithDefaults()
	return fmt.Sprintf(
		"Generate 12 trending topics for niche: %s, audience: %s, market: %s, tone: %s.\n"+
			`Return: { "trendingTopics": [{ "topic": string, "score": number, "longevity": "short-term"|"mid-term"|"evergreen", "platforms": string[], "category": string, "growth": number, "volume": string, "keywords": string[] }] }`,
		p.Niche, p.Audience, p.Market, p.Tone,
	)
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
