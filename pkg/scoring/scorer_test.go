package scoring

import (
	"context"
	"testing"
	"time"
)

type stubProvider struct {
	suggestions []string
}

func (s *stubProvider) Suggestions(ctx context.Context, keyword string) []string {
	return s.suggestions
}

func fixedClock(year int, month time.Month) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, 15, 10, 0, 0, 0, time.UTC)
	}
}

func TestCalculateSuggestionScore_CapsAtHighDemand(t *testing.T) {
	suggestions := []string{
		"best fitness guide 2025",
		"best fitness tips for beginners",
		"best fitness apps",
		"top fitness trends",
		"how to start fitness",
		"fitness tutorial",
		"latest fitness gear",
		"best fitness programs",
		"new fitness challenges",
	}

	score := calculateSuggestionScore("best fitness tips 2025", suggestions)
	if score != 85 {
		t.Errorf("Expected suggestion score capped at 85, got %d", score)
	}
}

func TestCalculateSuggestionScore_NoSuggestions(t *testing.T) {
	score := calculateSuggestionScore("xyzzyqqqq", nil)
	if score != 20 {
		t.Errorf("Expected score 20 for zero suggestions, got %d", score)
	}
}

func TestCalculateHeuristicScore(t *testing.T) {
	tests := []struct {
		keyword string
		want    int
	}{
		// 50 base + 8 "online" (first content match) + 8 word-count sweet spot
		{"online course", 66},
		// 50 base + 20 "best" only (first match wins) + 8 word count
		{"best top guide", 78},
		// 50 base + 25 "ai" trending + 5 short keyword, clamped to 80
		{"ai", 80},
		// 50 base - 10 over-length penalty
		{"somethingterriblyunremarkableandoverlylongkeyword", 40},
	}

	for _, tt := range tests {
		if got := calculateHeuristicScore(tt.keyword); got != tt.want {
			t.Errorf("calculateHeuristicScore(%q): expected %d, got %d", tt.keyword, tt.want, got)
		}
	}
}

func TestCalculateTimeScore(t *testing.T) {
	scorer := NewScorer(&stubProvider{})
	scorer.SetClock(fixedClock(2026, time.January))

	tests := []struct {
		keyword string
		want    int
	}{
		{"fitness goals", 65},   // January seasonal term
		{"seo trends 2026", 62}, // current year
		{"plans for 2027", 58},  // next year
		{"gardening", 50},       // nothing seasonal in January
	}

	for _, tt := range tests {
		if got := scorer.calculateTimeScore(tt.keyword); got != tt.want {
			t.Errorf("calculateTimeScore(%q): expected %d, got %d", tt.keyword, tt.want, got)
		}
	}
}

func TestScore_NonsenseKeyword(t *testing.T) {
	scorer := NewScorer(&stubProvider{})
	scorer.SetClock(fixedClock(2026, time.June))

	score := scorer.Score(context.Background(), "xyzzyqqqq")

	// suggestion 20, heuristic 50, time 50 -> round(0.4*20+0.4*50+0.2*50)
	if score.TrendScore != 38 {
		t.Errorf("Expected trend score 38, got %d", score.TrendScore)
	}
	if score.Confidence != "Very Low" {
		t.Errorf("Expected confidence 'Very Low', got %q", score.Confidence)
	}
	if score.Competition != "Low" {
		t.Errorf("Expected competition 'Low', got %q", score.Competition)
	}
	if score.Trend != "Declining" {
		t.Errorf("Expected trend 'Declining', got %q", score.Trend)
	}
	if score.SearchVolume != "Very Low (<100)" {
		t.Errorf("Expected volume 'Very Low (<100)', got %q", score.SearchVolume)
	}
	if score.Method != MethodMultiTier {
		t.Errorf("Expected method %q, got %q", MethodMultiTier, score.Method)
	}
}

func TestScore_HighDemandKeyword(t *testing.T) {
	scorer := NewScorer(&stubProvider{suggestions: []string{
		"best fitness guide 2025",
		"best fitness tips",
		"top fitness apps",
		"fitness tutorial",
		"new fitness trends",
		"latest fitness gear",
		"fitness how to",
		"best fitness programs",
		"trending fitness challenges",
	}})
	scorer.SetClock(fixedClock(2026, time.June))

	score := scorer.Score(context.Background(), "best fitness tips 2025")

	if score.SearchVolume != "High (10K+)" {
		t.Errorf("Expected volume 'High (10K+)', got %q", score.SearchVolume)
	}
	if score.Trend != "Rising" {
		t.Errorf("Expected trend 'Rising', got %q", score.Trend)
	}
	if score.Confidence != "High" {
		t.Errorf("Expected confidence 'High', got %q", score.Confidence)
	}
	if score.Competition != "High" {
		t.Errorf("Expected competition 'High', got %q", score.Competition)
	}
	if score.SuggestionsCount != 9 {
		t.Errorf("Expected 9 suggestions recorded, got %d", score.SuggestionsCount)
	}
}

func TestScore_BoundsHoldForArbitraryResponses(t *testing.T) {
	responses := [][]string{
		nil,
		{},
		{"one"},
		{"best", "top", "guide", "review", "vs", "comparison", "how to", "tips", "tutorial", "latest", "new", "trending"},
	}
	keywords := []string{"a", "best ai guide 2025", "xyzzyqqqq", "how to start a fitness blog for beginners in 2025"}

	for _, suggestions := range responses {
		scorer := NewScorer(&stubProvider{suggestions: suggestions})
		for _, keyword := range keywords {
			score := scorer.Score(context.Background(), keyword)
			if score.TrendScore < 15 || score.TrendScore > 90 {
				t.Errorf("Trend score out of bounds for %q with %d suggestions: %d",
					keyword, len(suggestions), score.TrendScore)
			}
		}
	}
}

func TestFallback_RangeAndShape(t *testing.T) {
	scorer := NewScorer(&stubProvider{})

	for i := 0; i < 100; i++ {
		score := scorer.Fallback("anything")
		if score.TrendScore < 35 || score.TrendScore > 64 {
			t.Fatalf("Fallback trend score out of range: %d", score.TrendScore)
		}
		if score.Method != MethodFallback {
			t.Fatalf("Expected method %q, got %q", MethodFallback, score.Method)
		}
		if score.Confidence != "Low" {
			t.Fatalf("Expected confidence 'Low', got %q", score.Confidence)
		}
		if score.SearchVolume != "Unknown" {
			t.Fatalf("Expected volume 'Unknown', got %q", score.SearchVolume)
		}
		if score.SuggestionsCount != 0 {
			t.Fatalf("Expected zero suggestions, got %d", score.SuggestionsCount)
		}
	}
}
