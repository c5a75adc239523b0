package scoring

import (
	"context"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"trendscore-go/pkg/suggest"
)

// Blend weights for the three sub-signals.
const (
	suggestionWeight = 0.4
	heuristicWeight  = 0.4
	timeWeight       = 0.2
)

// Final score bounds.
const (
	minTrendScore = 15
	maxTrendScore = 90
)

// Scorer computes a KeywordScore from three independent signals: external
// autocomplete suggestions, keyword-pattern heuristics and calendar
// seasonality.
type Scorer struct {
	provider suggest.Provider
	now      func() time.Time
}

// NewScorer creates a scorer backed by the given suggestion provider.
func NewScorer(provider suggest.Provider) *Scorer {
	return &Scorer{
		provider: provider,
		now:      time.Now,
	}
}

// SetClock overrides the scorer's time source. Intended for tests.
func (s *Scorer) SetClock(now func() time.Time) {
	s.now = now
}

// Score computes the blended trend score for one normalized keyword. The
// suggestion fetch degrades to an empty list internally; any other failure
// (such as a panicking provider) propagates to the caller, which owns
// fallback substitution.
func (s *Scorer) Score(ctx context.Context, keyword string) *KeywordScore {
	suggestions := s.provider.Suggestions(ctx, keyword)

	suggestionScore := calculateSuggestionScore(keyword, suggestions)
	heuristicScore := calculateHeuristicScore(keyword)
	timeScore := s.calculateTimeScore(keyword)

	final := int(math.Round(
		float64(suggestionScore)*suggestionWeight +
			float64(heuristicScore)*heuristicWeight +
			float64(timeScore)*timeWeight))

	return &KeywordScore{
		Keyword:          keyword,
		TrendScore:       clamp(final, minTrendScore, maxTrendScore),
		SearchVolume:     estimateVolume(len(suggestions)),
		Competition:      estimateCompetition(suggestions),
		Trend:            estimateTrend(suggestions),
		Confidence:       estimateConfidence(len(suggestions)),
		SuggestionsCount: len(suggestions),
		LastUpdated:      s.now(),
		Method:           MethodMultiTier,
	}
}

// Fallback produces a low-confidence placeholder score for a keyword whose
// analysis failed. The trend score is drawn from [35,64]; the range is the
// contract, not the distribution.
func (s *Scorer) Fallback(keyword string) *KeywordScore {
	return &KeywordScore{
		Keyword:          keyword,
		TrendScore:       35 + rand.Intn(30),
		SearchVolume:     "Unknown",
		Competition:      "Medium",
		Trend:            "Stable",
		Confidence:       "Low",
		SuggestionsCount: 0,
		LastUpdated:      s.now(),
		Method:           MethodFallback,
	}
}

// calculateSuggestionScore scores the external autocomplete signal,
// clamped to [10,85].
func calculateSuggestionScore(keyword string, suggestions []string) int {
	score := 30
	count := len(suggestions)

	switch {
	case count >= 8:
		score += 25
	case count >= 5:
		score += 18
	case count >= 3:
		score += 12
	case count >= 1:
		score += 6
	default:
		score -= 10
	}

	for _, suggestion := range suggestions {
		if containsAny(suggestion, qualityIndicators) {
			score += 4
		}
	}

	lowerKeyword := strings.ToLower(keyword)
	for _, suggestion := range suggestions {
		if strings.Contains(strings.ToLower(suggestion), lowerKeyword) {
			score += 8
			break
		}
	}

	return clamp(score, 10, 85)
}

// calculateHeuristicScore scores keyword-intrinsic patterns, clamped to [20,80].
func calculateHeuristicScore(keyword string) int {
	score := 50
	lower := strings.ToLower(keyword)

	for _, rule := range contentPatterns {
		if strings.Contains(lower, rule.pattern) {
			score += rule.bonus
			break
		}
	}

	if strings.Contains(lower, "2024") || strings.Contains(lower, "2025") {
		score += 15
	}

	for _, rule := range trendingTopics {
		if strings.Contains(lower, rule.pattern) {
			score += rule.bonus
			break
		}
	}

	length := len([]rune(keyword))
	if length > 30 {
		score -= 10
	}
	if length < 5 {
		score += 5
	}

	wordCount := len(strings.Fields(keyword))
	if wordCount >= 2 && wordCount <= 4 {
		score += 8
	}

	return clamp(score, 20, 80)
}

// calculateTimeScore scores calendar seasonality against the current month
// and year.
func (s *Scorer) calculateTimeScore(keyword string) int {
	now := s.now()
	score := 50
	lower := strings.ToLower(keyword)

	for _, seasonal := range seasonalKeywords[now.Month()] {
		if strings.Contains(lower, seasonal) {
			score += 15
			break
		}
	}

	year := now.Year()
	if strings.Contains(keyword, strconv.Itoa(year)) {
		score += 12
	}
	if strings.Contains(keyword, strconv.Itoa(year+1)) {
		score += 8
	}

	return score
}

func estimateVolume(suggestionCount int) string {
	switch {
	case suggestionCount >= 8:
		return "High (10K+)"
	case suggestionCount >= 5:
		return "Medium (1K+)"
	case suggestionCount >= 2:
		return "Low (100+)"
	default:
		return "Very Low (<100)"
	}
}

func estimateCompetition(suggestions []string) string {
	hasCompetitive := false
	for _, suggestion := range suggestions {
		if containsAny(suggestion, competitiveWords) {
			hasCompetitive = true
			break
		}
	}

	if hasCompetitive && len(suggestions) >= 6 {
		return "High"
	}
	if len(suggestions) >= 4 {
		return "Medium"
	}
	return "Low"
}

func estimateTrend(suggestions []string) string {
	for _, suggestion := range suggestions {
		if containsAny(suggestion, risingWords) {
			return "Rising"
		}
	}

	for _, suggestion := range suggestions {
		if containsAny(suggestion, decliningWords) {
			return "Declining"
		}
	}
	if len(suggestions) < 2 {
		return "Declining"
	}
	return "Stable"
}

func estimateConfidence(suggestionCount int) string {
	switch {
	case suggestionCount >= 6:
		return "High"
	case suggestionCount >= 3:
		return "Medium"
	case suggestionCount >= 1:
		return "Low"
	default:
		return "Very Low"
	}
}

func containsAny(s string, terms []string) bool {
	lower := strings.ToLower(s)
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
