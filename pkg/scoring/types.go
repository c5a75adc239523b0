package scoring

import "time"

// Scoring method provenance tags.
const (
	MethodMultiTier = "multi-tier-optimized"
	MethodFallback  = "fallback"
)

// KeywordScore is the blended trend estimate for a single keyword.
type KeywordScore struct {
	Keyword          string    `json:"keyword"`
	TrendScore       int       `json:"trendScore"`
	SearchVolume     string    `json:"searchVolume"`
	Competition      string    `json:"competition"`
	Trend            string    `json:"trend"`
	Confidence       string    `json:"confidence"`
	SuggestionsCount int       `json:"suggestionsCount"`
	LastUpdated      time.Time `json:"lastUpdated"`
	Method           string    `json:"method"`
	Cached           bool      `json:"cached,omitempty"`
}

// Result is the outcome of a full analysis request: the cached segment
// followed by the newly analyzed segment.
type Result struct {
	KeywordScores []KeywordScore `json:"keywordScores"`
	TotalAnalyzed int            `json:"totalAnalyzed"`
	FromCache     int            `json:"fromCache"`
	NewAnalyzed   int            `json:"newAnalyzed"`
	Method        string         `json:"method"`
}
