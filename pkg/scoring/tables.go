package scoring

import "time"

// scoreRule is a substring pattern paired with its score bonus. Rule lists
// are iterated in declaration order and the first match wins, which keeps
// the heuristic reproducible.
type scoreRule struct {
	pattern string
	bonus   int
}

// contentPatterns rewards high-value content formats in the keyword itself.
var contentPatterns = []scoreRule{
	{"how to", 25},
	{"best", 20},
	{"top", 18},
	{"guide", 15},
	{"tips", 15},
	{"tutorial", 12},
	{"review", 10},
	{"vs", 8},
	{"comparison", 8},
	{"free", 12},
	{"online", 8},
	{"course", 10},
	{"tool", 8},
}

// trendingTopics rewards currently hot subject areas.
var trendingTopics = []scoreRule{
	{"ai", 25},
	{"artificial intelligence", 25},
	{"chatgpt", 20},
	{"automation", 18},
	{"remote work", 15},
	{"productivity", 12},
	{"sustainability", 12},
	{"mental health", 15},
	{"wellness", 12},
	{"fitness", 10},
	{"crypto", 12},
	{"blockchain", 8},
	{"startup", 10},
	{"saas", 12},
}

// qualityIndicators mark suggestions that point at content demand.
var qualityIndicators = []string{
	"how to", "best", "top", "guide", "tutorial", "tips",
	"2024", "2025", "new", "latest", "trending",
}

// competitiveWords in suggestions signal a crowded keyword.
var competitiveWords = []string{"best", "top", "review", "vs", "comparison", "guide"}

// risingWords and decliningWords drive the trend estimate.
var risingWords = []string{"2024", "2025", "new", "latest", "trending", "now", "current"}
var decliningWords = []string{"old", "outdated", "deprecated", "legacy"}

// seasonalKeywords maps each calendar month to terms that get a seasonal boost.
var seasonalKeywords = map[time.Month][]string{
	time.January:   {"new year", "resolution", "diet", "fitness", "goals"},
	time.February:  {"valentine", "love", "relationship"},
	time.March:     {"spring", "cleaning", "garden", "renewal"},
	time.April:     {"easter", "spring break", "taxes", "planning"},
	time.May:       {"mother", "graduation", "outdoor", "garden"},
	time.June:      {"summer", "vacation", "travel", "outdoor"},
	time.July:      {"independence", "july", "summer", "vacation"},
	time.August:    {"back to school", "college", "education"},
	time.September: {"fall", "autumn", "school", "productivity"},
	time.October:   {"halloween", "october", "scary", "costume"},
	time.November:  {"thanksgiving", "gratitude", "black friday", "holiday"},
	time.December:  {"christmas", "holiday", "gift", "year end", "reflection"},
}
