package scoring

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"trendscore-go/pkg/keywords"
	"trendscore-go/pkg/logger"
	"trendscore-go/pkg/metrics"
	"trendscore-go/pkg/storage"
)

// ErrNoKeywords is returned when normalization leaves nothing to analyze.
var ErrNoKeywords = errors.New("no valid keywords found")

// Defaults for the orchestrator and cache. The batch delay throttles
// pressure on the suggestion endpoint; it is a courtesy value, not a
// load-bearing invariant.
const (
	DefaultCacheTTL   = 6 * time.Hour
	DefaultCacheSize  = 1000
	DefaultBatchSize  = 5
	DefaultBatchDelay = 100 * time.Millisecond
)

// resultMethod tags a full analysis response.
const resultMethod = "optimized-with-cache"

// pendingScore is an in-flight computation handle. Waiters block on done;
// score and err are valid only after done is closed.
type pendingScore struct {
	done  chan struct{}
	score *KeywordScore
	err   error
}

// Service owns the score cache and the in-flight pending map, and drives
// keyword analysis in rate-limited batches. One instance per process.
type Service struct {
	scorer     *Scorer
	cache      *storage.ScoreCache
	batchSize  int
	batchDelay time.Duration

	mu      sync.Mutex
	pending map[string]*pendingScore

	log *logger.Logger
}

// ServiceConfig tunes the orchestrator. Zero values fall back to defaults.
type ServiceConfig struct {
	CacheTTL   time.Duration
	CacheSize  int
	BatchSize  int
	BatchDelay time.Duration
}

// NewService creates a scoring service around the given scorer.
func NewService(scorer *Scorer, cfg ServiceConfig) *Service {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.BatchDelay < 0 {
		cfg.BatchDelay = DefaultBatchDelay
	}

	return &Service{
		scorer:     scorer,
		cache:      storage.NewScoreCache(cfg.CacheSize, cfg.CacheTTL),
		batchSize:  cfg.BatchSize,
		batchDelay: cfg.BatchDelay,
		pending:    make(map[string]*pendingScore),
		log:        logger.GetLogger().WithField("component", "scoring_service"),
	}
}

// Cache exposes the underlying score cache for stats reporting and tests.
func (s *Service) Cache() *storage.ScoreCache {
	return s.cache
}

// Analyze normalizes the raw keyword list, serves what it can from the
// cache and computes the rest in batches. The response always contains a
// score for every surviving keyword; failed computations receive fallback
// scores instead of surfacing an error.
func (s *Service) Analyze(ctx context.Context, raw []interface{}) (*Result, error) {
	start := time.Now()
	defer func() {
		metrics.AnalyzeDuration.Observe(time.Since(start).Seconds())
	}()

	parsed := keywords.ParseKeywords(raw)
	if len(parsed) == 0 {
		return nil, ErrNoKeywords
	}

	cached, fresh := s.partition(parsed)

	s.log.WithFields(map[string]interface{}{
		"total":      len(parsed),
		"from_cache": len(cached),
		"to_analyze": len(fresh),
	}).Debug("Starting keyword analysis")

	newScores := s.analyzeBatches(ctx, fresh)

	scores := make([]KeywordScore, 0, len(cached)+len(newScores))
	scores = append(scores, cached...)
	scores = append(scores, newScores...)

	return &Result{
		KeywordScores: scores,
		TotalAnalyzed: len(scores),
		FromCache:     len(cached),
		NewAnalyzed:   len(newScores),
		Method:        resultMethod,
	}, nil
}

// partition splits keywords into cache hits and keywords needing analysis.
// Hits are returned as copies with the cached flag set.
func (s *Service) partition(parsed []string) (cached []KeywordScore, fresh []string) {
	for _, keyword := range parsed {
		value, ok := s.cache.Get(keyword)
		if !ok {
			metrics.CacheMisses.Inc()
			fresh = append(fresh, keyword)
			continue
		}

		score := *value.(*KeywordScore)
		score.Cached = true
		cached = append(cached, score)
		metrics.CacheHits.Inc()
	}
	return cached, fresh
}

// analyzeBatches processes keywords in fixed-size batches, concurrently
// within a batch, pausing between batches to throttle the suggestion
// endpoint. Within a batch, result order follows the batch slice.
func (s *Service) analyzeBatches(ctx context.Context, fresh []string) []KeywordScore {
	results := make([]KeywordScore, 0, len(fresh))

	for i := 0; i < len(fresh); i += s.batchSize {
		end := i + s.batchSize
		if end > len(fresh) {
			end = len(fresh)
		}
		batch := fresh[i:end]

		batchResults := make([]*KeywordScore, len(batch))
		var wg sync.WaitGroup
		for j, keyword := range batch {
			wg.Add(1)
			go func(j int, keyword string) {
				defer wg.Done()
				batchResults[j] = s.analyzeWithFallback(ctx, keyword)
			}(j, keyword)
		}
		wg.Wait()

		for _, score := range batchResults {
			results = append(results, *score)
		}

		if end < len(fresh) && s.batchDelay > 0 {
			time.Sleep(s.batchDelay)
		}
	}

	return results
}

// analyzeWithFallback runs one keyword through the deduplicator and
// substitutes a fallback score when the computation fails for any reason.
func (s *Service) analyzeWithFallback(ctx context.Context, keyword string) *KeywordScore {
	score, err := s.analyzeOne(ctx, keyword)
	if err != nil {
		s.log.WithError(err).WithField("keyword", keyword).Warn("Keyword analysis failed, using fallback score")
		metrics.FallbackScores.Inc()
		return s.scorer.Fallback(keyword)
	}
	return score
}

// analyzeOne computes the score for a normalized keyword, coalescing
// concurrent requests so that at most one computation runs per keyword.
// The handle is registered before any work starts and deregistered
// unconditionally once the computation settles.
func (s *Service) analyzeOne(ctx context.Context, keyword string) (*KeywordScore, error) {
	s.mu.Lock()
	if p, exists := s.pending[keyword]; exists {
		s.mu.Unlock()
		<-p.done
		if p.err != nil {
			return nil, p.err
		}
		score := *p.score
		return &score, nil
	}

	p := &pendingScore{done: make(chan struct{})}
	s.pending[keyword] = p
	s.mu.Unlock()

	defer func() {
		close(p.done)
		s.mu.Lock()
		delete(s.pending, keyword)
		s.mu.Unlock()
	}()

	p.score, p.err = s.computeScore(ctx, keyword)
	if p.err != nil {
		return nil, p.err
	}

	s.cache.Set(keyword, p.score)
	score := *p.score
	return &score, nil
}

// computeScore invokes the scorer, converting panics from misbehaving
// providers into errors so a failed computation cannot poison the batch.
func (s *Service) computeScore(ctx context.Context, keyword string) (score *KeywordScore, err error) {
	defer func() {
		if r := recover(); r != nil {
			score = nil
			err = fmt.Errorf("keyword analysis panicked: %v", r)
		}
	}()
	return s.scorer.Score(ctx, keyword), nil
}
