package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"trendscore-go/pkg/logger"
	"trendscore-go/pkg/scoring"
	"trendscore-go/pkg/storage"
)

// Analyzer drives keyword analysis for the HTTP layer.
type Analyzer interface {
	Analyze(ctx context.Context, raw []interface{}) (*scoring.Result, error)
	Cache() *storage.ScoreCache
}

// TrendHandler serves the trending-keyword analysis API.
type TrendHandler struct {
	analyzer Analyzer
	log      *logger.Logger
}

func NewTrendHandler(analyzer Analyzer) *TrendHandler {
	return &TrendHandler{
		analyzer: analyzer,
		log:      logger.GetLogger().WithField("component", "trend_handler"),
	}
}

type analyzeRequest struct {
	Keywords []interface{} `json:"keywords"`
}

// Analyze handles POST /api/trending-keywords.
func (h *TrendHandler) Analyze(c *fiber.Ctx) error {
	var req analyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "keywords array is required")
	}

	if len(req.Keywords) == 0 {
		return jsonError(c, fiber.StatusBadRequest, "keywords array is required")
	}

	result, err := h.analyzer.Analyze(c.UserContext(), req.Keywords)
	if err != nil {
		if errors.Is(err, scoring.ErrNoKeywords) {
			return jsonError(c, fiber.StatusBadRequest, "no valid keywords found")
		}
		h.log.WithError(err).Error("Keyword analysis request failed")
		return jsonError(c, fiber.StatusInternalServerError, "failed to analyze keywords")
	}

	h.log.WithFields(map[string]interface{}{
		"total":        result.TotalAnalyzed,
		"from_cache":   result.FromCache,
		"new_analyzed": result.NewAnalyzed,
	}).Info("Keyword analysis completed")

	return c.JSON(fiber.Map{
		"success":       true,
		"keywordScores": result.KeywordScores,
		"totalAnalyzed": result.TotalAnalyzed,
		"fromCache":     result.FromCache,
		"newAnalyzed":   result.NewAnalyzed,
		"method":        result.Method,
	})
}

// Stats handles GET /api/trending-keywords/stats.
func (h *TrendHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"cache":   h.analyzer.Cache().Stats(),
	})
}

// Health handles GET /healthz.
func (h *TrendHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func jsonError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}
