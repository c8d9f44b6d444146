// Package server exposes the rule engine over HTTP. This is the primary
// analyzer service the worker's arbitrator calls into.
package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuspulse/sentilex/internal/engine"
	"github.com/campuspulse/sentilex/internal/insights"
	"github.com/campuspulse/sentilex/internal/lexicon"
	"github.com/campuspulse/sentilex/internal/models"
)

func SetupRouter(eng *engine.Engine, store *lexicon.Store) *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		api.POST("/analyze", func(c *gin.Context) {
			handleAnalyze(c, eng)
		})
		api.POST("/lexicon", func(c *gin.Context) {
			handleLexiconUpdate(c, store)
		})
	}

	return r
}

func handleAnalyze(c *gin.Context, eng *engine.Engine) {
	var req models.EngineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.EngineResponse{
			Success: false,
			Error:   fmt.Sprintf("invalid request: %v", err),
		})
		return
	}

	switch req.Action {
	case models.EngineActionAnalyzeSingle:
		result := eng.Analyze(req.Comment)
		c.JSON(http.StatusOK, models.EngineResponse{
			Success:    true,
			Sentiment:  result.Sentiment,
			Confidence: result.Confidence,
			Result:     &result,
		})

	case models.EngineActionGenerateReport:
		report := eng.GenerateReport(req.Comments)
		if insights.Enabled() {
			insights.AddInsight(c.Request.Context(), &report)
		}
		c.JSON(http.StatusOK, models.EngineResponse{
			Success: true,
			Summary: &report.Summary,
			Report:  &report,
		})

	default:
		c.JSON(http.StatusBadRequest, models.EngineResponse{
			Success: false,
			Error:   fmt.Sprintf("unknown action: %q", req.Action),
		})
	}
}

func handleLexiconUpdate(c *gin.Context, store *lexicon.Store) {
	var update models.LexiconUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request: %v", err)})
		return
	}

	loaded := store.Load(lexicon.ParseEntries(update.Entries))
	slog.Info("[Server] Applied lexicon update",
		slog.Int("received", len(update.Entries)),
		slog.Int("loaded", loaded))

	c.JSON(http.StatusOK, gin.H{"loaded": loaded})
}
