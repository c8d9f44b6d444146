package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspulse/sentilex/internal/engine"
	"github.com/campuspulse/sentilex/internal/lexicon"
	"github.com/campuspulse/sentilex/internal/models"
)

func newTestRouter(t *testing.T) (*gin.Engine, *lexicon.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := lexicon.NewStore()
	eng := engine.New(store, engine.DefaultParams())
	return SetupRouter(eng, store), store
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAnalyzeSingleAction(t *testing.T) {
	router, _ := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/analyze", models.EngineRequest{
		Action:  models.EngineActionAnalyzeSingle,
		Comment: "this is good",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.EngineResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, models.SentimentPositive, resp.Sentiment)
	require.NotNil(t, resp.Result)
	assert.Equal(t, 0.7, resp.Result.Confidence)
}

func TestGenerateReportAction(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	router, _ := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/analyze", models.EngineRequest{
		Action:   models.EngineActionGenerateReport,
		Comments: []string{"this is good", "this is not good", ""},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.EngineResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Report)
	assert.Equal(t, 2, resp.Report.Total)
	require.NotNil(t, resp.Summary)
	assert.Equal(t, 1, resp.Summary.Positive.Count)
	assert.Equal(t, 1, resp.Summary.Negative.Count)
}

func TestUnknownActionRejected(t *testing.T) {
	router, _ := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/analyze", models.EngineRequest{
		Action:  "translate",
		Comment: "kumusta",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.EngineResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "unknown action")
}

func TestMalformedBodyRejected(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLexiconUpdateEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := postJSON(t, router, "/api/v1/lexicon", models.LexiconUpdate{
		Entries: []models.LexiconEntryInput{
			{Word: "zetzet", Sentiment: "positive", Weight: 2, Language: "en"},
			{Word: "", Sentiment: "positive", Weight: 2, Language: "en"},
		},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"loaded": 1}`, w.Body.String())

	analyze := postJSON(t, router, "/api/v1/analyze", models.EngineRequest{
		Action:  models.EngineActionAnalyzeSingle,
		Comment: "zetzet",
	})

	var resp models.EngineResponse
	require.NoError(t, json.Unmarshal(analyze.Body.Bytes(), &resp))
	assert.Equal(t, models.SentimentPositive, resp.Sentiment)
}
