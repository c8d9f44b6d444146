package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/campuspulse/sentilex/internal/engine"
	"github.com/campuspulse/sentilex/internal/models"
)

const analyzeEndpoint = "/api/v1/analyze"

var (
	analyzerInstance *AnalyzerClient
	analyzerOnce     sync.Once
)

// AnalyzerClient talks to the standalone analyzer service (the primary
// engine). All exchanges are single request/response JSON envelopes.
type AnalyzerClient struct {
	Client  *http.Client
	BaseURL string
}

func GetAnalyzerClient() *AnalyzerClient {
	analyzerOnce.Do(func() {
		baseURL := os.Getenv("ANALYZER_URL")
		if baseURL == "" {
			baseURL = "http://localhost:8090"
		}

		slog.Info("[AnalyzerClient] Initializing client",
			slog.String("base_url", baseURL))
		analyzerInstance = &AnalyzerClient{
			Client:  &http.Client{Timeout: 10 * time.Second},
			BaseURL: baseURL,
		}
	})
	return analyzerInstance
}

// AnalyzeSingle asks the primary engine to score one comment.
func (c *AnalyzerClient) AnalyzeSingle(ctx context.Context, text string) (models.AnalysisResult, error) {
	req := models.EngineRequest{
		Action:  models.EngineActionAnalyzeSingle,
		Comment: text,
	}

	var resp models.EngineResponse
	if err := c.postJSON(ctx, analyzeEndpoint, req, &resp); err != nil {
		return models.AnalysisResult{}, err
	}
	if !resp.Success {
		return models.AnalysisResult{}, fmt.Errorf("[AnalyzerClient] engine error: %s", resp.Error)
	}
	if resp.Result == nil {
		return models.AnalysisResult{}, errors.New("[AnalyzerClient] engine returned success without a result")
	}

	result := *resp.Result
	result.Method = engine.MethodRemote
	return result, nil
}

// Healthy probes the service health endpoint.
func (c *AnalyzerClient) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/health", nil)
	if err != nil {
		return false
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

func (c *AnalyzerClient) postJSON(ctx context.Context, endpoint string, input interface{}, output interface{}) error {
	body, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to marshal input: %w", err)
	}

	resp, err := c.doWithRetry(ctx, endpoint, body)
	if err != nil {
		return fmt.Errorf("request failed after retries: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("analyzer service returned %d: %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, output); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// doWithRetry rebuilds the request each attempt so the body reader is fresh.
func (c *AnalyzerClient) doWithRetry(ctx context.Context, endpoint string, body []byte) (*http.Response, error) {
	var resp *http.Response
	var err error
	backoff := INITIAL_BACKOFF

	for attempt := 0; attempt < MAX_RETRIES; attempt++ {
		var req *http.Request
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", USER_AGENT)

		resp, err = c.Client.Do(req)
		if err == nil && resp.StatusCode < 500 {
			return resp, nil
		}

		if resp != nil {
			resp.Body.Close()
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		slog.Warn("[AnalyzerClient] Request failed, will retry",
			slog.Int("attempt", attempt+1),
			slog.String("error", errMsg(err, resp)))

		time.Sleep(backoff)
		backoff *= 2
	}

	if err != nil {
		return nil, err
	}
	return resp, nil
}

func errMsg(err error, resp *http.Response) string {
	if err != nil {
		return err.Error()
	}
	if resp != nil {
		return resp.Status
	}
	return "unknown error"
}
