package monitoring

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/campuspulse/sentilex/internal/clients"
)

const HEALTHCHECK_TIMER = 15

// MonitorAnalyzerHealth polls the primary engine health endpoint and
// flips the shared flag so the arbitrator can skip a dead primary
// without paying the timeout on every call.
func MonitorAnalyzerHealth(ctx context.Context, client *clients.AnalyzerClient, healthy *atomic.Bool) {
	ticker := time.NewTicker(time.Second * HEALTHCHECK_TIMER)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			isHealthy := client.Healthy(ctx)
			healthy.Store(isHealthy)
			if !isHealthy {
				slog.Warn("[HealthCheck] Analyzer is unhealthy")
			}
		}
	}
}
