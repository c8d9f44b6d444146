package clients

import "time"

const (
	MAX_RETRIES     = 3
	INITIAL_BACKOFF = 500 * time.Millisecond
	USER_AGENT      = "sentilex-client/1.0 (+https://github.com/campuspulse/sentilex)"
)
