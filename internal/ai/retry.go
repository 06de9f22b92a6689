package ai

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// adaptiveLimiter paces calls to the inference endpoint. The allowed rate
// creeps up while requests succeed and halves whenever the endpoint pushes
// back, so a throttled router recovers without hammering.
type adaptiveLimiter struct {
	mu       sync.Mutex
	limiter  *rate.Limiter
	minLimit rate.Limit
	maxLimit rate.Limit
	stepUp   rate.Limit
	stepDown float64
}

func newAdaptiveLimiter() *adaptiveLimiter {
	return &adaptiveLimiter{
		limiter:  rate.NewLimiter(5, 3),
		minLimit: 1,
		maxLimit: 10,
		stepUp:   1,
		stepDown: 0.5,
	}
}

func (a *adaptiveLimiter) wait(ctx context.Context) error {
	return a.limiter.Wait(ctx)
}

func (a *adaptiveLimiter) success() {
	a.mu.Lock()
	defer a.mu.Unlock()
	next := a.limiter.Limit() + a.stepUp
	if next > a.maxLimit {
		next = a.maxLimit
	}
	a.limiter.SetLimit(next)
}

func (a *adaptiveLimiter) failure() {
	a.mu.Lock()
	defer a.mu.Unlock()
	next := rate.Limit(float64(a.limiter.Limit()) * a.stepDown)
	if next < a.minLimit {
		next = a.minLimit
	}
	a.limiter.SetLimit(next)
}

// retryableStatus reports whether an HTTP status is worth another attempt.
func retryableStatus(status int) bool {
	return status == 429 || status >= 500
}
