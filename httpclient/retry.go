package httpclient

import (
	"math/rand/v2"
	"time"

	"github.com/cenkalti/backoff/v5"
)

const (
	// DefaultMaxWait caps every computed retry wait unless a caller supplies its own ceiling
	DefaultMaxWait = 60 * time.Second

	// maxRetryExponent keeps 2^n seconds within time.Duration range
	maxRetryExponent = 30
)

// CalculateWaitForRetry returns how long a caller should wait before retry
// attempt retryAttempt (1-based). Attempt n waits a whole number of seconds
// drawn uniformly from [2^(n-1), 2^(n-1)+2^n), capped at maxWait. Attempts
// below 1 are treated as 1; maxWait <= 0 selects DefaultMaxWait.
//
// It only computes the duration; sleeping and retrying belong to the caller.
func CalculateWaitForRetry(retryAttempt int, maxWait time.Duration) time.Duration {
	return waitForRetry(retryAttempt, maxWait, rand.Int64N)
}

func waitForRetry(retryAttempt int, maxWait time.Duration, int64n func(int64) int64) time.Duration {
	if retryAttempt < 1 {
		retryAttempt = 1
	}
	if retryAttempt > maxRetryExponent {
		retryAttempt = maxRetryExponent
	}
	if maxWait <= 0 {
		maxWait = DefaultMaxWait
	}

	floor := int64(1) << (retryAttempt - 1)
	jitter := int64n(int64(1) << retryAttempt)

	return min(time.Duration(floor+jitter)*time.Second, maxWait)
}

// Backoff produces CalculateWaitForRetry waits for successive attempts and
// implements backoff.BackOff so it can drive a caller-owned retry loop:
//
//	b := httpclient.NewBackoff(httpclient.WithMaxAttempts(5))
//	resp, err := backoff.Retry(ctx, call, backoff.WithBackOff(b))
//
// A Backoff tracks its attempt count and is not safe for concurrent use; give
// each retry loop its own instance.
type Backoff struct {
	maxWait     time.Duration
	maxAttempts int
	rnd         *rand.Rand
	attempt     int
}

var _ backoff.BackOff = (*Backoff)(nil)

// BackoffOption configures a Backoff
type BackoffOption func(*Backoff)

// WithMaxWait sets the ceiling applied to every wait
func WithMaxWait(d time.Duration) BackoffOption {
	return func(b *Backoff) {
		b.maxWait = d
	}
}

// WithMaxAttempts limits how many waits NextBackOff hands out before
// returning backoff.Stop. Zero means unlimited.
func WithMaxAttempts(n int) BackoffOption {
	return func(b *Backoff) {
		b.maxAttempts = n
	}
}

// WithRandSource gives the Backoff its own random source instead of the
// runtime-seeded math/rand/v2 generator.
func WithRandSource(src rand.Source) BackoffOption {
	return func(b *Backoff) {
		b.rnd = rand.New(src)
	}
}

// NewBackoff creates a Backoff with DefaultMaxWait and no attempt limit
func NewBackoff(opts ...BackoffOption) *Backoff {
	b := &Backoff{maxWait: DefaultMaxWait}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Wait returns the wait before the given attempt without advancing the Backoff
func (b *Backoff) Wait(retryAttempt int) time.Duration {
	int64n := rand.Int64N
	if b.rnd != nil {
		int64n = b.rnd.Int64N
	}
	return waitForRetry(retryAttempt, b.maxWait, int64n)
}

// NextBackOff advances to the next attempt and returns its wait, or
// backoff.Stop once the attempt limit is exhausted.
func (b *Backoff) NextBackOff() time.Duration {
	if b.maxAttempts > 0 && b.attempt >= b.maxAttempts {
		return backoff.Stop
	}
	b.attempt++
	return b.Wait(b.attempt)
}

// Reset restarts the attempt sequence
func (b *Backoff) Reset() {
	b.attempt = 0
}

// Attempt returns the number of waits handed out since the last Reset
func (b *Backoff) Attempt() int {
	return b.attempt
}
