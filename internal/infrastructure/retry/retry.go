// Package retry retries provider calls with exponential backoff and jitter.
package retry

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// Config describes how often and how patiently a call is retried.
type Config struct {
	// MaxAttempts counts the first call; values below 1 mean a single attempt.
	MaxAttempts int

	InitialDelay time.Duration
	MaxDelay     time.Duration

	// Multiplier grows the delay after every failed attempt.
	Multiplier float64

	// JitterFactor adds up to this fraction of the delay at random.
	JitterFactor float64

	// RetryIf decides whether an error is worth another attempt. Nil retries everything.
	RetryIf func(error) bool

	// OnRetry runs before the backoff sleep that precedes the next attempt.
	OnRetry func(attempt int, err error, delay time.Duration)
}

// ProviderConfig is the policy for flight offer provider requests.
// Errors wrapped with NewPermanent are returned without retrying.
var ProviderConfig = Config{
	MaxAttempts:  3,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     5 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.2,
	RetryIf:      SkipPermanent,
}

// DoWithResult calls fn until it succeeds, cfg gives up, or ctx is done.
// It returns the last result and error.
func DoWithResult[T any](ctx context.Context, fn func() (T, error), cfg Config) (T, error) {
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var (
		result T
		err    error
	)
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= attempts; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, ctxErr
		}

		result, err = fn()
		if err == nil {
			return result, nil
		}
		if cfg.RetryIf != nil && !cfg.RetryIf(err) {
			return result, err
		}
		if attempt == attempts {
			break
		}

		wait := backoff(delay, cfg.MaxDelay, cfg.JitterFactor)
		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, err, wait)
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return result, ctx.Err()
		case <-timer.C:
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
	}

	return result, err
}

// backoff adds jitter to delay and caps the result at maxDelay.
func backoff(delay, maxDelay time.Duration, jitterFactor float64) time.Duration {
	wait := delay + time.Duration(rand.Float64()*float64(delay)*jitterFactor)
	if maxDelay > 0 && wait > maxDelay {
		return maxDelay
	}
	return wait
}

// Permanent marks an error that must not be retried.
type Permanent struct {
	Err error
}

func (p *Permanent) Error() string {
	if p.Err == nil {
		return "permanent error"
	}
	return p.Err.Error()
}

func (p *Permanent) Unwrap() error {
	return p.Err
}

// NewPermanent wraps err so DoWithResult stops on it. A nil err stays nil.
func NewPermanent(err error) error {
	if err == nil {
		return nil
	}
	return &Permanent{Err: err}
}

// IsPermanent reports whether err or anything it wraps is Permanent.
func IsPermanent(err error) bool {
	var p *Permanent
	return errors.As(err, &p)
}

// SkipPermanent is a RetryIf predicate that retries everything but Permanent errors.
func SkipPermanent(err error) bool {
	return !IsPermanent(err)
}

// Unwrap strips a Permanent wrapper and returns the cause.
func Unwrap(err error) error {
	var p *Permanent
	if errors.As(err, &p) && p.Err != nil {
		return p.Err
	}
	return err
}

// WithRetryIf returns a copy of c using fn as its retry predicate.
func (c Config) WithRetryIf(fn func(error) bool) Config {
	c.RetryIf = fn
	return c
}

// WithOnRetry returns a copy of c calling fn before each backoff.
func (c Config) WithOnRetry(fn func(attempt int, err error, delay time.Duration)) Config {
	c.OnRetry = fn
	return c
}

// WithMaxAttempts returns a copy of c allowing n attempts.
func (c Config) WithMaxAttempts(n int) Config {
	c.MaxAttempts = n
	return c
}

// WithInitialDelay returns a copy of c waiting d before the first retry.
func (c Config) WithInitialDelay(d time.Duration) Config {
	c.InitialDelay = d
	return c
}

// WithMaxDelay returns a copy of c capping every backoff at d.
func (c Config) WithMaxDelay(d time.Duration) Config {
	c.MaxDelay = d
	return c
}
