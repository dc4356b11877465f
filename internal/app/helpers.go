package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"moving-estimate-service/internal/repository"
)

var newPool = repository.NewPool

// connectDbWithRetry dials postgres until it answers or retries run out.
// Each attempt gets its own timeout so a hanging dial cannot eat the
// whole retry window.
func connectDbWithRetry(ctx context.Context, dsn string, retries int, delay time.Duration) (*pgxpool.Pool, error) {
	const attemptTimeout = 3 * time.Second

	var lastErr error
	for attempt := 1; attempt <= retries; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
		pool, err := newPool(attemptCtx, dsn)
		cancel()
		if err == nil {
			log.Printf("postgres connected on attempt %d", attempt)
			return pool, nil
		}
		lastErr = err
		log.Printf("postgres connect failed (attempt %d/%d): %v", attempt, retries, err)
		if attempt < retries {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return nil, fmt.Errorf("postgres connect failed after %d attempts: %w", retries, lastErr)
}
