package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/sethvargo/go-retry"

	"gigmarket/internal/common"
	"gigmarket/internal/config"
)

const (
	mysqlLockWaitTimeout = 1205
	mysqlDeadlock        = 1213
)

type retrier struct {
	maxRetries uint64
	baseDelay  time.Duration
}

func newRetrier(cfg *config.Config) *retrier {
	r := &retrier{maxRetries: 3, baseDelay: 50 * time.Millisecond}
	if cfg != nil {
		if cfg.Retry.MaxRetries >= 0 {
			r.maxRetries = uint64(cfg.Retry.MaxRetries)
		}
		if cfg.Retry.BaseDelayMs > 0 {
			r.baseDelay = time.Duration(cfg.Retry.BaseDelayMs) * time.Millisecond
		}
	}
	return r
}

// do runs op, retrying transient store failures with exponential backoff.
// Exhausted retries surface as ErrUnavailable; every other error is returned as is.
func (r *retrier) do(ctx context.Context, name string, op func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(r.maxRetries, retry.NewExponential(r.baseDelay))

	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := op(ctx)
		if isTransient(err) {
			log.Printf("⟳ %s attempt %d failed: %v", name, attempt, err)
			return retry.RetryableError(err)
		}
		return err
	})
	if isTransient(err) {
		return fmt.Errorf("%w: %s: %v", common.ErrUnavailable, name, err)
	}
	return err
}

func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, mysql.ErrInvalidConn) {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDeadlock || myErr.Number == mysqlLockWaitTimeout
	}
	return false
}
