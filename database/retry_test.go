package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsRetryableError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"context deadline", context.DeadlineExceeded, false},
		{"no rows", sql.ErrNoRows, false},
		{"constraint violation is permanent", &pgconn.PgError{Code: "23505"}, false},
		{"syntax error is permanent", &pgconn.PgError{Code: "42601"}, false},
		{"serialization failure retries", &pgconn.PgError{Code: "40001"}, true},
		{"deadlock retries", &pgconn.PgError{Code: "40P01"}, true},
		{"connection exception retries", &pgconn.PgError{Code: "08006"}, true},
		{"cannot_connect_now retries", &pgconn.PgError{Code: "57P03"}, true},
		{"connection refused string retries", errors.New("dial tcp: connection refused"), true},
		{"arbitrary error is permanent", errors.New("something else"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isRetryableError(tc.err); got != tc.want {
				t.Errorf("isRetryableError(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestRetryWithBackoff(t *testing.T) {
	cfg := RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}

	t.Run("permanent errors fail immediately", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(context.Background(), cfg, func() error {
			calls++
			return &pgconn.PgError{Code: "23505"}
		})
		if err == nil {
			t.Fatal("expected error")
		}
		if calls != 1 {
			t.Errorf("operation ran %d times, want 1", calls)
		}
	})

	t.Run("transient errors are retried until success", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(context.Background(), cfg, func() error {
			calls++
			if calls < 3 {
				return &pgconn.PgError{Code: "40001"}
			}
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 3 {
			t.Errorf("operation ran %d times, want 3", calls)
		}
	})

	t.Run("attempts are capped", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(context.Background(), cfg, func() error {
			calls++
			return &pgconn.PgError{Code: "40001"}
		})
		if err == nil {
			t.Fatal("expected error after exhausting attempts")
		}
		if calls != cfg.MaxAttempts {
			t.Errorf("operation ran %d times, want %d", calls, cfg.MaxAttempts)
		}
	})

	t.Run("cancelled context stops the loop", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := RetryWithBackoff(ctx, cfg, func() error {
			return &pgconn.PgError{Code: "40001"}
		})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("got %v, want context.Canceled", err)
		}
	})
}
