package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/fwojciec/newgrounds"
	"github.com/fwojciec/newgrounds/mock"
	ngslog "github.com/fwojciec/newgrounds/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingOpener_Open(t *testing.T) {
	t.Parallel()

	t.Run("logs session lifecycle", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		closed := false
		inner := &mock.SessionOpener{
			OpenFn: func(ctx context.Context) (newgrounds.Session, error) {
				return &mock.Session{
					NavigateFn: func(ctx context.Context, url string) error { return nil },
					EvaluateFn: func(ctx context.Context, script string, v any) error { return nil },
					CloseFn: func() error {
						closed = true
						return nil
					},
				}, nil
			},
		}

		opener := ngslog.NewLoggingOpener(inner, logger)
		session, err := opener.Open(context.Background())
		require.NoError(t, err)

		require.NoError(t, session.Navigate(context.Background(), "https://www.newgrounds.com/playlist/a/b"))
		require.NoError(t, session.Evaluate(context.Background(), "() => 1", new(int)))
		require.NoError(t, session.Close())

		assert.True(t, closed)
		output := buf.String()
		assert.Contains(t, output, "session open")
		assert.Contains(t, output, "url=https://www.newgrounds.com/playlist/a/b")
		assert.Contains(t, output, "evaluate")
		assert.Contains(t, output, "session close")
		assert.Contains(t, output, "lifetime=")
	})

	t.Run("logs session close once", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SessionOpener{
			OpenFn: func(ctx context.Context) (newgrounds.Session, error) {
				return &mock.Session{
					CloseFn: func() error { return nil },
				}, nil
			},
		}

		session, err := ngslog.NewLoggingOpener(inner, logger).Open(context.Background())
		require.NoError(t, err)

		require.NoError(t, session.Close())
		require.NoError(t, session.Close())
		require.NoError(t, session.Close())

		assert.Equal(t, 1, strings.Count(buf.String(), "session close"))
	})

	t.Run("logs and returns open failures", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SessionOpener{
			OpenFn: func(ctx context.Context) (newgrounds.Session, error) {
				return nil, errors.New("chrome not found")
			},
		}

		opener := ngslog.NewLoggingOpener(inner, logger)
		session, err := opener.Open(context.Background())

		require.EqualError(t, err, "chrome not found")
		assert.Nil(t, session)
		assert.Contains(t, buf.String(), "err=\"chrome not found\"")
	})
}
