package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/newgrounds"
	main "github.com/fwojciec/newgrounds/cmd/ngscrape"
	"github.com/fwojciec/newgrounds/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAudioCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints a single record as an object", func(t *testing.T) {
		t.Parallel()

		svc := &mock.Service{
			GetAudioFn: func(_ context.Context, id string) (*newgrounds.Audio, error) {
				return &newgrounds.Audio{ID: id, Title: "Song"}, nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Service: svc, Concurrency: 1}

		err := (&main.AudioCmd{IDs: []string{"42"}}).Run(deps)

		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(stdout.Bytes(), []byte("{")))
		assert.Contains(t, stdout.String(), `"id": "42"`)
		assert.Contains(t, stdout.String(), `"title": "Song"`)
	})

	t.Run("prints several records as an array", func(t *testing.T) {
		t.Parallel()

		svc := &mock.Service{
			GetAudioFn: func(_ context.Context, id string) (*newgrounds.Audio, error) {
				return &newgrounds.Audio{ID: id}, nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Service: svc, Concurrency: 2}

		err := (&main.AudioCmd{IDs: []string{"1", "2"}}).Run(deps)

		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(stdout.Bytes(), []byte("[")))
	})

	t.Run("prints the failure message", func(t *testing.T) {
		t.Parallel()

		svc := &mock.Service{
			GetAudioFn: func(context.Context, string) (*newgrounds.Audio, error) {
				return nil, newgrounds.Errorf(newgrounds.EINVALID, "audio id required")
			},
		}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, Service: svc}

		err := (&main.AudioCmd{IDs: []string{""}}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, "error: audio id required\n", stderr.String())
	})
}
