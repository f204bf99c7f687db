package rod_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/newgrounds"
	"github.com/fwojciec/newgrounds/mock"
	"github.com/fwojciec/newgrounds/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ysmood/gson"
)

const playlistResult = `{
	"playlistId": "someone/favs",
	"playlistTitle": "Favs",
	"playlistIcon": "https://img.ngfiles.com/playlist.png",
	"author": "someone",
	"authorIcon": "https://uimg.ngfiles.com/someone.png",
	"authorUrl": "https://someone.newgrounds.com",
	"items": [
		{"id": "123", "title": "Song", "url": "https://www.newgrounds.com/audio/listen/123", "views": "1,234 Views", "score": "4.5 / 5.0", "genre": "Ambient", "icon": ""}
	]
}`

// openerFor returns an opener that always hands out session.
func openerFor(session *mock.Session) *mock.SessionOpener {
	return &mock.SessionOpener{
		OpenFn: func(ctx context.Context) (newgrounds.Session, error) {
			return session, nil
		},
	}
}

func TestPlaylistExtractor_ExtractPlaylist(t *testing.T) {
	t.Parallel()

	t.Run("navigates and decodes the page result", func(t *testing.T) {
		t.Parallel()

		var navigated string
		closed := 0
		session := &mock.Session{
			NavigateFn: func(ctx context.Context, url string) error {
				navigated = url
				return nil
			},
			EvaluateFn: func(ctx context.Context, script string, v any) error {
				return gson.NewFrom(playlistResult).Unmarshal(v)
			},
			CloseFn: func() error {
				closed++
				return nil
			},
		}
		e := rod.NewPlaylistExtractor(openerFor(session))

		raw, err := e.ExtractPlaylist(context.Background(), "https://www.newgrounds.com/playlist/someone/favs")

		require.NoError(t, err)
		assert.Equal(t, "https://www.newgrounds.com/playlist/someone/favs", navigated)
		assert.Equal(t, "someone/favs", raw.ID)
		assert.Equal(t, "Favs", raw.Title)
		assert.Equal(t, "https://someone.newgrounds.com", raw.AuthorURL)
		require.Len(t, raw.Items, 1)
		assert.Equal(t, "1,234 Views", raw.Items[0].Views)
		assert.Equal(t, 1, closed)
	})

	t.Run("returns an empty item list when the page has none", func(t *testing.T) {
		t.Parallel()

		session := &mock.Session{
			NavigateFn: func(ctx context.Context, url string) error { return nil },
			EvaluateFn: func(ctx context.Context, script string, v any) error {
				return gson.NewFrom(`{"playlistId": "a/b"}`).Unmarshal(v)
			},
			CloseFn: func() error { return nil },
		}
		e := rod.NewPlaylistExtractor(openerFor(session))

		raw, err := e.ExtractPlaylist(context.Background(), "https://www.newgrounds.com/playlist/a/b")

		require.NoError(t, err)
		assert.NotNil(t, raw.Items)
		assert.Empty(t, raw.Items)
	})

	t.Run("closes the session when navigation fails", func(t *testing.T) {
		t.Parallel()

		closed := 0
		session := &mock.Session{
			NavigateFn: func(ctx context.Context, url string) error {
				return context.DeadlineExceeded
			},
			CloseFn: func() error {
				closed++
				return nil
			},
		}
		e := rod.NewPlaylistExtractor(openerFor(session))

		_, err := e.ExtractPlaylist(context.Background(), "https://www.newgrounds.com/playlist/a/b")

		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, 1, closed)
	})

	t.Run("closes the session when evaluation fails", func(t *testing.T) {
		t.Parallel()

		closed := 0
		session := &mock.Session{
			NavigateFn: func(ctx context.Context, url string) error { return nil },
			EvaluateFn: func(ctx context.Context, script string, v any) error {
				return errors.New("script error")
			},
			CloseFn: func() error {
				closed++
				return nil
			},
		}
		e := rod.NewPlaylistExtractor(openerFor(session))

		_, err := e.ExtractPlaylist(context.Background(), "https://www.newgrounds.com/playlist/a/b")

		require.EqualError(t, err, "script error")
		assert.Equal(t, 1, closed)
	})

	t.Run("reports a close failure after successful extraction", func(t *testing.T) {
		t.Parallel()

		session := &mock.Session{
			NavigateFn: func(ctx context.Context, url string) error { return nil },
			EvaluateFn: func(ctx context.Context, script string, v any) error {
				return gson.NewFrom(playlistResult).Unmarshal(v)
			},
			CloseFn: func() error { return errors.New("browser gone") },
		}
		e := rod.NewPlaylistExtractor(openerFor(session))

		raw, err := e.ExtractPlaylist(context.Background(), "https://www.newgrounds.com/playlist/a/b")

		require.EqualError(t, err, "browser gone")
		assert.Nil(t, raw)
	})

	t.Run("returns the open error without a session", func(t *testing.T) {
		t.Parallel()

		opener := &mock.SessionOpener{
			OpenFn: func(ctx context.Context) (newgrounds.Session, error) {
				return nil, errors.New("no chrome")
			},
		}
		e := rod.NewPlaylistExtractor(opener)

		_, err := e.ExtractPlaylist(context.Background(), "https://www.newgrounds.com/playlist/a/b")

		require.EqualError(t, err, "no chrome")
	})
}
