package media

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngHeader is enough of a PNG file for content sniffing.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func newTestStore(t *testing.T, maxBytes int64) (*Store, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	return NewStore(fs, maxBytes, nil), fs
}

func TestStore_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("png", func(t *testing.T) {
		s, fs := newTestStore(t, 1024)

		name, err := s.Save(ctx, bytes.NewReader(pngHeader))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(name, "images/"))
		assert.True(t, strings.HasSuffix(name, ".png"))

		data, err := afero.ReadFile(fs, "/"+name)
		require.NoError(t, err)
		assert.Equal(t, pngHeader, data)
	})

	t.Run("gif", func(t *testing.T) {
		s, _ := newTestStore(t, 1024)

		name, err := s.Save(ctx, strings.NewReader("GIF89a\x01\x00\x01\x00"))
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(name, ".gif"))
	})

	t.Run("not_an_image", func(t *testing.T) {
		s, fs := newTestStore(t, 1024)

		_, err := s.Save(ctx, strings.NewReader("just some text"))
		assert.ErrorIs(t, err, ErrNotImage)

		exists, _ := afero.DirExists(fs, "/"+ImageDir)
		assert.False(t, exists)
	})

	t.Run("too_large", func(t *testing.T) {
		s, _ := newTestStore(t, 8)

		_, err := s.Save(ctx, bytes.NewReader(pngHeader))
		assert.ErrorIs(t, err, ErrTooLarge)
	})
}

func TestStore_Remove(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t, 1024)

	name, err := s.Save(ctx, bytes.NewReader(pngHeader))
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, name))
	exists, err := s.Exists(name)
	require.NoError(t, err)
	assert.False(t, exists)

	// Already gone.
	assert.NoError(t, s.Remove(ctx, name))

	assert.ErrorIs(t, s.Remove(ctx, "../config.yaml"), ErrInvalidName)
	assert.ErrorIs(t, s.Remove(ctx, "images/../../etc/passwd"), ErrInvalidName)
}

func TestStore_Handler(t *testing.T) {
	s, _ := newTestStore(t, 1024)
	name, err := s.Save(context.Background(), bytes.NewReader(pngHeader))
	require.NoError(t, err)

	srv := httptest.NewServer(http.StripPrefix("/media", s.Handler()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/media/" + name)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, body)

	for _, path := range []string{
		"/media/images/missing.png",
		"/media/images/",
		"/media/images",
		"/media/",
		"/media/images/../images/",
	} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		listing, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		_ = resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
		assert.NotContains(t, string(listing), strings.TrimPrefix(name, ImageDir+"/"), path)
	}
}
