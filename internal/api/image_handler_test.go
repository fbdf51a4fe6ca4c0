package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/wordcards/internal/platform/media"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPNG = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func uploadRequest(t *testing.T, field string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(field, "upload.bin")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/images", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestImageHandler_Upload(t *testing.T) {
	images := media.NewStore(afero.NewMemMapFs(), 16, nil)
	router := newTestRouter(t, nil, nil, images)

	t.Run("png", func(t *testing.T) {
		small := media.NewStore(afero.NewMemMapFs(), 1024, nil)
		router := newTestRouter(t, nil, nil, small)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, uploadRequest(t, ImageFormField, testPNG))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		resp := decodeBody[ImageUploadResponse](t, rec)
		assert.True(t, strings.HasPrefix(resp.Image, "images/"))
		assert.Equal(t, "/media/"+resp.Image, resp.URL)

		exists, err := small.Exists(resp.Image)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("not_an_image", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, uploadRequest(t, ImageFormField, []byte("hello")))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("too_large", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, uploadRequest(t, ImageFormField, testPNG))
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("missing_field", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, uploadRequest(t, "file", testPNG))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
