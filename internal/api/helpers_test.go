package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/wordcards/internal/api/middleware"
	"github.com/phrazzld/wordcards/internal/platform/logger"
	"github.com/phrazzld/wordcards/internal/service"
	"github.com/stretchr/testify/require"
)

const testMediaPrefix = "/media/"

// newTestRouter mounts the handlers the same way the server does.
func newTestRouter(
	t *testing.T,
	cards service.CardService,
	training service.TrainingService,
	images ImageStore,
) http.Handler {
	t.Helper()
	log, _ := logger.NewTestLogger()

	r := chi.NewRouter()
	r.Use(middleware.NewTraceMiddleware(log))

	if cards != nil {
		h := NewCardHandler(cards, testMediaPrefix, log)
		r.Get("/api/cards", h.ListCards)
		r.Post("/api/cards", h.CreateCard)
		r.Get("/api/cards/{id}", h.GetCard)
		r.Put("/api/cards/{id}", h.EditCard)
		r.Get("/api/cards/{id}/delete", h.RequestDelete)
		r.Post("/api/cards/{id}/delete", h.ConfirmDelete)
	}
	if training != nil {
		h := NewTrainHandler(training, testMediaPrefix, log)
		r.Get("/api/train", h.Present)
		r.Post("/api/train", h.Answer)
	}
	if images != nil {
		h := NewImageHandler(images, testMediaPrefix, log)
		r.Post("/api/images", h.Upload)
	}
	return r
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}
