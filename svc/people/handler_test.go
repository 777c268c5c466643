package people_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valdi/pkg/logger"
	"github.com/dmitrymomot/valdi/pkg/rules"
	"github.com/dmitrymomot/valdi/svc/people"
)

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *people.ErrorDetail `json:"error"`
}

func serve(t *testing.T, h http.Handler, path, contentType, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func newRouter() http.Handler {
	return people.NewHandler(people.NewFactory(), nil).Routes()
}

func TestHandler_Create(t *testing.T) {
	t.Parallel()
	h := newRouter()

	t.Run("created", func(t *testing.T) {
		t.Parallel()
		rec, env := serve(t, h, "/people", "application/json", `{"name":"Ada","age":36,"email":"ADA@example.com"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Nil(t, env.Error)

		var p people.Person
		require.NoError(t, json.Unmarshal(env.Data, &p))
		assert.Equal(t, people.Person{Name: "Ada", Age: 36, Email: "ada@example.com"}, p)
	})

	t.Run("first failure only", func(t *testing.T) {
		t.Parallel()
		rec, env := serve(t, h, "/people", "application/json; charset=utf-8", `{"name":"","age":-1}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "validation_error", env.Error.Code)
		assert.Equal(t, "name must not be blank", env.Error.Message)
		assert.Equal(t, []rules.FieldError{people.ErrNameBlank}, env.Error.Failures)
	})
}

func TestHandler_Check(t *testing.T) {
	t.Parallel()
	h := newRouter()

	t.Run("all failures", func(t *testing.T) {
		t.Parallel()
		rec, env := serve(t, h, "/people/check", "application/json", `{"name":"","age":-1}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		var res people.CheckResult
		require.NoError(t, json.Unmarshal(env.Data, &res))
		assert.False(t, res.Valid)
		assert.Equal(t, []rules.FieldError{people.ErrNameBlank, people.ErrAgeNegative}, res.Failures)
	})

	t.Run("valid input", func(t *testing.T) {
		t.Parallel()
		rec, env := serve(t, h, "/people/check", "application/json", `{"name":"Ada","age":1}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		var res people.CheckResult
		require.NoError(t, json.Unmarshal(env.Data, &res))
		assert.True(t, res.Valid)
		assert.Empty(t, res.Failures)
		assert.Contains(t, string(env.Data), `"failures":[]`)
	})
}

func TestHandler_BadRequests(t *testing.T) {
	t.Parallel()
	h := newRouter()

	tests := []struct {
		name        string
		contentType string
		body        string
		status      int
		code        string
	}{
		{"missing content type", "", `{"name":"Ada"}`, http.StatusUnsupportedMediaType, "unsupported_media_type"},
		{"wrong content type", "text/plain", `{"name":"Ada"}`, http.StatusUnsupportedMediaType, "unsupported_media_type"},
		{"empty body", "application/json", ``, http.StatusBadRequest, "invalid_json"},
		{"malformed json", "application/json", `{"name":`, http.StatusBadRequest, "invalid_json"},
		{"unknown field", "application/json", `{"name":"Ada","nickname":"A"}`, http.StatusBadRequest, "invalid_json"},
		{"wrong type", "application/json", `{"name":"Ada","age":"old"}`, http.StatusBadRequest, "invalid_json"},
		{"trailing data", "application/json", `{"name":"Ada"}{}`, http.StatusBadRequest, "invalid_json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for _, path := range []string{"/people", "/people/check"} {
				rec, env := serve(t, h, path, tt.contentType, tt.body)
				assert.Equal(t, tt.status, rec.Code, path)
				require.NotNil(t, env.Error, path)
				assert.Equal(t, tt.code, env.Error.Code, path)
				assert.NotEmpty(t, env.Error.Message, path)
			}
		})
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/people", nil)
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandler_LogsRequestID(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithLevel(slog.LevelInfo),
		logger.WithContextValue("request_id", middleware.RequestIDKey),
	)
	h := people.NewHandler(people.NewFactory(), log).Routes()

	req := httptest.NewRequest(http.MethodPost, "/people", strings.NewReader(`{"name":"","age":3}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	h.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "person rejected", entry["msg"])
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "people", entry["component"])
	assert.Equal(t, "name must not be blank", entry["failure"])
}
