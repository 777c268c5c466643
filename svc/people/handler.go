package people

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/valdi/pkg/logger"
	"github.com/dmitrymomot/valdi/pkg/rules"
)

const maxBodyBytes = 1 << 20

// Response is the envelope of every handler response.
type Response struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a rejected request. Failures holds every failure
// known for the request.
type ErrorDetail struct {
	Code     string             `json:"code"`
	Message  string             `json:"message"`
	Failures []rules.FieldError `json:"failures,omitempty"`
}

// CheckResult is the payload of POST /people/check.
type CheckResult struct {
	Valid    bool               `json:"valid"`
	Failures []rules.FieldError `json:"failures"`
}

// Handler exposes a person factory over HTTP.
type Handler struct {
	factory *Factory
	log     *slog.Logger
}

// NewHandler returns a Handler. A nil logger discards output.
func NewHandler(f *Factory, log *slog.Logger) *Handler {
	if log == nil {
		log = logger.Discard()
	}
	return &Handler{factory: f, log: log.With(logger.Component("people"))}
}

// Routes returns a router serving:
//
//	POST /people        201 with the person, 422 with the first failure
//	POST /people/check  200 with every failure
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/people", func(r chi.Router) {
		r.Post("/", h.create)
		r.Post("/check", h.check)
	})
	return r
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := decodeJSON(w, r, &in); err != nil {
		h.badRequest(w, r, err)
		return
	}

	res := h.factory.Create(in)
	if failure, ok := res.Err(); ok {
		h.log.InfoContext(r.Context(), "person rejected", logger.Failure(failure))
		writeJSON(w, http.StatusUnprocessableEntity, Response{Error: &ErrorDetail{
			Code:     "validation_error",
			Message:  failure.Error(),
			Failures: []rules.FieldError{failure},
		}})
		return
	}

	p, _ := res.Value()
	h.log.InfoContext(r.Context(), "person created", slog.String("name", p.Name))
	writeJSON(w, http.StatusCreated, Response{Data: p})
}

func (h *Handler) check(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := decodeJSON(w, r, &in); err != nil {
		h.badRequest(w, r, err)
		return
	}

	failures := h.factory.Check(in)
	h.log.DebugContext(r.Context(), "person checked", slog.Int("failures", len(failures)))
	writeJSON(w, http.StatusOK, Response{Data: CheckResult{
		Valid:    len(failures) == 0,
		Failures: failures,
	}})
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	status, code := http.StatusBadRequest, "invalid_json"
	if errors.Is(err, ErrUnsupportedMediaType) {
		status, code = http.StatusUnsupportedMediaType, "unsupported_media_type"
	}
	h.log.InfoContext(r.Context(), "request rejected", logger.Error(err))
	writeJSON(w, status, Response{Error: &ErrorDetail{Code: code, Message: err.Error()}})
}

// decodeJSON reads exactly one JSON object with no unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return fmt.Errorf("%w: expected application/json", ErrUnsupportedMediaType)
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "application/json" {
		return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, contentType)
	}

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrInvalidJSON)
		}
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	var extra json.RawMessage
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
