package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"

	"github.com/couchcryptid/porutham-service/internal/adapter/store"
	"github.com/couchcryptid/porutham-service/internal/domain"
)

const maxBodyBytes = 1 << 20

// errBadRequest marks malformed requests that never reach the domain.
var errBadRequest = errors.New("bad request")

const msgCalculationFailed = "calculation failed, please retry"

type errorBody struct {
	Error string `json:"error"`
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %w", errBadRequest, err)
	}
	return nil
}

// statusFor maps domain and store errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEphemeris):
		return http.StatusBadGateway
	case errors.Is(err, errBadRequest),
		errors.Is(err, domain.ErrInvalidBirthDate),
		errors.Is(err, domain.ErrInvalidBirthTime),
		errors.Is(err, domain.ErrInvalidMeridian),
		errors.Is(err, domain.ErrMissingBirthPlace),
		errors.Is(err, domain.ErrUnknownStar),
		errors.Is(err, domain.ErrUnknownRasi),
		errors.Is(err, domain.ErrInvalidSeek):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	switch status {
	case http.StatusBadGateway:
		msg = msgCalculationFailed
	case http.StatusInternalServerError:
		msg = http.StatusText(status)
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "status", status, "error", err)
	} else {
		s.logger.Debug("request rejected", "method", r.Method, "path", r.URL.Path, "status", status, "error", err)
	}
	sharedobs.WriteJSON(w, status, errorBody{Error: msg})
}

// queryInt reads an optional integer parameter.
func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", errBadRequest, name)
	}
	return n, nil
}
