package delegate

import (
	"context"
	"errors"
	"net/http"

	"github.com/openai/openai-go/v3"

	apperrors "github.com/cadubot/cadu-go/internal/errors"
)

// ErrEmptyAnswer is returned when the backend produced no usable text.
var ErrEmptyAnswer = apperrors.ErrEmptyCompletion

// isPermanent reports whether a backend error should not be retried.
// Client-side errors (bad request, auth, not found) never recover on
// retry; rate limits and server errors might.
func isPermanent(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusTooManyRequests:
			return false
		default:
			return apiErr.StatusCode >= 400 && apiErr.StatusCode < 500
		}
	}
	return false
}

// statusCode extracts the HTTP status from a backend error, 0 when the
// failure never reached the HTTP layer.
func statusCode(err error) int {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
