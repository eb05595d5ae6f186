package errorhandler

import (
	"net/http"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/common/errs"
	"github.com/stretchr/testify/assert"
)

type upstreamError struct {
	status  int
	message string
	details any
}

func (e upstreamError) Error() string           { return "upstream failed" }
func (e upstreamError) HTTPStatus() int         { return e.status }
func (e upstreamError) ResponseMessage() string { return e.message }
func (e upstreamError) ResponseDetails() any    { return e.details }

func TestResponse(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", errs.NewValidationError("Ticker is required."), http.StatusBadRequest, "Ticker is required."},
		{"busy", errs.NewPublicErrorKind(errs.Busy, "Operation already in progress."), http.StatusConflict, "Operation already in progress."},
		{"not found", errors.Wrap(errs.NotFound, "no row"), http.StatusNotFound, MessageInternalServerError},
		{"upstream", errors.WithStack(upstreamError{status: 422, message: "Invalid ticker"}), 422, "Invalid ticker"},
		{"upstream without message", upstreamError{status: 503}, 503, MessageInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, MessageInternalServerError},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := Response(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.message, body.Message)
		})
	}
}

func TestResponseDetails(t *testing.T) {
	_, body := Response(upstreamError{status: 400, message: "bad", details: map[string]any{"field": "fee_rate"}})
	assert.Equal(t, map[string]any{"field": "fee_rate"}, body.Details)

	_, body = Response(upstreamError{status: 400, message: "bad"})
	assert.Equal(t, "upstream failed", body.Details)
}
