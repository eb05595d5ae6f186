package inscriptionapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gaze-network/inscriber/common/errs"
	"github.com/gaze-network/inscriber/pkg/httpclient"
)

// ResponseError is a non-2xx answer of the inscription API.
type ResponseError struct {
	StatusCode int
	// Message is the body's "message" field.
	Message string
	// ErrorText is the body's "error" field.
	ErrorText string
	Details   any
	Body      []byte
}

func (e *ResponseError) Error() string {
	msg := e.ServerMessage(false)
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("inscription api responded %d: %s", e.StatusCode, msg)
}

// ServerMessage returns the server-provided message. preferError selects the "error" field first.
func (e *ResponseError) ServerMessage(preferError bool) string {
	if preferError {
		if e.ErrorText != "" {
			return e.ErrorText
		}
		return e.Message
	}
	if e.Message != "" {
		return e.Message
	}
	return e.ErrorText
}

// Is makes every ResponseError match errs.NetworkError, and 404s match errs.NotFound.
func (e *ResponseError) Is(target error) bool {
	switch target {
	case errs.NetworkError:
		return true
	case errs.NotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// HTTPStatus is the upstream status, reused by the proxy.
func (e *ResponseError) HTTPStatus() int {
	return e.StatusCode
}

// ResponseMessage is the message the proxy answers with: the "error" field first.
func (e *ResponseError) ResponseMessage() string {
	return e.ServerMessage(true)
}

func (e *ResponseError) ResponseDetails() any {
	return e.Details
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Details any    `json:"details"`
}

func newResponseError(resp *httpclient.HttpResponse) *ResponseError {
	body, err := resp.BodyUncompressed()
	if err != nil {
		body = resp.Body()
	}
	rerr := &ResponseError{
		StatusCode: resp.StatusCode(),
		Body:       append([]byte(nil), body...),
	}
	var eb errorBody
	if json.Unmarshal(body, &eb) == nil {
		rerr.Message = eb.Message
		rerr.ErrorText = eb.Error
		rerr.Details = eb.Details
	}
	return rerr
}
