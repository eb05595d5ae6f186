package errorhandler

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/common"
	"github.com/gaze-network/inscriber/common/errs"
	"github.com/gaze-network/inscriber/pkg/logger"
	"github.com/gaze-network/inscriber/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
)

const MessageInternalServerError = "Internal server error"

// HTTPError is an error that knows how it should be answered, such as an upstream API error.
type HTTPError interface {
	HTTPStatus() int
	ResponseMessage() string
	ResponseDetails() any
}

func NewHTTPErrorHandler() func(ctx *fiber.Ctx, err error) error {
	return func(ctx *fiber.Ctx, err error) error {
		if e := new(fiber.Error); errors.As(err, &e) {
			message := e.Message
			if e.Code == http.StatusMethodNotAllowed {
				message = "Method not allowed"
			}
			return errors.WithStack(ctx.Status(e.Code).JSON(common.ErrorResponse{Message: message}))
		}

		status, body := Response(err)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.UserContext(), "Something went wrong, unhandled api error",
				slogx.String("event", "api_unhandled_error"),
				slogx.Int("status", status),
				slogx.Error(err),
			)
		}
		return errors.WithStack(ctx.Status(status).JSON(body))
	}
}

// Response maps err to a status code and an error body.
func Response(err error) (int, common.ErrorResponse) {
	var herr HTTPError
	if errors.As(err, &herr) {
		status := herr.HTTPStatus()
		if status < http.StatusBadRequest {
			status = http.StatusInternalServerError
		}
		body := common.ErrorResponse{Message: herr.ResponseMessage(), Details: herr.ResponseDetails()}
		if body.Message == "" {
			body.Message = MessageInternalServerError
		}
		if body.Details == nil {
			body.Details = err.Error()
		}
		return status, body
	}

	status := StatusCode(err)
	if msg := errs.UserMessage(err, ""); msg != "" {
		return status, common.ErrorResponse{Message: msg}
	}
	return status, common.ErrorResponse{Message: MessageInternalServerError, Details: err.Error()}
}

// StatusCode returns the HTTP status of an error kind.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, errs.InvalidArgument), errors.Is(err, errs.Unsupported):
		return http.StatusBadRequest
	case errors.Is(err, errs.NotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.Busy), errors.Is(err, errs.InvalidState):
		return http.StatusConflict
	case errors.Is(err, errs.Timeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, errs.NetworkError), errors.Is(err, errs.WalletError):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// Status returns the status code the error handler answers err with.
func Status(err error) int {
	if e := new(fiber.Error); errors.As(err, &e) {
		return e.Code
	}
	status, _ := Response(err)
	return status
}
