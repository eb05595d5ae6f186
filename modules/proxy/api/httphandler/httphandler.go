package httphandler

import (
	"net/http"
	"strings"

	"github.com/gaze-network/inscriber/common"
	"github.com/gaze-network/inscriber/modules/proxy/datagateway"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

const (
	MsgMissingFields     = "Missing required fields"
	MsgMissingFieldsFile = "Missing required fields or file"
	MsgInvalidFeeRate    = "Invalid fee_rate: must be a positive number"
	MsgIDRequired        = "Inscription ID is required"
	MsgAddressRequired   = "Wallet address is required"
	MsgTickerRequired    = "Ticker is required"
	MsgNoNewToken        = "No new token returned"
)

// HttpHandler serves the same-origin API routes. The caller's authorization header
// reaches the inscription API through the request context.
type HttpHandler struct {
	api datagateway.UpstreamDataGateway
}

func New(api datagateway.UpstreamDataGateway) *HttpHandler {
	return &HttpHandler{api: api}
}

func badRequest(c *fiber.Ctx, message string, details any) error {
	return c.Status(http.StatusBadRequest).JSON(common.ErrorResponse{Message: message, Details: details})
}

// isPositive reports whether s is a number greater than zero.
func isPositive(s string) bool {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	return err == nil && d.IsPositive()
}
