package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/common/errs"
	"github.com/gofiber/fiber/v2"
)

type refreshTokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

func (h *HttpHandler) RefreshToken(ctx *fiber.Ctx) error {
	token, err := h.api.RefreshToken(ctx.UserContext())
	if errors.Is(err, errs.NotFound) {
		return badRequest(ctx, MsgNoNewToken, nil)
	}
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(ctx.JSON(refreshTokenResponse{Message: "Token refreshed", Token: token}))
}
