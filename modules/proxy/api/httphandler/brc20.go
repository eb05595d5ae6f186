package httphandler

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/core/types"
	"github.com/gaze-network/inscriber/pkg/inscriptionapi"
	"github.com/gofiber/fiber/v2"
)

// Amounts and fee rates are accepted as JSON strings or numbers and forwarded as strings.
type brc20DeployRequest struct {
	Ticker             string           `json:"ticker"`
	MaxSupply          types.FlexString `json:"max_supply"`
	AmountPerMint      types.FlexString `json:"amount_per_mint"`
	DestinationAddress string           `json:"destination_address"`
	SenderAddress      string           `json:"sender_address"`
	FeeRate            types.FlexString `json:"fee_rate"`
}

type brc20MintRequest struct {
	Ticker        string           `json:"ticker"`
	Amount        types.FlexString `json:"amount"`
	NumberOfMints types.FlexString `json:"number_of_mints"`
	SenderAddress string           `json:"sender_address"`
	FeeRate       types.FlexString `json:"fee_rate"`
}

func (h *HttpHandler) BRC20Deploy(ctx *fiber.Ctx) error {
	var req brc20DeployRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, MsgMissingFields, err.Error())
	}
	if req.Ticker == "" || req.MaxSupply == "" || req.AmountPerMint == "" || req.DestinationAddress == "" || req.SenderAddress == "" || req.FeeRate == "" {
		return badRequest(ctx, MsgMissingFields, nil)
	}
	if !isPositive(req.FeeRate.String()) {
		return badRequest(ctx, MsgInvalidFeeRate, fiber.Map{"fee_rate": req.FeeRate})
	}

	resp, err := h.api.BRC20Deploy(ctx.UserContext(), inscriptionapi.BRC20DeployRequest{
		Ticker:             req.Ticker,
		MaxSupply:          req.MaxSupply.String(),
		AmountPerMint:      req.AmountPerMint.String(),
		DestinationAddress: req.DestinationAddress,
		SenderAddress:      req.SenderAddress,
		FeeRate:            req.FeeRate.String(),
	})
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(ctx.JSON(resp))
}

func (h *HttpHandler) BRC20Mint(ctx *fiber.Ctx) error {
	var req brc20MintRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, MsgMissingFields, err.Error())
	}
	if req.Ticker == "" || req.Amount == "" || req.NumberOfMints == "" || req.SenderAddress == "" || req.FeeRate == "" {
		return badRequest(ctx, MsgMissingFields, nil)
	}
	if !isPositive(req.FeeRate.String()) {
		return badRequest(ctx, MsgInvalidFeeRate, fiber.Map{"fee_rate": req.FeeRate})
	}

	resp, err := h.api.BRC20Mint(ctx.UserContext(), inscriptionapi.BRC20MintRequest{
		Ticker:        req.Ticker,
		Amount:        req.Amount.String(),
		NumberOfMints: req.NumberOfMints.String(),
		SenderAddress: req.SenderAddress,
		FeeRate:       req.FeeRate.String(),
	})
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(ctx.JSON(resp))
}

func (h *HttpHandler) BRC20CheckTicker(ctx *fiber.Ctx) error {
	ticker := strings.TrimSpace(ctx.Params("ticker"))
	if ticker == "" {
		return badRequest(ctx, MsgTickerRequired, nil)
	}
	info, err := h.api.BRC20CheckTicker(ctx.UserContext(), ticker)
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(ctx.JSON(info))
}
