package httphandler

import (
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/core/types"
	"github.com/gaze-network/inscriber/pkg/inscriptionapi"
	"github.com/gofiber/fiber/v2"
)

// CreateCommit re-encodes the caller's multipart form for the inscription API.
func (h *HttpHandler) CreateCommit(ctx *fiber.Ctx) error {
	fileHeader, _ := ctx.FormFile("file")
	recipient := strings.TrimSpace(ctx.FormValue("recipient_address"))
	feeRate := strings.TrimSpace(ctx.FormValue("fee_rate"))
	if fileHeader == nil || recipient == "" || feeRate == "" {
		return badRequest(ctx, MsgMissingFieldsFile, fiber.Map{
			"hasFile":             fileHeader != nil,
			"hasRecipientAddress": recipient != "",
			"hasFeeRate":          feeRate != "",
		})
	}
	if !isPositive(feeRate) {
		return badRequest(ctx, MsgInvalidFeeRate, fiber.Map{"fee_rate": feeRate})
	}

	data, err := readFormFile(fileHeader)
	if err != nil {
		return errors.WithStack(err)
	}
	contentType := fileHeader.Header.Get(fiber.HeaderContentType)
	if contentType == "" {
		contentType = fiber.MIMEOctetStream
	}

	result, err := h.api.CreateCommit(ctx.UserContext(), inscriptionapi.CreateCommitRequest{
		File: types.File{
			Name:        fileHeader.Filename,
			ContentType: contentType,
			Data:        data,
		},
		RecipientAddress: recipient,
		FeeRate:          feeRate,
		SenderAddress:    strings.TrimSpace(ctx.FormValue("sender_address")),
	})
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(ctx.Status(http.StatusOK).JSON(result))
}

func readFormFile(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "can't open uploaded file")
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrap(err, "can't read uploaded file")
	}
	return data, nil
}

type paymentStatusRequest struct {
	PaymentAddress       string           `json:"payment_address"`
	RequiredAmountInSats types.FlexString `json:"required_amount_in_sats"`
	SenderAddress        string           `json:"sender_address"`
	ID                   types.FlexString `json:"id"`
}

func (h *HttpHandler) PaymentStatus(ctx *fiber.Ctx) error {
	var req paymentStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, MsgMissingFields, err.Error())
	}
	var amount types.Sats
	amountErr := amount.UnmarshalJSON([]byte(req.RequiredAmountInSats))
	if req.PaymentAddress == "" || req.SenderAddress == "" || req.ID == "" || req.RequiredAmountInSats == "" || amountErr != nil {
		return badRequest(ctx, MsgMissingFields, nil)
	}

	status, err := h.api.PaymentStatus(ctx.UserContext(), types.PaymentStatusRequest{
		PaymentAddress:       req.PaymentAddress,
		RequiredAmountInSats: amount.Int64(),
		SenderAddress:        req.SenderAddress,
		ID:                   req.ID.String(),
	})
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(ctx.JSON(status))
}

// GetInscription serves both /get-by-id?id= and /:id.
func (h *HttpHandler) GetInscription(ctx *fiber.Ctx) error {
	id := strings.TrimSpace(ctx.Query("id", ctx.Params("id")))
	if id == "" {
		return badRequest(ctx, MsgIDRequired, nil)
	}
	details, err := h.api.GetInscription(ctx.UserContext(), id)
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(ctx.JSON(details))
}

func (h *HttpHandler) GetInscriptionsBySender(ctx *fiber.Ctx) error {
	address := strings.TrimSpace(ctx.Query("address"))
	if address == "" {
		return badRequest(ctx, MsgAddressRequired, nil)
	}
	list, err := h.api.GetInscriptionsBySender(ctx.UserContext(), address)
	if err != nil {
		return errors.WithStack(err)
	}
	if list == nil {
		list = []types.InscriptionDetails{}
	}
	return errors.WithStack(ctx.JSON(list))
}

func (h *HttpHandler) GetStats(ctx *fiber.Ctx) error {
	stats, err := h.api.GetStats(ctx.UserContext())
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(ctx.JSON(stats))
}

func (h *HttpHandler) CreateReveal(ctx *fiber.Ctx) error {
	var req types.RevealRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, MsgMissingFields, err.Error())
	}
	if req.InscriptionID == "" || req.CommitTxID == "" || req.Amount <= 0 {
		return badRequest(ctx, MsgMissingFields, nil)
	}
	resp, err := h.api.CreateReveal(ctx.UserContext(), req)
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(ctx.JSON(resp))
}

func (h *HttpHandler) BroadcastReveal(ctx *fiber.Ctx) error {
	var req types.BroadcastRevealRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, MsgMissingFields, err.Error())
	}
	if strings.TrimSpace(req.RevealTxHex) == "" {
		return badRequest(ctx, MsgMissingFields, nil)
	}
	resp, err := h.api.BroadcastReveal(ctx.UserContext(), req)
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(ctx.JSON(resp))
}
