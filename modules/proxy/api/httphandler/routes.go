package httphandler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) Mount(router fiber.Router) error {
	r := router.Group("/api")

	inscriptions := r.Group("/inscriptions")
	inscriptions.Post("/create-commit", h.CreateCommit)
	inscriptions.Post("/payment-status", h.PaymentStatus)
	inscriptions.Get("/get-by-id", h.GetInscription)
	inscriptions.Get("/get-sender", h.GetInscriptionsBySender)
	inscriptions.Get("/stats", h.GetStats)
	inscriptions.Post("/create-reveal", h.CreateReveal)
	inscriptions.Post("/broadcast-reveal", h.BroadcastReveal)
	inscriptions.Get("/:id", h.GetInscription)

	r.Post("/auth/refresh-token", h.RefreshToken)

	brc20 := r.Group("/brc20")
	brc20.Post("/deploy", h.BRC20Deploy)
	brc20.Post("/mint", h.BRC20Mint)
	brc20.Get("/check-ticker/:ticker", h.BRC20CheckTicker)
	return nil
}
