package datagateway

import (
	"context"

	"github.com/gaze-network/inscriber/core/types"
	"github.com/gaze-network/inscriber/pkg/inscriptionapi"
)

type InscriptionDataGateway interface {
	CreateCommit(ctx context.Context, req inscriptionapi.CreateCommitRequest) (types.CommitResponse, error)
	PaymentStatus(ctx context.Context, req types.PaymentStatusRequest) (types.PaymentStatus, error)
	// GetInscription returns errs.NotFound if the API has no inscription with the given id.
	GetInscription(ctx context.Context, id string) (types.InscriptionDetails, error)
	GetInscriptionsBySender(ctx context.Context, address string) ([]types.InscriptionDetails, error)
	GetStats(ctx context.Context) (types.InscriptionStats, error)
	CreateReveal(ctx context.Context, req types.RevealRequest) (types.RevealResponse, error)
	BroadcastReveal(ctx context.Context, req types.BroadcastRevealRequest) (types.BroadcastRevealResponse, error)
}

var _ InscriptionDataGateway = (*inscriptionapi.Client)(nil)
