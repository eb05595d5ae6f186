package datagateway

import (
	"context"

	"github.com/gaze-network/inscriber/core/types"
	"github.com/gaze-network/inscriber/pkg/inscriptionapi"
)

// UpstreamDataGateway is the inscription API as seen by the proxy routes.
type UpstreamDataGateway interface {
	CreateCommit(ctx context.Context, req inscriptionapi.CreateCommitRequest) (types.CommitResponse, error)
	PaymentStatus(ctx context.Context, req types.PaymentStatusRequest) (types.PaymentStatus, error)
	GetInscription(ctx context.Context, id string) (types.InscriptionDetails, error)
	GetInscriptionsBySender(ctx context.Context, address string) ([]types.InscriptionDetails, error)
	GetStats(ctx context.Context) (types.InscriptionStats, error)
	CreateReveal(ctx context.Context, req types.RevealRequest) (types.RevealResponse, error)
	BroadcastReveal(ctx context.Context, req types.BroadcastRevealRequest) (types.BroadcastRevealResponse, error)
	RefreshToken(ctx context.Context) (string, error)
	BRC20Deploy(ctx context.Context, req inscriptionapi.BRC20DeployRequest) (types.BRC20OperationResponse, error)
	BRC20Mint(ctx context.Context, req inscriptionapi.BRC20MintRequest) (types.BRC20OperationResponse, error)
	BRC20CheckTicker(ctx context.Context, ticker string) (types.TickerInfo, error)
}

var _ UpstreamDataGateway = (*inscriptionapi.Client)(nil)
