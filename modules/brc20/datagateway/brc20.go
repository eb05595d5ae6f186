package datagateway

import (
	"context"

	"github.com/gaze-network/inscriber/core/types"
	"github.com/gaze-network/inscriber/pkg/inscriptionapi"
)

type BRC20DataGateway interface {
	BRC20Deploy(ctx context.Context, req inscriptionapi.BRC20DeployRequest) (types.BRC20OperationResponse, error)
	BRC20Mint(ctx context.Context, req inscriptionapi.BRC20MintRequest) (types.BRC20OperationResponse, error)
	BRC20CheckTicker(ctx context.Context, ticker string) (types.TickerInfo, error)
	PaymentStatus(ctx context.Context, req types.PaymentStatusRequest) (types.PaymentStatus, error)
}

var _ BRC20DataGateway = (*inscriptionapi.Client)(nil)
