package datagateway

import (
	"context"

	"github.com/gaze-network/inscriber/core/orchestrator"
	"github.com/gaze-network/inscriber/modules/inscription/entity"
)

type HistoryDataGateway interface {
	HistoryReaderDataGateway
	HistoryWriterDataGateway
}

type HistoryReaderDataGateway interface {
	// GetLatestAttempts returns the most recently updated attempts first. An empty flow matches every flow.
	GetLatestAttempts(ctx context.Context, flow string, limit int32) ([]entity.Attempt, error)
	// GetAttemptByID returns errs.NotFound if no attempt has the given id.
	GetAttemptByID(ctx context.Context, id string) (entity.Attempt, error)
}

type HistoryWriterDataGateway interface {
	orchestrator.Recorder
}
