package entity

import (
	"time"

	"github.com/gaze-network/inscriber/core/orchestrator"
)

// Attempt is the journaled last known state of one attempt.
type Attempt struct {
	ID                 string
	Flow               string
	State              orchestrator.State
	InscriptionID      string
	PaymentAddress     string
	RequiredAmountSats int64
	FeeRate            string
	SenderAddress      string
	Txid               string
	Error              string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
