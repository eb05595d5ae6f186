package postgres

import (
	"testing"
	"time"

	"github.com/gaze-network/inscriber/core/orchestrator"
	"github.com/stretchr/testify/assert"
)

func TestMapRecord(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("UTC+7", 7*3600))
	rec := orchestrator.Record{
		AttemptID:          "a1",
		Flow:               "brc20",
		Generation:         3,
		Seq:                7,
		State:              orchestrator.StatePolling,
		InscriptionID:      "42",
		PaymentAddress:     "bc1qpay",
		RequiredAmountSats: 5000,
		FeeRate:            "10.5",
		SenderAddress:      "bc1qsender",
		Txid:               "abcd",
		At:                 at,
	}

	params := mapRecordToParams(rec)
	assert.Equal(t, "polling", params.State)
	assert.EqualValues(t, 3, params.Generation)
	assert.EqualValues(t, 7, params.Seq)
	assert.Equal(t, "10.5", params.FeeRate)
	assert.True(t, params.UpdatedAt.Valid)
	assert.Equal(t, time.UTC, params.UpdatedAt.Time.Location())
	assert.True(t, params.UpdatedAt.Time.Equal(at))
}

func TestMapRecordWithoutTime(t *testing.T) {
	params := mapRecordToParams(orchestrator.Record{AttemptID: "a1"})
	assert.True(t, params.UpdatedAt.Valid)
	assert.False(t, params.UpdatedAt.Time.IsZero())
}
