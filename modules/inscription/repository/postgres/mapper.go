package postgres

import (
	"time"

	"github.com/gaze-network/inscriber/core/orchestrator"
	"github.com/gaze-network/inscriber/modules/inscription/entity"
	"github.com/gaze-network/inscriber/modules/inscription/repository/postgres/gen"
	"github.com/jackc/pgx/v5/pgtype"
)

func mapRecordToParams(src orchestrator.Record) gen.UpsertAttemptParams {
	at := src.At
	if at.IsZero() {
		at = time.Now()
	}
	return gen.UpsertAttemptParams{
		ID:                 src.AttemptID,
		Flow:               src.Flow,
		State:              src.State.String(),
		Generation:         int64(src.Generation),
		Seq:                int64(src.Seq),
		InscriptionID:      src.InscriptionID,
		PaymentAddress:     src.PaymentAddress,
		RequiredAmountSats: src.RequiredAmountSats,
		FeeRate:            src.FeeRate,
		SenderAddress:      src.SenderAddress,
		Txid:               src.Txid,
		Error:              src.ErrMessage,
		UpdatedAt:          pgtype.Timestamptz{Time: at.UTC(), Valid: true},
	}
}

func mapAttemptModelToType(src gen.InscriptionAttempt) entity.Attempt {
	var createdAt, updatedAt time.Time
	if src.CreatedAt.Valid {
		createdAt = src.CreatedAt.Time.UTC()
	}
	if src.UpdatedAt.Valid {
		updatedAt = src.UpdatedAt.Time.UTC()
	}
	return entity.Attempt{
		ID:                 src.ID,
		Flow:               src.Flow,
		State:              orchestrator.State(src.State),
		InscriptionID:      src.InscriptionID,
		PaymentAddress:     src.PaymentAddress,
		RequiredAmountSats: src.RequiredAmountSats,
		FeeRate:            src.FeeRate,
		SenderAddress:      src.SenderAddress,
		Txid:               src.Txid,
		Error:              src.Error,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
}
