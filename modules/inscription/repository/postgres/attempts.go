package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/common/errs"
	"github.com/gaze-network/inscriber/core/orchestrator"
	"github.com/gaze-network/inscriber/modules/inscription/entity"
	"github.com/gaze-network/inscriber/modules/inscription/repository/postgres/gen"
	"github.com/jackc/pgx/v5"
	"github.com/samber/lo"
)

// Record upserts the attempt. Records older than the stored one are ignored.
func (r *Repository) Record(ctx context.Context, rec orchestrator.Record) error {
	if err := r.queries.UpsertAttempt(ctx, mapRecordToParams(rec)); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) GetAttemptByID(ctx context.Context, id string) (entity.Attempt, error) {
	model, err := r.queries.GetAttemptByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Attempt{}, errors.WithStack(errs.NotFound)
		}
		return entity.Attempt{}, errors.Wrap(err, "error during query")
	}
	return mapAttemptModelToType(model), nil
}

func (r *Repository) GetLatestAttempts(ctx context.Context, flow string, limit int32) ([]entity.Attempt, error) {
	models, err := r.queries.GetLatestAttempts(ctx, gen.GetLatestAttemptsParams{
		Flow:       flow,
		LimitCount: limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "error during query")
	}
	return lo.Map(models, func(m gen.InscriptionAttempt, _ int) entity.Attempt {
		return mapAttemptModelToType(m)
	}), nil
}
