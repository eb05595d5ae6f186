package postgres

import (
	"github.com/gaze-network/inscriber/internal/postgres"
	"github.com/gaze-network/inscriber/modules/inscription/datagateway"
	"github.com/gaze-network/inscriber/modules/inscription/repository/postgres/gen"
)

var _ datagateway.HistoryDataGateway = (*Repository)(nil)

type Repository struct {
	db      postgres.DB
	queries *gen.Queries
}

func NewRepository(db postgres.DB) *Repository {
	return &Repository{
		db:      db,
		queries: gen.New(db),
	}
}
