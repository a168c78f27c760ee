// Package dataset implements read-only access to the dataset catalog.
// The catalog itself is owned by another system; this core only resolves
// vendor ownership at inquiry creation time.
package dataset

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/dataharbor/inquiry-backend/internal/adapter/postgres"
	"github.com/dataharbor/inquiry-backend/internal/domain"
)

// Repo provides dataset lookups backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new dataset repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a dataset by primary key.
// Returns domain.ErrNotFound if the dataset does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dataset, error) {
	query := postgres.Builder().
		Select("id", "vendor_id", "title").
		From("datasets").
		Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	var row datasetRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "dataset", id)
	}

	return &domain.Dataset{ID: row.ID, VendorID: row.VendorID, Title: row.Title}, nil
}

type datasetRow struct {
	ID       uuid.UUID `db:"id"`
	VendorID uuid.UUID `db:"vendor_id"`
	Title    string    `db:"title"`
}
