package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/shulehq/shule/core/access"
)

type selectionStore struct {
	db *sqlx.DB
}

var _ access.SelectionStore = (*selectionStore)(nil) // interface compliance check

func NewSelectionStore(db *sql.DB) access.SelectionStore {
	return &selectionStore{db: sqlx.NewDb(db, "postgres")}
}

type selectionRow struct {
	PrincipalID string `db:"principal_id"`
	AcademyID   string `db:"academy_id"`
	Role        string `db:"role"`
}

func (s *selectionStore) SaveSelection(ctx context.Context, principal access.PrincipalID, sel access.Selection) error {
	const q = `
		INSERT INTO selection (principal_id, academy_id, role, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (principal_id)
		DO UPDATE SET academy_id = EXCLUDED.academy_id, role = EXCLUDED.role, updated_at = now()`
	_, err := s.db.ExecContext(ctx, q, string(principal), sel.TenantID, sel.Role)
	return errors.Wrap(err, "saving selection")
}

func (s *selectionStore) LoadSelection(ctx context.Context, principal access.PrincipalID) (*access.Selection, error) {
	const q = `SELECT principal_id, academy_id, role FROM selection WHERE principal_id = $1`

	row := new(selectionRow)
	if err := s.db.GetContext(ctx, row, q, string(principal)); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "loading selection")
	}
	return &access.Selection{TenantID: row.AcademyID, Role: row.Role}, nil
}

func (s *selectionStore) ClearSelection(ctx context.Context, principal access.PrincipalID) error {
	const q = `DELETE FROM selection WHERE principal_id = $1`
	_, err := s.db.ExecContext(ctx, q, string(principal))
	return errors.Wrap(err, "clearing selection")
}
