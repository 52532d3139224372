package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"noteful/internal/domain"
)

// namedRow is the shared shape of the folders and tags tables.
type namedRow struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// namedTable implements storage for a table of uniquely named rows.
type namedTable struct {
	db    *sql.DB
	table string
}

const namedColumns = `id, name, created_at, updated_at`

func scanNamedRows(rows *sql.Rows) ([]namedRow, error) {
	defer rows.Close()
	out := make([]namedRow, 0)
	for rows.Next() {
		var r namedRow
		if err := rows.Scan(&r.ID, &r.Name, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// list orders by name under the "C" collation so ordering is byte-wise:
// capitals sort before lower case.
func (t namedTable) list(ctx context.Context) ([]namedRow, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY name COLLATE "C"`, namedColumns, t.table)
	rows, err := t.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanNamedRows(rows)
}

func (t namedTable) listByIDs(ctx context.Context, ids []string) ([]namedRow, error) {
	if len(ids) == 0 {
		return []namedRow{}, nil
	}
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = ANY($1)`, namedColumns, t.table)
	rows, err := t.db.QueryContext(ctx, query, stringArray(ids))
	if err != nil {
		return nil, err
	}
	return scanNamedRows(rows)
}

func (t namedTable) get(ctx context.Context, id string) (*namedRow, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, namedColumns, t.table)
	var r namedRow
	err := t.db.QueryRowContext(ctx, query, id).Scan(&r.ID, &r.Name, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return &r, nil
}

func (t namedTable) create(ctx context.Context, r namedRow) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4)`, t.table, namedColumns)
	_, err := t.db.ExecContext(ctx, query, r.ID, r.Name, r.CreatedAt, r.UpdatedAt)
	return translateError(err)
}

// update writes name and updated_at and returns the stored created_at.
func (t namedTable) update(ctx context.Context, id, name string, updatedAt time.Time) (time.Time, error) {
	query := fmt.Sprintf(`UPDATE %s SET name = $2, updated_at = $3 WHERE id = $1 RETURNING created_at`, t.table)
	var createdAt time.Time
	if err := t.db.QueryRowContext(ctx, query, id, name, updatedAt).Scan(&createdAt); err != nil {
		return time.Time{}, translateError(err)
	}
	return createdAt, nil
}

func (t namedTable) delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, t.table)
	result, err := t.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
