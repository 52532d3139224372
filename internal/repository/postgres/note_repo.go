package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"noteful/internal/domain"
)

type noteRepository struct {
	DB *sql.DB
}

// NewNoteRepository returns a domain.NoteRepository implemented with Postgres.
func NewNoteRepository(db *sql.DB) domain.NoteRepository {
	return &noteRepository{DB: db}
}

const noteColumns = `id, title, content, folder_id, tag_ids, created_at, updated_at`

// stringArray never returns NULL, so it is safe for NOT NULL array columns.
func stringArray(ids []string) pq.StringArray {
	if ids == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(ids)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(s rowScanner) (*domain.Note, error) {
	n := &domain.Note{}
	var folderID sql.NullString
	var tagIDs pq.StringArray
	if err := s.Scan(&n.ID, &n.Title, &n.Content, &folderID, &tagIDs, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}
	if folderID.Valid {
		n.FolderID = folderID.String
	}
	n.TagIDs = []string(tagIDs)
	if n.TagIDs == nil {
		n.TagIDs = []string{}
	}
	return n, nil
}

// buildListQuery composes the filtered listing. Search uses strpos rather
// than LIKE so the term is matched literally.
func buildListQuery(filter domain.NoteFilter) (string, []any) {
	var where []string
	var args []any
	n := 1
	if filter.SearchTerm != "" {
		where = append(where, fmt.Sprintf("(strpos(lower(title), lower($%d)) > 0 OR strpos(lower(content), lower($%d)) > 0)", n, n))
		args = append(args, filter.SearchTerm)
		n++
	}
	if filter.FolderID != "" {
		where = append(where, fmt.Sprintf("folder_id = $%d", n))
		args = append(args, filter.FolderID)
		n++
	}
	if filter.TagID != "" {
		where = append(where, fmt.Sprintf("$%d = ANY(tag_ids)", n))
		args = append(args, filter.TagID)
		n++
	}
	query := `SELECT ` + noteColumns + ` FROM notes`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY updated_at DESC, id`
	if filter.Page != nil {
		query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, n, n+1)
		args = append(args, filter.Page.PageSize, filter.Page.Offset())
	}
	return query, args
}

func (r *noteRepository) List(ctx context.Context, filter domain.NoteFilter) ([]*domain.Note, error) {
	query, args := buildListQuery(filter)
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	notes := make([]*domain.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *noteRepository) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = $1`
	n, err := scanNote(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translateError(err)
	}
	return n, nil
}

func (r *noteRepository) Create(ctx context.Context, n *domain.Note) error {
	query := `
		INSERT INTO notes (id, title, content, folder_id, tag_ids, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.DB.ExecContext(ctx, query,
		n.ID, n.Title, n.Content, nullString(n.FolderID), stringArray(n.TagIDs), n.CreatedAt, n.UpdatedAt)
	return err
}

func (r *noteRepository) Update(ctx context.Context, id string, patch domain.NotePatch, updatedAt time.Time) (*domain.Note, error) {
	var setClauses []string
	var args []any
	n := 1
	if patch.Title.Set {
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", n))
		args = append(args, patch.Title.Value)
		n++
	}
	if patch.Content.Set {
		setClauses = append(setClauses, fmt.Sprintf("content = $%d", n))
		args = append(args, patch.Content.Value)
		n++
	}
	if patch.FolderID.Set {
		if patch.FolderID.Value == "" {
			setClauses = append(setClauses, "folder_id = NULL")
		} else {
			setClauses = append(setClauses, fmt.Sprintf("folder_id = $%d", n))
			args = append(args, patch.FolderID.Value)
			n++
		}
	}
	if patch.TagIDs.Set {
		setClauses = append(setClauses, fmt.Sprintf("tag_ids = $%d", n))
		args = append(args, stringArray(patch.TagIDs.Value))
		n++
	}
	setClauses = append(setClauses, fmt.Sprintf("updated_at = $%d", n))
	args = append(args, updatedAt)
	n++
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE notes SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, noteColumns)
	note, err := scanNote(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, translateError(err)
	}
	return note, nil
}

func (r *noteRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *noteRepository) PullTag(ctx context.Context, tagID string) (int64, error) {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE notes SET tag_ids = array_remove(tag_ids, $1) WHERE $1 = ANY(tag_ids)`, tagID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *noteRepository) ClearFolder(ctx context.Context, folderID string) (int64, error) {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE notes SET folder_id = NULL WHERE folder_id = $1`, folderID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
