package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"doclib/internal/model"
	"doclib/internal/repository"
)

const documentColumns = `id, title, author, category, year, description, keywords, uploaded_by, file_name, file_path, file_size, created_at`

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db  *sql.DB
	now func() time.Time
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db, now: func() time.Time { return time.Now().UTC() }}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*model.Document, error) {
	var d model.Document
	if err := row.Scan(
		&d.ID,
		&d.Title,
		&d.Author,
		&d.Category,
		&d.Year,
		&d.Description,
		&d.Keywords,
		&d.UploadedBy,
		&d.FileName,
		&d.FilePath,
		&d.FileSize,
		&d.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a new document row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, meta model.DocumentMetadata, file model.FileRef) (*model.Document, error) {
	doc := model.NewDocument(meta, file)
	doc.ID = uuid.NewString()
	doc.CreatedAt = r.now()

	const q = `
		INSERT INTO documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		doc.ID,
		doc.Title,
		doc.Author,
		doc.Category,
		doc.Year,
		doc.Description,
		doc.Keywords,
		doc.UploadedBy,
		doc.FileName,
		doc.FilePath,
		doc.FileSize,
		doc.CreatedAt,
	)
	return scanDocument(row)
}

// FindByID fetches a single document by its ID.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	d, err := scanDocument(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

// List returns every document, oldest first.
func (r *DocumentPostgres) List(ctx context.Context) ([]model.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents ORDER BY created_at ASC, id ASC`
	return r.query(ctx, q)
}

// Search filters with ILIKE on the text columns and exact equality on category.
func (r *DocumentPostgres) Search(ctx context.Context, sq repository.SearchQuery) ([]model.Document, error) {
	const q = `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE ($1 = '' OR title ILIKE $2 OR author ILIKE $2
		       OR COALESCE(keywords, '') ILIKE $2 OR COALESCE(description, '') ILIKE $2)
		  AND ($3::text IS NULL OR category = $3)
		ORDER BY created_at ASC, id ASC
	`
	return r.query(ctx, q, sq.Text, likePattern(sq.Text), sq.Category)
}

// Delete removes a document by ID and reports whether a row was removed.
func (r *DocumentPostgres) Delete(ctx context.Context, id string) (bool, error) {
	const q = `DELETE FROM documents WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *DocumentPostgres) query(ctx context.Context, q string, args ...any) ([]model.Document, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern turns free text into a substring pattern with LIKE wildcards escaped.
func likePattern(text string) string {
	return "%" + likeEscaper.Replace(text) + "%"
}
