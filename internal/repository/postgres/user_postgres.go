package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"doclib/internal/model"
	"doclib/internal/repository"
)

const (
	userColumns = `id, full_name, email, phone, institution, area_of_interest, created_at`

	uniqueViolation = "23505"
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
// Email uniqueness is enforced by the users_email_key constraint.
type UserPostgres struct {
	db  *sql.DB
	now func() time.Time
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db, now: func() time.Time { return time.Now().UTC() }}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

func scanUser(row rowScanner) (*model.User, error) {
	var u model.User
	if err := row.Scan(
		&u.ID,
		&u.FullName,
		&u.Email,
		&u.Phone,
		&u.Institution,
		&u.AreaOfInterest,
		&u.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a user row. A unique violation on email maps to repository.ErrDuplicateEmail.
func (r *UserPostgres) Create(ctx context.Context, in model.NewUser) (*model.User, error) {
	const q = `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns
	row := r.db.QueryRowContext(ctx, q,
		uuid.NewString(),
		in.FullName,
		in.Email,
		in.Phone,
		in.Institution,
		in.AreaOfInterest,
		r.now(),
	)
	u, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, repository.ErrDuplicateEmail
		}
		return nil, err
	}
	return u, nil
}

func (r *UserPostgres) FindByID(ctx context.Context, id string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.findOne(ctx, q, id)
}

func (r *UserPostgres) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE email = $1 ORDER BY created_at ASC LIMIT 1`
	return r.findOne(ctx, q, email)
}

// List returns every user, oldest first.
func (r *UserPostgres) List(ctx context.Context) ([]model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users ORDER BY created_at ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *UserPostgres) findOne(ctx context.Context, q string, arg string) (*model.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, q, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}
