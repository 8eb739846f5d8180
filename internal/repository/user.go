package repository

import (
	"context"

	"doclib/internal/model"
)

// UserRepository is the User half of the record store.
type UserRepository interface {
	// Create stores a new user. Returns ErrDuplicateEmail if the email (exact match) is taken.
	Create(ctx context.Context, in model.NewUser) (*model.User, error)

	// FindByID returns ErrNotFound when no user has the given ID.
	FindByID(ctx context.Context, id string) (*model.User, error)

	// FindByEmail returns ErrNotFound when no user has the given email.
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// List returns all users in insertion order.
	List(ctx context.Context) ([]model.User, error)
}
