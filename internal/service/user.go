package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"doclib/internal/logging"
	"doclib/internal/model"
	"doclib/internal/repository"
	"doclib/internal/validation"
)

// UserService handles registration and the admin user listing.
type UserService interface {
	// Register validates and stores a new user. Emails must be unique (exact match).
	Register(ctx context.Context, in model.NewUser) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

type userService struct {
	repo repository.UserRepository
	log  logrus.FieldLogger
}

// NewUserService constructs a UserService. A nil logger discards output.
func NewUserService(repo repository.UserRepository, log logrus.FieldLogger) UserService {
	if log == nil {
		log = logging.Discard()
	}
	return &userService{repo: repo, log: log}
}

func (s *userService) Register(ctx context.Context, in model.NewUser) (*model.User, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = trimOptional(in.Phone)
	in.Institution = trimOptional(in.Institution)
	in.AreaOfInterest = trimOptional(in.AreaOfInterest)

	if details := validation.Struct(in); details != nil {
		return nil, &ValidationError{Details: details}
	}

	u, err := s.repo.Create(ctx, in)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	s.log.WithField("user_id", u.ID).Info("user registered")
	return u, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) Get(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	return mapNotFound(s.repo.FindByID(ctx, id))
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return mapNotFound(s.repo.FindByEmail(ctx, email))
}

func mapNotFound(u *model.User, err error) (*model.User, error) {
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}
