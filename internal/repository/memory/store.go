package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"doclib/internal/model"
	"doclib/internal/repository"
)

// Store is the in-memory record table for users and documents.
// A single mutex guards both maps so uniqueness checks and inserts are one critical section.
type Store struct {
	mu sync.RWMutex

	users     map[string]model.User
	userOrder []string

	docs     map[string]model.Document
	docOrder []string

	now   func() time.Time
	newID func() string
}

// Option customizes a Store.
type Option func(*Store)

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides record ID generation.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// New returns an empty Store. IDs are random (v4) UUIDs.
func New(opts ...Option) *Store {
	s := &Store{
		users: make(map[string]model.User),
		docs:  make(map[string]model.Document),
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Users returns the user repository view of the store.
func (s *Store) Users() *UserStore { return &UserStore{s: s} }

// Documents returns the document repository view of the store.
func (s *Store) Documents() *DocumentStore { return &DocumentStore{s: s} }

// nextID must be called with mu held. It retries on the astronomically unlikely collision.
func (s *Store) nextID(taken func(string) bool) string {
	for {
		id := s.newID()
		if !taken(id) {
			return id
		}
	}
}

func removeID(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}

// UserStore implements repository.UserRepository over a Store.
type UserStore struct {
	s *Store
}

var _ repository.UserRepository = (*UserStore)(nil)

func (r *UserStore) Create(_ context.Context, in model.NewUser) (*model.User, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == in.Email {
			return nil, repository.ErrDuplicateEmail
		}
	}

	u := model.User{
		ID:             s.nextID(func(id string) bool { _, ok := s.users[id]; return ok }),
		FullName:       in.FullName,
		Email:          in.Email,
		Phone:          in.Phone,
		Institution:    in.Institution,
		AreaOfInterest: in.AreaOfInterest,
		CreatedAt:      s.now(),
	}
	u = u.Clone()
	s.users[u.ID] = u
	s.userOrder = append(s.userOrder, u.ID)

	out := u.Clone()
	return &out, nil
}

func (r *UserStore) FindByID(_ context.Context, id string) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := u.Clone()
	return &out, nil
}

// FindByEmail scans users in insertion order; the first exact match wins.
func (r *UserStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, id := range r.s.userOrder {
		if u := r.s.users[id]; u.Email == email {
			out := u.Clone()
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserStore) List(_ context.Context) ([]model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]model.User, 0, len(r.s.userOrder))
	for _, id := range r.s.userOrder {
		out = append(out, r.s.users[id].Clone())
	}
	return out, nil
}

// DocumentStore implements repository.DocumentRepository over a Store.
type DocumentStore struct {
	s *Store
}

var _ repository.DocumentRepository = (*DocumentStore)(nil)

func (r *DocumentStore) Create(_ context.Context, meta model.DocumentMetadata, file model.FileRef) (*model.Document, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	d := model.NewDocument(meta, file)
	d.ID = s.nextID(func(id string) bool { _, ok := s.docs[id]; return ok })
	d.CreatedAt = s.now()
	s.docs[d.ID] = d
	s.docOrder = append(s.docOrder, d.ID)

	out := d.Clone()
	return &out, nil
}

func (r *DocumentStore) FindByID(_ context.Context, id string) (*model.Document, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := d.Clone()
	return &out, nil
}

func (r *DocumentStore) List(ctx context.Context) ([]model.Document, error) {
	return r.Search(ctx, repository.SearchQuery{})
}

// Search is a linear scan; there is no index.
func (r *DocumentStore) Search(_ context.Context, q repository.SearchQuery) ([]model.Document, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]model.Document, 0, len(r.s.docOrder))
	for _, id := range r.s.docOrder {
		if d := r.s.docs[id]; q.Matches(d) {
			out = append(out, d.Clone())
		}
	}
	return out, nil
}

func (r *DocumentStore) Delete(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.docs[id]; !ok {
		return false, nil
	}
	delete(r.s.docs, id)
	r.s.docOrder = removeID(r.s.docOrder, id)
	return true, nil
}
