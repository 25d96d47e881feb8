package user

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=user
type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)

	// GetUserByEmail returns (nil, nil) when no user has the email.
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	ListUsers(ctx context.Context, skip, take int) ([]*User, int, error)
	GetBasicByIDs(ctx context.Context, ids []uuid.UUID) ([]Basic, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Email string
	Name  string
}

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (p CreateParams) Validate() []FieldError {
	var errs []FieldError

	if len(p.Email) < 3 || !containsAt(p.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "must be a valid email address"})
	}

	if len(p.Name) < 2 {
		errs = append(errs, FieldError{Field: "name", Message: "must be at least 2 characters"})
	}

	return errs
}

func containsAt(s string) bool {
	for i := 1; i < len(s)-1; i++ {
		if s[i] == '@' {
			return true
		}
	}

	return false
}

// Create registers a user, rejecting duplicate emails with ErrEmailInUse.
func (s *Service) Create(ctx context.Context, params CreateParams) (*User, error) {
	existing, err := s.repo.GetUserByEmail(ctx, params.Email)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return nil, ErrEmailInUse
	}

	u := &User{Email: params.Email, Name: params.Name}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetUser(ctx, id)
}

// List returns a page of users, newest first. Page numbers start at 1;
// page sizes are clamped to [1, 100].
func (s *Service) List(ctx context.Context, page, pageSize int) ([]*User, int, error) {
	page = max(page, 1)
	pageSize = min(max(pageSize, 1), 100)

	return s.repo.ListUsers(ctx, (page-1)*pageSize, pageSize)
}

// AgentNames resolves ids to display names for breakdown enrichment. Ids
// the directory does not know are left out of the map.
func (s *Service) AgentNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]string{}, nil
	}

	basics, err := s.repo.GetBasicByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(basics))
	for _, b := range basics {
		names[b.ID] = b.Name
	}

	return names, nil
}
