package user

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	domain "user-api-service/internal/domain/user"
	apperrors "user-api-service/pkg/errors"

	"github.com/go-playground/validator/v10"
)

// Repository defines the interface for user data access operations.
// It abstracts the data layer so different implementations (PostgreSQL
// in production, SQLite in tests) can be used interchangeably.
type Repository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, skip, limit int64) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
}

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// Service implements the business logic for user management.
type Service struct {
	repo     Repository
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a new Service with the provided repository and logger.
func New(r Repository, log *zap.Logger) *Service {
	return &Service{repo: r, log: log, validate: validator.New()}
}

// formatValidationError converts validator.ValidationErrors into a
// human-readable application error.
func formatValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewValidationError("", err.Error())
	}

	var messages []string
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", e.Field()))
		}
	}
	return apperrors.NewValidationError("", strings.Join(messages, ", "))
}

// CreateUser creates a new user after validating the request and
// checking email uniqueness. The unique index on email is the real
// guarantee; the pre-check exists to produce a friendly message.
func (s *Service) CreateUser(ctx context.Context, in CreateUserRequest) (*User, error) {
	s.log.Info("creating user", zap.String("name", in.Name), zap.String("email", in.Email))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	existing, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		s.log.Error("failed to check existing email", zap.String("email", in.Email), zap.Error(err))
		return nil, apperrors.NewInternalError("failed to validate email uniqueness", err)
	}
	if existing != nil {
		s.log.Warn("email already registered", zap.String("email", in.Email))
		return nil, apperrors.NewConflictError("user", "Email already registered")
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Name:  in.Name,
		Email: in.Email,
	})
	if err != nil {
		s.log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	return &User{
		ID:        created.ID,
		Name:      created.Name,
		Email:     created.Email,
		CreatedAt: created.CreatedAt,
	}, nil
}

// GetUser retrieves a user by ID. Any id that matches no row,
// non-positive ones included, reports not found.
func (s *Service) GetUser(ctx context.Context, in GetUserRequest) (*User, error) {
	u, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		s.log.Warn("failed to get user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return &User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}, nil
}

// DeleteUser removes a user by ID. The delete is hard; there is no
// tombstone and the id is never reused.
func (s *Service) DeleteUser(ctx context.Context, in DeleteUserRequest) (*DeleteUserResponse, error) {
	s.log.Info("deleting user", zap.Int64("id", in.ID))

	if err := s.repo.Delete(ctx, in.ID); err != nil {
		s.log.Warn("failed to delete user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return &DeleteUserResponse{ID: in.ID}, nil
}

// ListUsers retrieves a page of users ordered by id.
func (s *Service) ListUsers(ctx context.Context, in ListUsersRequest) (*ListUsersResponse, error) {
	if in.Skip < 0 {
		in.Skip = 0
	}
	if in.Limit <= 0 {
		in.Limit = defaultListLimit
	}
	if in.Limit > maxListLimit {
		in.Limit = maxListLimit
	}

	s.log.Debug("listing users", zap.Int64("skip", in.Skip), zap.Int64("limit", in.Limit))

	domainUsers, err := s.repo.List(ctx, in.Skip, in.Limit)
	if err != nil {
		s.log.Error("failed to list users", zap.Int64("skip", in.Skip), zap.Int64("limit", in.Limit), zap.Error(err))
		return nil, err
	}

	users := make([]User, len(domainUsers))
	for i, du := range domainUsers {
		users[i] = User{
			ID:        du.ID,
			Name:      du.Name,
			Email:     du.Email,
			CreatedAt: du.CreatedAt,
		}
	}

	return &ListUsersResponse{Users: users}, nil
}

// CountUsers returns the number of persisted users.
func (s *Service) CountUsers(ctx context.Context) (int64, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		s.log.Error("failed to count users", zap.Error(err))
		return 0, err
	}
	return count, nil
}
