package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/cleanwater/report-service/internal/domain"
	"github.com/cleanwater/report-service/internal/repository"
	apperrors "github.com/cleanwater/report-service/pkg/util/errorutil"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserService coordinates account registration, lookup and the
// password-equality login check. Passwords are stored and compared as raw
// strings; this mirrors the upstream system and is a known weakness.
type UserService struct {
	users repository.UserRepository
	now   func() time.Time
}

// UserRegisterInput describes a registration payload.
type UserRegisterInput struct {
	Name       string
	Email      string
	Password   string
	Role       string
	Department string
}

// UserUpdateInput describes a full account update. CreatedAt is immutable.
type UserUpdateInput struct {
	Name       string
	Email      string
	Password   string
	Role       string
	Department string
}

// NewUserService constructs the service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users, now: time.Now}
}

// List returns every account.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Get returns the account, or nil when absent.
func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return user, err
}

// Register validates and persists a new account, stamping its creation date.
func (s *UserService) Register(ctx context.Context, input UserRegisterInput) (*domain.User, error) {
	missing := missingFields(map[string]string{
		"name":     input.Name,
		"email":    input.Email,
		"password": input.Password,
		"role":     input.Role,
	})
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError(
			"name, email, password and role are required",
			map[string]any{"missing": missing})
	}
	if !emailPattern.MatchString(input.Email) {
		return nil, apperrors.NewValidationError("Invalid email format", nil)
	}

	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, apperrors.NewConflict("Email already registered", nil)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	user := &domain.User{
		Name:       input.Name,
		Email:      input.Email,
		Password:   input.Password,
		Role:       input.Role,
		Department: input.Department,
		CreatedAt:  s.now().Format(dateLayout),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.NewConflict("Email already registered", nil)
		}
		return nil, err
	}
	return user, nil
}

// Authenticate returns the account matching email whose stored password
// equals the supplied one exactly, or nil when no such account exists.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if user.Password != password {
		return nil, nil
	}
	return user, nil
}

// Update overwrites every mutable field of an existing account.
func (s *UserService) Update(ctx context.Context, id int64, input UserUpdateInput) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundUser(id, err)
	}

	user.Name = input.Name
	user.Email = input.Email
	user.Password = input.Password
	user.Role = input.Role
	user.Department = input.Department

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.NewConflict("Email already registered", nil)
		}
		return nil, notFoundUser(id, err)
	}
	return user, nil
}

// Delete removes the account.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return notFoundUser(id, err)
	}
	return nil
}

func notFoundUser(id int64, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewNotFound(fmt.Sprintf("User not found with id: %d", id), nil)
	}
	return err
}
