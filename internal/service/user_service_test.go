package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleanwater/report-service/internal/domain"
	"github.com/cleanwater/report-service/internal/repository"
	apperrors "github.com/cleanwater/report-service/pkg/util/errorutil"
)

func newUserService() *UserService {
	svc := NewUserService(repository.NewMemoryUserRepository())
	svc.now = func() time.Time { return time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC) }
	return svc
}

func validUserInput() UserRegisterInput {
	return UserRegisterInput{
		Name:       "John Citizen",
		Email:      "john@citizen.com",
		Password:   "demo123",
		Role:       domain.UserRoleCitizen,
		Department: "Community Member",
	}
}

func TestRegisterStampsCreatedAt(t *testing.T) {
	svc := newUserService()

	user, err := svc.Register(context.Background(), validUserInput())
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.Equal(t, "2026-01-15", user.CreatedAt)
	assert.Equal(t, "demo123", user.Password)
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	svc := newUserService()

	input := validUserInput()
	input.Password = ""
	_, err := svc.Register(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestRegisterRejectsMalformedEmail(t *testing.T) {
	svc := newUserService()

	for _, email := range []string{"not-an-email", "a@b", "a b@c.com", "@example.com"} {
		input := validUserInput()
		input.Email = email
		_, err := svc.Register(context.Background(), input)
		require.Error(t, err, "email %q should be rejected", email)
		domainErr := apperrors.ToDomainError(err)
		assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
		assert.Equal(t, "Invalid email format", domainErr.Message)
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc := newUserService()

	_, err := svc.Register(context.Background(), validUserInput())
	require.NoError(t, err)

	second := validUserInput()
	second.Name = "Someone Else"
	_, err = svc.Register(context.Background(), second)
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "CONFLICT", domainErr.Code)
	assert.Equal(t, "Email already registered", domainErr.Message)
}

func TestAuthenticateRequiresExactPasswordMatch(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, validUserInput())
	require.NoError(t, err)

	user, err := svc.Authenticate(ctx, "john@citizen.com", "demo123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, registered.ID, user.ID)

	user, err = svc.Authenticate(ctx, "john@citizen.com", "demo123 ")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = svc.Authenticate(ctx, "john@citizen.com", "Demo123")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = svc.Authenticate(ctx, "nobody@citizen.com", "demo123")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestGetAbsentUserReturnsNil(t *testing.T) {
	svc := newUserService()

	user, err := svc.Get(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUpdateOverwritesMutableFields(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	created, err := svc.Register(ctx, validUserInput())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, UserUpdateInput{
		Name:       "John Q. Citizen",
		Email:      "john.q@citizen.com",
		Password:   "newpass",
		Role:       domain.UserRoleOfficial,
		Department: "Field Inspections",
	})
	require.NoError(t, err)

	assert.Equal(t, "John Q. Citizen", updated.Name)
	assert.Equal(t, "john.q@citizen.com", updated.Email)
	assert.Equal(t, "newpass", updated.Password)
	assert.Equal(t, domain.UserRoleOfficial, updated.Role)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	// the old email no longer authenticates, the new one does
	user, err := svc.Authenticate(ctx, "john@citizen.com", "newpass")
	require.NoError(t, err)
	assert.Nil(t, user)

	user, err = svc.Authenticate(ctx, "john.q@citizen.com", "newpass")
	require.NoError(t, err)
	require.NotNil(t, user)
}

func TestUpdateToTakenEmailConflicts(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, validUserInput())
	require.NoError(t, err)

	second := validUserInput()
	second.Name = "Sarah Official"
	second.Email = "sarah@waterauthority.gov"
	created, err := svc.Register(ctx, second)
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, UserUpdateInput{
		Name:     "Sarah Official",
		Email:    "john@citizen.com",
		Password: "demo123",
		Role:     domain.UserRoleOfficial,
	})
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "CONFLICT", domainErr.Code)
	assert.Equal(t, "Email already registered", domainErr.Message)

	// both accounts keep their original emails
	user, err := svc.Authenticate(ctx, "sarah@waterauthority.gov", "demo123")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, created.ID, user.ID)
}

func TestUpdateMissingUserFails(t *testing.T) {
	svc := newUserService()

	_, err := svc.Update(context.Background(), 7, UserUpdateInput{Name: "x"})
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	assert.Equal(t, "User not found with id: 7", domainErr.Message)
}

func TestDeleteUserTwiceFails(t *testing.T) {
	svc := newUserService()
	ctx := context.Background()

	created, err := svc.Register(ctx, validUserInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	user, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, user)

	err = svc.Delete(ctx, created.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}
