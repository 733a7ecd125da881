package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planora/planora-backend/internal/models"
	"github.com/planora/planora-backend/internal/repository"
	"github.com/planora/planora-backend/internal/repository/memory"
	"github.com/planora/planora-backend/pkg/apperr"
	"github.com/planora/planora-backend/pkg/token"
)

func newAuthService() (*AuthService, *repository.Repositories) {
	repos := memory.NewRepositories()
	tokens := token.NewManager("test-secret", "test", time.Hour)
	return NewAuthService(repos.Users, tokens), repos
}

func TestRegisterIssuesTokenAndHashesPassword(t *testing.T) {
	svc, repos := newAuthService()

	resp, err := svc.Register(models.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Role:     models.RoleOrganizer,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.Equal(t, models.RoleOrganizer, resp.User.Role)

	stored, err := repos.Users.GetByEmail("alice@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.Password)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService()

	req := models.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret123", Role: models.RoleAttendee}
	_, err := svc.Register(req)
	require.NoError(t, err)

	_, err = svc.Register(req)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	assert.Equal(t, "User already exists", apperr.PublicMessage(err))
}

func TestLoginErrorsDoNotDistinguishCause(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.Register(models.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret123", Role: models.RoleAttendee})
	require.NoError(t, err)

	_, wrongPassword := svc.Login(models.LoginRequest{Email: "alice@example.com", Password: "nope"})
	_, unknownEmail := svc.Login(models.LoginRequest{Email: "nobody@example.com", Password: "secret123"})

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.Equal(t, apperr.PublicMessage(wrongPassword), apperr.PublicMessage(unknownEmail))
	assert.Equal(t, apperr.KindOf(wrongPassword), apperr.KindOf(unknownEmail))
}

func TestLoginSuccess(t *testing.T) {
	svc, _ := newAuthService()

	_, err := svc.Register(models.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret123", Role: models.RoleVendor})
	require.NoError(t, err)

	resp, err := svc.Login(models.LoginRequest{Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleVendor, resp.User.Role)
}
