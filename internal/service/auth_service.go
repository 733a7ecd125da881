package service

import (
	"github.com/planora/planora-backend/internal/models"
	"github.com/planora/planora-backend/internal/repository"
	"github.com/planora/planora-backend/pkg/apperr"
	"github.com/planora/planora-backend/pkg/bcrypt"
	"github.com/planora/planora-backend/pkg/token"
)

type AuthService struct {
	users  repository.UserRepository
	tokens *token.Manager
}

func NewAuthService(users repository.UserRepository, tokens *token.Manager) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

func (s *AuthService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Internal("failed to hash password", err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     req.Role,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	signed, err := s.tokens.Generate(user.ID, string(user.Role))
	if err != nil {
		return nil, apperr.Internal("failed to generate token", err)
	}

	return &models.AuthResponse{
		Token: signed,
		User:  user.Public(),
	}, nil
}

func (s *AuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	// unknown email and wrong password produce the same error so callers
	// cannot enumerate accounts
	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		return nil, apperr.Validation("Invalid credentials")
	}
	if err := bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		return nil, apperr.Validation("Invalid credentials")
	}

	signed, err := s.tokens.Generate(user.ID, string(user.Role))
	if err != nil {
		return nil, apperr.Internal("failed to generate token", err)
	}

	return &models.AuthResponse{
		Token: signed,
		User:  user.Public(),
	}, nil
}
