package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/planora/planora-backend/internal/middleware"
	"github.com/planora/planora-backend/internal/models"
	"github.com/planora/planora-backend/internal/service"
	"github.com/planora/planora-backend/pkg/validation"
)

type AuthHandler struct {
	authService *service.AuthService
	validator   *validation.Validator
	log         *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, validator *validation.Validator, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
		log:         log,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Message("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Message(validationMessage(err)))
	}

	resp, err := h.authService.Register(req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Message("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Message("Invalid credentials"))
	}

	resp, err := h.authService.Login(req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(resp)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	return c.JSON(fiber.Map{
		"user": user.Public(),
	})
}
