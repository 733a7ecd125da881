package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/planora/planora-backend/internal/models"
	"github.com/planora/planora-backend/pkg/apperr"
)

// respondError maps a service error to its HTTP status. Internal faults are
// logged with the real cause; the client only ever sees a generic message.
func respondError(c *fiber.Ctx, log *zap.Logger, err error) error {
	status := apperr.StatusCode(err)
	if status == fiber.StatusInternalServerError && log != nil {
		log.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	return c.Status(status).JSON(models.Message(apperr.PublicMessage(err)))
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return "Invalid value for field '" + verrs[0].Field() + "'"
	}
	return "Invalid request body"
}
