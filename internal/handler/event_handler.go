package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/planora/planora-backend/internal/middleware"
	"github.com/planora/planora-backend/internal/models"
	"github.com/planora/planora-backend/internal/service"
	"github.com/planora/planora-backend/pkg/qrcode"
	"github.com/planora/planora-backend/pkg/validation"
)

type EventHandler struct {
	eventService *service.EventService
	qrService    *qrcode.Service
	validator    *validation.Validator
	log          *zap.Logger
}

func NewEventHandler(eventService *service.EventService, qrService *qrcode.Service, validator *validation.Validator, log *zap.Logger) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		qrService:    qrService,
		validator:    validator,
		log:          log,
	}
}

func (h *EventHandler) GetEvents(c *fiber.Ctx) error {
	events, err := h.eventService.GetEvents()
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(events)
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req models.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Message("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Message(validationMessage(err)))
	}

	user := middleware.CurrentUser(c)
	event, err := h.eventService.CreateEvent(user.ID, req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	event, err := h.eventService.GetEvent(c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(event)
}

func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	var req models.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Message("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Message(validationMessage(err)))
	}

	user := middleware.CurrentUser(c)
	event, err := h.eventService.UpdateEvent(user.ID, c.Params("id"), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(event)
}

func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if err := h.eventService.DeleteEvent(user.ID, c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(models.Message("Event deleted successfully"))
}

func (h *EventHandler) AssignVendor(c *fiber.Ctx) error {
	var req models.AssignVendorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Message("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Message(validationMessage(err)))
	}

	user := middleware.CurrentUser(c)
	event, err := h.eventService.AssignVendor(user.ID, c.Params("id"), req.VendorID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(event)
}

func (h *EventHandler) UnassignVendor(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	event, err := h.eventService.UnassignVendor(user.ID, c.Params("id"), c.Params("vendorId"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(event)
}

func (h *EventHandler) Attend(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	attendance, err := h.eventService.RegisterAttendance(c.Params("id"), user)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(attendance)
}

func (h *EventHandler) GetAttendees(c *fiber.Ctx) error {
	attendees, err := h.eventService.GetAttendees(c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(attendees)
}

// PaymentQR renders the event's payment URI as a PNG QR code. The QR encodes
// the URI only; nothing is settled or verified here.
func (h *EventHandler) PaymentQR(c *fiber.Ctx) error {
	event, err := h.eventService.GetEvent(c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}

	size := c.QueryInt("size", qrcode.DefaultSize)
	png, err := h.qrService.PaymentQR(event.ID, event.Price, size)
	if err != nil {
		return respondError(c, h.log, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
