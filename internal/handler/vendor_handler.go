package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/planora/planora-backend/internal/middleware"
	"github.com/planora/planora-backend/internal/models"
	"github.com/planora/planora-backend/internal/service"
	"github.com/planora/planora-backend/pkg/validation"
)

type VendorHandler struct {
	vendorService *service.VendorService
	eventService  *service.EventService
	validator     *validation.Validator
	log           *zap.Logger
}

func NewVendorHandler(vendorService *service.VendorService, eventService *service.EventService, validator *validation.Validator, log *zap.Logger) *VendorHandler {
	return &VendorHandler{
		vendorService: vendorService,
		eventService:  eventService,
		validator:     validator,
		log:           log,
	}
}

func (h *VendorHandler) GetVendors(c *fiber.Ctx) error {
	vendors, err := h.vendorService.GetVendors()
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(vendors)
}

func (h *VendorHandler) GetVendor(c *fiber.Ctx) error {
	vendor, err := h.vendorService.GetVendor(c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(vendor)
}

func (h *VendorHandler) GetMyProfile(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	vendor, err := h.vendorService.GetProfile(user.ID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(vendor)
}

func (h *VendorHandler) UpsertProfile(c *fiber.Ctx) error {
	var req models.VendorProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Message("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Message(validationMessage(err)))
	}

	user := middleware.CurrentUser(c)
	vendor, err := h.vendorService.UpsertProfile(user.ID, req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(vendor)
}

// GetMyEvents lists the events this vendor is assigned to.
func (h *VendorHandler) GetMyEvents(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	events, err := h.eventService.GetVendorEvents(user.ID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(events)
}

func (h *VendorHandler) AddService(c *fiber.Ctx) error {
	var req models.ServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Message("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Message(validationMessage(err)))
	}

	user := middleware.CurrentUser(c)
	svc, err := h.vendorService.AddService(user.ID, req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(svc)
}

func (h *VendorHandler) RemoveService(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if err := h.vendorService.RemoveService(user.ID, c.Params("serviceId")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(models.Message("Service removed successfully"))
}

func (h *VendorHandler) SetAvailability(c *fiber.Ctx) error {
	var req models.AvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Message("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Message(validationMessage(err)))
	}

	user := middleware.CurrentUser(c)
	vendor, err := h.vendorService.SetAvailability(user.ID, req.Availability)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(vendor)
}
