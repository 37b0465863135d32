package handlers

import (
	"errors"

	"wealthwise-chat/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingHandler struct {
	catalogService *service.CatalogService
	logger         *zap.Logger
}

func NewBookingHandler(catalogService *service.CatalogService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// ListBookings godoc
// @Summary List the authenticated user's bookings
// @Tags bookings
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.BookingResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/bookings [get]
func (h *BookingHandler) ListBookings(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	bookings, err := h.catalogService.ListUserBookings(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list bookings",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list bookings",
		})
	}
	return c.JSON(bookings)
}

// getUserID extracts the user id stored by the auth middleware.
func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userID, ok := c.Locals("userID").(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("user id not found in context")
	}
	return userID, nil
}
