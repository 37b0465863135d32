package handlers

import (
	"wealthwise-chat/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
	logger         *zap.Logger
}

func NewCatalogHandler(catalogService *service.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// ListCourses godoc
// @Summary List active courses
// @Tags catalog
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {array} dto.CourseResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/courses [get]
func (h *CatalogHandler) ListCourses(c *fiber.Ctx) error {
	courses, err := h.catalogService.ListCourses(c.Context(), c.Query("category"))
	if err != nil {
		h.logger.Error("Failed to list courses", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list courses",
		})
	}
	return c.JSON(courses)
}

// ListExperts godoc
// @Summary List verified experts
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.ExpertResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/experts [get]
func (h *CatalogHandler) ListExperts(c *fiber.Ctx) error {
	experts, err := h.catalogService.ListExperts(c.Context())
	if err != nil {
		h.logger.Error("Failed to list experts", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list experts",
		})
	}
	return c.JSON(experts)
}

// ListVideos godoc
// @Summary List recent videos
// @Tags catalog
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {array} dto.VideoResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/videos [get]
func (h *CatalogHandler) ListVideos(c *fiber.Ctx) error {
	videos, err := h.catalogService.ListVideos(c.Context(), c.Query("category"))
	if err != nil {
		h.logger.Error("Failed to list videos", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list videos",
		})
	}
	return c.JSON(videos)
}
