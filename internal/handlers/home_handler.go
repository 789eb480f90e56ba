package handlers

import (
	"booking-backend/internal/services"
	"booking-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type HomeHandler struct {
	service services.DirectoryService
	logger  *logrus.Logger
}

func NewHomeHandler(service services.DirectoryService, logger *logrus.Logger) *HomeHandler {
	return &HomeHandler{
		service: service,
		logger:  logger,
	}
}

// GetHome godoc
// @Summary Directory overview
// @Description Number of venues, artists and shows listed
// @Tags home
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=services.DirectoryStats}
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router / [get]
func (h *HomeHandler) GetHome(c *fiber.Ctx) error {
	ctx := c.UserContext()

	stats, err := h.service.Stats(ctx)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to load directory")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Welcome to the booking directory", stats)
}
