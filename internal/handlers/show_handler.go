package handlers

import (
	"booking-backend/internal/models"
	"booking-backend/internal/services"
	"booking-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ShowHandler struct {
	service services.ShowService
	logger  *logrus.Logger
}

func NewShowHandler(service services.ShowService, logger *logrus.Logger) *ShowHandler {
	return &ShowHandler{
		service: service,
		logger:  logger,
	}
}

// GetShows godoc
// @Summary List shows
// @Description Every show with its venue and artist, soonest first, unscheduled shows last
// @Tags shows
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=[]projection.ShowListItem} "Shows"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /shows [get]
func (h *ShowHandler) GetShows(c *fiber.Ctx) error {
	ctx := c.UserContext()

	shows, err := h.service.ListShows(ctx)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve shows")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Shows retrieved successfully", shows)
}

// GetCreateShowForm godoc
// @Summary Blank show form
// @Tags shows
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=models.ShowForm}
// @Router /shows/create [get]
func (h *ShowHandler) GetCreateShowForm(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, "Show form", models.ShowForm{})
}

// CreateShow godoc
// @Summary List a new show
// @Description Book an artist at a venue. An empty start_time lists an unscheduled show.
// @Tags shows
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param show body models.ShowForm true "Show form"
// @Success 201 {object} utils.StandardResponse{data=models.Show} "Show was successfully listed!"
// @Failure 400 {object} utils.StandardResponse{data=services.ValidationResult} "Validation failed"
// @Failure 422 {object} utils.StandardResponse "Unknown artist or venue"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /shows/create [post]
func (h *ShowHandler) CreateShow(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var form models.ShowForm
	if err := c.BodyParser(&form); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	show, err := h.service.CreateShow(ctx, form)
	if err != nil {
		return respondError(c, h.logger, err, "Show was not listed due to an error!")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Show was successfully listed!", show)
}
