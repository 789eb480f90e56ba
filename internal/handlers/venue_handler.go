package handlers

import (
	"errors"
	"strings"

	"booking-backend/internal/models"
	"booking-backend/internal/repository"
	"booking-backend/internal/services"
	"booking-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type VenueHandler struct {
	service services.VenueService
	logger  *logrus.Logger
}

func NewVenueHandler(service services.VenueService, logger *logrus.Logger) *VenueHandler {
	return &VenueHandler{
		service: service,
		logger:  logger,
	}
}

// GetVenues godoc
// @Summary List venues by area
// @Description List every venue grouped by city and state, with the number of upcoming shows
// @Tags venues
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=[]projection.Area} "Venues grouped by area"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /venues [get]
func (h *VenueHandler) GetVenues(c *fiber.Ctx) error {
	ctx := c.UserContext()

	areas, err := h.service.ListAreas(ctx)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve venues")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Venues retrieved successfully", areas)
}

// SearchVenues godoc
// @Summary Search venues
// @Description Case-insensitive partial match on the venue name
// @Tags venues
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param search_term query string false "Search term"
// @Param search body models.SearchForm false "Search term (POST)"
// @Success 200 {object} utils.StandardResponse{data=projection.SearchResult[projection.VenueSummary]} "Matching venues"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /venues/search [get]
// @Router /venues/search [post]
func (h *VenueHandler) SearchVenues(c *fiber.Ctx) error {
	ctx := c.UserContext()

	term, err := searchTerm(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result, err := h.service.Search(ctx, term)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to search venues")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Venues retrieved successfully", result)
}

// GetVenue godoc
// @Summary Get venue
// @Description Venue details with genres and its past and upcoming shows
// @Tags venues
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} utils.StandardResponse{data=projection.VenueDetail} "Venue details"
// @Failure 400 {object} utils.StandardResponse "Invalid venue ID"
// @Failure 404 {object} utils.StandardResponse "Venue not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /venues/{id} [get]
func (h *VenueHandler) GetVenue(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, ok := parseID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid venue ID")
	}

	detail, err := h.service.GetDetail(ctx, id)
	if err != nil {
		return respondError(c, h.logger, err, venueLookupMessage(err))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Venue retrieved successfully", detail)
}

// GetCreateVenueForm godoc
// @Summary Blank venue form
// @Tags venues
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=models.VenueForm}
// @Router /venues/create [get]
func (h *VenueHandler) GetCreateVenueForm(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, "Venue form", models.VenueForm{Genres: []string{}})
}

// CreateVenue godoc
// @Summary List a new venue
// @Description Create a venue and its genres in one transaction
// @Tags venues
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param venue body models.VenueForm true "Venue form"
// @Success 201 {object} utils.StandardResponse{data=models.Venue} "Venue X was successfully listed!"
// @Failure 400 {object} utils.StandardResponse{data=services.ValidationResult} "Validation failed"
// @Failure 409 {object} utils.StandardResponse "Conflict"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /venues/create [post]
func (h *VenueHandler) CreateVenue(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var form models.VenueForm
	if err := c.BodyParser(&form); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	name := strings.TrimSpace(form.Name)

	venue, err := h.service.CreateVenue(ctx, form)
	if err != nil {
		return respondError(c, h.logger, err, "Venue "+name+" was not listed due to an error!")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Venue "+venue.Name+" was successfully listed!", venue)
}

// GetEditVenueForm godoc
// @Summary Venue edit form
// @Description The stored venue as a pre-filled form
// @Tags venues
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} utils.StandardResponse{data=models.VenueForm}
// @Failure 400 {object} utils.StandardResponse "Invalid venue ID"
// @Failure 404 {object} utils.StandardResponse "Venue not found"
// @Router /venues/{id}/edit [get]
func (h *VenueHandler) GetEditVenueForm(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, ok := parseID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid venue ID")
	}

	form, err := h.service.GetForm(ctx, id)
	if err != nil {
		return respondError(c, h.logger, err, venueLookupMessage(err))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Venue form", form)
}

// UpdateVenue godoc
// @Summary Edit a venue
// @Description Replace the venue fields and reconcile its genres in one transaction
// @Tags venues
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Venue ID"
// @Param venue body models.VenueForm true "Venue form"
// @Success 200 {object} utils.StandardResponse{data=models.Venue}
// @Failure 400 {object} utils.StandardResponse{data=services.ValidationResult} "Validation failed"
// @Failure 404 {object} utils.StandardResponse "Venue not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /venues/{id}/edit [post]
func (h *VenueHandler) UpdateVenue(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, ok := parseID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid venue ID")
	}

	var form models.VenueForm
	if err := c.BodyParser(&form); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	venue, err := h.service.UpdateVenue(ctx, id, form)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return respondError(c, h.logger, err, "Venue not found")
		}
		return respondError(c, h.logger, err, "Venue "+strings.TrimSpace(form.Name)+" could not be updated")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Venue "+venue.Name+" was successfully updated!", venue)
}

// DeleteVenue godoc
// @Summary Delete a venue
// @Description Delete a venue and its genres. Venues with shows cannot be deleted.
// @Tags venues
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} utils.StandardResponse "Venue deleted successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid venue ID"
// @Failure 404 {object} utils.StandardResponse "Venue not found"
// @Failure 409 {object} utils.StandardResponse "Venue still has shows"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /venues/{id} [delete]
func (h *VenueHandler) DeleteVenue(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, ok := parseID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid venue ID")
	}

	if err := h.service.DeleteVenue(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return respondError(c, h.logger, err, "Venue not found")
		case errors.Is(err, repository.ErrConflict):
			return respondError(c, h.logger, err, "Venue still has shows and cannot be deleted")
		}
		return respondError(c, h.logger, err, "Failed to delete venue")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Venue deleted successfully", nil)
}

func venueLookupMessage(err error) string {
	if errors.Is(err, repository.ErrNotFound) {
		return "Venue not found"
	}
	return "Failed to retrieve venue"
}
