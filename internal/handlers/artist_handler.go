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

type ArtistHandler struct {
	service services.ArtistService
	logger  *logrus.Logger
}

func NewArtistHandler(service services.ArtistService, logger *logrus.Logger) *ArtistHandler {
	return &ArtistHandler{
		service: service,
		logger:  logger,
	}
}

// GetArtists godoc
// @Summary List artists
// @Description List every artist by id and name
// @Tags artists
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=[]projection.ArtistSummary} "Artists"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /artists [get]
func (h *ArtistHandler) GetArtists(c *fiber.Ctx) error {
	ctx := c.UserContext()

	artists, err := h.service.ListArtists(ctx)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to retrieve artists")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Artists retrieved successfully", artists)
}

// SearchArtists godoc
// @Summary Search artists
// @Description Case-insensitive partial match on the artist name
// @Tags artists
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param search_term query string false "Search term"
// @Param search body models.SearchForm false "Search term (POST)"
// @Success 200 {object} utils.StandardResponse{data=projection.SearchResult[projection.ArtistSearchSummary]} "Matching artists"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /artists/search [get]
// @Router /artists/search [post]
func (h *ArtistHandler) SearchArtists(c *fiber.Ctx) error {
	ctx := c.UserContext()

	term, err := searchTerm(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	result, err := h.service.Search(ctx, term)
	if err != nil {
		return respondError(c, h.logger, err, "Failed to search artists")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Artists retrieved successfully", result)
}

// GetArtist godoc
// @Summary Get artist
// @Description Artist details with genres and the past and upcoming shows they play
// @Tags artists
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} utils.StandardResponse{data=projection.ArtistDetail} "Artist details"
// @Failure 400 {object} utils.StandardResponse "Invalid artist ID"
// @Failure 404 {object} utils.StandardResponse "Artist not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /artists/{id} [get]
func (h *ArtistHandler) GetArtist(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, ok := parseID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid artist ID")
	}

	detail, err := h.service.GetDetail(ctx, id)
	if err != nil {
		return respondError(c, h.logger, err, artistLookupMessage(err))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Artist retrieved successfully", detail)
}

// GetCreateArtistForm godoc
// @Summary Blank artist form
// @Tags artists
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=models.ArtistForm}
// @Router /artists/create [get]
func (h *ArtistHandler) GetCreateArtistForm(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, "Artist form", models.ArtistForm{Genres: []string{}})
}

// CreateArtist godoc
// @Summary List a new artist
// @Description Create an artist and the genres in one transaction
// @Tags artists
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param artist body models.ArtistForm true "Artist form"
// @Success 201 {object} utils.StandardResponse{data=models.Artist} "Artist X was successfully listed!"
// @Failure 400 {object} utils.StandardResponse{data=services.ValidationResult} "Validation failed"
// @Failure 409 {object} utils.StandardResponse "Conflict"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /artists/create [post]
func (h *ArtistHandler) CreateArtist(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var form models.ArtistForm
	if err := c.BodyParser(&form); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	name := strings.TrimSpace(form.Name)

	artist, err := h.service.CreateArtist(ctx, form)
	if err != nil {
		return respondError(c, h.logger, err, "Artist "+name+" was not listed due to an error!")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Artist "+artist.Name+" was successfully listed!", artist)
}

// GetEditArtistForm godoc
// @Summary Artist edit form
// @Description The stored artist as a pre-filled form
// @Tags artists
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} utils.StandardResponse{data=models.ArtistForm}
// @Failure 400 {object} utils.StandardResponse "Invalid artist ID"
// @Failure 404 {object} utils.StandardResponse "Artist not found"
// @Router /artists/{id}/edit [get]
func (h *ArtistHandler) GetEditArtistForm(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, ok := parseID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid artist ID")
	}

	form, err := h.service.GetForm(ctx, id)
	if err != nil {
		return respondError(c, h.logger, err, artistLookupMessage(err))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Artist form", form)
}

// UpdateArtist godoc
// @Summary Edit an artist
// @Description Replace the artist fields and reconcile the genres in one transaction
// @Tags artists
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path int true "Artist ID"
// @Param artist body models.ArtistForm true "Artist form"
// @Success 200 {object} utils.StandardResponse{data=models.Artist}
// @Failure 400 {object} utils.StandardResponse{data=services.ValidationResult} "Validation failed"
// @Failure 404 {object} utils.StandardResponse "Artist not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /artists/{id}/edit [post]
func (h *ArtistHandler) UpdateArtist(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, ok := parseID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid artist ID")
	}

	var form models.ArtistForm
	if err := c.BodyParser(&form); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	artist, err := h.service.UpdateArtist(ctx, id, form)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return respondError(c, h.logger, err, "Artist not found")
		}
		return respondError(c, h.logger, err, "Artist "+strings.TrimSpace(form.Name)+" could not be updated")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Artist "+artist.Name+" was successfully updated!", artist)
}

// DeleteArtist godoc
// @Summary Delete an artist
// @Description Delete an artist and the genres. Artists with shows cannot be deleted.
// @Tags artists
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} utils.StandardResponse "Artist deleted successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid artist ID"
// @Failure 404 {object} utils.StandardResponse "Artist not found"
// @Failure 409 {object} utils.StandardResponse "Artist still has shows"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /artists/{id} [delete]
func (h *ArtistHandler) DeleteArtist(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, ok := parseID(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid artist ID")
	}

	if err := h.service.DeleteArtist(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return respondError(c, h.logger, err, "Artist not found")
		case errors.Is(err, repository.ErrConflict):
			return respondError(c, h.logger, err, "Artist still has shows and cannot be deleted")
		}
		return respondError(c, h.logger, err, "Failed to delete artist")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Artist deleted successfully", nil)
}

func artistLookupMessage(err error) string {
	if errors.Is(err, repository.ErrNotFound) {
		return "Artist not found"
	}
	return "Failed to retrieve artist"
}
