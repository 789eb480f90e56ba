package handlers

import (
	"errors"
	"strconv"

	"booking-backend/internal/models"
	"booking-backend/internal/repository"
	"booking-backend/internal/services"
	"booking-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// errorStatus maps a service error onto the HTTP status returned for it.
func errorStatus(err error) int {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return fiber.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, repository.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, repository.ErrMissingReference):
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

// respondError writes the envelope for a failed service call. Validation
// failures carry their field errors as data.
func respondError(c *fiber.Ctx, logger *logrus.Logger, err error, message string) error {
	status := errorStatus(err)

	entry := logger.WithError(err).WithFields(logrus.Fields{
		"path":   c.Path(),
		"status": status,
	})
	if status >= fiber.StatusInternalServerError {
		entry.Error(message)
	} else {
		entry.Warn(message)
	}

	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return utils.ErrorWithDataResponse(c, status, message, verr.Result)
	}
	return utils.ErrorResponse(c, status, message)
}

// parseID reads the :id route parameter. Zero is not a valid id.
func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// searchTerm reads search_term from the query string or, for POST, the body.
func searchTerm(c *fiber.Ctx) (string, error) {
	var form models.SearchForm
	if c.Method() == fiber.MethodPost && len(c.Body()) > 0 {
		if err := c.BodyParser(&form); err != nil {
			return "", err
		}
	}
	if form.SearchTerm == "" {
		form.SearchTerm = c.Query("search_term")
	}
	return form.SearchTerm, nil
}
