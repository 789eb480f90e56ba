package handlers

import (
	"context"

	"booking-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ImagePresigner issues upload URLs for venue and artist images.
type ImagePresigner interface {
	GeneratePresignedURL(ctx context.Context, folder, filename string) (presignedURL, publicURL string, err error)
}

type UploadHandler struct {
	images ImagePresigner
	logger *logrus.Logger
}

func NewUploadHandler(images ImagePresigner, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		images: images,
		logger: logger,
	}
}

// GetPresignedURL godoc
// @Summary Get presigned URL for an image upload
// @Description Generate a presigned PUT URL for a venue or artist image. Store the returned public_url as the image_link.
// @Tags Upload
// @Accept json
// @Produce json
// @Param folder query string true "Image folder" Enums(venues, artists)
// @Param filename query string true "Filename"
// @Success 200 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Router /upload/presign [get]
func (h *UploadHandler) GetPresignedURL(c *fiber.Ctx) error {
	folder := c.Query("folder")
	if folder != "venues" && folder != "artists" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "folder must be venues or artists")
	}

	filename := c.Query("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "filename is required")
	}

	presignedURL, publicURL, err := h.images.GeneratePresignedURL(c.UserContext(), folder, filename)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate presigned URL")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate presigned URL")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Presigned URL generated successfully", fiber.Map{
		"presigned_url": presignedURL,
		"public_url":    publicURL,
	})
}
