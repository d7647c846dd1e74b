package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/fadehouse/barbershop-api/internal/domain/booking"
	"github.com/fadehouse/barbershop-api/internal/httperr"
	"github.com/fadehouse/barbershop-api/internal/media"
	"github.com/fadehouse/barbershop-api/internal/storage"
)

// 5 MiB before re-encoding; profile photos never need more.
const maxPhotoBytes = 5 << 20

type PhotoHandler struct {
	repo     domain.Repository
	uploader storage.Uploader
}

// NewPhotoHandler accepts a nil uploader; the endpoint then answers 503
// until media storage is configured.
func NewPhotoHandler(repo domain.Repository, uploader storage.Uploader) *PhotoHandler {
	return &PhotoHandler{
		repo:     repo,
		uploader: uploader,
	}
}

// Upload receives a multipart "photo" file, re-encodes it as a webp
// thumbnail and stores it under a random key.
func (h *PhotoHandler) Upload(c *gin.Context) {
	if h.uploader == nil {
		httperr.Unavailable(c, "media_storage_disabled", "Photo storage is not configured.")
		return
	}

	barberID, ok := parseBarberID(c)
	if !ok {
		return
	}

	if _, err := h.repo.FindBarber(c.Request.Context(), barberID); err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Multipart field 'photo' is required.")
		return
	}
	if file.Size > maxPhotoBytes {
		httperr.BadRequest(c, "photo_too_large", "Photo must be under 5 MB.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "photo_read_failed", "Could not read uploaded file.")
		return
	}
	defer src.Close()

	encoded, err := media.ProcessProfilePhoto(src)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "File is not a supported image (jpeg, png, webp).")
		return
	}

	key := fmt.Sprintf("barbers/%d/%s.webp", barberID, uuid.NewString())

	url, err := h.uploader.Upload(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		httperr.Internal(c, "photo_upload_failed", "Could not store photo.")
		return
	}

	if err := h.repo.UpdateBarberPhoto(c.Request.Context(), barberID, url); err != nil {
		httperr.Internal(c, "photo_save_failed", "Could not save photo URL.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}
