package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	domainUser "github.com/BruksfildServices01/barbershop-api/internal/domain/user"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-api/internal/media"
	"github.com/BruksfildServices01/barbershop-api/internal/middleware"
)

// UserHandler serves user reads and the avatar upload. uploader may be nil
// when object storage is not configured.
type UserHandler struct {
	repo     domainUser.Repository
	uploader media.Uploader
}

func NewUserHandler(repo domainUser.Repository, uploader media.Uploader) *UserHandler {
	return &UserHandler{repo: repo, uploader: uploader}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.repo.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "users_list_failed", "Could not list users.")
		return
	}
	httpresp.OK(c, users)
}

// GetMe returns the caller's own user document (?email= must match).
func (h *UserHandler) GetMe(c *gin.Context) {
	email, ok := selfEmail(c)
	if !ok {
		return
	}

	u, err := h.repo.GetByEmail(c.Request.Context(), email)
	if err != nil {
		httperr.Store(c, err, "user_get_failed", "Could not load user.")
		return
	}
	httpresp.OK(c, u)
}

// UploadAvatar expects a multipart "image" field. The image is re-encoded as
// webp before upload and the public URL stored on the user.
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	email := c.Param("email")
	if email != middleware.Email(c) {
		httperr.ForbiddenOwner(c)
		return
	}

	if h.uploader == nil {
		httperr.Unavailable(c, "storage_disabled", "Image storage is not configured.")
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Field image is required.")
		return
	}
	if fh.Size > media.MaxUploadBytes {
		httperr.Write(c, http.StatusRequestEntityTooLarge, "image_too_large", "Image exceeds 5MB.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Could not read image.")
		return
	}
	defer f.Close()

	body, err := media.ToWebP(f, media.MaxAvatarEdge)
	if errors.Is(err, media.ErrUnsupportedImage) {
		httperr.BadRequest(c, "invalid_image", "Unsupported image format.")
		return
	}
	if errors.Is(err, media.ErrImageTooLarge) {
		httperr.Write(c, http.StatusRequestEntityTooLarge, "image_too_large", "Image dimensions exceed 8000px.")
		return
	}
	if err != nil {
		httperr.Internal(c, "image_encode_failed", "Could not process image.")
		return
	}

	url, err := h.uploader.Upload(c.Request.Context(), "avatars", media.WebPContentType, body)
	if err != nil {
		log.Printf("avatar upload failed email=%s: %v", email, err)
		httperr.Write(c, http.StatusBadGateway, "upload_failed", "Could not store image.")
		return
	}

	res, err := h.repo.SetImage(c.Request.Context(), email, url)
	if err != nil {
		httperr.Internal(c, "user_update_failed", "Could not save image.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"img":    url,
		"result": res,
	})
}
