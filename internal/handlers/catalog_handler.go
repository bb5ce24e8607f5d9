package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-api/internal/domain/catalog"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

// CatalogHandler serves the plain list/create collections: services,
// barbers, reviews, managers and features. Create bodies are any JSON
// object and are stored without schema checks.
type CatalogHandler struct {
	repo catalog.Repository
}

func NewCatalogHandler(repo catalog.Repository) *CatalogHandler {
	return &CatalogHandler{repo: repo}
}

// ======================================================
// SERVICES
// ======================================================

func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.repo.ListServices(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "services_list_failed", "Could not list services.")
		return
	}
	httpresp.OK(c, services)
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var doc models.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid body.")
		return
	}

	res, err := h.repo.CreateService(c.Request.Context(), doc)
	if err != nil {
		httperr.Internal(c, "service_create_failed", "Could not create service.")
		return
	}
	httpresp.OK(c, res)
}

// ======================================================
// BARBERS
// ======================================================

func (h *CatalogHandler) ListBarbers(c *gin.Context) {
	barbers, err := h.repo.ListBarbers(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "barbers_list_failed", "Could not list barbers.")
		return
	}
	httpresp.OK(c, barbers)
}

func (h *CatalogHandler) GetBarber(c *gin.Context) {
	barber, err := h.repo.GetBarber(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Store(c, err, "barber_get_failed", "Could not load barber.")
		return
	}
	httpresp.OK(c, barber)
}

func (h *CatalogHandler) CreateBarber(c *gin.Context) {
	var doc models.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid body.")
		return
	}

	res, err := h.repo.CreateBarber(c.Request.Context(), doc)
	if err != nil {
		httperr.Internal(c, "barber_create_failed", "Could not create barber.")
		return
	}
	httpresp.OK(c, res)
}

// ======================================================
// REVIEWS
// ======================================================

func (h *CatalogHandler) ListReviews(c *gin.Context) {
	reviews, err := h.repo.ListReviews(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "reviews_list_failed", "Could not list reviews.")
		return
	}
	httpresp.OK(c, reviews)
}

func (h *CatalogHandler) CreateReview(c *gin.Context) {
	var doc models.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid body.")
		return
	}

	res, err := h.repo.CreateReview(c.Request.Context(), doc)
	if err != nil {
		httperr.Internal(c, "review_create_failed", "Could not create review.")
		return
	}
	httpresp.OK(c, res)
}

// MyReviews lists the reviews the client wrote.
func (h *CatalogHandler) MyReviews(c *gin.Context) {
	email, ok := selfEmail(c)
	if !ok {
		return
	}

	reviews, err := h.repo.ListReviewsByEmail(c.Request.Context(), email)
	if err != nil {
		httperr.Internal(c, "reviews_list_failed", "Could not list reviews.")
		return
	}
	httpresp.OK(c, reviews)
}

// MyCustomerReviews lists the reviews left for the barber with this email.
func (h *CatalogHandler) MyCustomerReviews(c *gin.Context) {
	email, ok := selfEmail(c)
	if !ok {
		return
	}

	reviews, err := h.repo.ListReviewsByBarberEmail(c.Request.Context(), email)
	if err != nil {
		httperr.Internal(c, "reviews_list_failed", "Could not list reviews.")
		return
	}
	httpresp.OK(c, reviews)
}

// ======================================================
// MANAGERS / FEATURES
// ======================================================

func (h *CatalogHandler) ListManagers(c *gin.Context) {
	managers, err := h.repo.ListManagers(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "managers_list_failed", "Could not list managers.")
		return
	}
	httpresp.OK(c, managers)
}

func (h *CatalogHandler) CreateManager(c *gin.Context) {
	var doc models.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid body.")
		return
	}

	res, err := h.repo.CreateManager(c.Request.Context(), doc)
	if err != nil {
		httperr.Internal(c, "manager_create_failed", "Could not create manager.")
		return
	}
	httpresp.OK(c, res)
}

func (h *CatalogHandler) ListFeatures(c *gin.Context) {
	features, err := h.repo.ListFeatures(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "features_list_failed", "Could not list features.")
		return
	}
	httpresp.OK(c, features)
}
