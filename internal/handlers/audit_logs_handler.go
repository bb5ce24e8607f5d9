package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	domainUser "github.com/BruksfildServices01/barbershop-api/internal/domain/user"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-api/internal/middleware"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	ucUser "github.com/BruksfildServices01/barbershop-api/internal/usecase/user"
)

// ======================================================
// HANDLER
// ======================================================

// AuditLister is satisfied by *audit.Logger.
type AuditLister interface {
	List(ctx context.Context, f audit.Filter) ([]models.AuditLog, int64, error)
}

type AuditLogsHandler struct {
	logs  AuditLister
	roles *ucUser.CheckRole
}

// NewAuditLogsHandler accepts a nil lister when no audit database is
// configured; the route then answers 503.
func NewAuditLogsHandler(logs AuditLister, roles *ucUser.CheckRole) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, roles: roles}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	chairman, err := h.roles.Has(c.Request.Context(), middleware.Email(c), domainUser.IsChairman)
	if err != nil {
		httperr.Internal(c, "role_check_failed", "Could not check role.")
		return
	}
	if !chairman {
		httperr.Forbidden(c)
		return
	}

	if h.logs == nil {
		httperr.Unavailable(c, "audit_disabled", "Audit storage is not configured.")
		return
	}

	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "50")

	page, _ := strconv.Atoi(pageStr)
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Actor:  c.Query("actor"),
		Page:   page,
		Limit:  limit,
	}

	// --------------------------------------------------
	// Optional date range
	// --------------------------------------------------

	if fromStr := c.Query("from"); fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			f.From = &from
		}
	}

	if toStr := c.Query("to"); toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			end := to.Add(24 * time.Hour)
			f.To = &end
		}
	}

	logs, total, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Could not list audit logs.")
		return
	}

	httpresp.Page(c, page, limit, total, logs)
}
