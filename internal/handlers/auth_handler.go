package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainUser "github.com/BruksfildServices01/barbershop-api/internal/domain/user"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-api/internal/middleware"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	ucUser "github.com/BruksfildServices01/barbershop-api/internal/usecase/user"
)

// AuthHandler covers sign-in (upsert + token) and the role routes.
type AuthHandler struct {
	upsertUC     *ucUser.UpsertUser
	changeRoleUC *ucUser.ChangeRole
	checkRoleUC  *ucUser.CheckRole
}

func NewAuthHandler(
	upsertUC *ucUser.UpsertUser,
	changeRoleUC *ucUser.ChangeRole,
	checkRoleUC *ucUser.CheckRole,
) *AuthHandler {
	return &AuthHandler{
		upsertUC:     upsertUC,
		changeRoleUC: changeRoleUC,
		checkRoleUC:  checkRoleUC,
	}
}

// --------- Sign-in ---------

func (h *AuthHandler) Upsert(c *gin.Context) {
	var u models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid body.")
		return
	}

	res, err := h.upsertUC.Execute(c.Request.Context(), c.Param("email"), u)
	if err != nil {
		httperr.Internal(c, "user_upsert_failed", "Could not save user.")
		return
	}
	httpresp.OK(c, res)
}

// --------- Role changes ---------

func (h *AuthHandler) GrantBarber(c *gin.Context) {
	h.changeRole(c, ucUser.GrantBarber)
}

func (h *AuthHandler) GrantManager(c *gin.Context) {
	h.changeRole(c, ucUser.GrantManager)
}

func (h *AuthHandler) RevokeRole(c *gin.Context) {
	h.changeRole(c, ucUser.RevokeRole)
}

func (h *AuthHandler) changeRole(c *gin.Context, g ucUser.Grant) {
	res, err := h.changeRoleUC.Execute(
		c.Request.Context(),
		middleware.Email(c),
		c.Param("email"),
		g,
	)
	if err != nil {
		roleError(c, err)
		return
	}
	httpresp.OK(c, res)
}

// --------- Role checks ---------

func (h *AuthHandler) IsManager(c *gin.Context) {
	h.checkRole(c, "manager", domainUser.IsManager)
}

func (h *AuthHandler) IsChairman(c *gin.Context) {
	h.checkRole(c, "chairman", domainUser.IsChairman)
}

func (h *AuthHandler) IsBarber(c *gin.Context) {
	h.checkRole(c, "barber", domainUser.IsBarber)
}

func (h *AuthHandler) checkRole(c *gin.Context, key string, check domainUser.Policy) {
	ok, err := h.checkRoleUC.Has(c.Request.Context(), c.Param("email"), check)
	if err != nil {
		httperr.Internal(c, "role_check_failed", "Could not check role.")
		return
	}
	c.JSON(http.StatusOK, gin.H{key: ok})
}
