package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/middleware"
	ucPayment "github.com/BruksfildServices01/barbershop-api/internal/usecase/payment"
)

const HeaderIdempotencyKey = "Idempotency-Key"

type PaymentHandler struct {
	createIntentUC *ucPayment.CreateIntent
}

func NewPaymentHandler(createIntentUC *ucPayment.CreateIntent) *PaymentHandler {
	return &PaymentHandler{createIntentUC: createIntentUC}
}

// Price is left untyped so both 25 and "25.00" are accepted.
type CreateIntentRequest struct {
	Price       any    `json:"price"`
	Description string `json:"description"`
}

func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid body.")
		return
	}

	secret, err := h.createIntentUC.Execute(c.Request.Context(), ucPayment.CreateIntentInput{
		Requester:      middleware.Email(c),
		Price:          req.Price,
		Description:    req.Description,
		IdempotencyKey: c.GetHeader(HeaderIdempotencyKey),
	})
	if httperr.IsBusiness(err, "invalid_price") {
		httperr.BadRequest(c, "invalid_price", "Price must be a positive number no greater than 999999.99.")
		return
	}
	if err != nil {
		httperr.Write(c, http.StatusBadGateway, "payment_provider_failed", "Payment provider error.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clientSecret": secret,
	})
}
