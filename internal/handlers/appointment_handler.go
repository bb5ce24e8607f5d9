package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-api/internal/middleware"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	ucAppointment "github.com/BruksfildServices01/barbershop-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *ucAppointment.CreateAppointment
	listUC         *ucAppointment.ListAppointments
	availabilityUC *ucAppointment.GetAvailability
	deleteUC       *ucAppointment.DeleteAppointment
	finalizeUC     *ucAppointment.FinalizePayment
	payments       domain.PaymentRepository
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	listUC *ucAppointment.ListAppointments,
	availabilityUC *ucAppointment.GetAvailability,
	deleteUC *ucAppointment.DeleteAppointment,
	finalizeUC *ucAppointment.FinalizePayment,
	payments domain.PaymentRepository,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		listUC:         listUC,
		availabilityUC: availabilityUC,
		deleteUC:       deleteUC,
		finalizeUC:     finalizeUC,
		payments:       payments,
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var doc models.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid body.")
		return
	}

	res, err := h.createUC.Execute(c.Request.Context(), doc)
	if err != nil {
		httperr.Internal(c, "appointment_create_failed", "Could not create appointment.")
		return
	}
	httpresp.OK(c, res)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	aps, err := h.listUC.ByDate(c.Request.Context(), c.Query("date"))
	if err != nil {
		httperr.Internal(c, "appointments_list_failed", "Could not list appointments.")
		return
	}
	httpresp.OK(c, aps)
}

func (h *AppointmentHandler) Mine(c *gin.Context) {
	email, ok := selfEmail(c)
	if !ok {
		return
	}

	aps, err := h.listUC.ByEmail(c.Request.Context(), email)
	if err != nil {
		httperr.Internal(c, "appointments_list_failed", "Could not list appointments.")
		return
	}
	httpresp.OK(c, aps)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	ap, err := h.listUC.ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Store(c, err, "appointment_get_failed", "Could not load appointment.")
		return
	}
	httpresp.OK(c, ap)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Available(c *gin.Context) {
	barbers, err := h.availabilityUC.Execute(c.Request.Context(), c.Query("date"))
	if err != nil {
		httperr.Internal(c, "availability_failed", "Could not compute availability.")
		return
	}
	httpresp.OK(c, barbers)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	res, err := h.deleteUC.Execute(c.Request.Context(), c.Query("id"))
	if err != nil {
		httperr.Store(c, err, "appointment_delete_failed", "Could not delete appointment.")
		return
	}
	httpresp.OK(c, res)
}

// ======================================================
// PAYMENT
// ======================================================

// FinalizePayment is called by the client once the provider has confirmed
// the charge. The payment is recorded even when the appointment id is
// unknown.
func (h *AppointmentHandler) FinalizePayment(c *gin.Context) {
	var doc models.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid body.")
		return
	}

	res, err := h.finalizeUC.Execute(c.Request.Context(), ucAppointment.FinalizePaymentInput{
		AppointmentID: c.Query("id"),
		Actor:         middleware.Email(c),
		Payment:       doc,
	})
	if err != nil {
		httperr.Internal(c, "payment_finalize_failed", "Could not record payment.")
		return
	}
	httpresp.OK(c, res)
}

func (h *AppointmentHandler) MyPayments(c *gin.Context) {
	email, ok := selfEmail(c)
	if !ok {
		return
	}

	payments, err := h.payments.ListPaymentsByEmail(c.Request.Context(), email)
	if err != nil {
		httperr.Internal(c, "payments_list_failed", "Could not list payments.")
		return
	}
	httpresp.OK(c, payments)
}
