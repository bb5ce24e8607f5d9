package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/config"
	domainAppointment "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/domain/catalog"
	domainUser "github.com/BruksfildServices01/barbershop-api/internal/domain/user"
	"github.com/BruksfildServices01/barbershop-api/internal/handlers"
	"github.com/BruksfildServices01/barbershop-api/internal/mailer"
	"github.com/BruksfildServices01/barbershop-api/internal/media"
	"github.com/BruksfildServices01/barbershop-api/internal/middleware"
	"github.com/BruksfildServices01/barbershop-api/internal/payment"
	"github.com/BruksfildServices01/barbershop-api/internal/token"
	ucAppointment "github.com/BruksfildServices01/barbershop-api/internal/usecase/appointment"
	ucPayment "github.com/BruksfildServices01/barbershop-api/internal/usecase/payment"
	ucUser "github.com/BruksfildServices01/barbershop-api/internal/usecase/user"
)

// Deps is everything the routes need, built once in main. Uploader,
// AuditLogs and Health may be nil.
type Deps struct {
	Config *config.Config
	Tokens *token.Service

	Appointments domainAppointment.Repository
	Payments     domainAppointment.PaymentRepository
	Barbers      domainAppointment.BarberLister
	Catalog      catalog.Repository
	Users        domainUser.Repository

	Audit     *audit.Dispatcher
	AuditLogs handlers.AuditLister

	Mailer           mailer.Sender
	PaymentProvider  payment.Provider
	IdempotencyCache payment.Cache
	Uploader         media.Uploader
	Health           handlers.Pinger
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware(d.Config.CORSOrigins))

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		d.Appointments,
		d.Audit,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(
		d.Appointments,
	)

	availabilityUC := ucAppointment.NewGetAvailability(
		d.Appointments,
		d.Barbers,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		d.Appointments,
		d.Audit,
	)

	finalizePaymentUC := ucAppointment.NewFinalizePayment(
		d.Appointments,
		d.Payments,
		d.Mailer,
		d.Audit,
		d.Config.Timezone,
	)

	// ======================================================
	// 🧠 USE CASES — USERS / PAYMENTS
	// ======================================================
	upsertUserUC := ucUser.NewUpsertUser(d.Users, d.Tokens, d.Audit)
	changeRoleUC := ucUser.NewChangeRole(d.Users, d.Audit)
	checkRoleUC := ucUser.NewCheckRole(d.Users)

	createIntentUC := ucPayment.NewCreateIntent(
		d.PaymentProvider,
		d.IdempotencyCache,
		d.Config.PaymentCurrency,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	catalogHandler := handlers.NewCatalogHandler(d.Catalog)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listAppointmentsUC,
		availabilityUC,
		deleteAppointmentUC,
		finalizePaymentUC,
		d.Payments,
	)

	authHandler := handlers.NewAuthHandler(upsertUserUC, changeRoleUC, checkRoleUC)
	userHandler := handlers.NewUserHandler(d.Users, d.Uploader)
	paymentHandler := handlers.NewPaymentHandler(createIntentUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLogs, checkRoleUC)
	healthHandler := handlers.NewHealthHandler(d.Health)

	// ======================================================
	// 🌐 PUBLIC
	// ======================================================
	r.GET("/", healthHandler.Root)
	r.GET("/health", healthHandler.Health)

	r.GET("/services", catalogHandler.ListServices)
	r.POST("/services", catalogHandler.CreateService)

	r.GET("/barbers", catalogHandler.ListBarbers)
	r.POST("/barbers", catalogHandler.CreateBarber)
	r.GET("/barber/:id", catalogHandler.GetBarber)

	r.GET("/reviews", catalogHandler.ListReviews)
	r.POST("/reviews", catalogHandler.CreateReview)

	r.GET("/managers", catalogHandler.ListManagers)
	r.POST("/managers", catalogHandler.CreateManager)
	r.GET("/features", catalogHandler.ListFeatures)

	r.POST("/appointments", appointmentHandler.Create)
	r.DELETE("/appointment-delete", appointmentHandler.Delete)
	r.GET("/available", appointmentHandler.Available)

	// sign-in: the client has authenticated the person already
	r.PUT("/users/:email", authHandler.Upsert)

	// ======================================================
	// 🔐 PROTECTED
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(d.Tokens))
	{
		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		secured.GET("/appointments", appointmentHandler.ListByDate)
		secured.GET("/myAppointments", appointmentHandler.Mine)
		secured.GET("/appointment/:id", appointmentHandler.Get)
		secured.PATCH("/appointment-update", appointmentHandler.FinalizePayment)

		// ------------------------------
		// PAYMENTS
		// ------------------------------
		secured.POST("/create-payment-intent", paymentHandler.CreateIntent)
		secured.GET("/myPayments", appointmentHandler.MyPayments)

		// ------------------------------
		// REVIEWS (self)
		// ------------------------------
		secured.GET("/myReviews", catalogHandler.MyReviews)
		secured.GET("/myCustomerReviews", catalogHandler.MyCustomerReviews)

		// ------------------------------
		// USERS
		// ------------------------------
		secured.GET("/users", userHandler.List)
		secured.GET("/user", userHandler.GetMe)
		secured.PUT("/users/:email/avatar", userHandler.UploadAvatar)

		// ------------------------------
		// ROLES
		// ------------------------------
		secured.PUT("/users/manager/:email", authHandler.GrantBarber)
		secured.PUT("/users/chairman/:email", authHandler.GrantManager)
		secured.PUT("/users/remove/:email", authHandler.RevokeRole)

		secured.GET("/manager/:email", authHandler.IsManager)
		secured.GET("/chairman/:email", authHandler.IsChairman)
		secured.GET("/checkbarber/:email", authHandler.IsBarber)

		secured.GET("/audit-logs", auditLogsHandler.List)
	}
}
