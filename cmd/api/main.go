package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/config"
	dbpkg "github.com/BruksfildServices01/barbershop-api/internal/db"
	"github.com/BruksfildServices01/barbershop-api/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barbershop-api/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-api/internal/mailer"
	"github.com/BruksfildServices01/barbershop-api/internal/media"
	"github.com/BruksfildServices01/barbershop-api/internal/payment"
	"github.com/BruksfildServices01/barbershop-api/internal/routes"
	"github.com/BruksfildServices01/barbershop-api/internal/telemetry"
	"github.com/BruksfildServices01/barbershop-api/internal/token"
)

const serviceName = "barbershop-api"

func main() {

	cfg := config.Load()

	shutdownTelemetry := telemetry.Setup(serviceName, cfg.OTLPEndpoint, cfg.OTLPInsecure)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTelemetry(ctx)
	}()

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	cols := dbpkg.NewMongo(context.Background(), cfg)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		cols.Disconnect(ctx)
	}()

	appointmentRepo := infraRepo.NewAppointmentMongoRepository(cols)
	catalogRepo := infraRepo.NewCatalogMongoRepository(cols)
	userRepo := infraRepo.NewUserMongoRepository(cols, cfg.MongoTransactions)

	var (
		sink      audit.Sink = audit.LogSink{}
		auditLogs handlers.AuditLister
	)
	if auditDB := dbpkg.NewAuditDB(cfg); auditDB != nil {
		logger := audit.New(auditDB)
		sink = logger
		auditLogs = logger
	}
	auditDispatcher := audit.NewDispatcher(sink, 256)
	defer auditDispatcher.Close()

	cache, closeCache := buildIdempotencyCache(cfg)
	defer closeCache()

	deps := routes.Deps{
		Config: cfg,
		Tokens: token.NewService(cfg.JWTSecret, cfg.JWTTTL),

		Appointments: appointmentRepo,
		Payments:     appointmentRepo,
		Barbers:      appointmentRepo,
		Catalog:      catalogRepo,
		Users:        userRepo,

		Audit:     auditDispatcher,
		AuditLogs: auditLogs,

		Mailer:           buildMailer(cfg),
		PaymentProvider:  buildPaymentProvider(cfg),
		IdempotencyCache: cache,
		Health:           cols,
	}
	if cfg.StorageEnabled() {
		deps.Uploader = media.NewS3Uploader(media.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.S3PublicURL,
		})
	}

	// ======================================================
	// 🌐 HTTP
	// ======================================================
	r := gin.Default()
	r.MaxMultipartMemory = media.MaxUploadBytes

	routes.RegisterRoutes(r, deps)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      otelhttp.NewHandler(r, serviceName),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server running on %s", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

func buildMailer(cfg *config.Config) mailer.Sender {
	if !cfg.MailEnabled() {
		log.Printf("mail: SMTP_HOST not set, confirmations will be logged")
		return mailer.LogSender{}
	}
	return mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailSender, cfg.EmailPassword)
}

func buildPaymentProvider(cfg *config.Config) payment.Provider {
	switch cfg.PaymentProvider {
	case "mercadopago":
		p, err := payment.NewMercadoPagoProvider(cfg.MercadoPagoAccessToken)
		if err != nil {
			log.Fatalf("mercadopago: %v", err)
		}
		return p
	case "stripe":
		if cfg.StripeSecretKey == "" {
			log.Printf("payment: STRIPE_SECRET_KEY not set, intents will fail")
		}
		return payment.NewStripeProvider(cfg.StripeSecretKey)
	default:
		log.Fatalf("payment: unknown PAYMENT_PROVIDER %q", cfg.PaymentProvider)
		return nil
	}
}

func buildIdempotencyCache(cfg *config.Config) (payment.Cache, func()) {
	if cfg.RedisURL == "" {
		return payment.NewMemoryCache(), func() {}
	}

	rc, err := payment.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Printf("redis: %v, falling back to in-process cache", err)
		return payment.NewMemoryCache(), func() {}
	}
	return rc, func() {
		if err := rc.Close(); err != nil {
			log.Printf("redis close: %v", err)
		}
	}
}
