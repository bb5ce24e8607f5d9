package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	MongoURI          string
	MongoDatabase     string
	MongoTransactions bool

	JWTSecret string
	JWTTTL    time.Duration

	AuditDBUrl string
	RedisURL   string

	PaymentProvider        string
	PaymentCurrency        string
	StripeSecretKey        string
	MercadoPagoAccessToken string

	SMTPHost      string
	SMTPPort      int
	EmailSender   string
	EmailPassword string

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3PublicURL string

	Timezone    string
	CORSOrigins []string

	OTLPEndpoint string
	OTLPInsecure bool
}

// Load reads .env (when present) and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: .env not loaded: %v", err)
	}

	return &Config{
		ServerPort: getEnv("SERVER_PORT", getEnv("PORT", "5000")),

		MongoURI:          getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:     getEnv("MONGODB_DATABASE", "barbershop"),
		MongoTransactions: getBool("MONGODB_TRANSACTIONS", false),

		JWTSecret: getEnv("ACCESS_TOKEN_SECRET", "changeme"),
		JWTTTL:    getDuration("ACCESS_TOKEN_TTL", 0),

		AuditDBUrl: os.Getenv("AUDIT_DATABASE_URL"),
		RedisURL:   os.Getenv("REDIS_URL"),

		PaymentProvider:        strings.ToLower(getEnv("PAYMENT_PROVIDER", "stripe")),
		PaymentCurrency:        strings.ToLower(getEnv("PAYMENT_CURRENCY", "usd")),
		StripeSecretKey:        os.Getenv("STRIPE_SECRET_KEY"),
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getInt("SMTP_PORT", 587),
		EmailSender:   os.Getenv("EMAIL_SENDER"),
		EmailPassword: os.Getenv("EMAIL_PASSWORD"),

		S3Bucket:    os.Getenv("S3_BUCKET"),
		S3Region:    getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),

		Timezone:    getEnv("BUSINESS_TIMEZONE", "America/New_York"),
		CORSOrigins: getList("CORS_ALLOWED_ORIGINS"),

		OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		OTLPInsecure: getBool("OTEL_EXPORTER_OTLP_INSECURE", false),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func getBool(key string, def bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

// getDuration accepts Go durations ("24h") or plain seconds ("3600").
func getDuration(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	return def
}

func getList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) MailEnabled() bool {
	return c.SMTPHost != ""
}

func (c *Config) StorageEnabled() bool {
	return c.S3Bucket != ""
}
