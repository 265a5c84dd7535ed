package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string

	SecretKey string
	TokenTTL  time.Duration

	AllowedOrigins []string
	Timezone       *time.Location

	StripeSecretKey     string
	StripeWebhookSecret string
	PaymentCurrency     string

	MailProvider     string
	PostmarkAPIToken string
	SendgridAPIKey   string
	EmailSender      string

	AdminName     string
	AdminEmail    string
	AdminPassword string
}

// LoadConfig reads .env when it exists and then the process environment.
func LoadConfig() *Config {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			log.Fatalf("Error loading .env file: %v", err)
		}
		log.Println(".env file loaded")
	} else {
		log.Println(".env file not found, using process environment")
	}

	cfg := &Config{
		Port:                getEnv("PORT", "8000"),
		MongoURI:            MustGetEnv("MONGODB_URI"),
		MongoDatabase:       getEnv("MONGODB_DATABASE", "shawon-burger"),
		SecretKey:           MustGetEnv("SECRET_KEY"),
		TokenTTL:            getDuration("TOKEN_TTL", 7*24*time.Hour),
		AllowedOrigins:      splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		Timezone:            getLocation("TIMEZONE", "Asia/Dhaka"),
		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		PaymentCurrency:     getEnv("PAYMENT_CURRENCY", "bdt"),
		MailProvider:        strings.ToLower(getEnv("MAIL_PROVIDER", "log")),
		PostmarkAPIToken:    os.Getenv("POSTMARK_API_TOKEN"),
		SendgridAPIKey:      os.Getenv("SENDGRID_API_KEY"),
		EmailSender:         getEnv("EMAIL_SENDER", "no-reply@shawonburger.com"),
		AdminName:           getEnv("ADMIN_NAME", "Admin"),
		AdminEmail:          os.Getenv("ADMIN_EMAIL"),
		AdminPassword:       os.Getenv("ADMIN_PASSWORD"),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func MustGetEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing env: %s", key)
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("invalid %s %q, using %s", key, raw, fallback)
		return fallback
	}
	return d
}

// getLocation needs an IANA name; Mongo's $dateToString does not understand "Local".
func getLocation(key, fallback string) *time.Location {
	name := getEnv(key, fallback)
	if strings.EqualFold(name, "Local") {
		log.Printf("%s must be an IANA zone name, using %s", key, fallback)
		name = fallback
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("unknown timezone %q, using UTC", name)
		return time.UTC
	}
	return loc
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
