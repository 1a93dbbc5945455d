package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	SiteURL     string // Public URL of the marketing site (used for sitemap/robots)
	FrontendURL string
	// SMTP Configuration
	SMTPHost      string
	SMTPPort      int
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromEmail string // Verified sender address (may differ from SMTP login)
	ContactTo     string // Internal recipient for contact form notifications
	// DKIM Configuration (optional; signing is skipped unless all three are set)
	DKIMDomain     string
	DKIMSelector   string
	DKIMPrivateKey string // PEM-encoded RSA private key
	// Mailer provider selection: "smtp", "resend" or "log". Empty = auto.
	MailerProvider string
	ResendAPIKey   string
	// Redis/Upstash Configuration (rate limiting backend)
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds    int
	RateLimitContactThreshold int
	RateLimitGlobalThreshold  int
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		SiteURL:     strings.TrimRight(getEnv("SITE_URL", "https://www.novaforge.studio"), "/"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// SMTP Configuration
		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPPort:      getEnvInt("SMTP_PORT", 587),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail: getEnv("SMTP_FROM_EMAIL", "noreply@novaforge.studio"),
		ContactTo:     getEnv("CONTACT_EMAIL_TO", "hello@novaforge.studio"),
		// DKIM Configuration
		DKIMDomain:     getEnv("DKIM_DOMAIN", ""),
		DKIMSelector:   getEnv("DKIM_SELECTOR", ""),
		DKIMPrivateKey: getEnv("DKIM_PRIVATE_KEY", ""),
		// Mailer provider
		MailerProvider: getEnv("MAILER_PROVIDER", ""),
		ResendAPIKey:   getEnv("RESEND_API_KEY", ""),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:    getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitContactThreshold: getEnvInt("RATE_LIMIT_CONTACT_THRESHOLD", 5),
		RateLimitGlobalThreshold:  getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
	}

	// SMTP credentials are checked lazily at first send, not here. A site
	// deployed without mail credentials still serves every other route.
	if cfg.SMTPHost == "" && cfg.ResendAPIKey == "" {
		log.Println("WARNING: no mail provider configured. Contact form submissions will be logged, not delivered.")
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// SMTPConfigured reports whether the minimum SMTP settings are present.
func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUsername != "" && c.SMTPPassword != ""
}

// DKIMConfigured reports whether every DKIM setting is present. Partial
// configuration counts as not configured; the mailer logs a warning and
// sends unsigned in that case.
func (c *Config) DKIMConfigured() bool {
	return c.DKIMDomain != "" && c.DKIMSelector != "" && c.DKIMPrivateKey != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
