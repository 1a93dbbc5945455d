package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-agency-backend/config"
	_ "go-agency-backend/docs" // Important for Swagger
	v1 "go-agency-backend/internal/delivery/http/v1"
	"go-agency-backend/internal/usecase"
	"go-agency-backend/pkg/email"
	"go-agency-backend/pkg/logger"
	"go-agency-backend/pkg/mailer"
	"go-agency-backend/pkg/redis"
	"go-agency-backend/pkg/validation"
)

// @title           NovaForge Studio Site API
// @version         1.0
// @description     Backend for the NovaForge Studio marketing site: contact form relay, sitemap and robots.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting site backend", "port", cfg.Port)

	// 3. Setup Redis (rate limiting backend; optional)
	if err := redis.Init(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err.Error())
	}
	defer redis.Close()

	// 4. Setup Mailer
	mailClient := buildMailer(cfg)
	logger.Log.Info("Mailer initialized", "provider", mailClient.ProviderName())

	// 5. Setup UseCases
	validate := validation.New()
	renderer := email.NewRenderer(cfg.ContactTo)
	contactUC := usecase.NewContactUsecase(validate, renderer, mailClient)
	seoUC := usecase.NewSEOUsecase(cfg.SiteURL)
	healthUC := usecase.NewHealthUsecase(mailClient.ProviderName())

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		SEOUC:     seoUC,
		HealthUC:  healthUC,
		Config:    cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

// buildMailer selects the mail provider: explicit MAILER_PROVIDER wins, then
// Resend if an API key is set, then SMTP if credentials are set, then the
// log-only fallback.
func buildMailer(cfg *config.Config) *mailer.Mailer {
	smtpConfig := mailer.SMTPConfig{
		Host:           cfg.SMTPHost,
		Port:           cfg.SMTPPort,
		Username:       cfg.SMTPUsername,
		Password:       cfg.SMTPPassword,
		DKIMDomain:     cfg.DKIMDomain,
		DKIMSelector:   cfg.DKIMSelector,
		DKIMPrivateKey: cfg.DKIMPrivateKey,
	}

	var provider mailer.Provider
	switch cfg.MailerProvider {
	case "smtp":
		provider = mailer.NewSMTPProvider(smtpConfig, logger.Log)
	case "resend":
		provider = mailer.NewResendProvider(cfg.ResendAPIKey)
	case "log":
		provider = mailer.NewLogProvider(logger.Log)
	default:
		switch {
		case cfg.ResendAPIKey != "":
			provider = mailer.NewResendProvider(cfg.ResendAPIKey)
		case cfg.SMTPConfigured():
			provider = mailer.NewSMTPProvider(smtpConfig, logger.Log)
		default:
			provider = mailer.NewLogProvider(logger.Log)
		}
	}

	return mailer.New(provider, cfg.SMTPFromEmail)
}
