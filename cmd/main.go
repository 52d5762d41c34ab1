package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/Jeff9497/Job8earch/internal/catalog"
	"github.com/Jeff9497/Job8earch/internal/clients/openrouter"
	"github.com/Jeff9497/Job8earch/internal/config"
	"github.com/Jeff9497/Job8earch/internal/logger"
	"github.com/Jeff9497/Job8earch/internal/metrics"
	"github.com/Jeff9497/Job8earch/internal/server"
	"github.com/Jeff9497/Job8earch/internal/services"
	"github.com/Jeff9497/Job8earch/internal/session"
	log "github.com/sirupsen/logrus"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(cfg.Server.MetricsPort)

	if cfg.API.Key == "" {
		log.Warn("no OpenRouter API key configured, chat features will be unavailable")
	}

	client := openrouter.NewClient(cfg.API.Key, cfg.API.RequestTimeout)
	if cfg.API.BaseURL != "" {
		client.SetBaseURL(cfg.API.BaseURL)
	}
	if cfg.API.MaxRequestsPerMinute > 0 {
		client.SetRateLimit(cfg.API.MaxRequestsPerMinute)
	}

	chatService := services.NewChatService(client, cfg.API.Key, cfg.API.DefaultModel)

	availability, err := services.NewAvailabilityChecker(client, cfg.API.AvailabilityCron)
	if err != nil {
		log.Fatalf("can't create availability checker: %v", err)
	}
	defer availability.Stop()

	handler := server.NewHandler(
		catalog.New(catalog.NewMockSource()),
		chatService,
		services.NewSkillsAdvisor(chatService),
		services.NewJobAnalyst(chatService),
		services.NewInterviewCoach(chatService),
		availability,
		session.NewStore(cfg.Server.SessionTTL),
	)

	srv := server.New(cfg.Server, handler)
	go func() {
		if err := srv.Run(); err != nil {
			log.Fatalf("http server failed: %v", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down services...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("http server shutdown failed: %v", err)
	}
	log.Info("Services stopped.")
}
