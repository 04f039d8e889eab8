package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"flightcal-service/internal/domain/repository"
	"flightcal-service/internal/infrastructure/config"
	"flightcal-service/internal/infrastructure/oauth"
	"flightcal-service/internal/infrastructure/persistence"
	"flightcal-service/internal/infrastructure/router"
	"flightcal-service/internal/infrastructure/scheduler"
	"flightcal-service/internal/interface/gmail"
	httpapi "flightcal-service/internal/interface/http"
	repoimpl "flightcal-service/internal/interface/repository"
	"flightcal-service/internal/usecase"
	"flightcal-service/pkg/calendar"
	"flightcal-service/pkg/logger"
	"flightcal-service/pkg/metrics"
	"flightcal-service/templates"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info").Fatal("Failed to load config", "error", err)
	}

	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting Flightcal Service", "version", cfg.AppVersion)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics("flightcal", registry)

	// Mongo backs the email log and, optionally, flight history
	var mongoClient *mongo.Client
	var mongoDB *mongo.Database
	if cfg.HistoryBackend == config.HistoryMongo || cfg.GmailEnabled() {
		log.Info("Connecting to MongoDB")
		mongoClient, mongoDB, err = persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword)
		if err != nil {
			log.Fatal("Failed to connect to MongoDB", "error", err)
		}
	}

	var history repository.FlightRecordRepository
	if cfg.HistoryBackend == config.HistoryMongo {
		history = repoimpl.NewMongoFlightRecordRepository(mongoDB)
	} else {
		history = repoimpl.NewMemoryFlightRecordRepository(cfg.HistoryLimit)
	}

	airlineRepository := repoimpl.NewStaticAirlineRepository()
	airportRepository := repoimpl.NewStaticAirportRepository()
	if cfg.PostgresDSN != "" {
		gormDB, err := persistence.NewPostgres(cfg.PostgresDSN)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", "error", err)
		}
		airlineRepository = repoimpl.NewGormAirlineRepository(gormDB)
		airportRepository = repoimpl.NewGormAirportRepository(gormDB)
	}

	generator := calendar.NewGenerator(
		calendar.WithLocation(cfg.Location()),
		calendar.WithLogger(log),
	)
	flightService := usecase.NewFlightService(history, airlineRepository, airportRepository, generator, m, log)

	var workers sync.WaitGroup
	if cfg.GmailEnabled() {
		startIngestion(ctx, &workers, cfg, mongoDB, flightService, m, log)
	}

	handler := httpapi.NewFlightHandler(flightService, log)
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpapi.NewRouter(handler, metricsHandler, cfg.AppVersion, log),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	// background work still uses Mongo until it returns
	stopped := make(chan struct{})
	go func() {
		workers.Wait()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-shutdownCtx.Done():
		log.Warn("Background workers did not stop before shutdown deadline")
	}

	if mongoClient != nil {
		if err := mongoClient.Disconnect(shutdownCtx); err != nil {
			log.Error("MongoDB disconnect error", "error", err)
		}
	}

	log.Info("Flightcal Service stopped")
}

// startIngestion wires Gmail polling, subject routing and the pending-email sweep
func startIngestion(ctx context.Context, workers *sync.WaitGroup, cfg *config.Config, db *mongo.Database, flights *usecase.FlightService, m *metrics.Metrics, log logger.Logger) {
	emailRepo := repoimpl.NewMongoEmailRepository(db)

	var notifier repository.NotificationRepository
	if cfg.NotifyEnabled() {
		notifier = repoimpl.NewHTTPNotificationRepository(repoimpl.NotifierConfig{
			BaseURL:   cfg.NotifyEndpoint,
			Token:     cfg.NotifyToken,
			CompanyID: cfg.NotifyCompanyID,
			AgentID:   cfg.NotifyAgentID,
		}, log)
	}

	processor := usecase.NewFlightProcessor(flights, emailRepo, notifier, cfg.NotifyPhone, m, log)

	subjectRouter := router.NewSubjectRouter(log)
	subjectRouter.Register(templates.NewFlightConfirmationHandler(processor, nil, log))
	orchestrator := usecase.NewEmailOrchestrator(emailRepo, subjectRouter, log)

	gmailOAuth := oauth.NewGmailOAuth(cfg.GmailClientID, cfg.GmailClientSecret, cfg.GmailRefreshToken, "", log)
	gmailService, err := gmail.NewGmailService(ctx, gmailOAuth.GetTokenSource(ctx), emailRepo, orchestrator, m, log, cfg.GmailPollInterval)
	if err != nil {
		log.Fatal("Failed to create Gmail service", "error", err)
	}

	workers.Add(1)
	go func() {
		defer workers.Done()
		gmailService.StartPolling(ctx)
	}()

	sweeper := scheduler.New(log, time.Minute)
	if err := sweeper.Add("pending-emails", cfg.PendingSweepSchedule, orchestrator.ProcessPendingEmails); err != nil {
		log.Fatal("Failed to schedule pending email sweep", "error", err)
	}

	workers.Add(1)
	go func() {
		defer workers.Done()
		sweeper.Start(ctx)
	}()
}
