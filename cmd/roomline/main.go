package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/roomline/internal/api"
	"github.com/example/roomline/internal/config"
	"github.com/example/roomline/internal/logging"
	"github.com/example/roomline/internal/repository"
	"github.com/example/roomline/internal/service"
	"github.com/example/roomline/internal/supabase"
	"github.com/example/roomline/internal/web"
	"go.uber.org/zap"
)

func main() {
	serverConfig := config.GetServerConfig()

	logger, logBuffer, err := logging.New(serverConfig.Environment == "development")
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	// Resolve the locale whose wall clock the timeline engine sees
	location, err := time.LoadLocation(serverConfig.Timezone)
	if err != nil {
		logger.Fatal("invalid timezone", zap.String("timezone", serverConfig.Timezone), zap.Error(err))
	}

	// Room configuration is mandatory; without it restricted rooms would be
	// misreported as open all day
	rooms, err := config.LoadRoomDirectory(serverConfig.RoomsFile)
	if err != nil {
		logger.Fatal("failed to load rooms file", zap.Error(err))
	}

	// Initialize the snapshot cache using the factory
	redisConfig := config.GetRedisConfig()
	repo, err := repository.NewRepository(redisConfig)
	if err != nil {
		logger.Fatal("failed to initialize repository", zap.Error(err))
	}

	// Check if we're using a Redis repository, and if so, close it properly on exit
	if redisRepo, ok := repo.(interface{ Close() error }); ok {
		defer func() {
			if err := redisRepo.Close(); err != nil {
				logger.Error("error closing Redis connection", zap.Error(err))
			}
		}()
	}

	// Booking data source with its token cache
	supabaseConfig := config.GetSupabaseConfig()
	if !supabaseConfig.IsValid() {
		logger.Fatal("incomplete booking source configuration; set SUPABASE_URL, SUPABASE_KEY, SUPABASE_EMAIL and SUPABASE_PASSWORD")
	}
	authenticator := supabase.NewAuthenticator(supabaseConfig, logger)
	source := supabase.NewClient(supabaseConfig, authenticator, logger)

	// Service layer with the clock pinned to the configured locale
	bookingService := service.NewBookingServiceWithClock(
		source, repo, rooms, logger,
		serverConfig.DefaultRoom, redisConfig.SnapshotTTL,
		func() time.Time { return time.Now().In(location) },
	)

	// SSE push for dashboards, fed by reconciliation updates
	sseManager := web.NewSSEManager(logger)
	bookingService.RegisterUpdateCallback(sseManager.NotifyTimelineUpdate)

	// Set up API routes
	mux := api.SetupRoutes(bookingService, authenticator, logBuffer, serverConfig.APIKey, logger)
	sseManager.SetupRoutes(mux)

	// Configure the HTTP server
	server := &http.Server{
		Addr:         ":" + serverConfig.Port,
		Handler:      api.LogRequests(logger, mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // Disable write timeout for SSE connections
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		logger.Info("starting roomline server", zap.String("port", serverConfig.Port))
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until a signal is received or an error occurs
	select {
	case err := <-serverErrors:
		logger.Fatal("error starting server", zap.Error(err))

	case <-shutdown:
		logger.Info("shutting down server...")

		// First, close SSE connections so Shutdown doesn't wait on them
		sseManager.Shutdown()

		// Create a deadline to wait for
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		// Doesn't block if there are no connections, but will otherwise
		// wait until the timeout deadline.
		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			logger.Fatal("error shutting down server", zap.Error(err))
		}

		logger.Info("server gracefully stopped")
	}
}
