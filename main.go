package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"flight-booking/cmd"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/notifier"
	"flight-booking/internal/usecase"
	"flight-booking/internal/wire"
	"flight-booking/pkg/cache"
	"flight-booking/pkg/database"
	"flight-booking/pkg/queue"
	"flight-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Flight list cache is optional
	var flightCache usecase.FlightCache
	if config.Redis.Addr != "" {
		flightCache = cache.NewRedisCache(config.Redis)
		logger.Info("Flight cache enabled", zap.String("redis", config.Redis.Addr))
	}

	// Notification dispatcher: kafka pipeline when brokers are
	// configured, direct in-process delivery otherwise. Either way a
	// failed confirmation never fails a booking.
	mailer := notifier.NewMailer(config.Email, logger)
	var bookingNotifier notifier.Notifier
	if len(config.Kafka.Brokers) > 0 {
		producer := queue.NewProducer(config.Kafka.Brokers)
		defer producer.Close()

		consumer := queue.NewConsumer(config.Kafka.Brokers, config.Kafka.GroupID, config.Kafka.NotificationsTopic)
		defer consumer.Close()

		go func() {
			if err := notifier.RunConsumer(ctx, consumer, mailer, logger); err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("Notification consumer stopped", zap.Error(err))
			}
		}()

		bookingNotifier = notifier.NewQueueNotifier(producer, config.Kafka.NotificationsTopic, logger)
		logger.Info("Notifications via kafka", zap.Strings("brokers", config.Kafka.Brokers))
	} else {
		bookingNotifier = notifier.NewDirectNotifier(mailer, logger)
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, flightCache, bookingNotifier, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	if err := cmd.APIServer(ctx, app.Router, config.App.Port); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
