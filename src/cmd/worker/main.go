package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"Backend-Booking-Designer/src/config"
	"Backend-Booking-Designer/src/database"
	"Backend-Booking-Designer/src/jobs"
	"Backend-Booking-Designer/src/metrics"
	"Backend-Booking-Designer/src/repositories"

	"github.com/hibiken/asynq"
)

func main() {
	cfg := config.MustLoad()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if !cfg.Redis.Enabled() {
		log.Fatal("❌ REDIS_URI is required to run the worker")
	}

	mongoClient, db, err := database.ConnectMongoDB(context.Background(), cfg.Mongo)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	defer database.Disconnect(mongoClient)

	bookings := repositories.NewBookingRepository(db.Collection(database.BookingsCollection))

	server := asynq.NewServer(database.RedisConnOpt(cfg.Redis), asynq.Config{
		Concurrency: cfg.Worker.Concurrency,
	})
	mux := jobs.NewServeMux(bookings, logger, metrics.AsynqMiddleware())

	logger.Info("🎯 worker started", slog.String("redis_addr", cfg.Redis.Addr), slog.Int("concurrency", cfg.Worker.Concurrency))
	if err := server.Run(mux); err != nil {
		logger.Error("worker server stopped", slog.Any("error", err))
	}
}
