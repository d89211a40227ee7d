package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "Backend-Booking-Designer/docs"
	"Backend-Booking-Designer/src/config"
	"Backend-Booking-Designer/src/controllers"
	"Backend-Booking-Designer/src/database"
	"Backend-Booking-Designer/src/jobs"
	"Backend-Booking-Designer/src/repositories"
	"Backend-Booking-Designer/src/routes"
	"Backend-Booking-Designer/src/services/designer"
	"Backend-Booking-Designer/src/services/scheduler"
	"Backend-Booking-Designer/src/services/users"
	"Backend-Booking-Designer/src/storage"

	"github.com/redis/go-redis/v9"
)

// @title        Booking Designer API
// @version      1.0
// @description  Booking form designer plus user and scheduler-config resources.
// @BasePath     /
func main() {
	cfg := config.MustLoad()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx := context.Background()

	// เชื่อมต่อกับ MongoDB
	mongoClient, db, err := database.ConnectMongoDB(ctx, cfg.Mongo)
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Disconnect(mongoClient)

	redisClient, err := database.InitRedis(ctx, cfg.Redis)
	if err != nil {
		log.Fatalf("❌ Failed to connect Redis: %v", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
		log.Println("✅ Redis connected")
	}

	store, closeStore, err := openDesignerStore(cfg, redisClient)
	if err != nil {
		log.Fatalf("❌ designer store: %v", err)
	}
	defer closeStore()

	opts := []designer.Option{
		designer.WithLogger(logger),
		designer.WithSessionCache(cfg.Designer.CacheSize, cfg.Designer.SessionTTL),
	}
	if asynqClient := database.InitAsynq(cfg.Redis); asynqClient != nil {
		defer asynqClient.Close()
		opts = append(opts, designer.WithArchiver(jobs.NewQueueArchiver(asynqClient)))
	}
	designerService := designer.NewService(store, opts...)

	userService := users.NewService(repositories.NewUserRepository(db.Collection(database.UsersCollection)))
	schedulerService := scheduler.NewService(repositories.NewSchedulerConfigRepository(db.Collection(database.SchedulerConfigsCollection)))

	app := routes.NewApp(cfg.API.AllowedOrigins, logger, routes.Dependencies{
		Users:         controllers.NewUserController(userService),
		Scheduler:     controllers.NewSchedulerController(schedulerService),
		Designer:      controllers.NewDesignerController(designerService),
		SessionSecret: []byte(cfg.Designer.SessionSecret),
		SessionTTL:    cfg.Designer.SessionTTL,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		_ = app.Shutdown()
	}()

	// เริ่มเซิร์ฟเวอร์
	log.Printf("🚀 Server is running on port %d (designer store: %s)", cfg.API.Port, cfg.Designer.Store)
	if err := app.Listen(fmt.Sprintf(":%d", cfg.API.Port)); err != nil {
		log.Fatal(err)
	}
}

// openDesignerStore picks the key-value driver named by DESIGNER_STORE.
func openDesignerStore(cfg *config.Config, redisClient *redis.Client) (storage.Store, func(), error) {
	noop := func() {}
	switch cfg.Designer.Store {
	case config.StoreRedis:
		return storage.NewRedisStore(redisClient, cfg.Designer.KeyTTL), noop, nil
	case config.StoreSQLite:
		s, err := storage.OpenSQLiteStore(cfg.Designer.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		return s, func() { _ = s.Close() }, nil
	default:
		return storage.NewMemoryStore(), noop, nil
	}
}
