package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"Backend-Booking-Designer/src/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names
const (
	UsersCollection            = "users"
	SchedulerConfigsCollection = "scheduler_configs"
	BookingsCollection         = "bookings"
)

// ConnectMongoDB เชื่อมต่อ MongoDB และ ping ให้แน่ใจว่าพร้อมใช้งาน
func ConnectMongoDB(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}

	// ตรวจสอบการเชื่อมต่อ
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}

	log.Printf("✅ MongoDB connected successfully (db=%s)", cfg.Database)
	return client, client.Database(cfg.Database), nil
}

// Disconnect ปิดการเชื่อมต่อ MongoDB
func Disconnect(client *mongo.Client) {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Println("❌ MongoDB disconnect failed:", err)
	}
}
