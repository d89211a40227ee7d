package database

import (
	"context"
	"fmt"
	"time"

	"Backend-Booking-Designer/src/config"

	"github.com/redis/go-redis/v9"
)

// InitRedis เปิด client และ ping; คืน nil เมื่อไม่ได้ตั้ง REDIS_URI
func InitRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr, // เช่น localhost:6379
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return client, nil
}
