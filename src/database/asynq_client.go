package database

import (
	"log"

	"Backend-Booking-Designer/src/config"

	"github.com/hibiken/asynq"
)

// RedisConnOpt แปลง RedisConfig เป็น option ของ asynq
func RedisConnOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}
}

// InitAsynq initializes the Asynq client only if Redis is configured
func InitAsynq(cfg config.RedisConfig) *asynq.Client {
	if !cfg.Enabled() {
		log.Println("⚠️ Redis not available. Asynq client will not be initialized.")
		return nil
	}

	client := asynq.NewClient(RedisConnOpt(cfg))
	log.Println("✅ Asynq Client initialized successfully")
	return client
}
