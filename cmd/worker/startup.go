package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// startServices performs startup health checks
func startServices(cfg *Config) error {
	log.Println("============================================")
	log.Println("Distribution Worker Starting...")
	log.Println("============================================")

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	log.Println("[Startup] Redis: OK")

	return nil
}
