package main

import (
	"context"
	"log"
	"time"

	"anoa.com/yayasanalhikmah/internal/bootstrap"
	"anoa.com/yayasanalhikmah/internal/config"
	"anoa.com/yayasanalhikmah/internal/server"
	"anoa.com/yayasanalhikmah/pkg/database"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect()

	if err := bootstrap.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if err := bootstrap.SeedRoles(db); err != nil {
		log.Fatalf("failed to seed roles: %v", err)
	}
	if err := bootstrap.SeedAdminUser(db, cfg.AppEnv); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}
	if err := bootstrap.SeedSingletons(db); err != nil {
		log.Fatalf("failed to seed settings: %v", err)
	}
	if err := bootstrap.SeedPrograms(db); err != nil {
		log.Fatalf("failed to seed programs: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Printf("redis unreachable, continuing without it: %v", err)
			redisClient = nil
		}
		cancel()
	}

	srv := server.NewServer(cfg, db, redisClient)

	log.Printf("listening on :%s", cfg.Port)
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}
