package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"podcast-service/internal/auth"
	"podcast-service/internal/config"
	"podcast-service/internal/http"
	"podcast-service/internal/repository/postgres"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	log.SetOutput(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := postgres.Migrate(&cfg.Database); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db, err := postgres.New(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	server := http.NewServer(&http.ServerDependencies{
		Config:        cfg,
		Users:         postgres.NewUserRepository(db),
		Podcasts:      postgres.NewPodcastRepository(db),
		Episodes:      postgres.NewEpisodeRepository(db),
		Reviews:       postgres.NewReviewRepository(db),
		Subscriptions: postgres.NewSubscriptionRepository(db),
		Tokens:        auth.NewTokenService(cfg.Auth.JWTSecret),
	})

	go func() {
		log.Printf("Starting podcast service on port %s", cfg.Server.Port)
		if err := server.Start(":" + cfg.Server.Port); err != nil {
			log.Printf("Server stopped: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}
}
