package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/family-schedule-bot/internal/config"
	"github.com/diegoclair/family-schedule-bot/internal/database"
	"github.com/diegoclair/family-schedule-bot/internal/domain/service"
	"github.com/diegoclair/family-schedule-bot/internal/handlers"
	"github.com/diegoclair/family-schedule-bot/internal/scheduler"
	"github.com/diegoclair/family-schedule-bot/internal/speech"
	"github.com/diegoclair/family-schedule-bot/internal/weather"
	"github.com/diegoclair/family-schedule-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	location, err := cfg.Location()
	if err != nil {
		log.Fatalf("Invalid TIMEZONE %q: %v", cfg.Timezone, err)
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY is not set, announcements will fail")
	}

	slackClient := slack.New(cfg.SlackBotToken)
	player := speech.NewSlackPlayer(slackClient, cfg.SlackChannelID)

	svc := service.NewInstance(service.Dependencies{
		DataManager:  database.NewInstance(db),
		Synthesizer:  speech.NewGeminiSynthesizer(cfg.GeminiAPIKey, cfg.GeminiTTSModel, cfg.HTTPTimeout),
		Player:       player,
		Alerter:      player,
		Weather:      weather.NewOpenMeteoClient(cfg.WeatherBaseURL, cfg.HTTPTimeout),
		AudioEnabled: cfg.AudioEnabled,
	})

	if err := svc.Household.Load(); err != nil {
		log.Fatalf("Failed to load household: %v", err)
	}

	sched, err := scheduler.New(svc.Engine, location)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	sched.Start()
	defer func() {
		if err := sched.Stop(); err != nil {
			log.Printf("ERROR failed to stop scheduler: %v", err)
		}
	}()

	handler := handlers.New(svc.Household, svc.Engine, sched, cfg.SlackSigningSecret, location)

	mux := http.NewServeMux()
	mux.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("ERROR failed to shut down server: %v", err)
	}
}
