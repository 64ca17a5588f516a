package main

import (
	"log"
	"net/http"
	"time"

	"github.com/diegoclair/slack-decision-bot/internal/ai"
	"github.com/diegoclair/slack-decision-bot/internal/config"
	"github.com/diegoclair/slack-decision-bot/internal/crm"
	"github.com/diegoclair/slack-decision-bot/internal/crypto"
	"github.com/diegoclair/slack-decision-bot/internal/database"
	"github.com/diegoclair/slack-decision-bot/internal/domain/service"
	"github.com/diegoclair/slack-decision-bot/internal/handlers"
	"github.com/diegoclair/slack-decision-bot/internal/slackclient"
	"github.com/diegoclair/slack-decision-bot/internal/sweeper"
	"github.com/diegoclair/slack-decision-bot/migrator/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
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

	cipher, err := crypto.NewTokenCipher(cfg.TokenEncryptionKey)
	if err != nil {
		log.Fatalf("Failed to initialize token encryption: %v", err)
	}
	if cipher == nil {
		log.Println("Warning: TOKEN_ENCRYPTION_KEY not set, tokens stored in plaintext")
	}

	dm := database.NewInstance(db)

	slackClient := slackclient.NewFromToken(cfg.SlackBotToken)

	aiClient := ai.New(cfg.AIAPIKey, cfg.AIModel, cfg.AIBaseURL)
	if aiClient == nil {
		log.Println("AI features disabled (no AI_API_KEY)")
	}

	crmSyncer := crm.NewSyncer(dm, cipher, cfg.ZohoClientID, cfg.ZohoClientSecret)

	services := service.NewInstance(dm, slackClient, aiClient, crmSyncer, service.Options{
		DecisionTimeout: time.Duration(cfg.DecisionTimeoutHours) * time.Hour,
		MonthlyAILimit:  cfg.MonthlyAILimit,
	})

	sweep := sweeper.New(services.Decision)
	sweep.Start()
	defer sweep.Stop()

	slackHandler := handlers.New(slackClient, services.Decision, cfg.SlackSigningSecret)
	eventsHandler := handlers.NewEvents(slackClient, services.Decision, cfg.SlackSigningSecret)
	oauthHandler := handlers.NewOAuth(dm, cipher, cfg.SlackClientID, cfg.SlackClientSecret, cfg.AppBaseURL)

	http.HandleFunc("/slack/commands", handlers.Recover(slackHandler.HandleSlashCommand))
	http.HandleFunc("/slack/events", handlers.Recover(eventsHandler.HandleEvent))
	http.HandleFunc("/slack/install", handlers.Recover(oauthHandler.HandleInstall))
	http.HandleFunc("/slack/install/callback", handlers.Recover(oauthHandler.HandleInstallCallback))
	http.HandleFunc("/oauth/crm/callback", handlers.Recover(oauthHandler.HandleCRMCallback))
	http.HandleFunc("/oauth/crm/uninstall", handlers.Recover(oauthHandler.HandleCRMUninstall))
	http.HandleFunc("/health", handlers.Health(db.Ping))

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
