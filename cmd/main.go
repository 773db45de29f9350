package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/latoulicious/ailie/internal/commands"
	"github.com/latoulicious/ailie/internal/config"
	"github.com/latoulicious/ailie/internal/handlers"
	"github.com/latoulicious/ailie/internal/health"
	"github.com/latoulicious/ailie/internal/version"
	"github.com/latoulicious/ailie/pkg/database"
	"github.com/latoulicious/ailie/pkg/database/repository"
	"github.com/latoulicious/ailie/pkg/guardian"
	"github.com/latoulicious/ailie/pkg/logging"
	"gorm.io/gorm"
)

func main() {
	// Initialize application with proper error handling
	if err := initializeApplication(); err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}
}

// initializeApplication handles the complete application initialization process
func initializeApplication() error {
	// Load configuration (.env is read inside LoadConfig)
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Open(cfg.Database, cfg.IsProduction())
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close(db)

	// Initialize centralized logging system
	logRepo := initializeCentralizedLogging(cfg, db)
	systemLogger := logging.GetGlobalLoggerFactory().CreateLogger("system")

	store := repository.NewStore(db)
	service := guardian.NewService(store, logging.GetGlobalLoggerFactory().CreateLogger("guardian"))
	commands.InitializeGuardianCommands(service, cfg.Prefixes[0])
	commands.SetOwner(cfg.OwnerID)

	// Create a new Discord session using the provided token
	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages | discordgo.IntentsMessageContent

	messageHandler := handlers.NewMessageHandler(cfg.Prefixes, commands.Definitions(), logging.GetGlobalLoggerFactory().CreateLogger("handlers"))
	dg.AddHandler(messageHandler.Handle)

	// Start store monitoring and the health check HTTP server
	monitor := health.NewMonitor(store, logRepo, cfg.Health.Schedule, logging.GetGlobalLoggerFactory().CreateLogger("health"))
	if err := monitor.Start(); err != nil {
		return fmt.Errorf("failed to start health monitor: %w", err)
	}
	healthServer := monitor.Serve(cfg.Health.Addr)

	// Open a websocket connection to Discord and begin listening.
	if err := dg.Open(); err != nil {
		monitor.Shutdown(healthServer)
		monitor.Stop()
		return fmt.Errorf("failed to open Discord session: %w", err)
	}

	if err := dg.UpdateGameStatus(0, cfg.Prefixes[0]+"help"); err != nil {
		systemLogger.Warn("Failed to set presence", map[string]interface{}{"error": err.Error()})
	}

	systemLogger.Info("Bot is running. Press CTRL-C to exit.", map[string]interface{}{
		"version":     version.Get().String(),
		"environment": cfg.Environment,
		"prefixes":    cfg.Prefixes,
		"health_addr": cfg.Health.Addr,
	})

	// Wait here until CTRL-C or other term signal is received.
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	systemLogger.Info("Shutting down gracefully...", nil)

	monitor.Shutdown(healthServer)
	monitor.Stop()

	// Cleanly close down the Discord session.
	if err := dg.Close(); err != nil {
		systemLogger.Warn("Failed to close Discord session", map[string]interface{}{"error": err.Error()})
	}

	systemLogger.Info("Application shutdown complete", nil)
	return nil
}

// initializeCentralizedLogging sets up the global logger factory. Entries are
// also persisted to command_logs when enabled.
func initializeCentralizedLogging(cfg *config.Config, db *gorm.DB) *repository.LogRepository {
	logRepo := repository.NewLogRepository(db)

	var factory logging.LoggerFactory
	if cfg.Logger.SaveToDB {
		factory = logging.NewDatabaseLoggerFactory(cfg.Logger.Level, cfg.Logger.Format, logRepo)
	} else {
		factory = logging.NewLoggerFactory(cfg.Logger.Level, cfg.Logger.Format)
	}
	logging.SetGlobalLoggerFactory(factory)

	factory.CreateLogger("system").Info("Centralized logging system initialized successfully", map[string]interface{}{
		"database_connected": true,
		"save_to_db":         cfg.Logger.SaveToDB,
		"level":              cfg.Logger.Level,
	})

	return logRepo
}
