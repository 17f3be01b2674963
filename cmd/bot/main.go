package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/kiroku-dev/sensekibot/internal/config"
	"github.com/kiroku-dev/sensekibot/internal/database"
	"github.com/kiroku-dev/sensekibot/internal/database/postgres"
	"github.com/kiroku-dev/sensekibot/internal/discord"
	"github.com/kiroku-dev/sensekibot/internal/record"
	"github.com/kiroku-dev/sensekibot/internal/server"
)

const shutdownTimeout = 10 * time.Second

// CommandFactory creates a Discord command and its handler.
// Used to register all available commands in one place.
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	// Setup logging
	initLogger(cfg)

	ctx := context.Background()
	connString := cfg.GetDBConnString()

	// Apply database migrations
	if err := database.Migrate(ctx, connString); err != nil {
		slog.Error("Migration failed", "error", err)
		os.Exit(1)
	}

	// Connect to database
	pool, err := database.NewPool(connString)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Wire up the record service
	repo := postgres.NewRecordRepository(pool)
	svc := record.NewService(repo)

	// Start the ops HTTP server (keepalive, health, metrics)
	srv := server.NewServer(cfg.Port, pool)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			slog.Error("Server shutdown failed", "error", err)
		}
	}()

	// Create bot
	bot, err := discord.New(discord.Config{
		Token: cfg.DiscordToken,
		AppID: cfg.DiscordAppID,
	}, svc)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	// Register all commands
	registerCommands(bot, commandFactories())

	// Register with Discord API
	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if forceUpdate {
		slog.Info("Force command update enabled via environment variable")
	}

	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		slog.Error("Failed to register commands", "error", err)
		// Don't exit - bot can still run if commands are already registered
	}

	// Run bot until a signal is received
	if err := bot.Run(); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

// commandFactories lists every slash command the bot exposes
func commandFactories() []CommandFactory {
	return []CommandFactory{
		discord.RecordCommand,
		discord.PlayCommand,
		discord.SetCommand,
		discord.DeleteCommand,
		discord.StatsCommand,
	}
}

// registerCommands adds all commands to the bot's registry
func registerCommands(bot *discord.Bot, factories []CommandFactory) {
	for _, factory := range factories {
		cmd, handler := factory()
		bot.Registry.Register(cmd, handler)
	}
}
