package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/hollowmere/adventure-bot/internal/config"
	"github.com/hollowmere/adventure-bot/internal/handlers/discord"
	"github.com/hollowmere/adventure-bot/internal/repositories/listings"
	"github.com/hollowmere/adventure-bot/internal/repositories/mailbox"
	"github.com/hollowmere/adventure-bot/internal/repositories/players"
	"github.com/hollowmere/adventure-bot/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Bot Token: %s...%s", cfg.Discord.Token[:8], cfg.Discord.Token[len(cfg.Discord.Token)-4:])
	log.Printf("Application ID: %s", cfg.Discord.AppID)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	providerConfig := &services.ProviderConfig{}

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	// Player saves, mailboxes and listings persist in Redis when it is
	// reachable; dungeon runs and knucklebones matches are ephemeral
	// and always live in memory.
	log.Printf("Connecting to Redis at: %s", cfg.Redis.Addr)
	redisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if pingErr := redisClient.Ping(ctx).Err(); pingErr != nil {
		cancel()
		log.Printf("Failed to connect to Redis: %v", pingErr)
		log.Println("Falling back to in-memory repositories")
		if closeErr := redisClient.Close(); closeErr != nil {
			log.Printf("Error closing Redis connection: %v", closeErr)
		}
		redisClient = nil
	} else {
		cancel()
		log.Println("Successfully connected to Redis")

		providerConfig.PlayerRepository = players.NewRedis(redisClient, players.NewRealTimeProvider())
		providerConfig.MailboxRepository = mailbox.NewRedis(redisClient)
		providerConfig.ListingRepository = listings.NewRedis(redisClient)

		log.Println("Using Redis for persistence")
	}

	// Create service provider
	serviceProvider := services.NewProvider(providerConfig)

	// Create Discord handler
	handler := discord.NewHandler(&discord.HandlerConfig{
		ServiceProvider: serviceProvider,
	})

	// Register interaction handler
	dg.AddHandler(handler.HandleInteraction)

	// Open connection to Discord
	err = dg.Open()
	if err != nil {
		log.Printf("Failed to open Discord connection: %v", err)
		return
	}
	defer func() {
		clientErr := dg.Close()
		if clientErr != nil {
			log.Printf("Failed to close Discord connection: %v", clientErr)
		}
	}()

	// Register commands
	// Use empty string for global commands, or set a specific guild ID for testing
	if err := handler.RegisterCommands(dg, cfg.Discord.GuildID); err != nil {
		log.Printf("Failed to register commands: %v", err)
		return
	}

	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		} else {
			log.Println("Closed Redis connection")
		}
	}
}
