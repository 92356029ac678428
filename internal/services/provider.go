package services

import (
	"github.com/hollowmere/adventure-bot/internal/repositories/listings"
	"github.com/hollowmere/adventure-bot/internal/repositories/mailbox"
	"github.com/hollowmere/adventure-bot/internal/repositories/players"
	"github.com/hollowmere/adventure-bot/internal/repositories/runs"
	adventureService "github.com/hollowmere/adventure-bot/internal/services/adventure"
	fishingService "github.com/hollowmere/adventure-bot/internal/services/fishing"
	knucklebonesService "github.com/hollowmere/adventure-bot/internal/services/knucklebones"
	mailService "github.com/hollowmere/adventure-bot/internal/services/mail"
	marketService "github.com/hollowmere/adventure-bot/internal/services/market"
	wellService "github.com/hollowmere/adventure-bot/internal/services/well"
)

// Provider holds all service instances
type Provider struct {
	AdventureService    adventureService.Service
	FishingService      fishingService.Service
	WellService         wellService.Service
	KnucklebonesService knucklebonesService.Service
	MailService         mailService.Service
	MarketService       marketService.Service
	PlayerRepository    players.Repository
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	PlayerRepository  players.Repository
	RunRepository     runs.Repository
	MailboxRepository mailbox.Repository
	ListingRepository listings.Repository
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repositories if none provided
	playerRepo := cfg.PlayerRepository
	if playerRepo == nil {
		playerRepo = players.NewInMemoryRepository()
	}

	runRepo := cfg.RunRepository
	if runRepo == nil {
		runRepo = runs.NewInMemoryRepository()
	}

	mailRepo := cfg.MailboxRepository
	if mailRepo == nil {
		mailRepo = mailbox.NewInMemoryRepository()
	}

	listingRepo := cfg.ListingRepository
	if listingRepo == nil {
		listingRepo = listings.NewInMemoryRepository()
	}

	advService := adventureService.NewService(&adventureService.ServiceConfig{
		RunRepository:    runRepo,
		PlayerRepository: playerRepo,
	})

	fishService := fishingService.NewService(&fishingService.ServiceConfig{
		PlayerRepository: playerRepo,
	})

	wishService := wellService.NewService(&wellService.ServiceConfig{
		PlayerRepository: playerRepo,
	})

	kbService := knucklebonesService.NewService(&knucklebonesService.ServiceConfig{
		PlayerRepository: playerRepo,
	})

	giftService := mailService.NewService(&mailService.ServiceConfig{
		PlayerRepository:  playerRepo,
		MailboxRepository: mailRepo,
	})

	bazaarService := marketService.NewService(&marketService.ServiceConfig{
		PlayerRepository:  playerRepo,
		ListingRepository: listingRepo,
	})

	return &Provider{
		AdventureService:    advService,
		FishingService:      fishService,
		WellService:         wishService,
		KnucklebonesService: kbService,
		MailService:         giftService,
		MarketService:       bazaarService,
		PlayerRepository:    playerRepo,
	}
}
