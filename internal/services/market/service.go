package market

import (
	"context"
	"time"

	"github.com/hollowmere/adventure-bot/internal/domain/game/market"
	"github.com/hollowmere/adventure-bot/internal/domain/game/player"
	apperrors "github.com/hollowmere/adventure-bot/internal/errors"
	"github.com/hollowmere/adventure-bot/internal/repositories/listings"
	"github.com/hollowmere/adventure-bot/internal/repositories/players"
	"github.com/hollowmere/adventure-bot/internal/uuid"
)

// Service runs the realm marketplace
type Service interface {
	// ListItem escrows an item lot and puts it up for sale
	ListItem(ctx context.Context, input *ListItemInput) (*market.Listing, error)

	// Browse returns the realm's open listings
	Browse(ctx context.Context, realmID string) ([]*market.Listing, error)

	// Buy settles a listing: coins to the seller, items to the buyer
	Buy(ctx context.Context, realmID, buyerID, buyerName, listingID string) (*player.Player, error)

	// Cancel returns an unsold listing to the seller
	Cancel(ctx context.Context, realmID, userID, listingID string) error
}

// ListItemInput contains data for creating a listing
type ListItemInput struct {
	RealmID  string
	SellerID string
	ItemKey  string
	Quantity int
	Price    int
}

type service struct {
	playerRepo  players.Repository
	listingRepo listings.Repository
	uuidGen     uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	PlayerRepository  players.Repository  // Required
	ListingRepository listings.Repository // Required
	UUIDGenerator     uuid.Generator      // Optional
}

// NewService creates a new market service
func NewService(cfg *ServiceConfig) Service {
	if cfg.PlayerRepository == nil {
		panic("player repository is required")
	}
	if cfg.ListingRepository == nil {
		panic("listing repository is required")
	}

	svc := &service{
		playerRepo:  cfg.PlayerRepository,
		listingRepo: cfg.ListingRepository,
		uuidGen:     cfg.UUIDGenerator,
	}
	if svc.uuidGen == nil {
		svc.uuidGen = uuid.NewGenerator()
	}

	return svc
}

// ListItem escrows an item lot and puts it up for sale
func (s *service) ListItem(ctx context.Context, input *ListItemInput) (*market.Listing, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input cannot be nil")
	}
	if input.Quantity <= 0 {
		return nil, apperrors.InvalidArgument("quantity must be positive")
	}
	if input.Price <= 0 {
		return nil, apperrors.InvalidArgument("price must be positive")
	}

	seller, err := s.playerRepo.Get(ctx, input.RealmID, input.SellerID)
	if err != nil {
		return nil, err
	}
	if err := seller.RemoveItem(input.ItemKey, input.Quantity); err != nil {
		return nil, err
	}

	listing := &market.Listing{
		ID:        s.uuidGen.New(),
		RealmID:   input.RealmID,
		SellerID:  input.SellerID,
		ItemKey:   input.ItemKey,
		Quantity:  input.Quantity,
		Price:     input.Price,
		CreatedAt: time.Now(),
	}

	if err := s.listingRepo.Create(ctx, listing); err != nil {
		return nil, apperrors.Wrap(err, "failed to store listing")
	}
	if err := s.playerRepo.Update(ctx, seller); err != nil {
		return nil, apperrors.Wrap(err, "failed to save seller")
	}

	return listing, nil
}

// Browse returns the realm's open listings
func (s *service) Browse(ctx context.Context, realmID string) ([]*market.Listing, error) {
	return s.listingRepo.ListByRealm(ctx, realmID)
}

// Buy settles a listing
func (s *service) Buy(ctx context.Context, realmID, buyerID, buyerName, listingID string) (*player.Player, error) {
	listing, err := s.listingRepo.Get(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.RealmID != realmID {
		return nil, apperrors.NotFound("listing not found: " + listingID)
	}
	if listing.SellerID == buyerID {
		return nil, apperrors.InvalidArgument("you cannot buy your own listing")
	}

	buyer, err := s.playerRepo.GetOrCreate(ctx, realmID, buyerID, buyerName)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to load buyer")
	}
	if err := buyer.SpendCoins(listing.Price); err != nil {
		return nil, err
	}
	buyer.AddItem(listing.ItemKey, listing.Quantity)

	seller, err := s.playerRepo.Get(ctx, realmID, listing.SellerID)
	if err != nil {
		return nil, err
	}
	seller.AddCoins(listing.Price)

	// Remove the listing first so a failed player write cannot leave
	// it purchasable twice.
	if err := s.listingRepo.Delete(ctx, listingID); err != nil {
		return nil, apperrors.Wrap(err, "failed to close listing")
	}
	if err := s.playerRepo.Update(ctx, buyer); err != nil {
		return nil, apperrors.Wrap(err, "failed to save buyer")
	}
	if err := s.playerRepo.Update(ctx, seller); err != nil {
		return nil, apperrors.Wrap(err, "failed to save seller")
	}

	return buyer, nil
}

// Cancel returns an unsold listing to the seller
func (s *service) Cancel(ctx context.Context, realmID, userID, listingID string) error {
	listing, err := s.listingRepo.Get(ctx, listingID)
	if err != nil {
		return err
	}
	if listing.RealmID != realmID || listing.SellerID != userID {
		return apperrors.PermissionDenied("only the seller can cancel a listing")
	}

	seller, err := s.playerRepo.Get(ctx, realmID, userID)
	if err != nil {
		return err
	}
	seller.AddItem(listing.ItemKey, listing.Quantity)

	if err := s.listingRepo.Delete(ctx, listingID); err != nil {
		return apperrors.Wrap(err, "failed to remove listing")
	}
	return s.playerRepo.Update(ctx, seller)
}
