package knucklebones

import (
	"context"
	"sync"

	"github.com/hollowmere/adventure-bot/internal/dice"
	kb "github.com/hollowmere/adventure-bot/internal/domain/game/knucklebones"
	apperrors "github.com/hollowmere/adventure-bot/internal/errors"
	"github.com/hollowmere/adventure-bot/internal/repositories/players"
	"github.com/hollowmere/adventure-bot/internal/uuid"
)

// Service runs knucklebones matches. A match is a duel: both players
// carry the is_in_combat flag while it runs, which is the same flag
// the dungeon engine's combat gate checks.
type Service interface {
	// Challenge creates a match invitation and escrows nothing yet
	Challenge(ctx context.Context, input *ChallengeInput) (*kb.Game, error)

	// Accept starts the match; both players enter combat
	Accept(ctx context.Context, gameID, userID string) (*kb.Game, error)

	// Decline rejects the invitation
	Decline(ctx context.Context, gameID, userID string) (*kb.Game, error)

	// Roll rolls the current player's die
	Roll(ctx context.Context, gameID, userID string) (*kb.Game, error)

	// Place places the pending die in a column; finishing the board
	// settles the wager and ends the duel
	Place(ctx context.Context, gameID, userID string, column int) (*kb.Game, error)

	// Get retrieves a match by ID
	Get(ctx context.Context, gameID string) (*kb.Game, error)
}

// ChallengeInput contains data for creating a match
type ChallengeInput struct {
	RealmID      string
	ChallengerID string
	OpponentID   string
	Wager        int
}

type service struct {
	playerRepo players.Repository
	roller     dice.Roller
	uuidGen    uuid.Generator

	// Matches are ephemeral, like dungeon runs; they live in memory
	// for the duration of play.
	mu    sync.Mutex
	games map[string]*kb.Game
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	PlayerRepository players.Repository // Required
	Roller           dice.Roller        // Optional
	UUIDGenerator    uuid.Generator     // Optional
}

// NewService creates a new knucklebones service
func NewService(cfg *ServiceConfig) Service {
	if cfg.PlayerRepository == nil {
		panic("player repository is required")
	}

	svc := &service{
		playerRepo: cfg.PlayerRepository,
		roller:     cfg.Roller,
		uuidGen:    cfg.UUIDGenerator,
		games:      make(map[string]*kb.Game),
	}
	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}
	if svc.uuidGen == nil {
		svc.uuidGen = uuid.NewGenerator()
	}

	return svc
}

// Challenge creates a match invitation
func (s *service) Challenge(ctx context.Context, input *ChallengeInput) (*kb.Game, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input cannot be nil")
	}
	if input.ChallengerID == input.OpponentID {
		return nil, apperrors.InvalidArgument("you cannot challenge yourself")
	}
	if input.Wager < 0 {
		return nil, apperrors.InvalidArgument("wager cannot be negative")
	}

	challenger, err := s.playerRepo.Get(ctx, input.RealmID, input.ChallengerID)
	if err != nil {
		return nil, err
	}
	if challenger.Dueling.IsInCombat {
		return nil, apperrors.FailedPrecondition("you are already in a duel")
	}
	if challenger.Coins < input.Wager {
		return nil, apperrors.InvalidArgumentf("you cannot cover a %d coin wager", input.Wager)
	}

	game := kb.NewGame(s.uuidGen.New(), input.RealmID, input.ChallengerID, input.OpponentID, input.Wager)

	s.mu.Lock()
	s.games[game.ID] = game
	s.mu.Unlock()

	return game, nil
}

// Accept starts the match; both players enter combat
func (s *service) Accept(ctx context.Context, gameID, userID string) (*kb.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.getLocked(gameID)
	if err != nil {
		return nil, err
	}

	// Re-check both duel flags at the commit point; either player may
	// have entered a dungeon combat room since the challenge went out.
	for _, id := range game.Players {
		p, err := s.playerRepo.Get(ctx, game.RealmID, id)
		if err != nil {
			return nil, err
		}
		if p.Dueling.IsInCombat {
			delete(s.games, gameID)
			return nil, apperrors.FailedPrecondition("a duel is already in progress, the challenge has been cancelled")
		}
	}

	if err := game.Accept(userID); err != nil {
		return nil, err
	}

	for _, id := range game.Players {
		p, err := s.playerRepo.Get(ctx, game.RealmID, id)
		if err != nil {
			return nil, err
		}
		p.Dueling.IsInCombat = true
		if err := s.playerRepo.Update(ctx, p); err != nil {
			return nil, apperrors.Wrapf(err, "failed to flag player %s", id)
		}
	}

	return game, nil
}

// Decline rejects the invitation
func (s *service) Decline(ctx context.Context, gameID, userID string) (*kb.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.getLocked(gameID)
	if err != nil {
		return nil, err
	}

	if err := game.Decline(userID); err != nil {
		return nil, err
	}
	delete(s.games, gameID)

	return game, nil
}

// Roll rolls the current player's die
func (s *service) Roll(ctx context.Context, gameID, userID string) (*kb.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.getLocked(gameID)
	if err != nil {
		return nil, err
	}

	result, err := s.roller.Roll(1, kb.DieSides, 0)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to roll")
	}

	if err := game.SetPendingDie(userID, result.Rolls[0]); err != nil {
		return nil, err
	}

	return game, nil
}

// Place places the pending die in a column
func (s *service) Place(ctx context.Context, gameID, userID string, column int) (*kb.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.getLocked(gameID)
	if err != nil {
		return nil, err
	}

	if err := game.PlaceDie(userID, column); err != nil {
		return nil, err
	}

	if game.State == kb.GameStateComplete {
		if err := s.settle(ctx, game); err != nil {
			return nil, err
		}
		delete(s.games, gameID)
	}

	return game, nil
}

// Get retrieves a match by ID
func (s *service) Get(ctx context.Context, gameID string) (*kb.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked(gameID)
}

func (s *service) getLocked(gameID string) (*kb.Game, error) {
	game, ok := s.games[gameID]
	if !ok {
		return nil, apperrors.NotFound("game not found: " + gameID)
	}
	return game, nil
}

// settle transfers the wager, updates lifetime stats and ends the duel
func (s *service) settle(ctx context.Context, game *kb.Game) error {
	for _, id := range game.Players {
		p, err := s.playerRepo.Get(ctx, game.RealmID, id)
		if err != nil {
			return err
		}

		p.Dueling.IsInCombat = false
		switch {
		case game.Winner == "":
			// Draw: wager stays put.
		case game.Winner == id:
			p.AddCoins(game.Wager)
			p.Stats.KnucklebonesWon++
		default:
			// The loser covers the wager, floored at broke.
			if p.Coins < game.Wager {
				p.Coins = 0
			} else {
				p.Coins -= game.Wager
			}
			p.Stats.KnucklebonesLost++
		}

		if err := s.playerRepo.Update(ctx, p); err != nil {
			return apperrors.Wrapf(err, "failed to settle player %s", id)
		}
	}

	return nil
}
