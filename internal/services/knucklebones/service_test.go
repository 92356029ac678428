package knucklebones_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hollowmere/adventure-bot/internal/dice"
	kb "github.com/hollowmere/adventure-bot/internal/domain/game/knucklebones"
	apperrors "github.com/hollowmere/adventure-bot/internal/errors"
	"github.com/hollowmere/adventure-bot/internal/repositories/players"
	"github.com/hollowmere/adventure-bot/internal/services/knucklebones"
)

type ServiceSuite struct {
	suite.Suite
	ctx     context.Context
	repo    players.Repository
	roller  *dice.MockRoller
	service knucklebones.Service
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = players.NewInMemoryRepository()
	s.roller = &dice.MockRoller{}
	s.service = knucklebones.NewService(&knucklebones.ServiceConfig{
		PlayerRepository: s.repo,
		Roller:           s.roller,
	})

	for _, id := range []string{"alice", "bob"} {
		_, err := s.repo.GetOrCreate(s.ctx, "realm-1", id, id)
		s.Require().NoError(err)
	}
}

func (s *ServiceSuite) challenge(wager int) *kb.Game {
	game, err := s.service.Challenge(s.ctx, &knucklebones.ChallengeInput{
		RealmID:      "realm-1",
		ChallengerID: "alice",
		OpponentID:   "bob",
		Wager:        wager,
	})
	s.Require().NoError(err)
	return game
}

func (s *ServiceSuite) TestChallenge_Validation() {
	_, err := s.service.Challenge(s.ctx, &knucklebones.ChallengeInput{
		RealmID:      "realm-1",
		ChallengerID: "alice",
		OpponentID:   "alice",
	})
	s.True(apperrors.IsInvalidArgument(err))

	_, err = s.service.Challenge(s.ctx, &knucklebones.ChallengeInput{
		RealmID:      "realm-1",
		ChallengerID: "alice",
		OpponentID:   "bob",
		Wager:        1000,
	})
	s.True(apperrors.IsInvalidArgument(err), "wager beyond the challenger's purse")
}

func (s *ServiceSuite) TestAccept_SetsBothDuelFlags() {
	game := s.challenge(0)

	accepted, err := s.service.Accept(s.ctx, game.ID, "bob")
	s.Require().NoError(err)
	s.Equal(kb.GameStateInProgress, accepted.State)

	for _, id := range []string{"alice", "bob"} {
		p, perr := s.repo.Get(s.ctx, "realm-1", id)
		s.Require().NoError(perr)
		s.True(p.Dueling.IsInCombat)
	}
}

func (s *ServiceSuite) TestAccept_RaceWithDungeonCombatCancelsChallenge() {
	game := s.challenge(0)

	// Alice walked into a dungeon combat room after challenging.
	p, err := s.repo.Get(s.ctx, "realm-1", "alice")
	s.Require().NoError(err)
	p.Dueling.IsInCombat = true
	s.Require().NoError(s.repo.Update(s.ctx, p))

	_, err = s.service.Accept(s.ctx, game.ID, "bob")
	s.Require().Error(err)
	s.True(apperrors.IsFailedPrecondition(err))

	// The cancelled challenge is gone; bob's flag never went up.
	_, err = s.service.Get(s.ctx, game.ID)
	s.True(apperrors.IsNotFound(err))
	bob, err := s.repo.Get(s.ctx, "realm-1", "bob")
	s.Require().NoError(err)
	s.False(bob.Dueling.IsInCombat)
}

func (s *ServiceSuite) TestDecline_RemovesGame() {
	game := s.challenge(0)

	declined, err := s.service.Decline(s.ctx, game.ID, "bob")
	s.Require().NoError(err)
	s.Equal(kb.GameStateDeclined, declined.State)

	_, err = s.service.Get(s.ctx, game.ID)
	s.True(apperrors.IsNotFound(err))
}

func (s *ServiceSuite) TestPlayThrough_SettlesWagerAndClearsFlags() {
	game := s.challenge(20)
	_, err := s.service.Accept(s.ctx, game.ID, "bob")
	s.Require().NoError(err)

	// Alice fills her board with sixes, bob with ones, alternating.
	// 9 placements each for alice, 8 for bob before alice's board fills.
	place := func(userID string, die, column int) {
		s.roller.SetRolls([]int{die})
		_, rerr := s.service.Roll(s.ctx, game.ID, userID)
		s.Require().NoError(rerr)
		_, perr := s.service.Place(s.ctx, game.ID, userID, column)
		s.Require().NoError(perr)
	}

	for i := 0; i < 8; i++ {
		place("alice", 6, i/3)
		place("bob", 1, i/3)
	}
	place("alice", 6, 2)

	_, err = s.service.Get(s.ctx, game.ID)
	s.True(apperrors.IsNotFound(err), "finished matches are discarded")

	alice, err := s.repo.Get(s.ctx, "realm-1", "alice")
	s.Require().NoError(err)
	bob, err := s.repo.Get(s.ctx, "realm-1", "bob")
	s.Require().NoError(err)

	s.Equal(50+20, alice.Coins)
	s.Equal(50-20, bob.Coins)
	s.Equal(1, alice.Stats.KnucklebonesWon)
	s.Equal(1, bob.Stats.KnucklebonesLost)
	s.False(alice.Dueling.IsInCombat)
	s.False(bob.Dueling.IsInCombat)
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}
