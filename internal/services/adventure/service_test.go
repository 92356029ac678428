package adventure_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hollowmere/adventure-bot/internal/domain/game/run"
	apperrors "github.com/hollowmere/adventure-bot/internal/errors"
	"github.com/hollowmere/adventure-bot/internal/repositories/players"
	"github.com/hollowmere/adventure-bot/internal/repositories/runs"
	"github.com/hollowmere/adventure-bot/internal/rng"
	"github.com/hollowmere/adventure-bot/internal/services/adventure"
)

// sequentialUUIDs hands out predictable IDs for assertions
type sequentialUUIDs struct{ n int }

func (g *sequentialUUIDs) New() string {
	g.n++
	return fmt.Sprintf("uuid-%d", g.n)
}

type ServiceSuite struct {
	suite.Suite
	ctx        context.Context
	runRepo    runs.Repository
	playerRepo players.Repository
	src        *rng.Scripted
	service    adventure.Service
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.runRepo = runs.NewInMemoryRepository()
	s.playerRepo = players.NewInMemoryRepository()
	s.src = rng.NewScripted(nil, nil)
	s.service = adventure.NewService(&adventure.ServiceConfig{
		RunRepository:    s.runRepo,
		PlayerRepository: s.playerRepo,
		Random:           s.src,
		UUIDGenerator:    &sequentialUUIDs{},
	})
}

func (s *ServiceSuite) party() []run.PartyMember {
	return []run.PartyMember{
		{UserID: "leader", DisplayName: "Lead"},
		{UserID: "member", DisplayName: "Member"},
	}
}

// startForestRun begins a run whose first offer is [Shopkeep, Rest]
func (s *ServiceSuite) startForestRun() *run.DungeonRun {
	s.src.PushInt(0)      // k = 2
	s.src.PushFloat(0.05) // shopkeep
	s.src.PushFloat(0.15) // rest

	r, err := s.service.StartRun(s.ctx, &adventure.StartRunInput{
		RealmID:     "realm-1",
		ChannelID:   "channel-1",
		DungeonType: run.DungeonTypeForest,
		Members:     s.party(),
	})
	s.Require().NoError(err)
	return r
}

func (s *ServiceSuite) TestStartRun() {
	r := s.startForestRun()

	s.Equal(run.RunStateRoomsOffered, r.State)
	s.Equal([]run.RoomCategory{run.RoomCategoryShopkeep, run.RoomCategoryRest}, r.Offered)
	s.Equal(12, r.RoomsUntilBoss)
	s.Equal(run.SectionQuietGrove, r.Section)

	for _, userID := range []string{"leader", "member"} {
		p, err := s.playerRepo.Get(s.ctx, "realm-1", userID)
		s.Require().NoError(err)
		s.True(p.DungeonRun.InDungeonRun)
	}

	found, err := s.service.GetRunByChannel(s.ctx, "realm-1", "channel-1")
	s.Require().NoError(err)
	s.Equal(r.ID, found.ID)
}

func (s *ServiceSuite) TestStartRun_RejectsMemberAlreadyOnRun() {
	s.startForestRun()

	_, err := s.service.StartRun(s.ctx, &adventure.StartRunInput{
		RealmID:     "realm-1",
		ChannelID:   "channel-2",
		DungeonType: run.DungeonTypeForest,
		Members:     []run.PartyMember{{UserID: "member", DisplayName: "Member"}},
	})
	s.Require().Error(err)
	s.True(apperrors.IsFailedPrecondition(err))
}

func (s *ServiceSuite) TestStartRun_RejectsMemberInDuel() {
	p, err := s.playerRepo.GetOrCreate(s.ctx, "realm-1", "leader", "Lead")
	s.Require().NoError(err)
	p.Dueling.IsInCombat = true
	s.Require().NoError(s.playerRepo.Update(s.ctx, p))

	_, err = s.service.StartRun(s.ctx, &adventure.StartRunInput{
		RealmID:     "realm-1",
		ChannelID:   "channel-1",
		DungeonType: run.DungeonTypeForest,
		Members:     s.party(),
	})
	s.Require().Error(err)
	s.True(apperrors.IsFailedPrecondition(err))
}

func (s *ServiceSuite) TestAdvanceRoom_NonLeaderRejectedWithoutStateChange() {
	r := s.startForestRun()

	_, err := s.service.AdvanceRoom(s.ctx, &adventure.AdvanceRoomInput{
		RunID:  r.ID,
		UserID: "member",
		Choice: 0,
	})
	s.Require().Error(err)
	s.True(apperrors.IsPermissionDenied(err))

	// The rejection left the decision point untouched.
	after, err := s.service.GetRun(s.ctx, r.ID)
	s.Require().NoError(err)
	s.Equal(run.RunStateRoomsOffered, after.State)
	s.Equal(r.Offered, after.Offered)
	s.Equal(r.RoomsUntilBoss, after.RoomsUntilBoss)
}

func (s *ServiceSuite) TestAdvanceRoom_InvalidChoice() {
	r := s.startForestRun()

	_, err := s.service.AdvanceRoom(s.ctx, &adventure.AdvanceRoomInput{
		RunID:  r.ID,
		UserID: "leader",
		Choice: 5,
	})
	s.Require().Error(err)
	s.True(apperrors.IsInvalidArgument(err))
}

func (s *ServiceSuite) TestAdvanceRoom_RestSetsAndCompleteClearsFlags() {
	r := s.startForestRun()

	entered, err := s.service.AdvanceRoom(s.ctx, &adventure.AdvanceRoomInput{
		RunID:  r.ID,
		UserID: "leader",
		Choice: 1, // rest
	})
	s.Require().NoError(err)
	s.Equal(run.RunStateInRoom, entered.State)
	s.Equal(run.RoomCategoryRest, entered.CurrentRoom.Category)
	s.Equal(11, entered.RoomsUntilBoss)
	s.Equal(1, entered.Stats.RestsTaken)

	for _, userID := range []string{"leader", "member"} {
		p, perr := s.playerRepo.Get(s.ctx, "realm-1", userID)
		s.Require().NoError(perr)
		s.True(p.DungeonRun.InRestArea)
	}

	// Completing offers the next decision and clears the rest flag.
	s.src.PushInt(0)
	s.src.PushFloat(0.95)
	s.src.PushFloat(0.95)

	next, err := s.service.CompleteRoom(s.ctx, &adventure.CompleteRoomInput{
		RunID:  r.ID,
		UserID: "leader",
	})
	s.Require().NoError(err)
	s.Equal(run.RunStateRoomsOffered, next.State)
	s.Nil(next.CurrentRoom)
	s.Equal([]run.RoomCategory{run.RoomCategoryCombat, run.RoomCategoryCombat}, next.Offered)

	for _, userID := range []string{"leader", "member"} {
		p, perr := s.playerRepo.Get(s.ctx, "realm-1", userID)
		s.Require().NoError(perr)
		s.False(p.DungeonRun.InRestArea)
	}
}

func (s *ServiceSuite) TestAdvanceRoom_DuelRaceCancelsEncounterWithoutRollback() {
	s.src.PushInt(0)      // k = 2
	s.src.PushFloat(0.30) // mystery...
	s.src.PushFloat(0.10) // ...resolved to treasure, pity moves
	s.src.PushFloat(0.95) // combat

	r, err := s.service.StartRun(s.ctx, &adventure.StartRunInput{
		RealmID:     "realm-1",
		ChannelID:   "channel-1",
		DungeonType: run.DungeonTypeForest,
		Members:     s.party(),
	})
	s.Require().NoError(err)
	s.Equal([]run.RoomCategory{run.RoomCategoryTreasure, run.RoomCategoryCombat}, r.Offered)
	s.Equal(1, r.NumMysteryWithoutShopkeep)

	// A duel starts between the offer and the leader's button press.
	p, err := s.playerRepo.Get(s.ctx, "realm-1", "member")
	s.Require().NoError(err)
	p.Dueling.IsInCombat = true
	s.Require().NoError(s.playerRepo.Update(s.ctx, p))

	_, err = s.service.AdvanceRoom(s.ctx, &adventure.AdvanceRoomInput{
		RunID:  r.ID,
		UserID: "leader",
		Choice: 1, // the combat slot
	})
	s.Require().Error(err)
	s.True(apperrors.IsFailedPrecondition(err))

	// Losing the race aborts the entry but rolls nothing back: the
	// offer and the pity movement from generating it stay as they are.
	after, err := s.service.GetRun(s.ctx, r.ID)
	s.Require().NoError(err)
	s.Equal(run.RunStateRoomsOffered, after.State)
	s.Equal(r.Offered, after.Offered)
	s.Equal(1, after.NumMysteryWithoutShopkeep)
	s.Equal(12, after.RoomsUntilBoss)
	s.Equal(0, after.Stats.RoomsExplored)
}

func (s *ServiceSuite) TestForcedRestThenBossVictory() {
	r := s.startForestRun()

	// Shorten the countdown so the forced sequence is reachable.
	stored, err := s.runRepo.Get(s.ctx, r.ID)
	s.Require().NoError(err)
	stored.RoomsUntilBoss = 1
	stored.Offered = []run.RoomCategory{run.RoomCategoryRest}
	s.Require().NoError(s.runRepo.Update(s.ctx, stored))

	// Entering drops the countdown to 0; completing forces a rest.
	_, err = s.service.AdvanceRoom(s.ctx, &adventure.AdvanceRoomInput{RunID: r.ID, UserID: "leader", Choice: 0})
	s.Require().NoError(err)
	next, err := s.service.CompleteRoom(s.ctx, &adventure.CompleteRoomInput{RunID: r.ID, UserID: "leader"})
	s.Require().NoError(err)
	s.Equal(run.RunStateRestForced, next.State)
	s.Equal([]run.RoomCategory{run.RoomCategoryRest}, next.Offered)

	// The forced rest reaches the sentinel; completing forces the boss.
	_, err = s.service.AdvanceRoom(s.ctx, &adventure.AdvanceRoomInput{RunID: r.ID, UserID: "leader", Choice: 0})
	s.Require().NoError(err)
	next, err = s.service.CompleteRoom(s.ctx, &adventure.CompleteRoomInput{RunID: r.ID, UserID: "leader"})
	s.Require().NoError(err)
	s.Equal(run.RunStateBossForced, next.State)
	s.Equal([]run.RoomCategory{run.RoomCategoryBoss}, next.Offered)

	// The boss room is a combat entry: everyone's duel flag goes up.
	entered, err := s.service.AdvanceRoom(s.ctx, &adventure.AdvanceRoomInput{RunID: r.ID, UserID: "leader", Choice: 0})
	s.Require().NoError(err)
	s.Equal(run.RoomCategoryBoss, entered.CurrentRoom.Category)
	p, err := s.playerRepo.Get(s.ctx, "realm-1", "member")
	s.Require().NoError(err)
	s.True(p.Dueling.IsInCombat)

	final, err := s.service.CompleteRoom(s.ctx, &adventure.CompleteRoomInput{
		RunID:   r.ID,
		UserID:  "leader",
		Outcome: adventure.RoomOutcome{BossDefeated: true},
	})
	s.Require().NoError(err)
	s.Equal(run.RunStateComplete, final.State)
	s.Equal(1, final.Stats.BossesDefeated)

	// Finalization rolled stats into the save and paid the reward.
	for _, userID := range []string{"leader", "member"} {
		p, perr := s.playerRepo.Get(s.ctx, "realm-1", userID)
		s.Require().NoError(perr)
		s.Equal(3, p.Stats.RoomsExplored)
		s.Equal(1, p.Stats.BossesDefeated)
		s.Equal(2, p.Stats.RestsTaken)
		s.Equal(50+250, p.Coins)
		s.Equal(100, p.XP)
		s.False(p.DungeonRun.InDungeonRun)
		s.False(p.Dueling.IsInCombat)
	}

	// The run itself is discarded.
	_, err = s.service.GetRun(s.ctx, r.ID)
	s.True(apperrors.IsNotFound(err))
}

func (s *ServiceSuite) TestForcedRestOutcomeDeltaCannotDelayBoss() {
	r := s.startForestRun()

	stored, err := s.runRepo.Get(s.ctx, r.ID)
	s.Require().NoError(err)
	stored.RoomsUntilBoss = 0
	stored.State = run.RunStateRestForced
	stored.Offered = []run.RoomCategory{run.RoomCategoryRest}
	s.Require().NoError(s.runRepo.Update(s.ctx, stored))

	// Entering the forced rest reaches the sentinel.
	_, err = s.service.AdvanceRoom(s.ctx, &adventure.AdvanceRoomInput{RunID: r.ID, UserID: "leader", Choice: 0})
	s.Require().NoError(err)

	// A detour reported on the rest outcome must not pull the countdown
	// back to zero; that would force a second rest and strand the party
	// short of the boss forever.
	next, err := s.service.CompleteRoom(s.ctx, &adventure.CompleteRoomInput{
		RunID:   r.ID,
		UserID:  "leader",
		Outcome: adventure.RoomOutcome{RoomsDelta: -3},
	})
	s.Require().NoError(err)
	s.Equal(run.RunStateBossForced, next.State)
	s.Equal([]run.RoomCategory{run.RoomCategoryBoss}, next.Offered)
	s.Equal(run.BossSentinel, next.RoomsUntilBoss)
}

func (s *ServiceSuite) TestBossDefeatFailsRunWithoutReward() {
	r := s.startForestRun()

	stored, err := s.runRepo.Get(s.ctx, r.ID)
	s.Require().NoError(err)
	stored.RoomsUntilBoss = run.BossSentinel
	stored.State = run.RunStateBossForced
	stored.Offered = []run.RoomCategory{run.RoomCategoryBoss}
	s.Require().NoError(s.runRepo.Update(s.ctx, stored))

	_, err = s.service.AdvanceRoom(s.ctx, &adventure.AdvanceRoomInput{RunID: r.ID, UserID: "leader", Choice: 0})
	s.Require().NoError(err)

	final, err := s.service.CompleteRoom(s.ctx, &adventure.CompleteRoomInput{
		RunID:   r.ID,
		UserID:  "leader",
		Outcome: adventure.RoomOutcome{BossDefeated: false},
	})
	s.Require().NoError(err)
	s.Equal(run.RunStateFailed, final.State)

	p, err := s.playerRepo.Get(s.ctx, "realm-1", "leader")
	s.Require().NoError(err)
	s.Equal(50, p.Coins, "no reward on a failed run")
	s.False(p.DungeonRun.InDungeonRun)
}

func (s *ServiceSuite) TestVoteAbandon_UnanimityRequired() {
	r := s.startForestRun()

	_, err := s.service.VoteAbandon(s.ctx, r.ID, "stranger")
	s.True(apperrors.IsPermissionDenied(err))

	after, err := s.service.VoteAbandon(s.ctx, r.ID, "member")
	s.Require().NoError(err)
	s.Equal(run.RunStateRoomsOffered, after.State, "one vote does not end the run")
	s.Len(after.AbandonVotes, 1)

	_, err = s.service.VoteAbandon(s.ctx, r.ID, "member")
	s.Require().Error(err)
	s.True(apperrors.Is(err, apperrors.CodeAlreadyExists))

	final, err := s.service.VoteAbandon(s.ctx, r.ID, "leader")
	s.Require().NoError(err)
	s.Equal(run.RunStateFailed, final.State)

	p, err := s.playerRepo.Get(s.ctx, "realm-1", "member")
	s.Require().NoError(err)
	s.False(p.DungeonRun.InDungeonRun)

	_, err = s.service.GetRun(s.ctx, r.ID)
	s.True(apperrors.IsNotFound(err))
}

func (s *ServiceSuite) TestCompleteRoom_OceanCorruptionAccumulates() {
	s.src.PushInt(0)
	s.src.PushFloat(0.05) // shopkeep
	s.src.PushFloat(0.15) // rest

	r, err := s.service.StartRun(s.ctx, &adventure.StartRunInput{
		RealmID:     "realm-1",
		ChannelID:   "channel-1",
		DungeonType: run.DungeonTypeOcean,
		Members:     s.party(),
	})
	s.Require().NoError(err)

	_, err = s.service.AdvanceRoom(s.ctx, &adventure.AdvanceRoomInput{RunID: r.ID, UserID: "leader", Choice: 1})
	s.Require().NoError(err)

	s.src.PushInt(0)
	s.src.PushFloat(0.95)
	s.src.PushFloat(0.95)

	next, err := s.service.CompleteRoom(s.ctx, &adventure.CompleteRoomInput{
		RunID:   r.ID,
		UserID:  "leader",
		Outcome: adventure.RoomOutcome{CorruptionDelta: 2},
	})
	s.Require().NoError(err)
	s.Equal(2, next.Corruption)
}

func (s *ServiceSuite) TestCompleteRoom_RoomsDeltaFloorsAtZero() {
	r := s.startForestRun()

	_, err := s.service.AdvanceRoom(s.ctx, &adventure.AdvanceRoomInput{RunID: r.ID, UserID: "leader", Choice: 1})
	s.Require().NoError(err)

	// A big shortcut cannot jump past the forced rest to the boss.
	next, err := s.service.CompleteRoom(s.ctx, &adventure.CompleteRoomInput{
		RunID:   r.ID,
		UserID:  "leader",
		Outcome: adventure.RoomOutcome{RoomsDelta: -20},
	})
	s.Require().NoError(err)
	s.Equal(0, next.RoomsUntilBoss)
	s.Equal(run.RunStateRestForced, next.State)
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}
