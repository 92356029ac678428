package adventure

//go:generate mockgen -destination=mock/mock_service.go -package=mockadventure -source=service.go

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hollowmere/adventure-bot/internal/domain/game/player"
	"github.com/hollowmere/adventure-bot/internal/domain/game/run"
	apperrors "github.com/hollowmere/adventure-bot/internal/errors"
	"github.com/hollowmere/adventure-bot/internal/repositories/players"
	"github.com/hollowmere/adventure-bot/internal/repositories/runs"
	"github.com/hollowmere/adventure-bot/internal/rng"
	"github.com/hollowmere/adventure-bot/internal/uuid"
)

// Service orchestrates dungeon runs: party gating, room offers,
// advancement and finalization
type Service interface {
	// StartRun creates a run for a party and offers the first rooms.
	// It fails if any member is already on a run or in a duel.
	StartRun(ctx context.Context, input *StartRunInput) (*run.DungeonRun, error)

	// GetRun retrieves a run by ID
	GetRun(ctx context.Context, runID string) (*run.DungeonRun, error)

	// GetRunByChannel retrieves the active run for a channel
	GetRunByChannel(ctx context.Context, realmID, channelID string) (*run.DungeonRun, error)

	// AdvanceRoom enters one of the offered rooms. Leader-gated.
	AdvanceRoom(ctx context.Context, input *AdvanceRoomInput) (*run.DungeonRun, error)

	// CompleteRoom resolves the current room and offers the next
	// decision point. Leader-gated.
	CompleteRoom(ctx context.Context, input *CompleteRoomInput) (*run.DungeonRun, error)

	// VoteAbandon records one member's abandon vote; the run fails once
	// every member has voted
	VoteAbandon(ctx context.Context, runID, userID string) (*run.DungeonRun, error)
}

// StartRunInput contains data for starting a run
type StartRunInput struct {
	RealmID     string
	ChannelID   string
	DungeonType run.DungeonType

	// Members in party order; the first member is the group leader
	Members []run.PartyMember
}

// AdvanceRoomInput identifies the offered slot the party enters
type AdvanceRoomInput struct {
	RunID  string
	UserID string
	Choice int
}

// RoomOutcome describes how the current room resolved
type RoomOutcome struct {
	// RoomsDelta is a content-driven shortcut (negative) or detour
	// (positive) applied on top of the fixed per-entry decrement
	RoomsDelta int

	// CorruptionDelta accumulates on ocean runs only
	CorruptionDelta int

	// BossDefeated reports the boss duel result; only read when the
	// current room is the boss room
	BossDefeated bool
}

// CompleteRoomInput contains data for resolving the current room
type CompleteRoomInput struct {
	RunID   string
	UserID  string
	Outcome RoomOutcome
}

type service struct {
	runRepo    runs.Repository
	playerRepo players.Repository
	zones      map[run.DungeonType]run.ZoneConfig
	src        rng.Source
	uuidGen    uuid.Generator

	// Per-run mutual exclusion: every mutating operation on a run
	// holds that run's lock, so two members' button presses cannot
	// interleave their read-modify-write cycles.
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	RunRepository    runs.Repository                    // Required
	PlayerRepository players.Repository                 // Required
	ZoneConfigs      map[run.DungeonType]run.ZoneConfig // Optional (defaults)
	Random           rng.Source                         // Optional
	UUIDGenerator    uuid.Generator                     // Optional
}

// NewService creates a new adventure service
func NewService(cfg *ServiceConfig) Service {
	if cfg.RunRepository == nil {
		panic("run repository is required")
	}
	if cfg.PlayerRepository == nil {
		panic("player repository is required")
	}

	svc := &service{
		runRepo:    cfg.RunRepository,
		playerRepo: cfg.PlayerRepository,
		zones:      cfg.ZoneConfigs,
		src:        cfg.Random,
		uuidGen:    cfg.UUIDGenerator,
		locks:      make(map[string]*sync.Mutex),
	}

	if svc.zones == nil {
		svc.zones = run.DefaultZoneConfigs()
	}
	if svc.src == nil {
		svc.src = rng.NewSource()
	}
	if svc.uuidGen == nil {
		svc.uuidGen = uuid.NewGenerator()
	}

	return svc
}

func (s *service) lockRun(runID string) func() {
	s.locksMu.Lock()
	l, ok := s.locks[runID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[runID] = l
	}
	s.locksMu.Unlock()

	l.Lock()
	return l.Unlock
}

func (s *service) dropLock(runID string) {
	s.locksMu.Lock()
	delete(s.locks, runID)
	s.locksMu.Unlock()
}

// StartRun creates a run for a party and offers the first rooms
func (s *service) StartRun(ctx context.Context, input *StartRunInput) (*run.DungeonRun, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input cannot be nil")
	}
	if len(input.Members) == 0 {
		return nil, apperrors.InvalidArgument("party cannot be empty")
	}

	cfg, ok := s.zones[input.DungeonType]
	if !ok {
		return nil, apperrors.InvalidArgumentf("unknown dungeon type %q", input.DungeonType)
	}

	// Best-effort gating against shared player state: nobody may
	// already be on a run or mid-duel.
	members := make([]*player.Player, 0, len(input.Members))
	for _, m := range input.Members {
		p, err := s.playerRepo.GetOrCreate(ctx, input.RealmID, m.UserID, m.DisplayName)
		if err != nil {
			return nil, apperrors.Wrapf(err, "failed to load player %s", m.UserID)
		}
		if p.DungeonRun.InDungeonRun {
			return nil, apperrors.FailedPrecondition(p.DisplayName + " is already on an adventure").
				WithMeta("user_id", p.UserID)
		}
		if p.Dueling.IsInCombat {
			return nil, apperrors.FailedPrecondition(p.DisplayName + " is already in a duel").
				WithMeta("user_id", p.UserID)
		}
		members = append(members, p)
	}

	r := run.New(s.uuidGen.New(), input.RealmID, input.ChannelID, input.DungeonType, run.Party(input.Members), cfg)
	run.NextDecision(r, cfg, s.src)

	if err := s.runRepo.Create(ctx, r); err != nil {
		return nil, apperrors.Wrap(err, "failed to create run")
	}

	for _, p := range members {
		p.DungeonRun.InDungeonRun = true
		if err := s.playerRepo.Update(ctx, p); err != nil {
			return nil, apperrors.Wrapf(err, "failed to flag player %s", p.UserID)
		}
	}

	return r, nil
}

// GetRun retrieves a run by ID
func (s *service) GetRun(ctx context.Context, runID string) (*run.DungeonRun, error) {
	if runID == "" {
		return nil, apperrors.InvalidArgument("run ID is required")
	}
	return s.runRepo.Get(ctx, runID)
}

// GetRunByChannel retrieves the active run for a channel
func (s *service) GetRunByChannel(ctx context.Context, realmID, channelID string) (*run.DungeonRun, error) {
	return s.runRepo.GetByChannel(ctx, realmID, channelID)
}

// AdvanceRoom enters one of the offered rooms
func (s *service) AdvanceRoom(ctx context.Context, input *AdvanceRoomInput) (*run.DungeonRun, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input cannot be nil")
	}

	unlock := s.lockRun(input.RunID)
	defer unlock()

	r, err := s.runRepo.Get(ctx, input.RunID)
	if err != nil {
		return nil, err
	}

	if err := s.requireLeader(r, input.UserID); err != nil {
		return nil, err
	}

	switch r.State {
	case run.RunStateRoomsOffered, run.RunStateBossForced, run.RunStateRestForced:
	default:
		return nil, apperrors.InvalidArgument("no rooms are on offer right now").
			WithMeta("state", string(r.State))
	}

	if input.Choice < 0 || input.Choice >= len(r.Offered) {
		return nil, apperrors.InvalidArgumentf("choice must be 0-%d", len(r.Offered)-1)
	}
	category := r.Offered[input.Choice]

	// Re-check the duel gate right before committing a combat
	// transition. A knucklebones duel can start between the offer and
	// this press; losing that race cancels the encounter, and any
	// counter movement from generating the offer stays as-is.
	if category == run.RoomCategoryCombat || category == run.RoomCategoryBoss {
		for _, m := range r.Party {
			p, err := s.playerRepo.Get(ctx, r.RealmID, m.UserID)
			if err != nil {
				return nil, err
			}
			if p.Dueling.IsInCombat {
				return nil, apperrors.FailedPrecondition("a duel is already in progress, the encounter has been cancelled").
					WithMeta("user_id", m.UserID)
			}
		}
	}

	cfg := s.zones[r.DungeonType]
	room := run.BuildRoom(category, r, s.src)
	if room == nil {
		return nil, apperrors.Internalf("no content for category %q in %s", category, r.DungeonType)
	}

	r.RecordEntry(category)
	r.CurrentRoom = room
	r.State = run.RunStateInRoom
	r.Offered = nil
	r.AdvanceSection(cfg)

	if r.DungeonType == run.DungeonTypeOcean {
		switch category {
		case run.RoomCategoryCombat:
			r.PreviousCombat = room.Key
		case run.RoomCategoryEvent:
			r.PreviousEvent = room.Key
		}
	}

	if err := s.applyEntryFlags(ctx, r, category); err != nil {
		return nil, err
	}

	if err := s.runRepo.Update(ctx, r); err != nil {
		return nil, apperrors.Wrap(err, "failed to update run")
	}

	return r, nil
}

// applyEntryFlags mirrors room entry onto each member's persistent
// flags: rest areas for shopkeep/rest rooms, combat for combat/boss
func (s *service) applyEntryFlags(ctx context.Context, r *run.DungeonRun, category run.RoomCategory) error {
	var setRest, setCombat bool
	switch category {
	case run.RoomCategoryShopkeep, run.RoomCategoryRest:
		setRest = true
	case run.RoomCategoryCombat, run.RoomCategoryBoss:
		setCombat = true
	default:
		return nil
	}

	for _, m := range r.Party {
		p, err := s.playerRepo.Get(ctx, r.RealmID, m.UserID)
		if err != nil {
			return err
		}
		if setRest {
			p.DungeonRun.InRestArea = true
		}
		if setCombat {
			p.Dueling.IsInCombat = true
		}
		if err := s.playerRepo.Update(ctx, p); err != nil {
			return apperrors.Wrapf(err, "failed to update player %s", m.UserID)
		}
	}

	return nil
}

// CompleteRoom resolves the current room and offers the next decision
func (s *service) CompleteRoom(ctx context.Context, input *CompleteRoomInput) (*run.DungeonRun, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input cannot be nil")
	}

	unlock := s.lockRun(input.RunID)
	defer unlock()

	r, err := s.runRepo.Get(ctx, input.RunID)
	if err != nil {
		return nil, err
	}

	if err := s.requireLeader(r, input.UserID); err != nil {
		return nil, err
	}

	if r.State != run.RunStateInRoom || r.CurrentRoom == nil {
		return nil, apperrors.InvalidArgument("the party is not inside a room").
			WithMeta("state", string(r.State))
	}

	category := r.CurrentRoom.Category

	if err := s.clearEntryFlags(ctx, r, category); err != nil {
		return nil, err
	}

	r.AdjustRoomsUntilBoss(input.Outcome.RoomsDelta)
	if r.DungeonType == run.DungeonTypeOcean {
		r.Corruption += input.Outcome.CorruptionDelta
	}

	if category == run.RoomCategoryBoss {
		if input.Outcome.BossDefeated {
			r.Stats.BossesDefeated++
			r.State = run.RunStateComplete
		} else {
			r.State = run.RunStateFailed
		}
		r.CurrentRoom = nil
		if err := s.finalize(ctx, r); err != nil {
			return nil, err
		}
		return r, nil
	}

	r.CurrentRoom = nil
	cfg := s.zones[r.DungeonType]
	run.NextDecision(r, cfg, s.src)

	if err := s.runRepo.Update(ctx, r); err != nil {
		return nil, apperrors.Wrap(err, "failed to update run")
	}

	return r, nil
}

// clearEntryFlags undoes the flags applyEntryFlags set for the room
func (s *service) clearEntryFlags(ctx context.Context, r *run.DungeonRun, category run.RoomCategory) error {
	var clearRest, clearCombat bool
	switch category {
	case run.RoomCategoryShopkeep, run.RoomCategoryRest:
		clearRest = true
	case run.RoomCategoryCombat, run.RoomCategoryBoss:
		clearCombat = true
	default:
		return nil
	}

	for _, m := range r.Party {
		p, err := s.playerRepo.Get(ctx, r.RealmID, m.UserID)
		if err != nil {
			return err
		}
		if clearRest {
			p.DungeonRun.InRestArea = false
		}
		if clearCombat {
			p.Dueling.IsInCombat = false
		}
		if err := s.playerRepo.Update(ctx, p); err != nil {
			return apperrors.Wrapf(err, "failed to update player %s", m.UserID)
		}
	}

	return nil
}

// VoteAbandon records one member's abandon vote
func (s *service) VoteAbandon(ctx context.Context, runID, userID string) (*run.DungeonRun, error) {
	unlock := s.lockRun(runID)
	defer unlock()

	r, err := s.runRepo.Get(ctx, runID)
	if err != nil {
		return nil, err
	}

	if !r.Party.Contains(userID) {
		return nil, apperrors.PermissionDenied("you are not in this party")
	}
	if r.AbandonVotes[userID] {
		return nil, apperrors.AlreadyExists("you have already voted to abandon")
	}

	if r.AbandonVotes == nil {
		r.AbandonVotes = make(map[string]bool)
	}
	r.AbandonVotes[userID] = true

	if len(r.AbandonVotes) < len(r.Party) {
		// Not unanimous yet; the vote waits indefinitely for the rest
		// of the party.
		if err := s.runRepo.Update(ctx, r); err != nil {
			return nil, apperrors.Wrap(err, "failed to update run")
		}
		return r, nil
	}

	r.State = run.RunStateFailed
	r.CurrentRoom = nil
	if err := s.finalize(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

// finalize rolls the run's accumulators into each member's lifetime
// stats, clears the persistent flags, and discards the run
func (s *service) finalize(ctx context.Context, r *run.DungeonRun) error {
	victory := r.State == run.RunStateComplete

	g, gctx := errgroup.WithContext(ctx)
	for _, m := range r.Party {
		m := m
		g.Go(func() error {
			p, err := s.playerRepo.Get(gctx, r.RealmID, m.UserID)
			if err != nil {
				return err
			}

			p.Stats.RoomsExplored += r.Stats.RoomsExplored
			p.Stats.CombatEncounters += r.Stats.CombatEncounters
			p.Stats.TreasureRoomsEncountered += r.Stats.TreasureRoomsEncountered
			p.Stats.ShopkeepsEncountered += r.Stats.ShopkeepsEncountered
			p.Stats.EventsEncountered += r.Stats.EventsEncountered
			p.Stats.RestsTaken += r.Stats.RestsTaken
			p.Stats.BossesDefeated += r.Stats.BossesDefeated

			p.DungeonRun.InDungeonRun = false
			p.DungeonRun.InRestArea = false
			p.Dueling.IsInCombat = false
			if r.DungeonType == run.DungeonTypeOcean {
				p.DungeonRun.Corruption += r.Corruption
				p.DungeonRun.PreviousCombat = r.PreviousCombat
				p.DungeonRun.PreviousEvent = r.PreviousEvent
			}

			if victory {
				p.AddCoins(250)
				p.XP += 100
			}

			return s.playerRepo.Update(gctx, p)
		})
	}
	if err := g.Wait(); err != nil {
		return apperrors.Wrap(err, "failed to finalize run for party")
	}

	if err := s.runRepo.Delete(ctx, r.ID); err != nil {
		return apperrors.Wrap(err, "failed to discard run")
	}
	s.dropLock(r.ID)

	return nil
}

// requireLeader enforces the group-leader gate on advancing actions
func (s *service) requireLeader(r *run.DungeonRun, userID string) error {
	if !r.Party.Contains(userID) {
		return apperrors.PermissionDenied("you are not in this party")
	}
	if !r.Party.IsLeader(userID) {
		return apperrors.PermissionDenied("only the group leader can do that")
	}
	return nil
}
