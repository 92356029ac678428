package knucklebones

import (
	"time"

	apperrors "github.com/hollowmere/adventure-bot/internal/errors"
)

// GameState represents where a match is in its lifecycle
type GameState string

const (
	GameStateAwaitingAccept GameState = "awaiting_accept"
	GameStateInProgress     GameState = "in_progress"
	GameStateComplete       GameState = "complete"
	GameStateDeclined       GameState = "declined"
)

// Game is one knucklebones match between two players
type Game struct {
	ID         string    `json:"id"`
	RealmID    string    `json:"realm_id"`
	Players    [2]string `json:"players"` // challenger first
	Boards     [2]Board  `json:"boards"`
	State      GameState `json:"state"`
	Turn       int       `json:"turn"`        // index into Players
	PendingDie int       `json:"pending_die"` // 0 when no roll is waiting for placement
	Wager      int       `json:"wager"`
	Winner     string    `json:"winner,omitempty"` // empty until complete; stays empty on a draw
	CreatedAt  time.Time `json:"created_at"`
}

// NewGame creates a challenge from one player to another
func NewGame(id, realmID, challengerID, opponentID string, wager int) *Game {
	return &Game{
		ID:        id,
		RealmID:   realmID,
		Players:   [2]string{challengerID, opponentID},
		State:     GameStateAwaitingAccept,
		Turn:      0,
		Wager:     wager,
		CreatedAt: time.Now(),
	}
}

// playerIndex returns the board index for a user, or -1
func (g *Game) playerIndex(userID string) int {
	for i, id := range g.Players {
		if id == userID {
			return i
		}
	}
	return -1
}

// IsParticipant reports whether the user is one of the two players
func (g *Game) IsParticipant(userID string) bool {
	return g.playerIndex(userID) >= 0
}

// Accept moves the challenge into play. Only the challenged player may
// accept.
func (g *Game) Accept(userID string) error {
	if g.State != GameStateAwaitingAccept {
		return apperrors.InvalidArgument("challenge is not awaiting acceptance")
	}
	if g.Players[1] != userID {
		return apperrors.PermissionDenied("only the challenged player can accept")
	}
	g.State = GameStateInProgress
	return nil
}

// Decline rejects the challenge
func (g *Game) Decline(userID string) error {
	if g.State != GameStateAwaitingAccept {
		return apperrors.InvalidArgument("challenge is not awaiting acceptance")
	}
	if g.Players[1] != userID {
		return apperrors.PermissionDenied("only the challenged player can decline")
	}
	g.State = GameStateDeclined
	return nil
}

// SetPendingDie records the rolled die the current player must place
func (g *Game) SetPendingDie(userID string, die int) error {
	if g.State != GameStateInProgress {
		return apperrors.InvalidArgument("game is not in progress")
	}
	if g.Players[g.Turn] != userID {
		return apperrors.PermissionDenied("not your turn")
	}
	if g.PendingDie != 0 {
		return apperrors.InvalidArgument("a die is already waiting to be placed")
	}
	if die < 1 || die > DieSides {
		return apperrors.InvalidArgumentf("die must be 1-%d", DieSides)
	}
	g.PendingDie = die
	return nil
}

// PlaceDie places the pending die in a column of the acting player's
// board, destroys matching dice in the opponent's same column, and
// advances the turn. Filling the acting player's board ends the game.
func (g *Game) PlaceDie(userID string, column int) error {
	if g.State != GameStateInProgress {
		return apperrors.InvalidArgument("game is not in progress")
	}
	idx := g.playerIndex(userID)
	if idx < 0 {
		return apperrors.PermissionDenied("you are not in this game")
	}
	if idx != g.Turn {
		return apperrors.PermissionDenied("not your turn")
	}
	if g.PendingDie == 0 {
		return apperrors.InvalidArgument("roll before placing")
	}

	if err := g.Boards[idx].Place(column, g.PendingDie); err != nil {
		return err
	}

	opponent := 1 - idx
	g.Boards[opponent].RemoveMatching(column, g.PendingDie)

	g.PendingDie = 0
	if g.Boards[idx].IsFull() {
		g.finish()
		return nil
	}

	g.Turn = opponent
	return nil
}

// finish scores both boards and records the winner
func (g *Game) finish() {
	g.State = GameStateComplete
	a, b := g.Boards[0].Score(), g.Boards[1].Score()
	switch {
	case a > b:
		g.Winner = g.Players[0]
	case b > a:
		g.Winner = g.Players[1]
	}
}

// Scores returns both players' current totals in player order
func (g *Game) Scores() (int, int) {
	return g.Boards[0].Score(), g.Boards[1].Score()
}
