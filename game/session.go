package game

import (
	"sort"
	"sync"
	"time"
)

// Outcome is the terminal result of a session.
type Outcome string

const (
	OutcomeWin     Outcome = "win"
	OutcomeLoss    Outcome = "loss"
	OutcomeTimeout Outcome = "timeout"
)

// Session is one player's game instance. All fields are guarded by mu; every
// mutation, whether request-driven or from a background sweep, happens under
// the same lock.
type Session struct {
	mu sync.Mutex

	gameID     string
	playerCode string
	wallet     string

	deck         *Deck
	hand         []Card
	held         map[int]bool
	roundsPlayed int
	combination  Combination
	reward       int64

	ended      bool
	timedOut   bool
	rewardPaid bool
	outcome    Outcome

	createdAt    time.Time
	lastActionAt time.Time
	endedAt      time.Time
}

// Snapshot is the outward-facing view of a session. RewardPaid is always
// included so callers can tell "won" apart from "won and paid", since payout
// dispatch is asynchronous to the ending transition.
type Snapshot struct {
	GameID          string      `json:"game_id"`
	PlayerCode      string      `json:"player_code"`
	Hand            []Card      `json:"hand"`
	HeldPositions   []int       `json:"held_positions"`
	RoundsPlayed    int         `json:"rounds_played"`
	RoundsRemaining int         `json:"rounds_remaining"`
	DeckRemaining   int         `json:"deck_remaining"`
	Combination     Combination `json:"combination"`
	Reward          int64       `json:"reward"`
	Ended           bool        `json:"ended"`
	TimedOut        bool        `json:"timed_out"`
	RewardPaid      bool        `json:"reward_paid"`
	Outcome         Outcome     `json:"outcome,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	LastActionAt    time.Time   `json:"last_action_at"`
}

// DrawResult is a snapshot plus the positions that were held going into the
// draw that produced it.
type DrawResult struct {
	Snapshot
	HeldIntoDraw []int `json:"held_into_draw"`
}

// CompletedGame is the write-once audit record of a finished game.
type CompletedGame struct {
	GameID          string
	PlayerCode      string
	Outcome         Outcome
	Combination     Combination
	Reward          int64
	Hand            []Card
	EndedAt         time.Time
	PayoutProcessed bool
}

// heldList returns the held positions sorted ascending. Caller holds mu.
func (s *Session) heldList() []int {
	if len(s.held) == 0 {
		return []int{}
	}
	out := make([]int, 0, len(s.held))
	for pos := range s.held {
		out = append(out, pos)
	}
	sort.Ints(out)
	return out
}

// markTimedOut flips the session to its terminal timeout state. A timed-out
// game is never a win, so any previously evaluated reward is discarded.
// Caller holds mu.
func (s *Session) markTimedOut(now time.Time) {
	s.ended = true
	s.timedOut = true
	s.outcome = OutcomeTimeout
	s.combination = CombinationNone
	s.reward = 0
	s.held = map[int]bool{}
	s.endedAt = now
}

// snapshotLocked copies the current state. Caller holds mu.
func (s *Session) snapshotLocked(maxRounds int) Snapshot {
	hand := make([]Card, len(s.hand))
	copy(hand, s.hand)

	remaining := maxRounds - s.roundsPlayed
	if s.ended || remaining < 0 {
		remaining = 0
	}

	return Snapshot{
		GameID:          s.gameID,
		PlayerCode:      s.playerCode,
		Hand:            hand,
		HeldPositions:   s.heldList(),
		RoundsPlayed:    s.roundsPlayed,
		RoundsRemaining: remaining,
		DeckRemaining:   s.deck.Size(),
		Combination:     s.combination,
		Reward:          s.reward,
		Ended:           s.ended,
		TimedOut:        s.timedOut,
		RewardPaid:      s.rewardPaid,
		Outcome:         s.outcome,
		CreatedAt:       s.createdAt,
		LastActionAt:    s.lastActionAt,
	}
}

// completedLocked builds the audit record for the current terminal state.
// Caller holds mu; only valid once ended.
func (s *Session) completedLocked() CompletedGame {
	hand := make([]Card, len(s.hand))
	copy(hand, s.hand)
	return CompletedGame{
		GameID:      s.gameID,
		PlayerCode:  s.playerCode,
		Outcome:     s.outcome,
		Combination: s.combination,
		Reward:      s.reward,
		Hand:        hand,
		EndedAt:     s.endedAt,
	}
}
