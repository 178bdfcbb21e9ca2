package game

import (
	"time"

	"github.com/google/uuid"
)

// Config holds the game tunables. Zero values fall back to defaults.
type Config struct {
	MaxRounds         int
	SessionTimeout    time.Duration
	EndedGraceWindow  time.Duration
	InactivityCeiling time.Duration
	Rewards           RewardTable
}

// Dispatcher hands a winning game off for payout. Implementations must not
// block: the request path fires and forgets.
type Dispatcher interface {
	Dispatch(playerCode, gameID, recipient string, amount int64)
}

// Recorder receives the write-once record of each finished game.
type Recorder interface {
	RecordCompleted(CompletedGame)
}

// Manager owns the session registry and applies every state transition. Each
// session mutation runs as one atomic unit under that session's lock, so
// concurrent requests on the same game cannot interleave read-modify-write
// sequences.
type Manager struct {
	cfg        Config
	store      *Store
	eval       *Evaluator
	clock      Clock
	newID      func() string
	dispatcher Dispatcher
	recorder   Recorder
}

func NewManager(cfg Config, clock Clock, dispatcher Dispatcher, recorder Recorder) *Manager {
	if cfg.MaxRounds <= 0 {
		cfg.MaxRounds = 3
	}
	if cfg.SessionTimeout <= 0 {
		cfg.SessionTimeout = time.Minute
	}
	if cfg.EndedGraceWindow <= 0 {
		cfg.EndedGraceWindow = 30 * time.Second
	}
	if cfg.InactivityCeiling <= 0 {
		cfg.InactivityCeiling = time.Hour
	}
	if cfg.Rewards == nil {
		cfg.Rewards = DefaultRewardTable()
	}
	if clock == nil {
		clock = SystemClock()
	}
	return &Manager{
		cfg:        cfg,
		store:      NewStore(),
		eval:       NewEvaluator(cfg.Rewards),
		clock:      clock,
		newID:      uuid.NewString,
		dispatcher: dispatcher,
		recorder:   recorder,
	}
}

// SetIDGenerator overrides game id generation.
func (m *Manager) SetIDGenerator(f func() string) {
	m.newID = f
}

func (m *Manager) newSession(playerCode, wallet string) *Session {
	now := m.clock.Now()
	return &Session{
		gameID:       m.newID(),
		playerCode:   playerCode,
		wallet:       wallet,
		deck:         NewShuffledDeck(),
		hand:         []Card{},
		held:         map[int]bool{},
		combination:  CombinationNone,
		createdAt:    now,
		lastActionAt: now,
	}
}

// lazyExpireLocked applies on-demand timeout detection. The budget runs from
// createdAt: holding or drawing does not extend a session's lifetime. Returns
// whether the session is timed out (newly or already). Caller holds s.mu.
func (m *Manager) lazyExpireLocked(s *Session, now time.Time) bool {
	if !s.ended && now.Sub(s.createdAt) >= m.cfg.SessionTimeout {
		s.markTimedOut(now)
		if m.recorder != nil {
			m.recorder.RecordCompleted(s.completedLocked())
		}
	}
	return s.timedOut
}

// Start creates a session for the player. A resident session that is still
// live blocks the start; an ended or expired one is replaced atomically.
func (m *Manager) Start(playerCode, wallet string) (*Snapshot, error) {
	s := m.newSession(playerCode, wallet)
	now := m.clock.Now()
	if _, ok := m.store.PutNew(s, func(cur *Session) bool {
		cur.mu.Lock()
		defer cur.mu.Unlock()
		m.lazyExpireLocked(cur, now)
		return !cur.ended
	}); !ok {
		return nil, ErrSessionExists
	}
	s.mu.Lock()
	snap := s.snapshotLocked(m.cfg.MaxRounds)
	s.mu.Unlock()
	return &snap, nil
}

// Reset discards any existing session for the player, ended or not, and
// creates a fresh one.
func (m *Manager) Reset(playerCode, wallet string) (*Snapshot, error) {
	s := m.newSession(playerCode, wallet)
	m.store.Replace(s)
	s.mu.Lock()
	snap := s.snapshotLocked(m.cfg.MaxRounds)
	s.mu.Unlock()
	return &snap, nil
}

// Draw plays the next round. Held positions keep their card from the previous
// hand; every other position draws fresh. The held set is cleared afterwards.
func (m *Manager) Draw(playerCode string) (*DrawResult, error) {
	s := m.store.ByPlayer(playerCode)
	if s == nil {
		return nil, ErrSessionNotFound
	}

	s.mu.Lock()
	now := m.clock.Now()
	if m.lazyExpireLocked(s, now) {
		s.mu.Unlock()
		return nil, ErrGameTimedOut
	}
	if s.roundsPlayed >= m.cfg.MaxRounds {
		if !s.ended {
			// Unreachable given the round invariant, but handled rather
			// than assumed away.
			s.ended = true
			s.endedAt = now
			if s.reward > 0 {
				s.outcome = OutcomeWin
			} else {
				s.outcome = OutcomeLoss
			}
			rec := s.completedLocked()
			s.mu.Unlock()
			if m.recorder != nil {
				m.recorder.RecordCompleted(rec)
			}
			return nil, ErrMaxRoundsReached
		}
		s.mu.Unlock()
		return nil, ErrMaxRoundsReached
	}
	if s.ended {
		s.mu.Unlock()
		return nil, ErrGameEnded
	}

	heldInto := s.heldList()
	if s.deck.Size() < 3 {
		// Regenerate a full fresh deck, never top up the old one.
		s.deck = NewShuffledDeck()
	}

	if s.roundsPlayed == 0 {
		s.hand = s.deck.Draw(3)
	} else {
		next := make([]Card, 3)
		for i := 0; i < 3; i++ {
			if s.held[i] {
				next[i] = s.hand[i]
			} else {
				next[i] = s.deck.Draw(1)[0]
			}
		}
		s.hand = next
	}

	s.combination, s.reward = m.eval.Evaluate(s.hand)
	s.roundsPlayed++
	s.held = map[int]bool{}
	s.lastActionAt = now

	var rec *CompletedGame
	dispatch := false
	if s.roundsPlayed == m.cfg.MaxRounds {
		s.ended = true
		s.endedAt = now
		if s.reward > 0 {
			s.outcome = OutcomeWin
			dispatch = true
		} else {
			s.outcome = OutcomeLoss
		}
		r := s.completedLocked()
		rec = &r
	}

	res := DrawResult{
		Snapshot:     s.snapshotLocked(m.cfg.MaxRounds),
		HeldIntoDraw: heldInto,
	}
	gameID, recipient, reward := s.gameID, s.recipientLocked(), s.reward
	s.mu.Unlock()

	if rec != nil && m.recorder != nil {
		m.recorder.RecordCompleted(*rec)
	}
	if dispatch && m.dispatcher != nil {
		m.dispatcher.Dispatch(playerCode, gameID, recipient, reward)
	}
	return &res, nil
}

// Hold replaces the session's held set. Legal only between the first draw and
// the final round; at most two distinct positions in {0,1,2}.
func (m *Manager) Hold(playerCode string, positions []int) (*Snapshot, error) {
	s := m.store.ByPlayer(playerCode)
	if s == nil {
		return nil, ErrSessionNotFound
	}

	held := make(map[int]bool, len(positions))
	for _, pos := range positions {
		if pos < 0 || pos > 2 {
			return nil, ErrInvalidPosition
		}
		held[pos] = true
	}
	if len(held) > 2 {
		return nil, ErrInvalidHoldCount
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := m.clock.Now()
	if m.lazyExpireLocked(s, now) {
		return nil, ErrGameTimedOut
	}
	if s.roundsPlayed == 0 || s.roundsPlayed >= m.cfg.MaxRounds {
		return nil, ErrIllegalHold
	}
	if s.ended {
		return nil, ErrGameEnded
	}

	s.held = held
	s.lastActionAt = now
	snap := s.snapshotLocked(m.cfg.MaxRounds)
	return &snap, nil
}

// Check ends the session now, whatever round it is on, and dispatches the
// payout when the current hand is a winner. On a session that is already
// ended (including by timeout) it returns the recorded outcome without ending
// or dispatching again.
func (m *Manager) Check(playerCode string) (*Snapshot, error) {
	s := m.store.ByPlayer(playerCode)
	if s == nil {
		return nil, ErrSessionNotFound
	}

	s.mu.Lock()
	now := m.clock.Now()
	m.lazyExpireLocked(s, now)
	if s.ended {
		snap := s.snapshotLocked(m.cfg.MaxRounds)
		s.mu.Unlock()
		return &snap, nil
	}

	s.ended = true
	s.endedAt = now
	s.lastActionAt = now
	dispatch := false
	if s.reward > 0 {
		s.outcome = OutcomeWin
		dispatch = true
	} else {
		s.outcome = OutcomeLoss
	}
	rec := s.completedLocked()
	snap := s.snapshotLocked(m.cfg.MaxRounds)
	gameID, recipient, reward := s.gameID, s.recipientLocked(), s.reward
	s.mu.Unlock()

	if m.recorder != nil {
		m.recorder.RecordCompleted(rec)
	}
	if dispatch && m.dispatcher != nil {
		m.dispatcher.Dispatch(playerCode, gameID, recipient, reward)
	}
	return &snap, nil
}

// Status returns the session snapshot. Lazy expiry may flip the session to
// timeout as a side effect, but a passive read never dispatches a payout.
func (m *Manager) Status(playerCode string) (*Snapshot, error) {
	return m.status(m.store.ByPlayer(playerCode))
}

// StatusByGame is Status looked up through the game-id index.
func (m *Manager) StatusByGame(gameID string) (*Snapshot, error) {
	return m.status(m.store.ByGame(gameID))
}

func (m *Manager) status(s *Session) (*Snapshot, error) {
	if s == nil {
		return nil, ErrSessionNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m.lazyExpireLocked(s, m.clock.Now())
	snap := s.snapshotLocked(m.cfg.MaxRounds)
	return &snap, nil
}

// MarkRewardPaid flips the session's paid flag after the ledger confirms the
// payout. A session already removed from the registry is a no-op; the ledger
// entry remains the durable truth.
func (m *Manager) MarkRewardPaid(gameID string) {
	s := m.store.ByGame(gameID)
	if s == nil {
		return
	}
	s.mu.Lock()
	s.rewardPaid = true
	s.mu.Unlock()
}

// recipientLocked resolves the payout recipient. Caller holds mu.
func (s *Session) recipientLocked() string {
	if s.wallet != "" {
		return s.wallet
	}
	return s.playerCode
}
