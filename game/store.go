package game

import "sync"

// Store is the session registry. Sessions are owned by player code (at most
// one per player); the game-id map is a secondary index onto the same
// sessions, never an independent authority. Lock order is store before
// session — nothing may take the store lock while holding a session lock.
type Store struct {
	mu       sync.Mutex
	byPlayer map[string]*Session
	byGame   map[string]*Session
}

func NewStore() *Store {
	return &Store{
		byPlayer: make(map[string]*Session),
		byGame:   make(map[string]*Session),
	}
}

// ByPlayer returns the player's resident session, or nil.
func (st *Store) ByPlayer(playerCode string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.byPlayer[playerCode]
}

// ByGame returns the session for a game id, or nil.
func (st *Store) ByGame(gameID string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.byGame[gameID]
}

// PutNew installs s as its player's session unless that player already has a
// session the isLive predicate accepts. The check and the insert are a single
// atomic step, so two concurrent starts cannot both pass the liveness test.
// The predicate runs under the store lock and may lock the candidate session.
func (st *Store) PutNew(s *Session, isLive func(*Session) bool) (existing *Session, ok bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if cur, found := st.byPlayer[s.playerCode]; found {
		if isLive(cur) {
			return cur, false
		}
		delete(st.byGame, cur.gameID)
	}
	st.byPlayer[s.playerCode] = s
	st.byGame[s.gameID] = s
	return nil, true
}

// Replace installs s unconditionally, discarding any previous session for the
// player. Returns the displaced session, if any.
func (st *Store) Replace(s *Session) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	cur := st.byPlayer[s.playerCode]
	if cur != nil {
		delete(st.byGame, cur.gameID)
	}
	st.byPlayer[s.playerCode] = s
	st.byGame[s.gameID] = s
	return cur
}

// Remove deletes s from both maps. The identity check guards against removing
// a newer session that replaced s after the caller looked it up.
func (st *Store) Remove(s *Session) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.byGame[s.gameID] != s {
		return false
	}
	delete(st.byGame, s.gameID)
	if st.byPlayer[s.playerCode] == s {
		delete(st.byPlayer, s.playerCode)
	}
	return true
}

// All returns the resident sessions at this instant. The slice is a copy;
// callers lock each session individually.
func (st *Store) All() []*Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	out := make([]*Session, 0, len(st.byGame))
	for _, s := range st.byGame {
		out = append(out, s)
	}
	return out
}

// Len reports how many sessions are resident.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.byGame)
}
