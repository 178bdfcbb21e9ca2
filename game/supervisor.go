package game

// Supervisor is the background half of the expiry discipline. Lazy expiry
// catches sessions that are still being touched; the sweeps reclaim the ones
// nobody asks about anymore. Both use the same per-session lock as request
// handlers.
type Supervisor struct {
	m *Manager
}

func NewSupervisor(m *Manager) *Supervisor {
	return &Supervisor{m: m}
}

// SweepTimeouts flips sessions whose lifetime budget has silently run out and
// removes ended sessions once their grace window has passed. The grace window
// lets a final status poll racing the cleanup still observe the terminal
// state instead of a not-found.
func (sv *Supervisor) SweepTimeouts() (expired, removed int) {
	now := sv.m.clock.Now()
	for _, s := range sv.m.store.All() {
		s.mu.Lock()
		wasEnded := s.ended
		sv.m.lazyExpireLocked(s, now)
		if !wasEnded && s.ended {
			expired++
		}
		del := s.ended && now.Sub(s.endedAt) >= sv.m.cfg.EndedGraceWindow
		s.mu.Unlock()
		if del && sv.m.store.Remove(s) {
			removed++
		}
	}
	return expired, removed
}

// SweepInactive removes sessions, ended or not, that have gone untouched past
// the inactivity ceiling. This is the leak backstop for games abandoned
// before any deadline logic could see them.
func (sv *Supervisor) SweepInactive() (removed int) {
	now := sv.m.clock.Now()
	for _, s := range sv.m.store.All() {
		s.mu.Lock()
		stale := now.Sub(s.lastActionAt) >= sv.m.cfg.InactivityCeiling
		s.mu.Unlock()
		if stale && sv.m.store.Remove(s) {
			removed++
		}
	}
	return removed
}
