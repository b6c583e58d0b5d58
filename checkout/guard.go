package checkout

import "sync"

// Guard suppresses concurrent checkout submissions for the same user, e.g.
// the same cart submitted from two tabs at once.
type Guard struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewGuard() *Guard {
	return &Guard{inFlight: make(map[string]struct{})}
}

// Begin reports whether the caller may proceed. A false return means another
// submission for this user is still running.
func (g *Guard) Begin(userID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inFlight[userID]; busy {
		return false
	}
	g.inFlight[userID] = struct{}{}
	return true
}

func (g *Guard) End(userID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inFlight, userID)
}
