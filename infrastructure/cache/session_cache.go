package cache

import (
	"sync"

	"tecnoreparos/models"
)

// UserSessionCache stores sessions by token. Sessions live only here; there
// is no persisted copy, so a restart logs everyone out.
type UserSessionCache struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

func NewUserSessionCache() *UserSessionCache {
	return &UserSessionCache{sessions: make(map[string]models.Session)}
}

func (c *UserSessionCache) AddSession(s models.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[s.ID] = s
}

func (c *UserSessionCache) FindSessionBySessionToken(token string) (models.Session, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.sessions[token]
	return s, ok
}

func (c *UserSessionCache) DeleteSessionBySessionToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, token)
}

// PurgeExpired removes every expired session and returns the removed tokens
// so callers can tear down per-session resources.
func (c *UserSessionCache) PurgeExpired() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var removed []string
	for token, s := range c.sessions {
		if s.Expired() {
			delete(c.sessions, token)
			removed = append(removed, token)
		}
	}
	return removed
}
