package idle

import "sync"

// Registry tracks one Monitor per session token.
type Registry struct {
	mu       sync.Mutex
	monitors map[string]*Monitor
}

func NewRegistry() *Registry {
	return &Registry{monitors: make(map[string]*Monitor)}
}

func (r *Registry) Add(token string, m *Monitor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.monitors[token]; ok {
		old.Stop()
	}
	r.monitors[token] = m
}

func (r *Registry) Get(token string) (*Monitor, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.monitors[token]
	return m, ok
}

// Remove stops and forgets the monitor for token, if any.
func (r *Registry) Remove(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.monitors[token]; ok {
		m.Stop()
		delete(r.monitors, token)
	}
}

// StopAll tears down every monitor; used on shutdown.
func (r *Registry) StopAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for token, m := range r.monitors {
		m.Stop()
		delete(r.monitors, token)
	}
}
