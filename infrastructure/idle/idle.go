// Package idle implements the inactivity watchdog: after a period with no
// user activity the session enters a warning countdown, and if the warning
// also runs out the idle callback ends the session.
package idle

import (
	"sync"
	"time"
)

// State of the watchdog.
type State int

const (
	// StateActive means recent activity was observed.
	StateActive State = iota
	// StateWarning means the idle timeout elapsed and the logout countdown
	// is running.
	StateWarning
	// StateLoggedOut is terminal; leaving it requires a fresh login and a
	// fresh Monitor.
	StateLoggedOut
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateWarning:
		return "warning"
	case StateLoggedOut:
		return "logged-out"
	}
	return "unknown"
}

// Config holds the two timeouts and the callback fired on forced logout.
type Config struct {
	IdleTimeout   time.Duration
	PromptTimeout time.Duration
	// OnIdle is invoked exactly once, outside the monitor lock, when the
	// warning countdown elapses without activity.
	OnIdle func()
}

// Monitor is an explicit finite-state machine over cancellable scheduled
// callbacks. At most one forced-logout timer is pending at any time; a
// generation counter invalidates callbacks from superseded schedules so a
// stale timer can never move the state after it was reset or stopped.
type Monitor struct {
	mu  sync.Mutex
	cfg Config

	state     State
	remaining int
	gen       uint64
	stopped   bool

	idleTimer   *time.Timer
	promptTimer *time.Timer
	tickTimer   *time.Timer
}

// NewMonitor starts the idle countdown immediately, mirroring a session that
// begins with a login (which is itself activity).
func NewMonitor(cfg Config) *Monitor {
	m := &Monitor{cfg: cfg, state: StateActive}
	m.mu.Lock()
	m.resetLocked()
	m.mu.Unlock()
	return m
}

// Activity registers a qualifying user-activity signal. In Active or Warning
// it cancels any pending countdown and restarts the idle timer from zero.
// After logout or teardown it is a no-op.
func (m *Monitor) Activity() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopped || m.state == StateLoggedOut {
		return
	}
	m.resetLocked()
}

// StayActive is the explicit "keep me signed in" action on the warning
// prompt. It is equivalent to any other activity signal.
func (m *Monitor) StayActive() {
	m.Activity()
}

// Logout is the user-initiated transition to LoggedOut. It bypasses the
// timer machinery and never invokes OnIdle.
func (m *Monitor) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancelTimersLocked()
	m.state = StateLoggedOut
}

// Stop cancels all pending timers. No callback fires after Stop returns.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancelTimersLocked()
	m.stopped = true
}

// Snapshot returns the current state and, while warning, the whole seconds
// left on the countdown display.
func (m *Monitor) Snapshot() (State, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, m.remaining
}

// resetLocked cancels everything pending and restarts the idle countdown.
func (m *Monitor) resetLocked() {
	m.cancelTimersLocked()
	m.state = StateActive
	m.remaining = 0
	gen := m.gen
	m.idleTimer = time.AfterFunc(m.cfg.IdleTimeout, func() { m.enterWarning(gen) })
}

// cancelTimersLocked stops pending timers and bumps the generation so any
// callback already in flight becomes a no-op.
func (m *Monitor) cancelTimersLocked() {
	m.gen++
	if m.idleTimer != nil {
		m.idleTimer.Stop()
		m.idleTimer = nil
	}
	if m.promptTimer != nil {
		m.promptTimer.Stop()
		m.promptTimer = nil
	}
	if m.tickTimer != nil {
		m.tickTimer.Stop()
		m.tickTimer = nil
	}
}

func (m *Monitor) enterWarning(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopped || gen != m.gen || m.state != StateActive {
		return
	}
	m.state = StateWarning
	m.remaining = int(m.cfg.PromptTimeout / time.Second)
	m.promptTimer = time.AfterFunc(m.cfg.PromptTimeout, func() { m.forceLogout(gen) })
	m.scheduleTickLocked(gen)
}

// scheduleTickLocked drives the cosmetic once-per-second countdown while the
// warning is visible. The forced logout is governed by promptTimer alone.
func (m *Monitor) scheduleTickLocked(gen uint64) {
	m.tickTimer = time.AfterFunc(time.Second, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.stopped || gen != m.gen || m.state != StateWarning {
			return
		}
		if m.remaining > 0 {
			m.remaining--
		}
		m.scheduleTickLocked(gen)
	})
}

func (m *Monitor) forceLogout(gen uint64) {
	m.mu.Lock()
	if m.stopped || gen != m.gen || m.state != StateWarning {
		m.mu.Unlock()
		return
	}
	m.cancelTimersLocked()
	m.state = StateLoggedOut
	m.remaining = 0
	onIdle := m.cfg.OnIdle
	m.mu.Unlock()

	if onIdle != nil {
		onIdle()
	}
}
