package idle

import (
	"sync/atomic"
	"testing"
	"time"
)

// Timeouts are tuned for test speed; the per-second countdown display is
// cosmetic and governed separately from the forced-logout timer, so
// sub-second prompt timeouts exercise the same transitions.

func waitForState(t *testing.T, m *Monitor, want State) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if got, _ := m.Snapshot(); got == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	got, _ := m.Snapshot()
	t.Fatalf("state never became %v, still %v", want, got)
}

func TestWarnThenForcedLogout(t *testing.T) {
	var fired atomic.Int32
	m := NewMonitor(Config{
		IdleTimeout:   30 * time.Millisecond,
		PromptTimeout: 30 * time.Millisecond,
		OnIdle:        func() { fired.Add(1) },
	})
	defer m.Stop()

	waitForState(t, m, StateWarning)
	waitForState(t, m, StateLoggedOut)

	// Allow any stray timers to fire before counting callbacks.
	time.Sleep(100 * time.Millisecond)
	if n := fired.Load(); n != 1 {
		t.Fatalf("expected OnIdle to fire exactly once, fired %d times", n)
	}
}

func TestRemainingSecondsInitializedFromPromptTimeout(t *testing.T) {
	m := NewMonitor(Config{
		IdleTimeout:   20 * time.Millisecond,
		PromptTimeout: 5 * time.Second,
		OnIdle:        func() {},
	})
	defer m.Stop()

	waitForState(t, m, StateWarning)
	if _, remaining := m.Snapshot(); remaining != 5 {
		t.Fatalf("expected remaining=5, got %d", remaining)
	}
}

func TestActivityRestartsIdleCountdown(t *testing.T) {
	var fired atomic.Int32
	m := NewMonitor(Config{
		IdleTimeout:   60 * time.Millisecond,
		PromptTimeout: 60 * time.Millisecond,
		OnIdle:        func() { fired.Add(1) },
	})
	defer m.Stop()

	// Keep signalling activity for longer than idle+prompt combined.
	for i := 0; i < 10; i++ {
		time.Sleep(20 * time.Millisecond)
		m.Activity()
	}
	if state, _ := m.Snapshot(); state != StateActive {
		t.Fatalf("expected to stay active, got %v", state)
	}
	if fired.Load() != 0 {
		t.Fatalf("OnIdle fired despite continuous activity")
	}
}

func TestStayActiveDuringWarningCancelsLogout(t *testing.T) {
	var fired atomic.Int32
	m := NewMonitor(Config{
		IdleTimeout:   30 * time.Millisecond,
		PromptTimeout: 200 * time.Millisecond,
		OnIdle:        func() { fired.Add(1) },
	})
	defer m.Stop()

	waitForState(t, m, StateWarning)
	m.StayActive()

	if state, _ := m.Snapshot(); state != StateActive {
		t.Fatalf("expected active after stay-active, got %v", state)
	}
	// Past the original prompt deadline: the cancelled cycle must not fire.
	time.Sleep(250 * time.Millisecond)
	if fired.Load() != 0 {
		t.Fatalf("OnIdle fired from a cancelled warning cycle")
	}
}

func TestExplicitLogoutBypassesTimers(t *testing.T) {
	var fired atomic.Int32
	m := NewMonitor(Config{
		IdleTimeout:   20 * time.Millisecond,
		PromptTimeout: 20 * time.Millisecond,
		OnIdle:        func() { fired.Add(1) },
	})
	m.Logout()

	if state, _ := m.Snapshot(); state != StateLoggedOut {
		t.Fatalf("expected logged-out, got %v", state)
	}
	time.Sleep(100 * time.Millisecond)
	if fired.Load() != 0 {
		t.Fatalf("OnIdle fired after explicit logout")
	}

	// LoggedOut is terminal: activity must not resurrect the session.
	m.Activity()
	if state, _ := m.Snapshot(); state != StateLoggedOut {
		t.Fatalf("activity revived a logged-out monitor")
	}
}

func TestStopCancelsPendingTimers(t *testing.T) {
	var fired atomic.Int32
	m := NewMonitor(Config{
		IdleTimeout:   20 * time.Millisecond,
		PromptTimeout: 20 * time.Millisecond,
		OnIdle:        func() { fired.Add(1) },
	})
	m.Stop()

	time.Sleep(100 * time.Millisecond)
	if fired.Load() != 0 {
		t.Fatalf("timer fired after Stop")
	}
}

func TestRegistryRemoveStopsMonitor(t *testing.T) {
	var fired atomic.Int32
	reg := NewRegistry()
	m := NewMonitor(Config{
		IdleTimeout:   20 * time.Millisecond,
		PromptTimeout: 20 * time.Millisecond,
		OnIdle:        func() { fired.Add(1) },
	})
	reg.Add("tok", m)

	if _, ok := reg.Get("tok"); !ok {
		t.Fatalf("monitor not registered")
	}
	reg.Remove("tok")
	if _, ok := reg.Get("tok"); ok {
		t.Fatalf("monitor still registered after remove")
	}
	time.Sleep(100 * time.Millisecond)
	if fired.Load() != 0 {
		t.Fatalf("removed monitor still fired")
	}
}
