package cooldown

import (
	"testing"
	"time"
)

func newTestTracker(start time.Time) (*Tracker, *time.Time) {
	t := NewTracker()
	now := start
	t.now = func() time.Time { return now }
	return t, &now
}

func TestTracker_RegisterAndExpiry(t *testing.T) {
	base := time.Unix(1_700_000_000, 0)
	tr, now := newTestTracker(base)

	if tr.IsInCooldown("u1", "mock") {
		t.Fatal("unexpected cooldown before register")
	}

	tr.Register("u1", "mock", 30)

	if !tr.IsInCooldown("u1", "mock") {
		t.Fatal("expected cooldown right after register")
	}
	if tr.IsInCooldown("u1", "nickname") {
		t.Fatal("cooldown leaked to another action")
	}
	if tr.IsInCooldown("u2", "mock") {
		t.Fatal("cooldown leaked to another user")
	}

	*now = base.Add(29 * time.Second)
	if !tr.IsInCooldown("u1", "mock") {
		t.Fatal("expected cooldown at 29s")
	}

	*now = base.Add(30 * time.Second)
	if tr.IsInCooldown("u1", "mock") {
		t.Fatal("expected cooldown gone at 30s")
	}
}

func TestTracker_RemainingRoundsUp(t *testing.T) {
	base := time.Unix(1_700_000_000, 0)
	tr, now := newTestTracker(base)

	tr.Register("u1", "mock", 30)

	// 1s in: 29s left exactly
	*now = base.Add(1 * time.Second)
	if got := tr.Remaining("u1", "mock"); got != 29 {
		t.Fatalf("remaining at 1s = %d, want 29", got)
	}

	// 1.5s in: 28.5s left, must round up to 29 — never report 0 while blocked
	*now = base.Add(1500 * time.Millisecond)
	if got := tr.Remaining("u1", "mock"); got != 29 {
		t.Fatalf("remaining at 1.5s = %d, want 29", got)
	}

	// 29.999s in: still blocked, must report 1, not 0
	*now = base.Add(30*time.Second - time.Millisecond)
	if got := tr.Remaining("u1", "mock"); got != 1 {
		t.Fatalf("remaining just before expiry = %d, want 1", got)
	}

	*now = base.Add(31 * time.Second)
	if got := tr.Remaining("u1", "mock"); got != 0 {
		t.Fatalf("remaining after expiry = %d, want 0", got)
	}
}

func TestTracker_RemainingNeverNegative(t *testing.T) {
	base := time.Unix(1_700_000_000, 0)
	tr, now := newTestTracker(base)

	tr.Register("u1", "mock", 5)
	*now = base.Add(time.Hour)
	if got := tr.Remaining("u1", "mock"); got != 0 {
		t.Fatalf("remaining long after expiry = %d, want 0", got)
	}
	if got := tr.Remaining("nobody", "mock"); got != 0 {
		t.Fatalf("remaining for unknown user = %d, want 0", got)
	}
}

func TestTracker_LastRegistrationWins(t *testing.T) {
	base := time.Unix(1_700_000_000, 0)
	tr, now := newTestTracker(base)

	tr.Register("u1", "mock", 300)
	tr.Register("u1", "mock", 5)

	*now = base.Add(6 * time.Second)
	if tr.IsInCooldown("u1", "mock") {
		t.Fatal("re-register did not overwrite the longer cooldown")
	}
}

func TestTracker_Sweep(t *testing.T) {
	base := time.Unix(1_700_000_000, 0)
	tr, now := newTestTracker(base)

	tr.Register("u1", "mock", 10)
	tr.Register("u2", "mock", 100)
	tr.Register("u3", "nickname", 10)

	*now = base.Add(11 * time.Second)
	if removed := tr.Sweep(); removed != 2 {
		t.Fatalf("swept %d entries, want 2", removed)
	}
	if tr.Len() != 1 {
		t.Fatalf("len after sweep = %d, want 1", tr.Len())
	}
	if !tr.IsInCooldown("u2", "mock") {
		t.Fatal("sweep removed a live cooldown")
	}
}
