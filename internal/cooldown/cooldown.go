// /internal/cooldown/cooldown.go
package cooldown

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"
)

// Tracker rate-limits named user actions in process memory. Entries do not
// survive a restart; an expired entry reads the same as a missing one.
type Tracker struct {
	mu      sync.Mutex
	entries map[key]time.Time
	now     func() time.Time
}

type key struct {
	userID string
	action string
}

func NewTracker() *Tracker {
	return &Tracker{
		entries: make(map[key]time.Time),
		now:     time.Now,
	}
}

// IsInCooldown reports whether the user is still blocked for the action.
// A found-but-expired entry is evicted on the way out.
func (t *Tracker) IsInCooldown(userID, action string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	k := key{userID, action}
	expiresAt, ok := t.entries[k]
	if !ok {
		return false
	}
	if t.now().Before(expiresAt) {
		return true
	}
	delete(t.entries, k)
	return false
}

// Remaining returns the seconds left on a cooldown, rounded up so the caller
// never reports zero while still blocked. Returns 0 when not in cooldown.
func (t *Tracker) Remaining(userID, action string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	expiresAt, ok := t.entries[key{userID, action}]
	if !ok {
		return 0
	}
	left := expiresAt.Sub(t.now())
	if left <= 0 {
		return 0
	}
	return int((left + time.Second - 1) / time.Second)
}

// Register sets a cooldown for the pair, overwriting any prior entry.
// Last registration wins. Occasionally sweeps expired entries on the way
// so the map stays bounded even without the periodic sweeper.
func (t *Tracker) Register(userID, action string, seconds int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries[key{userID, action}] = t.now().Add(time.Duration(seconds) * time.Second)

	if rand.Intn(50) == 0 {
		t.sweepLocked()
	}
}

// Sweep drops every expired entry. Purely memory hygiene; correctness never
// depends on it since checks recompute from timestamps.
func (t *Tracker) Sweep() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sweepLocked()
}

func (t *Tracker) sweepLocked() int {
	now := t.now()
	removed := 0
	for k, expiresAt := range t.entries {
		if !now.Before(expiresAt) {
			delete(t.entries, k)
			removed++
		}
	}
	return removed
}

func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// RunSweeper sweeps expired cooldowns every interval until ctx is done.
// Call from main or app lifecycle.
func RunSweeper(ctx context.Context, t *Tracker, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := t.Sweep(); n > 0 {
				log.Printf("[DEBUG] Swept %d expired cooldowns", n)
			}
		}
	}
}
