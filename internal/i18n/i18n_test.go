package i18n

import (
	"strings"
	"testing"
)

func TestT_Substitution(t *testing.T) {
	got := T("errors.cooldown", map[string]string{"seconds": "42"})
	if !strings.Contains(got, "42s") {
		t.Fatalf("substitution missing: %q", got)
	}
	if strings.Contains(got, "{seconds}") {
		t.Fatalf("placeholder left behind: %q", got)
	}
}

func TestT_UnknownKeyPassesThrough(t *testing.T) {
	if got := T("no.such.key", nil); got != "no.such.key" {
		t.Fatalf("got %q", got)
	}
}

func TestT_NilParams(t *testing.T) {
	if got := T("ranking.title", nil); got == "" || got == "ranking.title" {
		t.Fatalf("got %q", got)
	}
}

func TestMessages_NoEmptyValues(t *testing.T) {
	for key, msg := range messages {
		if strings.TrimSpace(msg) == "" {
			t.Fatalf("empty message for %s", key)
		}
	}
}
