package commands

import (
	"strconv"
	"strings"
	"testing"

	"soberaninha/internal/pipeline"
)

func TestRegistry_AllCommandsComplete(t *testing.T) {
	cmds := All()
	if len(cmds) == 0 {
		t.Fatal("no commands registered")
	}

	seen := map[string]bool{}
	for _, cmd := range cmds {
		if cmd.Name == "" || cmd.Description == "" || cmd.Category == "" {
			t.Fatalf("incomplete command metadata: %+v", cmd)
		}
		if cmd.DCSlashHandler == nil {
			t.Fatalf("command %s has no slash handler", cmd.Name)
		}
		if seen[cmd.Name] {
			t.Fatalf("command %s listed twice", cmd.Name)
		}
		seen[cmd.Name] = true
	}

	for _, name := range []string{"mock", "nickname", "humiliate", "randomphrase", "ranking", "achievements", "ping", "help", "set-active-channel", "set-allowed-role"} {
		if _, ok := Get(name); !ok {
			t.Fatalf("command %s not registered", name)
		}
	}
}

func TestFailureMessage_CoversEveryStatus(t *testing.T) {
	statuses := []pipeline.Status{
		pipeline.StatusPermissionDenied,
		pipeline.StatusCooldown,
		pipeline.StatusNoTarget,
		pipeline.StatusSelfTarget,
		pipeline.StatusBotTarget,
		pipeline.StatusGenerationFailed,
	}
	got := map[string]bool{}
	for _, st := range statuses {
		msg := failureMessage(pipeline.Result{Status: st, RemainingSeconds: 17}, "fulano")
		if msg == "" || strings.Contains(msg, "errors.") {
			t.Fatalf("unresolved message for status %v: %q", st, msg)
		}
		got[msg] = true
	}
	if len(got) != len(statuses) {
		t.Fatalf("statuses share messages: %d distinct for %d statuses", len(got), len(statuses))
	}

	cooldownMsg := failureMessage(pipeline.Result{Status: pipeline.StatusCooldown, RemainingSeconds: 42}, "fulano")
	if !strings.Contains(cooldownMsg, strconv.Itoa(42)) {
		t.Fatalf("cooldown message lacks remaining seconds: %q", cooldownMsg)
	}
}
