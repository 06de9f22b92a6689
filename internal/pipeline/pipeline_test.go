package pipeline

import (
	"errors"
	"testing"

	"soberaninha/internal/achievement"
	"soberaninha/internal/cooldown"
	"soberaninha/internal/storage"
)

type fakeCounters struct {
	increments int
	lastUser   string
	lastSource string
	lastFamily storage.Family
	err        error
}

func (f *fakeCounters) IncrementUser(userID, guildID, sourceID string, family storage.Family) error {
	if f.err != nil {
		return f.err
	}
	f.increments++
	f.lastUser = userID
	f.lastSource = sourceID
	f.lastFamily = family
	return nil
}

type fakeEvaluator struct {
	newly  map[string][]string // userID -> ids
	err    error
	calls  int
	events []achievement.Event
}

func (f *fakeEvaluator) Evaluate(userID, guildID string, event achievement.Event) ([]string, error) {
	f.calls++
	f.events = append(f.events, event)
	if f.err != nil {
		return nil, f.err
	}
	return f.newly[userID], nil
}

type fakeGenerator struct {
	reply string
	err   error
	calls int
}

func (f *fakeGenerator) Generate(trigger string) (string, error) {
	f.calls++
	return f.reply, f.err
}

type allowAll struct{ allowed bool }

func (a allowAll) Allowed(guildID string, roleIDs, roleNames []string) bool { return a.allowed }

type fakeNotifier struct {
	notified map[string][]string
}

func (f *fakeNotifier) NotifyAchievements(userID string, ids []string) {
	if f.notified == nil {
		f.notified = map[string][]string{}
	}
	f.notified[userID] = append(f.notified[userID], ids...)
}

type fixture struct {
	orch      *Orchestrator
	cooldowns *cooldown.Tracker
	counters  *fakeCounters
	evaluator *fakeEvaluator
	generator *fakeGenerator
	notifier  *fakeNotifier
}

func newFixture(allowed bool) *fixture {
	f := &fixture{
		cooldowns: cooldown.NewTracker(),
		counters:  &fakeCounters{},
		evaluator: &fakeEvaluator{newly: map[string][]string{}},
		generator: &fakeGenerator{reply: "Sua gameplay parece um tutorial de como perder."},
		notifier:  &fakeNotifier{},
	}
	f.orch = NewOrchestrator(f.cooldowns, f.counters, f.evaluator, f.generator, allowAll{allowed}, f.notifier)
	return f
}

func mockRequest() Request {
	return Request{
		Action:         "mock",
		GuildID:        "g",
		UserID:         "author",
		TargetID:       "victim",
		TargetUsername: "victim_name",
	}
}

func TestExecute_SuccessCommitsEverything(t *testing.T) {
	f := newFixture(true)
	f.evaluator.newly["victim"] = []string{"mocked_10"}

	res := f.orch.Execute(mockRequest())
	if res.Status != StatusOK {
		t.Fatalf("status = %v, want OK", res.Status)
	}
	if res.Content == "" {
		t.Fatal("empty content on success")
	}

	if !f.cooldowns.IsInCooldown("author", "mock") {
		t.Fatal("cooldown not registered after success")
	}
	if f.counters.increments != 1 {
		t.Fatalf("increments = %d, want 1", f.counters.increments)
	}
	if f.counters.lastUser != "victim" || f.counters.lastSource != "author" || f.counters.lastFamily != storage.FamilyMock {
		t.Fatalf("increment args = (%s, %s, %s)", f.counters.lastUser, f.counters.lastSource, f.counters.lastFamily)
	}
	// Author evaluated for mocker, target for mocked.
	if f.evaluator.calls != 2 {
		t.Fatalf("evaluator calls = %d, want 2", f.evaluator.calls)
	}
	if got := f.notifier.notified["victim"]; len(got) != 1 || got[0] != "mocked_10" {
		t.Fatalf("victim notifications = %v", got)
	}
}

func TestExecute_GenerationFailureLeavesStateUntouched(t *testing.T) {
	f := newFixture(true)
	f.generator.err = errors.New("inference timeout")

	res := f.orch.Execute(mockRequest())
	if res.Status != StatusGenerationFailed {
		t.Fatalf("status = %v, want GenerationFailed", res.Status)
	}

	if f.cooldowns.IsInCooldown("author", "mock") {
		t.Fatal("cooldown registered despite failed generation")
	}
	if f.counters.increments != 0 {
		t.Fatalf("counters mutated despite failed generation: %d", f.counters.increments)
	}
	if f.evaluator.calls != 0 {
		t.Fatal("achievements evaluated despite failed generation")
	}

	// The user can retry right away and succeed.
	f.generator.err = nil
	if res := f.orch.Execute(mockRequest()); res.Status != StatusOK {
		t.Fatalf("retry status = %v, want OK", res.Status)
	}
}

func TestPrecheck_HasNoSideEffects(t *testing.T) {
	f := newFixture(true)

	if res := f.orch.Precheck(mockRequest()); res.Status != StatusOK {
		t.Fatalf("precheck status = %v", res.Status)
	}
	if f.cooldowns.Len() != 0 || f.counters.increments != 0 || f.generator.calls != 0 {
		t.Fatal("precheck mutated state")
	}
}

func TestExecute_PermissionDenied(t *testing.T) {
	f := newFixture(false)

	res := f.orch.Execute(mockRequest())
	if res.Status != StatusPermissionDenied {
		t.Fatalf("status = %v, want PermissionDenied", res.Status)
	}
	if f.generator.calls != 0 || f.counters.increments != 0 {
		t.Fatal("side effects on permission denial")
	}

	// Admins bypass the role gate but nothing else.
	req := mockRequest()
	req.IsAdmin = true
	if res := f.orch.Execute(req); res.Status != StatusOK {
		t.Fatalf("admin bypass status = %v, want OK", res.Status)
	}
}

func TestExecute_CooldownRejectionReportsRemaining(t *testing.T) {
	f := newFixture(true)

	if res := f.orch.Execute(mockRequest()); res.Status != StatusOK {
		t.Fatalf("first run status = %v", res.Status)
	}

	// Immediately after a 60s registration the report must be 59 or 60,
	// never 0 and never negative.
	res := f.orch.Execute(mockRequest())
	if res.Status != StatusCooldown {
		t.Fatalf("status = %v, want Cooldown", res.Status)
	}
	if res.RemainingSeconds < 59 || res.RemainingSeconds > 60 {
		t.Fatalf("remaining = %d, want 59..60", res.RemainingSeconds)
	}
	if f.generator.calls != 1 {
		t.Fatalf("generator called %d times, want 1", f.generator.calls)
	}
}

func TestExecute_TargetValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Request)
		want   Status
	}{
		{"missing target", func(r *Request) { r.TargetID = "" }, StatusNoTarget},
		{"self target", func(r *Request) { r.TargetID = r.UserID }, StatusSelfTarget},
		{"bot target", func(r *Request) { r.TargetIsBot = true }, StatusBotTarget},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(true)
			req := mockRequest()
			tc.mutate(&req)

			res := f.orch.Execute(req)
			if res.Status != tc.want {
				t.Fatalf("status = %v, want %v", res.Status, tc.want)
			}
			if f.counters.increments != 0 || f.cooldowns.Len() != 0 {
				t.Fatal("side effects on rejected target")
			}
		})
	}
}

func TestExecute_NicknameEvaluatesAuthorOnly(t *testing.T) {
	f := newFixture(true)

	req := mockRequest()
	req.Action = "nickname"

	if res := f.orch.Execute(req); res.Status != StatusOK {
		t.Fatalf("status = %v", res.Status)
	}
	if f.counters.lastFamily != storage.FamilyNickname {
		t.Fatalf("family = %s, want nickname", f.counters.lastFamily)
	}
	if f.evaluator.calls != 1 || f.evaluator.events[0] != achievement.EventNicknamer {
		t.Fatalf("evaluator calls = %d events = %v", f.evaluator.calls, f.evaluator.events)
	}
}

func TestExecute_PhrasePoolActionNeverFailsGeneration(t *testing.T) {
	f := newFixture(true)
	f.generator.err = errors.New("inference down")

	req := mockRequest()
	req.Action = "humiliate"

	res := f.orch.Execute(req)
	if res.Status != StatusOK {
		t.Fatalf("status = %v, want OK", res.Status)
	}
	if f.generator.calls != 0 {
		t.Fatal("phrase pool action hit the AI generator")
	}
	if res.Content == "" {
		t.Fatal("empty content from phrase pool")
	}
}

func TestExecute_SelfTargetStillEvaluatesAchievements(t *testing.T) {
	f := newFixture(true)

	req := mockRequest()
	req.Action = "humiliate"
	req.TargetID = req.UserID
	req.TargetUsername = "author_name"

	res := f.orch.Execute(req)
	if res.Status != StatusOK {
		t.Fatalf("status = %v, want OK", res.Status)
	}
	if f.counters.increments != 1 {
		t.Fatalf("increments = %d, want 1", f.counters.increments)
	}
	if f.evaluator.calls != 1 {
		t.Fatalf("evaluator calls = %d, want 1", f.evaluator.calls)
	}
	if f.evaluator.events[0] != achievement.EventMocked {
		t.Fatalf("evaluated event = %v, want %v", f.evaluator.events[0], achievement.EventMocked)
	}
}

func TestExecute_CounterFailureDoesNotAbortFlow(t *testing.T) {
	f := newFixture(true)
	f.counters.err = errors.New("disk full")

	res := f.orch.Execute(mockRequest())
	if res.Status != StatusOK {
		t.Fatalf("status = %v, want OK despite counter failure", res.Status)
	}
	// Achievement evaluation still attempted.
	if f.evaluator.calls != 2 {
		t.Fatalf("evaluator calls = %d, want 2", f.evaluator.calls)
	}
}

func TestExecute_EvaluatorFailureDoesNotAbortFlow(t *testing.T) {
	f := newFixture(true)
	f.evaluator.err = errors.New("store unreachable")

	res := f.orch.Execute(mockRequest())
	if res.Status != StatusOK {
		t.Fatalf("status = %v, want OK despite evaluator failure", res.Status)
	}
	if len(f.notifier.notified) != 0 {
		t.Fatal("notified despite evaluator failure")
	}
}

func TestValidateActions(t *testing.T) {
	if err := ValidateActions(); err != nil {
		t.Fatalf("static action table invalid: %v", err)
	}
	for name, action := range Actions {
		if action.CooldownSeconds <= 0 {
			t.Fatalf("action %s has non-positive cooldown", name)
		}
	}
}
