// /internal/pipeline/pipeline.go
package pipeline

import (
	"log"
	"math/rand"
	"strings"

	"soberaninha/internal/achievement"
	"soberaninha/internal/cooldown"
	"soberaninha/internal/storage"
)

type Status int

const (
	StatusOK Status = iota
	StatusPermissionDenied
	StatusCooldown
	StatusNoTarget
	StatusSelfTarget
	StatusBotTarget
	StatusGenerationFailed
)

// Request carries everything the orchestrator needs for one action run.
// The caller resolves Discord-level details (member roles, target user)
// before handing over.
type Request struct {
	Action  string
	GuildID string
	UserID  string

	MemberRoleIDs   []string
	MemberRoleNames []string

	// IsAdmin bypasses the role gate, never the cooldown.
	IsAdmin bool

	TargetID       string
	TargetUsername string
	TargetIsBot    bool
}

type Result struct {
	Status           Status
	Content          string
	RemainingSeconds int
}

// Counters is the increment slice of the storage layer. Read methods live
// on the evaluator's own store interface.
type Counters interface {
	IncrementUser(userID, guildID, sourceID string, family storage.Family) error
}

type Evaluator interface {
	Evaluate(userID, guildID string, event achievement.Event) ([]string, error)
}

// Generator is the strict generation entry point: an error means the whole
// action must be aborted without side effects.
type Generator interface {
	Generate(trigger string) (string, error)
}

type Permissions interface {
	Allowed(guildID string, roleIDs, roleNames []string) bool
}

// Notifier delivers achievement unlock notices. Implementations swallow
// delivery failures; the pipeline never learns about them.
type Notifier interface {
	NotifyAchievements(userID string, ids []string)
}

// Orchestrator sequences one user action: permission, cooldown and target
// checks first, then content generation, and only after a successful
// generation the durable side effects. A failed generation leaves every
// counter and cooldown untouched so the user can retry immediately.
type Orchestrator struct {
	cooldowns *cooldown.Tracker
	counters  Counters
	evaluator Evaluator
	generator Generator
	perms     Permissions
	notifier  Notifier
}

func NewOrchestrator(
	cooldowns *cooldown.Tracker,
	counters Counters,
	evaluator Evaluator,
	generator Generator,
	perms Permissions,
	notifier Notifier,
) *Orchestrator {
	return &Orchestrator{
		cooldowns: cooldowns,
		counters:  counters,
		evaluator: evaluator,
		generator: generator,
		perms:     perms,
		notifier:  notifier,
	}
}

// Precheck runs the rejection gates without side effects. Callers use it to
// answer fast (and privately) before committing to a deferred response; a
// later Execute repeats the same checks, which is safe because Precheck
// registers nothing.
func (o *Orchestrator) Precheck(req Request) Result {
	action, ok := Actions[req.Action]
	if !ok {
		log.Printf("[ERR] Unknown pipeline action: %s", req.Action)
		return Result{Status: StatusGenerationFailed}
	}
	return o.check(action, req)
}

func (o *Orchestrator) check(action Action, req Request) Result {
	if !req.IsAdmin && !o.perms.Allowed(req.GuildID, req.MemberRoleIDs, req.MemberRoleNames) {
		return Result{Status: StatusPermissionDenied}
	}

	if o.cooldowns.IsInCooldown(req.UserID, action.Key) {
		return Result{
			Status:           StatusCooldown,
			RemainingSeconds: o.cooldowns.Remaining(req.UserID, action.Key),
		}
	}

	if action.RequireTarget {
		switch {
		case req.TargetID == "":
			return Result{Status: StatusNoTarget}
		case req.TargetID == req.UserID && !action.AllowSelf:
			return Result{Status: StatusSelfTarget}
		case req.TargetIsBot && !action.AllowBots:
			return Result{Status: StatusBotTarget}
		}
	}

	return Result{Status: StatusOK}
}

func (o *Orchestrator) Execute(req Request) Result {
	action, ok := Actions[req.Action]
	if !ok {
		log.Printf("[ERR] Unknown pipeline action: %s", req.Action)
		return Result{Status: StatusGenerationFailed}
	}

	if res := o.check(action, req); res.Status != StatusOK {
		return res
	}

	content, ok := o.generate(action, req)
	if !ok {
		// No cooldown, no counters: the user pays nothing for our failure.
		return Result{Status: StatusGenerationFailed}
	}

	o.commit(action, req)

	return Result{Status: StatusOK, Content: content}
}

func (o *Orchestrator) generate(action Action, req Request) (string, bool) {
	var content string
	if action.PromptContext != "" {
		trigger := strings.ReplaceAll(action.PromptContext, "@USER", req.TargetUsername)
		generated, err := o.generator.Generate(trigger)
		if err != nil {
			log.Printf("[ERR] Generation failed for action %s: %v", action.Key, err)
			return "", false
		}
		content = generated
	} else {
		content = action.Phrases[rand.Intn(len(action.Phrases))]
	}

	content = strings.ReplaceAll(content, "@USER", "@"+req.TargetUsername)
	content = strings.ReplaceAll(content, "{username}", "<@"+req.TargetID+">")
	return content, true
}

// commit runs the durable side effects. Each sub-step is isolated: a failed
// counter write still lets achievement evaluation run (on a stale value,
// which is acceptable), and neither failure reaches the user.
func (o *Orchestrator) commit(action Action, req Request) {
	o.cooldowns.Register(req.UserID, action.Key, action.CooldownSeconds)

	sourceID := ""
	if action.Family != "" {
		sourceID = req.UserID
	}
	if err := o.counters.IncrementUser(req.TargetID, req.GuildID, sourceID, action.Family); err != nil {
		log.Printf("[ERR] Failed to increment counters for %s in %s: %v", req.TargetID, req.GuildID, err)
	}

	if action.AuthorEvent != "" {
		o.evaluateAndNotify(req.UserID, req.GuildID, action.AuthorEvent)
	}
	// A self-target still gets its event evaluated unless the author pass
	// above already covered the same (user, event) pair.
	alreadyEvaluated := req.TargetID == req.UserID && action.TargetEvent == action.AuthorEvent
	if action.TargetEvent != "" && !alreadyEvaluated {
		o.evaluateAndNotify(req.TargetID, req.GuildID, action.TargetEvent)
	}
}

func (o *Orchestrator) evaluateAndNotify(userID, guildID string, event achievement.Event) {
	newly, err := o.evaluator.Evaluate(userID, guildID, event)
	if err != nil {
		log.Printf("[ERR] Achievement evaluation failed for %s in %s: %v", userID, guildID, err)
		return
	}
	if len(newly) > 0 && o.notifier != nil {
		o.notifier.NotifyAchievements(userID, newly)
	}
}
