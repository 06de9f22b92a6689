// /internal/pipeline/action.go
package pipeline

import (
	"fmt"

	"soberaninha/internal/achievement"
	"soberaninha/internal/roast"
	"soberaninha/internal/storage"
)

// Action is the static per-command configuration the orchestrator runs on.
// Key strings are stable cooldown keys; changing one resets live cooldowns
// for that action on deploy, nothing worse.
type Action struct {
	Key             string
	CooldownSeconds int

	// PromptContext feeds the AI generator; @USER is replaced with the
	// target's username. When empty, Phrases is used instead and the
	// action cannot fail generation.
	PromptContext string
	Phrases       []string

	// Family selects the unique-source set recorded on the target's
	// ranking record; empty means only the plain count moves.
	Family storage.Family

	AuthorEvent achievement.Event
	TargetEvent achievement.Event

	RequireTarget bool
	AllowSelf     bool
	AllowBots     bool
}

var Actions = map[string]Action{
	"mock": {
		Key:             "mock",
		CooldownSeconds: 60,
		PromptContext:   `Zoa o @USER na frente do servidor inteiro, ele mereceu.`,
		Family:          storage.FamilyMock,
		AuthorEvent:     achievement.EventMocker,
		TargetEvent:     achievement.EventMocked,
		RequireTarget:   true,
	},
	"nickname": {
		Key:             "nickname",
		CooldownSeconds: 60,
		PromptContext:   `Inventa um apelido ridículo e engraçado pro @USER.`,
		Family:          storage.FamilyNickname,
		AuthorEvent:     achievement.EventNicknamer,
		RequireTarget:   true,
	},
	"humiliate": {
		Key:             "humiliate",
		CooldownSeconds: 300,
		Phrases:         roast.HumiliationPhrases,
		TargetEvent:     achievement.EventMocked,
		RequireTarget:   true,
		// The victim is drawn at random, so the invoker is fair game.
		AllowSelf: true,
	},
}

// ValidateActions sanity-checks the static table. Called once at startup so
// a broken entry fails the boot instead of a live command.
func ValidateActions() error {
	for name, action := range Actions {
		if action.Key == "" {
			return fmt.Errorf("action %q has no cooldown key", name)
		}
		if action.CooldownSeconds <= 0 {
			return fmt.Errorf("action %q has no cooldown duration", name)
		}
		if action.PromptContext == "" && len(action.Phrases) == 0 {
			return fmt.Errorf("action %q has neither a prompt context nor a phrase pool", name)
		}
		if action.PromptContext != "" && len(action.Phrases) > 0 {
			return fmt.Errorf("action %q has both a prompt context and a phrase pool", name)
		}
	}
	return nil
}
