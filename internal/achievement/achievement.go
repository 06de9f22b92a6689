// /internal/achievement/achievement.go
package achievement

import (
	"fmt"
	"log"

	"soberaninha/internal/storage"
)

// Event names the kind of action that can move an achievement counter.
type Event string

const (
	EventMocked    Event = "mocked"    // user was the target of a roast
	EventMocker    Event = "mocker"    // user roasted someone
	EventNicknamer Event = "nicknamer" // user nicknamed someone
)

// Metric selects which counter a threshold reads.
type Metric int

const (
	MetricCount Metric = iota
	MetricUniqueMocks
	MetricUniqueNicknames
)

// Definition is a static achievement rule. The ID strings are persistent
// keys; renaming one orphans previously earned unlocks.
type Definition struct {
	ID        string
	TitleKey  string
	Event     Event
	Metric    Metric
	Threshold int
}

var Definitions = []Definition{
	{ID: "mocked_10", TitleKey: "achievements.mocked_10", Event: EventMocked, Metric: MetricCount, Threshold: 10},
	{ID: "mocked_50", TitleKey: "achievements.mocked_50", Event: EventMocked, Metric: MetricCount, Threshold: 50},
	{ID: "mocked_100", TitleKey: "achievements.mocked_100", Event: EventMocked, Metric: MetricCount, Threshold: 100},
	{ID: "mocker_30", TitleKey: "achievements.mocker_30", Event: EventMocker, Metric: MetricUniqueMocks, Threshold: 30},
	{ID: "nicknamer_20", TitleKey: "achievements.nicknamer_20", Event: EventNicknamer, Metric: MetricUniqueNicknames, Threshold: 20},
}

// Store is the slice of the persistence layer the evaluator needs.
type Store interface {
	GetCount(userID, guildID string) (int, error)
	GetUniqueCount(userID, guildID string, family storage.Family) (int, error)
	GetAchievements(userID, guildID string) ([]string, error)
	AddAchievements(userID, guildID string, ids []string) error
}

type Evaluator struct {
	store Store
}

func NewEvaluator(store Store) *Evaluator {
	return &Evaluator{store: store}
}

// Evaluate checks every definition for the event against the user's current
// counters, persists any newly met ones and returns exactly those. A nil
// error with an empty slice means nothing new; a non-nil error means the
// store was unreachable and nothing can be said about the thresholds.
func (e *Evaluator) Evaluate(userID, guildID string, event Event) ([]string, error) {
	unlocked, err := e.store.GetAchievements(userID, guildID)
	if err != nil {
		return nil, fmt.Errorf("load achievements: %w", err)
	}

	have := make(map[string]bool, len(unlocked))
	for _, id := range unlocked {
		have[id] = true
	}

	newly := []string{}
	for _, def := range Definitions {
		if def.Event != event || have[def.ID] {
			continue
		}

		value, err := e.metricValue(userID, guildID, def.Metric)
		if err != nil {
			return nil, fmt.Errorf("read metric for %s: %w", def.ID, err)
		}

		if value >= def.Threshold {
			newly = append(newly, def.ID)
			log.Printf("[INFO] User %s unlocked achievement %s in guild %s", userID, def.ID, guildID)
		}
	}

	if len(newly) > 0 {
		if err := e.store.AddAchievements(userID, guildID, newly); err != nil {
			return nil, fmt.Errorf("save achievements: %w", err)
		}
	}

	return newly, nil
}

func (e *Evaluator) metricValue(userID, guildID string, metric Metric) (int, error) {
	switch metric {
	case MetricUniqueMocks:
		return e.store.GetUniqueCount(userID, guildID, storage.FamilyMock)
	case MetricUniqueNicknames:
		return e.store.GetUniqueCount(userID, guildID, storage.FamilyNickname)
	default:
		return e.store.GetCount(userID, guildID)
	}
}
