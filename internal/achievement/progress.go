package achievement

import "fmt"

// Progress describes how close a user is to one achievement.
type Progress struct {
	ID       string
	TitleKey string
	Unlocked bool
	Current  int
	Target   int
}

// UserProgress reports the state of every defined achievement for a user.
// Current values are clamped to the target so display code never shows 120/100.
func (e *Evaluator) UserProgress(userID, guildID string) ([]Progress, error) {
	unlocked, err := e.store.GetAchievements(userID, guildID)
	if err != nil {
		return nil, fmt.Errorf("load achievements: %w", err)
	}

	have := make(map[string]bool, len(unlocked))
	for _, id := range unlocked {
		have[id] = true
	}

	progress := make([]Progress, 0, len(Definitions))
	for _, def := range Definitions {
		value, err := e.metricValue(userID, guildID, def.Metric)
		if err != nil {
			return nil, fmt.Errorf("read metric for %s: %w", def.ID, err)
		}
		if value > def.Threshold {
			value = def.Threshold
		}
		progress = append(progress, Progress{
			ID:       def.ID,
			TitleKey: def.TitleKey,
			Unlocked: have[def.ID],
			Current:  value,
			Target:   def.Threshold,
		})
	}
	return progress, nil
}
