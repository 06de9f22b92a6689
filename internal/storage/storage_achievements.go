package storage

// GetAchievements returns the unlocked achievement ids for a user. A missing
// record reads as an empty set.
func (s *Storage) GetAchievements(userID, guildID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return nil, err
	}
	return record.Achievements[userID], nil
}

// AddAchievements merges ids into the user's unlocked set. Already present
// ids are ignored; unlocks are never removed.
func (s *Storage) AddAchievements(userID, guildID string, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}

	unlocked := record.Achievements[userID]
	for _, id := range ids {
		unlocked = appendUnique(unlocked, id)
	}
	record.Achievements[userID] = unlocked

	return s.saveGuildRecord(guildID, record)
}
