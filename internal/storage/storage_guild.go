package storage

// SetActiveChannel stores the only channel the bot is allowed to roast in.
func (s *Storage) SetActiveChannel(guildID, channelID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}

	record.ActiveChannelID = channelID
	return s.saveGuildRecord(guildID, record)
}

// GetActiveChannel returns the configured channel id, or "" when none is set
// (meaning all channels are allowed).
func (s *Storage) GetActiveChannel(guildID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return "", err
	}
	return record.ActiveChannelID, nil
}

func (s *Storage) AddAllowedRole(guildID, roleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}

	record.AllowedRoleIDs = appendUnique(record.AllowedRoleIDs, roleID)
	return s.saveGuildRecord(guildID, record)
}

func (s *Storage) RemoveAllowedRole(guildID, roleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}

	updated := make([]string, 0, len(record.AllowedRoleIDs))
	for _, id := range record.AllowedRoleIDs {
		if id != roleID {
			updated = append(updated, id)
		}
	}
	record.AllowedRoleIDs = updated
	return s.saveGuildRecord(guildID, record)
}

func (s *Storage) GetAllowedRoles(guildID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return nil, err
	}
	return record.AllowedRoleIDs, nil
}
