package storage

import "sort"

type RankEntry struct {
	UserID string
	Count  int
}

// IncrementUser bumps the roast count for userID in guildID by one. When
// sourceID is non-empty it is also added to the unique-source set named by
// family, if not already present. Atomic per guild from the caller's view.
func (s *Storage) IncrementUser(userID, guildID, sourceID string, family Family) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}

	ranking := record.Rankings[userID]
	if ranking == nil {
		ranking = &RankingRecord{}
		record.Rankings[userID] = ranking
	}

	ranking.Count++

	if sourceID != "" {
		switch family {
		case FamilyNickname:
			ranking.UniqueNicknames = appendUnique(ranking.UniqueNicknames, sourceID)
		default:
			ranking.UniqueTargets = appendUnique(ranking.UniqueTargets, sourceID)
		}
	}

	return s.saveGuildRecord(guildID, record)
}

// GetCount returns how many times the user was roasted. Missing records
// read as zero.
func (s *Storage) GetCount(userID, guildID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return 0, err
	}

	ranking := record.Rankings[userID]
	if ranking == nil {
		return 0, nil
	}
	return ranking.Count, nil
}

// GetUniqueCount returns the size of the unique-source set for the family.
func (s *Storage) GetUniqueCount(userID, guildID string, family Family) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return 0, err
	}

	ranking := record.Rankings[userID]
	if ranking == nil {
		return 0, nil
	}
	if family == FamilyNickname {
		return len(ranking.UniqueNicknames), nil
	}
	return len(ranking.UniqueTargets), nil
}

// GetTopRanking returns up to limit users ordered by count descending.
// Ties break by userID so the order is stable between calls.
func (s *Storage) GetTopRanking(guildID string, limit int) ([]RankEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return nil, err
	}

	entries := make([]RankEntry, 0, len(record.Rankings))
	for userID, ranking := range record.Rankings {
		entries = append(entries, RankEntry{UserID: userID, Count: ranking.Count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].UserID < entries[j].UserID
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func appendUnique(list []string, id string) []string {
	for _, existing := range list {
		if existing == id {
			return list
		}
	}
	return append(list, id)
}
