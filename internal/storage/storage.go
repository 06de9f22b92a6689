// /internal/storage/storage.go
package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/keshon/datastore"
)

// Family names one of the two unique-target tracking channels on a ranking
// record. The strings are persistent keys; renaming one orphans stored data.
type Family string

const (
	FamilyMock     Family = "mock"
	FamilyNickname Family = "nickname"
)

type Storage struct {
	ds     *datastore.DataStore
	cancel context.CancelFunc

	// Serializes read-modify-write cycles so concurrent increments for the
	// same guild cannot lose updates.
	mu sync.Mutex
}

// RankingRecord tracks how often a user was roasted in a guild and which
// users they were roasted by, per action family. Counts only grow; set
// membership only grows.
type RankingRecord struct {
	Count           int      `json:"count"`
	UniqueTargets   []string `json:"unique_targets,omitempty"`
	UniqueNicknames []string `json:"unique_nicknames,omitempty"`
}

type Record struct {
	Rankings        map[string]*RankingRecord `json:"rankings"`     // key = userID
	Achievements    map[string][]string       `json:"achievements"` // key = userID, value = unlocked ids
	ActiveChannelID string                    `json:"active_channel_id,omitempty"`
	AllowedRoleIDs  []string                  `json:"allowed_role_ids,omitempty"`
}

func New(filePath string) (*Storage, error) {
	ctx, cancel := context.WithCancel(context.Background())
	ds, err := datastore.New(ctx, filePath)
	if err != nil {
		cancel()
		return nil, err
	}
	return &Storage{ds: ds, cancel: cancel}, nil
}

// Close stops the store's background autosave and flushes to disk.
func (s *Storage) Close() error {
	s.cancel()
	return s.ds.Close()
}

// Helper function to get or create a Record for a guild. A fresh record is
// not persisted until a write operation saves it.
func (s *Storage) getOrCreateGuildRecord(guildID string) (*Record, error) {
	var record Record
	found, err := s.ds.Get(guildID, &record)
	if err != nil {
		return nil, fmt.Errorf("error loading guild record: %w", err)
	}
	if !found {
		return &Record{
			Rankings:     map[string]*RankingRecord{},
			Achievements: map[string][]string{},
		}, nil
	}

	if record.Rankings == nil {
		record.Rankings = map[string]*RankingRecord{}
	}
	if record.Achievements == nil {
		record.Achievements = map[string][]string{}
	}

	return &record, nil
}

func (s *Storage) saveGuildRecord(guildID string, record *Record) error {
	if err := s.ds.Set(guildID, record); err != nil {
		return fmt.Errorf("error saving guild record: %w", err)
	}
	return nil
}
