// Package store persists the player's bankroll and running statistics as a
// single flat JSON record, rewritten in full after every round.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/fileutil"
	"github.com/lox/blackjack/internal/game"
)

// DefaultBankroll is the bankroll a brand-new save starts with
const DefaultBankroll = 5000

// SavedState is the durable record: bankroll plus outcome counters. Field
// names are part of the save format and must not change.
type SavedState struct {
	Money int `json:"money"`
	game.Stats
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// Store reads and writes the save file at a fixed path.
type Store struct {
	path            string
	defaultBankroll int
	logger          *log.Logger
}

// New creates a store for the given save file path
func New(path string, defaultBankroll int, logger *log.Logger) *Store {
	return &Store{
		path:            path,
		defaultBankroll: defaultBankroll,
		logger:          logger,
	}
}

// Load reads the saved state. A missing file, unreadable file, or parse
// failure all fall back to a fresh default state rather than failing the
// program; the reason is logged and play continues.
func (s *Store) Load() SavedState {
	state := SavedState{Money: s.defaultBankroll}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("Failed to read save file, starting fresh", "path", s.path, "error", err)
		}
		return state
	}

	if err := json.Unmarshal(data, &state); err != nil {
		s.logger.Warn("Failed to parse save file, starting fresh", "path", s.path, "error", err)
		return SavedState{Money: s.defaultBankroll}
	}

	if state.Money < 0 {
		state.Money = 0
	}
	return state
}

// Save overwrites the entire record atomically. A write failure is not
// recoverable within a round and propagates to end the session.
func (s *Store) Save(state SavedState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding save state: %w", err)
	}

	if err := fileutil.WriteFileAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing save file %s: %w", s.path, err)
	}

	return nil
}
