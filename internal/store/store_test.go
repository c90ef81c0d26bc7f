package store

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/game"
)

func testStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blackjack_save.json")
	return New(path, DefaultBankroll, log.New(io.Discard)), path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	st, _ := testStore(t)

	state := st.Load()
	assert.Equal(t, DefaultBankroll, state.Money)
	assert.Equal(t, game.Stats{}, state.Stats)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st, path := testStore(t)

	saved := SavedState{
		Money: 777,
		Stats: game.Stats{Wins: 3, Losses: 2, Pushes: 1},
	}
	require.NoError(t, st.Save(saved))

	// A second store over the same path stands in for a fresh process
	fresh := New(path, DefaultBankroll, log.New(io.Discard))
	loaded := fresh.Load()

	assert.Equal(t, 777, loaded.Money)
	assert.Equal(t, game.Stats{Wins: 3, Losses: 2, Pushes: 1}, loaded.Stats)
}

func TestSaveOverwritesInFull(t *testing.T) {
	st, _ := testStore(t)

	require.NoError(t, st.Save(SavedState{Money: 100, Stats: game.Stats{Wins: 9}}))
	require.NoError(t, st.Save(SavedState{Money: 50, Stats: game.Stats{Losses: 1}}))

	loaded := st.Load()
	assert.Equal(t, 50, loaded.Money)
	assert.Equal(t, game.Stats{Losses: 1}, loaded.Stats)
}

func TestLoadCorruptFileFallsBackToDefaults(t *testing.T) {
	st, path := testStore(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	state := st.Load()
	assert.Equal(t, DefaultBankroll, state.Money)
	assert.Equal(t, game.Stats{}, state.Stats)
}

func TestLoadMissingFieldsDefaultToZero(t *testing.T) {
	st, path := testStore(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"money": 1234}`), 0o644))

	state := st.Load()
	assert.Equal(t, 1234, state.Money)
	assert.Equal(t, game.Stats{}, state.Stats)
}

func TestLoadClampsNegativeMoney(t *testing.T) {
	st, path := testStore(t)
	require.NoError(t, os.WriteFile(path, []byte(`{"money": -10}`), 0o644))

	state := st.Load()
	assert.Equal(t, 0, state.Money)
}

func TestSaveFailsOnUnwritablePath(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "missing-dir", "save.json"), DefaultBankroll, log.New(io.Discard))
	assert.Error(t, st.Save(SavedState{Money: 10}))
}

func TestSaveFormatFields(t *testing.T) {
	st, path := testStore(t)
	require.NoError(t, st.Save(SavedState{Money: 42, Stats: game.Stats{Wins: 1, Losses: 2, Pushes: 3}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// The flat field names are the save format; renaming them breaks old saves
	assert.JSONEq(t, `{"money":42,"wins":1,"losses":2,"pushes":3}`, string(data))
}
