package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"florestal/entities"
	"florestal/pkg/logger"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "dados.json"), logger.NewNop())
}

func TestNextID(t *testing.T) {
	require.Equal(t, 1, NextID(nil))
	require.Equal(t, 1, NextID([]entities.Farm{}))

	farms := []entities.Farm{{ID: 1}, {ID: 5}, {ID: 3}}
	require.Equal(t, 6, NextID(farms))

	// holes from deletions do not shrink the counter
	require.Equal(t, 8, NextID([]entities.Farm{{ID: 7}, {ID: 2}}))
}

func TestLoadMissingFile(t *testing.T) {
	s := newStore(t)

	_, err := s.Load()
	require.ErrorIs(t, err, ErrNotFound)

	ds := s.LoadOrSeed()
	require.Len(t, ds.Farms, 3)
	require.Len(t, ds.Production, 3)
}

func TestLoadCorruptFile(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0o644))

	_, err := s.Load()
	require.ErrorIs(t, err, ErrCorrupt)

	// unreadable falls back to the seed, same as absent
	ds := s.LoadOrSeed()
	require.Len(t, ds.Farms, 3)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Save(Seed()))

	first, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	// save(load()) twice must produce an equivalent document
	ds, err := s.Load()
	require.NoError(t, err)
	require.NoError(t, s.Save(ds))
	ds, err = s.Load()
	require.NoError(t, err)
	require.NoError(t, s.Save(ds))

	second, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	require.JSONEq(t, string(first), string(second))
}

func TestUnknownTopLevelKeysSurvive(t *testing.T) {
	s := newStore(t)
	doc := `{
  "fazendas": [],
  "producao": [],
  "configuracoes": {"tema": "escuro"}
}`
	require.NoError(t, os.WriteFile(s.Path(), []byte(doc), 0o644))

	ds, err := s.Load()
	require.NoError(t, err)
	require.NoError(t, s.Save(ds))

	raw, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	var got map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Contains(t, got, "configuracoes")
	require.JSONEq(t, `{"tema": "escuro"}`, string(got["configuracoes"]))
}

func TestSaveIsAtomicOverwrite(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Save(Seed()))

	ds, err := s.Load()
	require.NoError(t, err)
	ds.Farms = ds.Farms[:1]
	require.NoError(t, s.Save(ds))

	reread, err := s.Load()
	require.NoError(t, err)
	require.Len(t, reread.Farms, 1)

	// no temp leftovers
	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestSaveFailureIsReported(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing", "sub", "dados.json"), logger.NewNop())
	require.Error(t, s.Save(Seed()))
}

func TestSeedContent(t *testing.T) {
	ds := Seed()
	require.Equal(t, "Fazenda São João", ds.Farms[0].Name)
	require.Equal(t, 1200.5, ds.Farms[0].Hectares)
	require.Equal(t, entities.StatusInactive, ds.Farms[2].Status)
	require.Equal(t, 1, ds.Production[0].FarmID)
	require.Equal(t, "2024-09-15", ds.Production[2].Date)
}
