package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATA_PATH", "")
	t.Setenv("JOURNAL_DB_PATH", "")
	t.Setenv("LOG_MODE", "")

	cfg := Load()
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "dados_fazendas.json", cfg.DataPath)
	require.Equal(t, "journal.db", cfg.JournalDBPath)
	require.Equal(t, "dev", cfg.LogMode)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_PATH", "/tmp/dados.json")

	cfg := Load()
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "/tmp/dados.json", cfg.DataPath)
}
