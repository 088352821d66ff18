package config

import (
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port          string
	Timezone      string
	DataPath      string
	JournalDBPath string
	LogMode       string
}

func Load() AppConfig {
	// a missing .env is normal; environment variables still apply
	_ = godotenv.Load()

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	return AppConfig{
		Port:          get("PORT", "8080"),
		Timezone:      get("TZ", "America/Sao_Paulo"),
		DataPath:      get("DATA_PATH", "dados_fazendas.json"),
		JournalDBPath: get("JOURNAL_DB_PATH", "journal.db"),
		LogMode:       get("LOG_MODE", "dev"),
	}
}
