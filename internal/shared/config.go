package shared

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	MySQLDSN    string

	// Secrets bag: "memory" (env-seeded) or "redis" (shared across replicas).
	SecretsBackend string
	RedisAddr      string
	RedisDB        int
	RedisPass      string

	// Seed values for the bag; setKeys can overwrite them at runtime.
	CohereAPIKey   string
	SheetID        string
	FirebaseConfig string

	CohereBase string

	// ttsrelay
	TTSAddr      string
	ElevenBase   string
	ElevenAPIKey string
	ElevenRPS    int

	// importer
	ImportWorkers int
	GuestsFile    string
}

func Load() Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		HTTPAddr:       env("HTTP_ADDR", ":8080"),
		MetricsAddr:    env("METRICS_ADDR", ""),
		MySQLDSN:       env("MYSQL_DSN", "root:root@tcp(localhost:3306)/orion?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		SecretsBackend: env("SECRETS_BACKEND", "memory"),
		RedisAddr:      env("REDIS_ADDR", "localhost:6379"),
		RedisPass:      env("REDIS_PASSWORD", ""),
		RedisDB:        atoi("REDIS_DB", 0),
		CohereAPIKey:   env("COHERE_API_KEY", ""),
		SheetID:        env("SHEET_ID", ""),
		FirebaseConfig: env("FIREBASE_CONFIG", ""),
		CohereBase:     env("COHERE_BASE_URL", "https://api.cohere.com/v1"),
		TTSAddr:        env("TTS_ADDR", ":3001"),
		ElevenBase:     env("ELEVENLABS_BASE_URL", "https://api.elevenlabs.io/v1"),
		ElevenAPIKey:   env("ELEVENLABS_API_KEY", ""),
		ElevenRPS:      atoi("ELEVENLABS_RPS", 5),
		ImportWorkers:  atoi("IMPORT_WORKERS", 8),
		GuestsFile:     env("GUESTS_FILE", "guests.json"),
	}
	if c.CohereAPIKey == "" {
		log.Warn().Msg("COHERE_API_KEY is empty; sendMessage will refuse until setKeys provides one")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
