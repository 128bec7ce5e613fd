package config

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	// DataFile backs the default flat-file store.
	DataFile string

	// StoreBackend selects the record store: file, memory or sqlite.
	StoreBackend string

	// DatabasePath backs the sqlite store.
	DatabasePath string

	// OutputDir receives exported report artifacts.
	OutputDir string
}

// Load reads configuration from the environment, with an optional .env
// file, and configures the log level.
func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}

	if level, err := log.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		log.SetLevel(level)
	}

	return Config{
		DataFile:     getEnv("PAYROLL_DATA_FILE", "employees.txt"),
		StoreBackend: getEnv("PAYROLL_STORE", "file"),
		DatabasePath: getEnv("PAYROLL_DB_PATH", "payroll.db"),
		OutputDir:    getEnv("PAYROLL_OUTPUT_DIR", "output/payroll"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
