package helper

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// SetServerConfig loads environment variables from the env file selected for
// the active APP_ENV. Variables already present in the environment win. A
// missing file is not an error so containerized deployments can rely on real
// environment variables alone.
func SetServerConfig(envPath string) error {
	if envPath == "" {
		return nil
	}
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(envPath)
}

// GetEnv returns the value of key, or fallback when unset or empty.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetEnvInt returns the integer value of key, or fallback when unset or not
// a valid integer.
func GetEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
