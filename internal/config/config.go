// Package config loads environment configuration for the dashboard
// binaries.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	AppName     = "shellos-sellers"
	EnvFileName = "config.env"
)

// LoadEnvFile loads environment variables from the config file in the
// user's config directory. Errors are ignored since the file may not exist.
func LoadEnvFile() {
	configBase, err := os.UserConfigDir()
	if err != nil {
		return
	}
	configPath := filepath.Join(configBase, AppName, EnvFileName)
	_ = godotenv.Load(configPath)
}

// CheckRequired returns the names of required environment variables that
// are not set.
func CheckRequired() []string {
	var missing []string
	for _, name := range []string{"GEMINI_API_KEY"} {
		if os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}
