package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that provide defaults for command line flags.
const (
	EnvSeed       = "EGGSHOT_SEED"
	EnvFPS        = "EGGSHOT_FPS"
	EnvDB         = "EGGSHOT_DB"
	EnvDifficulty = "EGGSHOT_DIFFICULTY"
	EnvConfig     = "EGGSHOT_CONFIG"
	EnvLogLevel   = "EGGSHOT_LOG_LEVEL"
)

// LoadEnv loads variables from a dotenv file without overriding ones
// already set in the process environment. An empty path loads ./.env
// when it exists; an explicit path must exist.
func LoadEnv(path string) error {
	if path == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// EnvString returns the trimmed value of key, or def when unset or blank.
func EnvString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// EnvInt returns key parsed as an integer, or def when unset.
func EnvInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("config: %s=%q: %w", key, v, err)
	}
	return n, nil
}

// EnvInt64 returns key parsed as a 64-bit integer, or def when unset.
func EnvInt64(key string, def int64) (int64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def, fmt.Errorf("config: %s=%q: %w", key, v, err)
	}
	return n, nil
}
