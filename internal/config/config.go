// Package config holds the settings shared by the front ends. Values come
// from defaults, then an optional .env file, then the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the runtime configuration of a front end.
type Config struct {
	Seed       int64   // simulation seed; 0 picks one from the clock
	Scale      int     // window pixels per grid cell
	TPS        int     // simulation ticks per second
	Sound      bool    // play event beeps
	Volume     float64 // beep volume, 0 unchanged, -1 halves
	StartLevel int     // zero-based level new games start on
	Lives      int     // lives per game
	VerboseLog bool    // record per-tick movement in the event log
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Scale:  6,
		TPS:    50,
		Sound:  true,
		Volume: -2,
		Lives:  3,
	}
}

// FromEnv returns Default with ZOLYX_* environment overrides applied.
func FromEnv() Config {
	cfg := Default()

	if v := getEnvInt("ZOLYX_SEED", 0); v != 0 {
		cfg.Seed = int64(v)
	}
	if v := getEnvInt("ZOLYX_SCALE", 0); v > 0 {
		cfg.Scale = v
	}
	if v := getEnvInt("ZOLYX_TPS", 0); v > 0 {
		cfg.TPS = v
	}
	cfg.Sound = getEnvBool("ZOLYX_SOUND", cfg.Sound)
	cfg.Volume = getEnvFloat("ZOLYX_VOLUME", cfg.Volume)
	if v := getEnvInt("ZOLYX_START_LEVEL", -1); v >= 0 {
		cfg.StartLevel = v
	}
	if v := getEnvInt("ZOLYX_LIVES", 0); v > 0 {
		cfg.Lives = v
	}
	cfg.VerboseLog = getEnvBool("ZOLYX_VERBOSE_LOG", cfg.VerboseLog)

	return cfg
}

// Load reads the first .env file found in paths into the environment
// (existing variables win) and returns FromEnv. A missing file is not an
// error; it reports which file was loaded, if any.
func Load(paths ...string) (Config, string, error) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		err := godotenv.Load(p)
		if err == nil {
			return FromEnv(), p, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return FromEnv(), "", fmt.Errorf("load %s: %w", p, err)
		}
	}
	return FromEnv(), "", nil
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}
