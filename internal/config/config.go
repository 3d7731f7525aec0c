package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the StudyShare CLI.
//
// Fields:
//   - DataDir: directory holding the local database file.
//   - DatabaseFile: database file name inside DataDir.
//   - LogLevel: slog level name (debug, info, warn, error).
//   - PostRewardPoints: points awarded for posting a material review.
//   - StudyRewardPerMinute: points awarded per full minute of recorded study.
//   - TimerTick: refresh interval of the study timer display.
type Config struct {
	DataDir              string
	DatabaseFile         string
	LogLevel             string
	PostRewardPoints     int
	StudyRewardPerMinute int
	TimerTick            time.Duration
}

// DatabasePath returns the full path of the database file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, c.DatabaseFile)
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	c.DataDir = filepath.Join(home, ".studyshare")
	c.DatabaseFile = "studyshare.db"
	c.LogLevel = "info"
	c.PostRewardPoints = 50
	c.StudyRewardPerMinute = 1
	c.TimerTick = 1 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including a .env file, if present), a JSON file, and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
