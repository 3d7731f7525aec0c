package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvConfig is a DTO used exclusively for environment parsing. Pointer fields
// distinguish "unset" from an explicit zero, so only variables actually
// present in the environment overlay the Config.
type EnvConfig struct {
	DataDir              *string        `env:"STUDYSHARE_DATA_DIR"`
	DatabaseFile         *string        `env:"STUDYSHARE_DB_FILE"`
	LogLevel             *string        `env:"STUDYSHARE_LOG_LEVEL"`
	PostRewardPoints     *int           `env:"STUDYSHARE_POST_REWARD"`
	StudyRewardPerMinute *int           `env:"STUDYSHARE_STUDY_REWARD"`
	TimerTick            *time.Duration `env:"STUDYSHARE_TIMER_TICK"`
}

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first, without overriding variables
// already exported.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	var ec EnvConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.DataDir != nil {
		cfg.DataDir = *ec.DataDir
	}
	if ec.DatabaseFile != nil {
		cfg.DatabaseFile = *ec.DatabaseFile
	}
	if ec.LogLevel != nil {
		cfg.LogLevel = *ec.LogLevel
	}
	if ec.PostRewardPoints != nil {
		cfg.PostRewardPoints = *ec.PostRewardPoints
	}
	if ec.StudyRewardPerMinute != nil {
		cfg.StudyRewardPerMinute = *ec.StudyRewardPerMinute
	}
	if ec.TimerTick != nil {
		cfg.TimerTick = *ec.TimerTick
	}
}
