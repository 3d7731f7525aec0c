// Package config loads runtime configuration for the StudyShare CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally via a .env file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   data directory holding the local database
//	-l string   log level (debug, info, warn, error)
//
// Environment variables
//
//	STUDYSHARE_DATA_DIR, STUDYSHARE_DB_FILE, STUDYSHARE_LOG_LEVEL,
//	STUDYSHARE_POST_REWARD, STUDYSHARE_STUDY_REWARD, STUDYSHARE_TIMER_TICK
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timer tick, so the value can be
// either a string like "500ms" or integer nanoseconds:
//
//	{
//	  "data_dir": "/var/lib/studyshare",
//	  "log_level": "debug",
//	  "post_reward_points": 50,
//	  "study_reward_per_minute": 1,
//	  "timer_tick": "1s"
//	}
package config
