package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mizusawa-dev/studyshare/internal/flagx"
	"github.com/mizusawa-dev/studyshare/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timer tick either as a string like
// "500ms" or as integer nanoseconds.
type JsonConfig struct {
	DataDir              *string         `json:"data_dir"`
	DatabaseFile         *string         `json:"database_file"`
	LogLevel             *string         `json:"log_level"`
	PostRewardPoints     *int            `json:"post_reward_points"`
	StudyRewardPerMinute *int            `json:"study_reward_per_minute"`
	TimerTick            *timex.Duration `json:"timer_tick"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c or -config flag; when neither is given, nothing is
// loaded. Read or unmarshal errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != nil {
		cfg.DataDir = *jc.DataDir
	}
	if jc.DatabaseFile != nil {
		cfg.DatabaseFile = *jc.DatabaseFile
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.PostRewardPoints != nil {
		cfg.PostRewardPoints = *jc.PostRewardPoints
	}
	if jc.StudyRewardPerMinute != nil {
		cfg.StudyRewardPerMinute = *jc.StudyRewardPerMinute
	}
	if jc.TimerTick != nil {
		cfg.TimerTick = time.Duration(jc.TimerTick.Duration)
	}
}
