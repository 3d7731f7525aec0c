package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseEnv_OverlaysOnlyPresentVariables(t *testing.T) {
	t.Setenv("STUDYSHARE_LOG_LEVEL", "debug")
	t.Setenv("STUDYSHARE_POST_REWARD", "100")
	t.Setenv("STUDYSHARE_TIMER_TICK", "250ms")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 100, cfg.PostRewardPoints)
	assert.Equal(t, 250*time.Millisecond, cfg.TimerTick)
	// Unset variables leave the defaults alone.
	assert.Equal(t, "studyshare.db", cfg.DatabaseFile)
	assert.Equal(t, 1, cfg.StudyRewardPerMinute)
}
