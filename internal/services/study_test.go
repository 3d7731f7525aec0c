package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mizusawa-dev/studyshare/internal/common"
	"github.com/mizusawa-dev/studyshare/internal/models"
)

func newStudyService(repo *fakeSessionRepo, now time.Time) *StudyService {
	s := NewStudyService(repo, discardLogger())
	s.newID = func() string { return "sess-1" }
	s.now = func() time.Time { return now }
	return s
}

func TestRecord_DurationIsWholeMinutesRoundedDown(t *testing.T) {
	repo := &fakeSessionRepo{}
	svc := newStudyService(repo, time.Now())
	user := models.User{ID: "u1"}

	start := time.Date(2024, 10, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(25*time.Minute + 59*time.Second)

	sess, err := svc.Record(context.Background(), user, "数学", start, end)
	require.NoError(t, err)
	require.Equal(t, "sess-1", sess.ID)
	require.Equal(t, "u1", sess.UserID)
	require.Equal(t, 25, sess.Duration)
	require.Len(t, repo.items, 1)
}

func TestRecord_RejectsEndBeforeStart(t *testing.T) {
	svc := newStudyService(&fakeSessionRepo{}, time.Now())

	start := time.Date(2024, 10, 2, 9, 0, 0, 0, time.UTC)
	_, err := svc.Record(context.Background(), models.User{ID: "u1"}, "英語", start, start.Add(-time.Minute))
	require.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestStats_AggregatesTotalsWeekAndSubjects(t *testing.T) {
	// "Now" is Wednesday 2024-10-02, so the week starts Monday 2024-09-30.
	now := time.Date(2024, 10, 2, 15, 0, 0, 0, time.UTC)

	day := func(d, minutes int, subject string) models.StudySession {
		end := time.Date(2024, 9, d, 12, 0, 0, 0, time.UTC)
		return models.StudySession{
			ID: "s", UserID: "u1", Subject: subject,
			StartTime: end.Add(-time.Duration(minutes) * time.Minute),
			EndTime:   end,
			Duration:  minutes,
		}
	}

	repo := &fakeSessionRepo{items: []models.StudySession{
		day(20, 90, "数学"),  // before this week
		day(30, 60, "数学"),  // Monday of this week
		day(30, 45, "英語"),  // Monday of this week
		{ID: "other", UserID: "u2", Subject: "数学", Duration: 500}, // other user
	}}
	svc := newStudyService(repo, now)

	stats, err := svc.Stats(context.Background(), "u1")
	require.NoError(t, err)

	require.Equal(t, 195, stats.TotalMinutes)
	require.Equal(t, 105, stats.WeekMinutes)
	require.Equal(t, 150, stats.BySubject["数学"])
	require.Equal(t, 45, stats.BySubject["英語"])
	require.Equal(t, 3, stats.TotalHours())
	require.Equal(t, 1, stats.WeekHours())
}

func TestStartOfWeek(t *testing.T) {
	// Sunday belongs to the week that started the previous Monday.
	sunday := time.Date(2024, 10, 6, 23, 59, 0, 0, time.UTC)
	require.Equal(t, time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC), startOfWeek(sunday))

	monday := time.Date(2024, 9, 30, 0, 0, 1, 0, time.UTC)
	require.Equal(t, time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC), startOfWeek(monday))
}
