package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mizusawa-dev/studyshare/internal/common"
	"github.com/mizusawa-dev/studyshare/internal/logging"
	"github.com/mizusawa-dev/studyshare/internal/models"
	"github.com/mizusawa-dev/studyshare/internal/repositories/sessions"
)

// StudyService records completed timer runs and derives study statistics.
type StudyService struct {
	repo sessions.Repository
	log  logging.Logger

	// Test seams.
	now   func() time.Time
	newID func() string
}

func NewStudyService(repo sessions.Repository, log logging.Logger) *StudyService {
	return &StudyService{
		repo:  repo,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Record persists one completed timer run. Duration is whole minutes,
// rounded down, mirroring the original timer behavior.
func (s *StudyService) Record(ctx context.Context, user models.User, subject string, start, end time.Time) (models.StudySession, error) {
	if end.Before(start) {
		return models.StudySession{}, fmt.Errorf("%w: session ends before it starts", common.ErrInvalidInput)
	}

	session := models.StudySession{
		ID:        s.newID(),
		UserID:    user.ID,
		Subject:   subject,
		StartTime: start,
		EndTime:   end,
		Duration:  int(end.Sub(start).Minutes()),
	}
	if err := s.repo.Add(ctx, session); err != nil {
		return models.StudySession{}, err
	}

	s.log.Info(ctx, "study session recorded",
		"subject", subject, "minutes", session.Duration)
	return session, nil
}

// StudyStats summarizes a user's recorded sessions.
type StudyStats struct {
	TotalMinutes int
	// WeekMinutes counts sessions that ended in the current calendar week
	// (Monday through Sunday).
	WeekMinutes int
	BySubject   map[string]int
}

func (s StudyStats) TotalHours() int { return s.TotalMinutes / 60 }
func (s StudyStats) WeekHours() int  { return s.WeekMinutes / 60 }

// Stats aggregates the user's sessions.
func (s *StudyService) Stats(ctx context.Context, userID string) (StudyStats, error) {
	list, err := s.repo.ByUser(ctx, userID)
	if err != nil {
		return StudyStats{}, err
	}

	stats := StudyStats{BySubject: make(map[string]int)}
	weekStart := startOfWeek(s.now())

	for _, sess := range list {
		stats.TotalMinutes += sess.Duration
		stats.BySubject[sess.Subject] += sess.Duration
		if !sess.EndTime.Before(weekStart) {
			stats.WeekMinutes += sess.Duration
		}
	}
	return stats, nil
}

// startOfWeek returns Monday 00:00 of the week containing t.
func startOfWeek(t time.Time) time.Time {
	days := (int(t.Weekday()) + 6) % 7
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -days)
}
