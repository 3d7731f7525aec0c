// Package sessions implements the completed-study-sessions collection over
// the persistence store.
package sessions

import (
	"context"

	"github.com/mizusawa-dev/studyshare/internal/models"
)

type Repository interface {
	// All returns every recorded session in insertion order. Absent or
	// unparseable persisted data yields an empty collection.
	All(ctx context.Context) ([]models.StudySession, error)

	// ByUser returns the sessions recorded for one user.
	ByUser(ctx context.Context, userID string) ([]models.StudySession, error)

	// Add appends the session and persists the whole collection.
	Add(ctx context.Context, s models.StudySession) error
}
