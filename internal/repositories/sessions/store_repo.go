package sessions

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mizusawa-dev/studyshare/internal/logging"
	"github.com/mizusawa-dev/studyshare/internal/models"
	"github.com/mizusawa-dev/studyshare/internal/storage"
)

// StoreRepository keeps the collection under storage.KeyStudySessions as one
// JSON array.
type StoreRepository struct {
	store storage.Store
	log   logging.Logger
}

func NewStoreRepository(store storage.Store, log logging.Logger) *StoreRepository {
	return &StoreRepository{store: store, log: log}
}

func (r *StoreRepository) All(ctx context.Context) ([]models.StudySession, error) {
	raw, err := r.store.Get(ctx, storage.KeyStudySessions)
	if err != nil {
		return nil, fmt.Errorf("failed to read study sessions: %w", err)
	}
	if raw == nil {
		return []models.StudySession{}, nil
	}

	var list []models.StudySession
	if err := json.Unmarshal(raw, &list); err != nil {
		r.log.Warn(ctx, "persisted study sessions are malformed, starting empty", "error", err)
		return []models.StudySession{}, nil
	}
	return list, nil
}

func (r *StoreRepository) ByUser(ctx context.Context, userID string) ([]models.StudySession, error) {
	all, err := r.All(ctx)
	if err != nil {
		return nil, err
	}

	mine := make([]models.StudySession, 0, len(all))
	for _, s := range all {
		if s.UserID == userID {
			mine = append(mine, s)
		}
	}
	return mine, nil
}

func (r *StoreRepository) Add(ctx context.Context, s models.StudySession) error {
	list, err := r.All(ctx)
	if err != nil {
		return err
	}

	list = append(list, s)
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode study sessions: %w", err)
	}
	if err := r.store.Set(ctx, storage.KeyStudySessions, raw); err != nil {
		return fmt.Errorf("failed to persist study sessions: %w", err)
	}
	return nil
}
