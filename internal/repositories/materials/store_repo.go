package materials

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mizusawa-dev/studyshare/internal/logging"
	"github.com/mizusawa-dev/studyshare/internal/models"
	"github.com/mizusawa-dev/studyshare/internal/storage"
)

// StoreRepository keeps the collection under storage.KeyMaterials as one
// JSON array.
type StoreRepository struct {
	store storage.Store
	log   logging.Logger
}

func NewStoreRepository(store storage.Store, log logging.Logger) *StoreRepository {
	return &StoreRepository{store: store, log: log}
}

func (r *StoreRepository) Load(ctx context.Context) ([]models.Material, error) {
	raw, err := r.store.Get(ctx, storage.KeyMaterials)
	if err != nil {
		return nil, fmt.Errorf("failed to read materials: %w", err)
	}

	if raw == nil {
		return r.seedAndPersist(ctx)
	}

	var list []models.Material
	if err := json.Unmarshal(raw, &list); err != nil {
		// Unparseable state is recovered locally, never propagated.
		r.log.Warn(ctx, "persisted materials are malformed, falling back to seed set", "error", err)
		return r.seedAndPersist(ctx)
	}
	return list, nil
}

func (r *StoreRepository) Add(ctx context.Context, m models.Material) error {
	list, err := r.Load(ctx)
	if err != nil {
		return err
	}

	list = append([]models.Material{m}, list...)
	return r.persist(ctx, list)
}

func (r *StoreRepository) seedAndPersist(ctx context.Context) ([]models.Material, error) {
	list := SeedMaterials()
	if err := r.persist(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *StoreRepository) persist(ctx context.Context, list []models.Material) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode materials: %w", err)
	}
	if err := r.store.Set(ctx, storage.KeyMaterials, raw); err != nil {
		return fmt.Errorf("failed to persist materials: %w", err)
	}
	return nil
}
