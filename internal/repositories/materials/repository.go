// Package materials implements the posted-materials collection over the
// persistence store.
package materials

import (
	"context"

	"github.com/mizusawa-dev/studyshare/internal/models"
)

// Repository describes the materials collection. Order is most-recent-first:
// Add prepends, Load preserves the persisted order.
type Repository interface {
	// Load returns the full collection, restoring it from the store on first
	// use. Absent or unparseable persisted data falls back to the built-in
	// seed set; that failure is never surfaced.
	Load(ctx context.Context) ([]models.Material, error)

	// Add prepends the material and persists the whole collection.
	Add(ctx context.Context, m models.Material) error
}
