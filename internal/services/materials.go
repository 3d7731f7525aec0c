package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mizusawa-dev/studyshare/internal/common"
	"github.com/mizusawa-dev/studyshare/internal/logging"
	"github.com/mizusawa-dev/studyshare/internal/models"
	"github.com/mizusawa-dev/studyshare/internal/repositories/materials"
)

// MaterialService sits between the presentation layer and the materials
// repository: List derives the filtered view, Post turns a submitted draft
// into a persisted material.
type MaterialService struct {
	repo materials.Repository
	log  logging.Logger

	// Test seams.
	now   func() time.Time
	newID func() string
}

func NewMaterialService(repo materials.Repository, log logging.Logger) *MaterialService {
	return &MaterialService{
		repo:  repo,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// List loads the collection and applies the filter.
func (s *MaterialService) List(ctx context.Context, f Filter) ([]models.Material, error) {
	list, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return f.Apply(list), nil
}

// Post fills in the server-side fields of the draft (id, poster snapshot,
// zero likes, no comments, unverified, creation time) and persists it as the
// newest entry. The draft must carry a title, valid ratings, and a completion
// rate within [0,100].
func (s *MaterialService) Post(ctx context.Context, poster models.User, draft models.Material) (models.Material, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return models.Material{}, fmt.Errorf("%w: title is required", common.ErrInvalidInput)
	}
	if !draft.Ratings.Valid() {
		return models.Material{}, fmt.Errorf("%w: ratings must be within 1-5", common.ErrInvalidInput)
	}
	if draft.CompletionRate < 0 || draft.CompletionRate > 100 {
		return models.Material{}, fmt.Errorf("%w: completion rate must be within 0-100", common.ErrInvalidInput)
	}

	draft.ID = s.newID()
	draft.UserID = poster.ID
	draft.User = poster
	draft.Likes = 0
	draft.Comments = []models.Comment{}
	draft.Verified = false
	draft.CreatedAt = s.now()

	if err := s.repo.Add(ctx, draft); err != nil {
		return models.Material{}, err
	}

	s.log.Info(ctx, "material posted", "id", draft.ID, "title", draft.Title, "subject", draft.Subject)
	return draft, nil
}
