package sessions

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mizusawa-dev/studyshare/internal/logging"
	"github.com/mizusawa-dev/studyshare/internal/models"
	"github.com/mizusawa-dev/studyshare/internal/storage"
)

func newRepo(t *testing.T) (*StoreRepository, *storage.MemStore) {
	t.Helper()
	store := storage.NewMemStore()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewStoreRepository(store, log), store
}

func session(id, userID, subject string, minutes int) models.StudySession {
	start := time.Date(2024, 10, 1, 9, 0, 0, 0, time.UTC)
	return models.StudySession{
		ID:        id,
		UserID:    userID,
		Subject:   subject,
		StartTime: start,
		EndTime:   start.Add(time.Duration(minutes) * time.Minute),
		Duration:  minutes,
	}
}

func TestAll_EmptyStore(t *testing.T) {
	repo, _ := newRepo(t)

	list, err := repo.All(context.Background())
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestAll_MalformedDataStartsEmpty(t *testing.T) {
	repo, store := newRepo(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, storage.KeyStudySessions, []byte("[broken")))

	list, err := repo.All(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestAdd_AppendsInOrder(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, session("s1", "u1", "数学", 30)))
	require.NoError(t, repo.Add(ctx, session("s2", "u1", "英語", 45)))

	list, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "s1", list[0].ID)
	require.Equal(t, "s2", list[1].ID)
}

func TestByUser_FiltersOtherUsers(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, session("s1", "u1", "数学", 30)))
	require.NoError(t, repo.Add(ctx, session("s2", "u2", "英語", 45)))
	require.NoError(t, repo.Add(ctx, session("s3", "u1", "国語", 20)))

	mine, err := repo.ByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, s := range mine {
		require.Equal(t, "u1", s.UserID)
	}
}
