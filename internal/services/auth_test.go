package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mizusawa-dev/studyshare/internal/common"
	"github.com/mizusawa-dev/studyshare/internal/logging"
	"github.com/mizusawa-dev/studyshare/internal/models"
	"github.com/mizusawa-dev/studyshare/internal/storage"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newAuth(t *testing.T) (*AuthService, *storage.MemStore) {
	t.Helper()
	store := storage.NewMemStore()
	a := NewAuthService(store, discardLogger())

	seq := 0
	a.newID = func() string { seq++; return fmt.Sprintf("uid-%d", seq) }
	a.now = func() time.Time { return time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC) }
	return a, store
}

func registerTaro(t *testing.T, a *AuthService) models.User {
	t.Helper()
	u, err := a.Register(context.Background(), RegisterParams{
		Email:         "tanaka@example.com",
		Name:          "田中太郎",
		Grade:         "高校3年",
		TargetSchools: []string{"東京大学"},
		Subjects:      []string{"数学", "英語"},
	}, []byte("hunter2"))
	require.NoError(t, err)
	return u
}

func TestRegister_CreatesAccountAndSession(t *testing.T) {
	a, store := newAuth(t)
	ctx := context.Background()

	u := registerTaro(t, a)
	require.Equal(t, "uid-1", u.ID)
	require.Equal(t, 0, u.Points)
	require.Equal(t, models.RankBeginner, u.Rank.Level)
	require.NotNil(t, a.Current())

	// The session entry holds the public shape, without the digest.
	raw, err := store.Get(ctx, storage.KeySessionUser)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "passwordHash")

	// The account record holds the digest.
	raw, err = store.Get(ctx, storage.KeyUsers)
	require.NoError(t, err)
	var users []models.StoredUser
	require.NoError(t, json.Unmarshal(raw, &users))
	require.Len(t, users, 1)
	require.NotEmpty(t, users[0].PasswordHash)
	require.NotEqual(t, "hunter2", users[0].PasswordHash)
}

func TestRegister_DuplicateEmailLeavesFirstAccountIntact(t *testing.T) {
	a, _ := newAuth(t)
	ctx := context.Background()

	registerTaro(t, a)
	_, err := a.Register(ctx, RegisterParams{Email: "tanaka@example.com", Name: "偽物"}, []byte("other"))
	require.ErrorIs(t, err, common.ErrDuplicateEmail)

	users, err := a.RegisteredUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "田中太郎", users[0].Name)
}

func TestRegister_EmailMatchIsCaseSensitive(t *testing.T) {
	a, _ := newAuth(t)
	ctx := context.Background()

	registerTaro(t, a)
	_, err := a.Register(ctx, RegisterParams{Email: "Tanaka@example.com", Name: "別人"}, []byte("pw"))
	require.NoError(t, err)

	users, err := a.RegisteredUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
}

func TestLogin_WrongPasswordAndUnknownEmailFailIdentically(t *testing.T) {
	a, _ := newAuth(t)
	ctx := context.Background()

	registerTaro(t, a)
	require.NoError(t, a.Logout(ctx))

	_, errWrongPassword := a.Login(ctx, "tanaka@example.com", []byte("nope"))
	_, errUnknownEmail := a.Login(ctx, "nobody@example.com", []byte("hunter2"))

	require.ErrorIs(t, errWrongPassword, common.ErrInvalidCredentials)
	require.ErrorIs(t, errUnknownEmail, common.ErrInvalidCredentials)
	require.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
	require.Nil(t, a.Current())
}

func TestLogin_Success(t *testing.T) {
	a, store := newAuth(t)
	ctx := context.Background()

	registerTaro(t, a)
	require.NoError(t, a.Logout(ctx))

	u, err := a.Login(ctx, "tanaka@example.com", []byte("hunter2"))
	require.NoError(t, err)
	require.Equal(t, "田中太郎", u.Name)
	require.NotNil(t, a.Current())

	raw, err := store.Get(ctx, storage.KeySessionUser)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "passwordHash")
}

func TestLogout_ClearsSession(t *testing.T) {
	a, store := newAuth(t)
	ctx := context.Background()

	registerTaro(t, a)
	require.NoError(t, a.Logout(ctx))
	require.Nil(t, a.Current())

	raw, err := store.Get(ctx, storage.KeySessionUser)
	require.NoError(t, err)
	require.Nil(t, raw)

	// Logging out twice is harmless.
	require.NoError(t, a.Logout(ctx))
}

func TestAwardPoints_UpdatesTotalAndRank(t *testing.T) {
	a, _ := newAuth(t)
	ctx := context.Background()

	registerTaro(t, a)
	_, err := a.AwardPoints(ctx, 480, "seed")
	require.NoError(t, err)

	u, err := a.AwardPoints(ctx, 50, "post material")
	require.NoError(t, err)
	require.Equal(t, 530, u.Points)
	require.Equal(t, models.RankDedicated, u.Rank.Level)
}

func TestAwardPoints_ClampsAtZero(t *testing.T) {
	a, _ := newAuth(t)
	ctx := context.Background()

	registerTaro(t, a)
	_, err := a.AwardPoints(ctx, 10, "seed")
	require.NoError(t, err)

	u, err := a.AwardPoints(ctx, -1000, "penalty")
	require.NoError(t, err)
	require.Equal(t, 0, u.Points)
	require.Equal(t, models.RankBeginner, u.Rank.Level)
}

func TestAwardPoints_PersistsBothSessionAndAccountRecord(t *testing.T) {
	a, store := newAuth(t)
	ctx := context.Background()

	registerTaro(t, a)
	_, err := a.AwardPoints(ctx, 200, "study")
	require.NoError(t, err)

	var session models.User
	raw, err := store.Get(ctx, storage.KeySessionUser)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &session))
	require.Equal(t, 200, session.Points)

	var users []models.StoredUser
	raw, err = store.Get(ctx, storage.KeyUsers)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &users))
	require.Equal(t, 200, users[0].Points)
	require.Equal(t, models.RankLearner, users[0].Rank.Level)
}

func TestAwardPoints_NoSession(t *testing.T) {
	a, _ := newAuth(t)

	_, err := a.AwardPoints(context.Background(), 50, "post material")
	require.ErrorIs(t, err, common.ErrNoActiveSession)
}

func TestRestore_ReloadsPersistedSession(t *testing.T) {
	a, store := newAuth(t)
	ctx := context.Background()

	registerTaro(t, a)

	// Fresh service over the same store simulates an application restart.
	fresh := NewAuthService(store, discardLogger())
	require.NoError(t, fresh.Restore(ctx))
	require.NotNil(t, fresh.Current())
	require.Equal(t, "tanaka@example.com", fresh.Current().Email)
}

func TestRestore_MalformedSessionStartsLoggedOut(t *testing.T) {
	a, store := newAuth(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, storage.KeySessionUser, []byte("{broken")))
	require.NoError(t, a.Restore(ctx))
	require.Nil(t, a.Current())
}

func TestLoadUsers_MalformedCollectionStartsEmpty(t *testing.T) {
	a, store := newAuth(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, storage.KeyUsers, []byte("not json")))

	users, err := a.RegisteredUsers(ctx)
	require.NoError(t, err)
	require.Empty(t, users)
}
