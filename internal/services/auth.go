// Package services contains the application services of studyshare: identity
// and ranking, materials, list querying, study tracking, and ranking boards.
// Services return plain data and sentinel errors; they never render anything.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mizusawa-dev/studyshare/internal/common"
	"github.com/mizusawa-dev/studyshare/internal/cryptox"
	"github.com/mizusawa-dev/studyshare/internal/logging"
	"github.com/mizusawa-dev/studyshare/internal/models"
	"github.com/mizusawa-dev/studyshare/internal/storage"
)

// RegisterParams carries the profile fields collected by the signup form.
type RegisterParams struct {
	Email         string
	Name          string
	Grade         string
	TargetSchools []string
	Subjects      []string
}

// AuthService is the identity & ranking engine. It owns the session user
// (Anonymous or Authenticated) and the registered-users collection in the
// store. A single instance serves the single UI session; it is not safe for
// concurrent use.
type AuthService struct {
	store storage.Store
	log   logging.Logger

	// Test seams.
	now   func() time.Time
	newID func() string

	current *models.User
}

func NewAuthService(store storage.Store, log logging.Logger) *AuthService {
	return &AuthService{
		store: store,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Current returns the session user, or nil when nobody is logged in.
func (a *AuthService) Current() *models.User {
	return a.current
}

// Restore reloads a previously persisted session user, if any. A malformed
// entry is discarded; the caller simply starts logged out.
func (a *AuthService) Restore(ctx context.Context) error {
	raw, err := a.store.Get(ctx, storage.KeySessionUser)
	if err != nil {
		return fmt.Errorf("failed to read session user: %w", err)
	}
	if raw == nil {
		return nil
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		a.log.Warn(ctx, "persisted session user is malformed, starting logged out", "error", err)
		return nil
	}

	a.current = &u
	a.log.Info(ctx, "session restored", "email", u.Email)
	return nil
}

// Register creates a new account. The email must not already be registered
// (case-sensitive exact match). On success the new user becomes the session
// user and both the account record and the session entry are persisted.
func (a *AuthService) Register(ctx context.Context, p RegisterParams, password []byte) (models.User, error) {
	users, err := a.loadUsers(ctx)
	if err != nil {
		return models.User{}, err
	}

	for _, su := range users {
		if su.Email == p.Email {
			return models.User{}, common.ErrDuplicateEmail
		}
	}

	su := models.StoredUser{
		User: models.User{
			ID:            a.newID(),
			Email:         p.Email,
			Name:          p.Name,
			Grade:         p.Grade,
			TargetSchools: p.TargetSchools,
			Subjects:      p.Subjects,
			Points:        0,
			Rank:          models.RankForPoints(0),
			CreatedAt:     a.now(),
		},
		PasswordHash: cryptox.PasswordDigest(password),
	}
	users = append(users, su)

	pub := su.Public()
	if err := a.persist(ctx, users, &pub); err != nil {
		return models.User{}, err
	}

	a.current = &pub
	a.log.Info(ctx, "account registered", "email", pub.Email)
	return pub, nil
}

// Login authenticates the credentials against the registered-users
// collection. Unknown email and wrong password fail identically.
func (a *AuthService) Login(ctx context.Context, email string, password []byte) (models.User, error) {
	users, err := a.loadUsers(ctx)
	if err != nil {
		return models.User{}, err
	}

	for _, su := range users {
		if su.Email != email {
			continue
		}
		if !cryptox.DigestEqual(su.PasswordHash, cryptox.PasswordDigest(password)) {
			return models.User{}, common.ErrInvalidCredentials
		}

		pub := su.Public()
		if err := a.persistSession(ctx, &pub); err != nil {
			return models.User{}, err
		}
		a.current = &pub
		a.log.Info(ctx, "login successful", "email", pub.Email)
		return pub, nil
	}

	return models.User{}, common.ErrInvalidCredentials
}

// Logout clears the session user. Calling it while logged out is harmless.
func (a *AuthService) Logout(ctx context.Context) error {
	a.current = nil
	if err := a.store.Delete(ctx, storage.KeySessionUser); err != nil {
		return fmt.Errorf("failed to clear session user: %w", err)
	}
	return nil
}

// AwardPoints adds delta to the session user's point total, clamping at
// zero, and recomputes the rank. Both the session entry and the matching
// registered-user record are persisted. The reason is log-only.
func (a *AuthService) AwardPoints(ctx context.Context, delta int, reason string) (models.User, error) {
	if a.current == nil {
		return models.User{}, common.ErrNoActiveSession
	}

	total := a.current.Points + delta
	if total < 0 {
		total = 0
	}
	a.current.Points = total
	a.current.Rank = models.RankForPoints(total)

	users, err := a.loadUsers(ctx)
	if err != nil {
		return models.User{}, err
	}
	for i := range users {
		if users[i].ID == a.current.ID {
			users[i].User = *a.current
			break
		}
	}

	if err := a.persist(ctx, users, a.current); err != nil {
		return models.User{}, err
	}

	a.log.Info(ctx, "points awarded",
		"email", a.current.Email, "delta", delta, "total", total, "reason", reason)
	return *a.current, nil
}

// RegisteredUsers returns the public views of every registered account,
// for the ranking boards.
func (a *AuthService) RegisteredUsers(ctx context.Context) ([]models.User, error) {
	users, err := a.loadUsers(ctx)
	if err != nil {
		return nil, err
	}

	pub := make([]models.User, 0, len(users))
	for _, su := range users {
		pub = append(pub, su.Public())
	}
	return pub, nil
}

func (a *AuthService) loadUsers(ctx context.Context) ([]models.StoredUser, error) {
	raw, err := a.store.Get(ctx, storage.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to read registered users: %w", err)
	}
	if raw == nil {
		return []models.StoredUser{}, nil
	}

	var users []models.StoredUser
	if err := json.Unmarshal(raw, &users); err != nil {
		a.log.Warn(ctx, "persisted users are malformed, starting empty", "error", err)
		return []models.StoredUser{}, nil
	}
	return users, nil
}

// persist writes the registered-users collection and the session entry in
// one transactional batch.
func (a *AuthService) persist(ctx context.Context, users []models.StoredUser, session *models.User) error {
	rawUsers, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode registered users: %w", err)
	}
	rawSession, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session user: %w", err)
	}

	err = a.store.SetMany(ctx, map[string][]byte{
		storage.KeyUsers:       rawUsers,
		storage.KeySessionUser: rawSession,
	})
	if err != nil {
		return fmt.Errorf("failed to persist identity state: %w", err)
	}
	return nil
}

func (a *AuthService) persistSession(ctx context.Context, session *models.User) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session user: %w", err)
	}
	if err := a.store.Set(ctx, storage.KeySessionUser, raw); err != nil {
		return fmt.Errorf("failed to persist session user: %w", err)
	}
	return nil
}
