package cli

import (
	"bufio"
	"context"
	"os"
	"time"

	"github.com/mizusawa-dev/studyshare/internal/config"
	"github.com/mizusawa-dev/studyshare/internal/logging"
	"github.com/mizusawa-dev/studyshare/internal/repositories/materials"
	"github.com/mizusawa-dev/studyshare/internal/repositories/sessions"
	"github.com/mizusawa-dev/studyshare/internal/services"
	"github.com/mizusawa-dev/studyshare/internal/storage"
)

// App wires the services behind the REPL commands.
type App struct {
	config    *config.Config
	store     storage.Store
	auth      *services.AuthService
	materials *services.MaterialService
	study     *services.StudyService
	ranking   *services.RankingService
	log       logging.Logger
	reader    *bufio.Reader

	// Test seams.
	closeFn func() error
	now     func() time.Time
}

// NewApp opens the local database and builds the service stack on top of it.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	store, err := storage.Open(ctx, c.DatabasePath())
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	matRepo := materials.NewStoreRepository(store, log)
	sessRepo := sessions.NewStoreRepository(store, log)
	auth := services.NewAuthService(store, log)

	return &App{
		config:    c,
		store:     store,
		auth:      auth,
		materials: services.NewMaterialService(matRepo, log),
		study:     services.NewStudyService(sessRepo, log),
		ranking:   services.NewRankingService(auth, matRepo, sessRepo, log),
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
		closeFn:   store.Close,
		now:       time.Now,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.auth.Current() != nil
}

func (a *App) getStatus() string {
	u := a.auth.Current()
	if u == nil {
		return "guest"
	}
	return u.Name + " " + u.Rank.Name
}

// Run restores a persisted session, then hands control to the REPL until the
// user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.closeFn(); err != nil {
			a.log.Error(ctx, "error closing database", "error", err)
		}
	}()

	if err := a.auth.Restore(ctx); err != nil {
		a.log.Warn(ctx, "could not restore session", "error", err)
	}
	if u := a.auth.Current(); u != nil {
		printlnFn("Welcome back,", u.Name)
	}

	printlnFn("StudyShare CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// Reset wipes all locally stored data and logs out.
func (a *App) Reset(ctx context.Context) error {
	confirm, err := GetSimpleText(a.reader, "Type 'yes' to delete all local data", os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "yes" {
		printlnFn("Cancelled")
		return nil
	}

	if err := a.store.Clear(ctx); err != nil {
		a.log.Error(ctx, "error clearing storage", "error", err)
		return err
	}
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	printlnFn("All local data removed")
	return nil
}
