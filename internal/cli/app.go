package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/danunant/bbank/internal/config"
	"github.com/danunant/bbank/internal/logging"
	"github.com/danunant/bbank/internal/seed"
	"github.com/danunant/bbank/internal/services"
	"github.com/danunant/bbank/internal/store"

	_ "modernc.org/sqlite"
)

// App wires the local database, the services and the interactive loop
// together. One App instance is one terminal session.
type App struct {
	config   *config.Config
	auth     services.AuthService
	ledger   services.LedgerService
	log      logging.Logger
	db       *sql.DB
	reader   *bufio.Reader
	changes  <-chan struct{}
	userName string
}

// NewApp opens the database, applies the first-run demo data if configured,
// and builds the service stack.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, repos, err := store.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	if c.SeedDemoData {
		if _, err := seed.Apply(ctx, repos, log); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	notifier := services.NewNotifier()
	auth := services.NewAuthService(repos.Users, notifier, log, c.SessionValidity)
	ledger := services.NewLedgerService(db, repos, auth, notifier, log)

	return &App{
		config:  c,
		auth:    auth,
		ledger:  ledger,
		log:     log,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		changes: ledger.Watch(),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

// refreshUserName re-reads the session so an expired token flips the prompt
// back to the logged-out state.
func (a *App) refreshUserName(ctx context.Context) {
	user, err := a.auth.CurrentUser(ctx)
	if err != nil || user == nil {
		a.userName = ""
		return
	}
	a.userName = user.Username
}
