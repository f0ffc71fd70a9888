package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/campusfind/campusfind/internal/config"
	"github.com/campusfind/campusfind/internal/logging"
	"github.com/campusfind/campusfind/internal/models"
	"github.com/campusfind/campusfind/internal/services"
	"github.com/campusfind/campusfind/internal/storage"

	_ "modernc.org/sqlite"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	identity services.IdentityService
	catalog  services.CatalogService
	claims   services.ClaimService
	mailbox  services.MailboxService
	prefs    services.PrefsService

	currentUser *models.User
	reader      *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	gateway, db, err := storage.Open(ctx, c.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "error initializing store", "error", err)
		return nil, err
	}

	catalog := services.NewCatalogService(gateway)
	mailbox := services.NewMailboxService(gateway)

	return &App{
		config:   c,
		logger:   logger,
		db:       db,
		identity: services.NewIdentityService(gateway),
		catalog:  catalog,
		claims:   services.NewClaimService(catalog, mailbox),
		mailbox:  mailbox,
		prefs:    services.NewPrefsService(gateway),
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the persisted session, then blocks inside the REPL until the
// user exits.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()

	user, err := a.identity.Current(ctx)
	if err != nil {
		a.logger.Warn(ctx, "could not restore session", "error", err)
	}
	if user != nil {
		a.currentUser = user
		fmt.Printf("Welcome back, %s!\n", user.Name)
	}

	fmt.Println("Welcome to CampusFind CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.currentUser != nil
}

func (a *App) getStatus() string {
	if a.currentUser == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.currentUser.Email)
}
