package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrijs2005/lumina/internal/client/client"
	"github.com/dmitrijs2005/lumina/internal/client/config"
	"github.com/dmitrijs2005/lumina/internal/client/metrics"
	"github.com/dmitrijs2005/lumina/internal/client/models"
	"github.com/dmitrijs2005/lumina/internal/client/repositories/records"
	"github.com/dmitrijs2005/lumina/internal/client/services"
	"github.com/dmitrijs2005/lumina/internal/client/session"
	"github.com/dmitrijs2005/lumina/internal/cryptox"
	"github.com/dmitrijs2005/lumina/internal/logging"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	auth     services.AuthService
	insights services.InsightService
	session  *session.Holder
	metrics  *metrics.Metrics
	reader   *bufio.Reader
	out      io.Writer
	closeFn  func() error

	// lastCategory is repeated by a bare "insight" command.
	lastCategory models.Category
}

// NewApp wires the record store, the services and the session holder from c.
// A ":memory:" database path keeps all records in process.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	var (
		repo    records.Repository
		closeFn = func() error { return nil }
	)

	if c.DatabasePath == config.MemoryDatabase {
		repo = records.NewMemoryRepository()
	} else {
		db, err := client.InitDatabase(ctx, c.DatabasePath)
		if err != nil {
			log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
			return nil, err
		}
		repo = records.NewSQLiteRepository(db)
		closeFn = db.Close
	}

	if c.APIKey == "" {
		log.Warn(ctx, "no API key configured, insights will use the fallback quote")
	}
	gen := client.NewGenAIClient(ctx, client.GenAIOptions{APIKey: c.APIKey, BaseURL: c.ProviderBaseURL})

	m := metrics.New(prometheus.NewRegistry())

	auth := services.NewAuthService(repo, cryptox.NewArgon2(), log,
		services.WithLatency(c.SimulatedLatency),
		services.WithMetrics(m),
	)
	insights := services.NewInsightService(gen, c.Model, log, m)

	holder := session.NewHolder()
	holder.Subscribe(func(u *models.User) {
		if u == nil {
			log.Debug(ctx, "session cleared")
			return
		}
		log.Debug(ctx, "session changed", "user_id", u.ID)
	})

	return &App{
		config:   c,
		log:      log,
		auth:     auth,
		insights: insights,
		session:  holder,
		metrics:  m,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		closeFn:  closeFn,
	}, nil
}

// Run restores the persisted session and blocks in the REPL until the user
// exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.closeFn(); err != nil {
			a.log.Error(ctx, "error closing database", "error", err)
		}
	}()

	a.restoreSession(ctx)

	printlnFn("Welcome to Lumina (type 'help' for commands)")
	if a.isLoggedIn() {
		a.arrive(ctx)
	}
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) restoreSession(ctx context.Context) {
	u, err := a.auth.CurrentSession(ctx)
	if err != nil {
		a.log.Warn(ctx, "could not restore session", "error", err)
		return
	}
	if u != nil {
		a.session.Set(u)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) status() string {
	if u := a.session.Current(); u != nil {
		return fmt.Sprintf("(%s)", u.Name)
	}
	return ""
}
