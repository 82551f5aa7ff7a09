// Package cmd implements the tharwa CLI application.
package cmd

import (
	"fmt"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/msallak/tharwa"
	"github.com/msallak/tharwa/connect"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the
// user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&runCmd{}, "")
	c.Register(&topicCmd{}, "documentation")
	c.Register(&versionCmd{}, "")
}

// App carries the state of one interactive run: the stores, the open
// session and the shared services. Everything is built here and passed
// down explicitly; there are no package-level stores.
type App struct {
	Config    Config
	Users     *tharwa.UserRegistry
	Portfolio *tharwa.Portfolio
	Connect   *connect.Service
	Log       zerolog.Logger

	session *tharwa.Session
}

// NewApp wires an application from the configuration.
func NewApp(cfg Config) (*App, error) {
	log := cfg.NewLogger()
	svc, err := connect.NewService(log)
	if err != nil {
		return nil, fmt.Errorf("loading institutions catalogue: %w", err)
	}
	return &App{
		Config:    cfg,
		Users:     tharwa.NewUserRegistry(),
		Portfolio: tharwa.NewPortfolio(),
		Connect:   svc,
		Log:       log,
	}, nil
}

// Login opens a session for username, replacing any previous one.
func (a *App) Login(username string) {
	a.session = tharwa.NewSession(username)
	a.Log.Info().Str("user", username).Stringer("session", a.session.ID).Msg("session opened")
}

// LoggedIn reports whether a session is open.
func (a *App) LoggedIn() bool { return a.session != nil }

// Session returns the current session, or nil when logged out.
func (a *App) Session() *tharwa.Session { return a.session }
