package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/vaccx/internal/client/client"
	"github.com/dmitrijs2005/vaccx/internal/client/config"
	"github.com/dmitrijs2005/vaccx/internal/client/services"
)

type App struct {
	config        *config.Config
	authService   services.AuthService
	marketService services.MarketService
	repos         *client.Repositories
	userID        string
	loggedIn      bool
	reader        *bufio.Reader
	out           io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	repos, err := client.InitDatabase(ctx, c.LocalDBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	as := services.NewAuthService(apiClient, repos.DB)
	ms := services.NewMarketService(apiClient, as)

	return &App{
		config:        c,
		authService:   as,
		marketService: ms,
		repos:         repos,
		reader:        bufio.NewReader(os.Stdin),
		out:           os.Stdout,
	}, nil
}

// Run restores a cached session, then executes config.Command once or, when
// it is empty, starts the REPL. It returns the command's error in one-shot
// mode.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		_ = a.authService.Close(ctx)
		if a.repos != nil {
			_ = a.repos.Close()
		}
	}()

	userID, ok, err := a.authService.Restore(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not read local session:", err)
	}
	if ok {
		a.userID, a.loggedIn = userID, true
	}

	if len(a.config.Command) > 0 {
		_, err := dispatch(ctx, a, a.config.Command[0], a.config.Command[1:])
		return err
	}

	fmt.Fprintln(a.out, "Vaccine exchange CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

func (a *App) getStatus() string {
	if !a.loggedIn {
		return "(anonymous)"
	}
	return fmt.Sprintf("(%s)", a.userID)
}

// withTimeout bounds a single request by the configured timeout.
func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}
