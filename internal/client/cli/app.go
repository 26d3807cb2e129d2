package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/relationest/internal/client/client"
	"github.com/dmitrijs2005/relationest/internal/client/config"
	"github.com/dmitrijs2005/relationest/internal/client/models"
	"github.com/dmitrijs2005/relationest/internal/client/repositories/kv"
	"github.com/dmitrijs2005/relationest/internal/client/router"
	"github.com/dmitrijs2005/relationest/internal/client/services"
	"github.com/dmitrijs2005/relationest/internal/client/session"
	"github.com/dmitrijs2005/relationest/internal/client/storage"
	"github.com/dmitrijs2005/relationest/internal/logging"
)

type App struct {
	config         *config.Config
	db             *sql.DB
	logger         logging.Logger
	guard          *session.Guard
	router         *router.Router
	authService    services.AuthService
	chatService    services.ChatService
	contactService services.ContactService
	reader         *bufio.Reader
	out            io.Writer
	now            func() time.Time

	// apiKeys are the user's own provider keys; they live only as long as
	// the process.
	apiKeys    models.APIKeys
	lastChatID string
}

// NewApp opens the session database and wires the session guard, the router
// and the API services.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	a, err := newApp(c, kv.NewSQLiteRepository(db), logger, bufio.NewReader(os.Stdin), os.Stdout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	a.db = db
	return a, nil
}

func newApp(c *config.Config, repo kv.Repository, logger logging.Logger, in *bufio.Reader, out io.Writer) (*App, error) {
	if logger == nil {
		logger = logging.Nop()
	}

	a := &App{config: c, logger: logger, reader: in, out: out, now: time.Now}

	store := session.NewStore(repo, logger.With("component", "session"))
	a.guard = session.NewGuard(store, logger.With("component", "guard"), session.WithNotifier(a.notifyError))
	a.router = router.New(router.Routes(), logger.With("component", "router"))
	a.router.SetGuard(a.guard)
	a.guard.SetNavigator(a.router)

	apiClient, err := client.NewHTTPClient(c.APIBaseURL, store,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(logger.With("component", "api")),
	)
	if err != nil {
		return nil, err
	}

	a.authService = services.NewAuthService(apiClient, a.guard)
	a.chatService = services.NewChatService(apiClient, a.guard)
	a.contactService = services.NewContactService(apiClient)
	return a, nil
}

// Close releases the session database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Run shows the landing view and serves commands until the user exits, stdin
// is closed or the process is signalled.
func (a *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	a.initSignalHandler(cancelFunc)

	fmt.Fprintln(a.out, "Welcome to RelatioNest (type 'help' for commands)")
	if err := a.Go(ctx, "/"); err != nil {
		a.report(ctx, err)
	}

	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader)
}

// initSignalHandler cancels the root context on the first SIGINT or SIGTERM.
// A second signal gets the default behaviour.
func (a *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigs
		signal.Stop(sigs)
		cancelFunc()
	}()
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.guard.IsAuthenticated(ctx)
}
