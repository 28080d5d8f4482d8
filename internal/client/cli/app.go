package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/zenkeeper/internal/client/client"
	"github.com/dmitrijs2005/zenkeeper/internal/client/config"
	"github.com/dmitrijs2005/zenkeeper/internal/client/repositories/cache"
	"github.com/dmitrijs2005/zenkeeper/internal/client/repositories/cache/filestore"
	"github.com/dmitrijs2005/zenkeeper/internal/client/repositories/cache/memory"
	"github.com/dmitrijs2005/zenkeeper/internal/client/repositories/cache/sqlstore"
	"github.com/dmitrijs2005/zenkeeper/internal/client/services"
	"github.com/dmitrijs2005/zenkeeper/internal/filex"
	"github.com/dmitrijs2005/zenkeeper/internal/logging"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SQLiteFile is the database file name of the sqlite backend.
const SQLiteFile = "cache.db"

type App struct {
	config    *config.Config
	sync      services.SyncService
	ledger    services.LedgerService
	store     cache.Store
	log       logging.Logger
	out       io.Writer
	now       func() time.Time
	helpStyle string
	closers   []io.Closer
}

// NewApp opens the cache and the log file, resolves the token and builds
// the services. The caller owns the App and must Close it.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if _, err := filex.EnsureDir(c.DataDir); err != nil {
		return nil, err
	}

	log, logCloser, err := openLogger(c)
	if err != nil {
		return nil, err
	}
	a := &App{config: c, log: log, out: os.Stdout, now: time.Now, helpStyle: "notty"}
	if logCloser != nil {
		a.closers = append(a.closers, logCloser)
	}
	if isTerminal(int(os.Stdout.Fd())) {
		a.helpStyle = "dark"
	}

	token := c.Token
	if token == "" {
		token, err = getToken(bufio.NewReader(os.Stdin), os.Stdout)
		if err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("read token: %w", err)
		}
	}

	api, err := client.NewHTTPClient(token, client.WithBaseURL(c.BaseURL), client.WithTimeout(c.RequestTimeout))
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	store, err := openStore(ctx, c)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.store = store
	a.closers = append([]io.Closer{store}, a.closers...)

	a.sync = services.NewSyncService(api, store, log, a.now)
	a.ledger = services.NewLedgerService(store)

	log.Debug(ctx, "config loaded", "request_timeout", c.RequestTimeout, "sync_interval", c.SyncInterval, "log_file", c.LogPath())
	log.Info(ctx, "client started", "store", c.Store, "data_dir", c.DataDir, "base_url", api.BaseURL())
	return a, nil
}

func openStore(ctx context.Context, c *config.Config) (cache.Store, error) {
	switch c.Store {
	case config.StoreFile:
		return filestore.Open(c.DataDir)
	case config.StoreSQLite:
		return sqlstore.Open(ctx, "file:"+filepath.Join(c.DataDir, SQLiteFile))
	case config.StoreMemory:
		return memory.New(), nil
	}
	return nil, fmt.Errorf("unknown store backend %q", c.Store)
}

// openLogger returns a logger writing to the rotated log file, or to
// stderr when the config asks for it. The closer is nil for stderr.
func openLogger(c *config.Config) (*logging.SlogLogger, io.Closer, error) {
	path := c.LogPath()
	if path == "" {
		l, err := logging.New(c.LogLevel, os.Stderr)
		return l, nil, err
	}

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
	l, err := logging.New(c.LogLevel, w)
	if err != nil {
		return nil, nil, err
	}
	return l, w, nil
}

// Run starts background sync and the REPL on stdin. It closes the App when
// the REPL exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stop := a.startBackgroundSync(ctx)
	defer stop()

	printlnFn("Welcome to zenkeeper (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

// startBackgroundSync runs periodic sync until the returned stop is called.
// stop returns once the loop has exited, so the store may be closed after it.
func (a *App) startBackgroundSync(ctx context.Context) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		services.RunPeriodicSync(ctx, a.sync, a.config.SyncInterval, a.log)
	}()
	return func() {
		cancel()
		<-done
	}
}

// Close releases the store and the log file.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) getStatus() string {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	backend := ""
	if a.config != nil {
		backend = a.config.Store + " "
	}
	if a.store == nil {
		return fmt.Sprintf("(%snot ready)", backend)
	}
	ts, ok, err := a.store.Checkpoint(ctx)
	switch {
	case err != nil:
		return fmt.Sprintf("(%sunavailable)", backend)
	case !ok:
		return fmt.Sprintf("(%snever synced)", backend)
	}
	return fmt.Sprintf("(%s%s)", backend, time.Unix(ts, 0).Local().Format("2006-01-02 15:04"))
}
