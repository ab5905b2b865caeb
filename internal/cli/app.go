// Package cli wires configuration, logging and storage for the commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/drawerpane/internal/cli/styles"
	"github.com/bnema/drawerpane/internal/domain/repository"
	"github.com/bnema/drawerpane/internal/infrastructure/config"
	"github.com/bnema/drawerpane/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/drawerpane/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config *config.Config
	// Manager is nil when the config file could not be loaded.
	Manager *config.Manager
	Theme   *styles.Theme
	DB      *sqlite.LazyDB

	// Context with logger
	ctx       context.Context
	logCloser io.Closer
}

// NewApp creates the application with all dependencies. The database is
// opened lazily on first use.
func NewApp() (*App, error) {
	mgr, cfg, loadErr := loadConfig()

	logLevel := cfg.Logging.Level
	if envLevel := os.Getenv("DRAWERPANE_LOG_LEVEL"); envLevel != "" {
		logLevel = envLevel
	}
	logger := logging.NewFromConfigValues(logLevel, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)

	if loadErr != nil {
		logger.Warn().Err(loadErr).Msg("using default configuration")
	}

	dbFile := cfg.Database.Path
	if dbFile == "" {
		var err error
		dbFile, err = config.GetDatabaseFile()
		if err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	}

	return &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(cfg),
		DB:      sqlite.NewLazyDB(dbFile),
		ctx:     ctx,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCloser != nil {
		_ = a.logCloser.Close()
	}
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return logging.FromContext(a.ctx)
}

// LogToFile redirects logging to the configured log file. The terminal host
// owns the screen, so interactive sessions must not write to stderr.
func (a *App) LogToFile() (string, error) {
	path := a.Config.Logging.File
	if path == "" {
		var err error
		path, err = config.GetLogFile()
		if err != nil {
			return "", fmt.Errorf("resolve log file: %w", err)
		}
	}

	level := a.Config.Logging.Level
	if envLevel := os.Getenv("DRAWERPANE_LOG_LEVEL"); envLevel != "" {
		level = envLevel
	}
	l := a.Config.Logging
	logger, closer, err := logging.NewFileLogger(path, level, l.Format, logging.RotateOptions{
		MaxSizeMB:  l.MaxSizeMB,
		MaxBackups: l.MaxBackups,
		MaxAgeDays: l.MaxAgeDays,
		Compress:   l.Compress,
	})
	if err != nil {
		return "", err
	}

	if a.logCloser != nil {
		_ = a.logCloser.Close()
	}
	a.logCloser = closer
	a.ctx = logging.WithContext(a.ctx, logger)
	return path, nil
}

// Positions opens the database and returns the floating position repository.
func (a *App) Positions(ctx context.Context) (repository.FloatingPositionRepository, error) {
	db, err := a.DB.DB(ctx)
	if err != nil {
		return nil, err
	}
	return sqlite.NewFloatingPositionRepository(db), nil
}

// loadConfig loads configuration from standard locations. Defaults are
// returned alongside the error when loading fails.
func loadConfig() (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, config.DefaultConfig(), err
	}

	if err := mgr.Load(); err != nil {
		return nil, config.DefaultConfig(), err
	}

	return mgr, mgr.Get(), nil
}
