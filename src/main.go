// Package src contains the Main function of artrepo. It sets everything up:
// the configuration, the catalog cache, the artwork client and the webserver.
//
// It is in package src because it is imported from the project's root folder.
package src

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/ironsmile/artrepo/src/art"
	"github.com/ironsmile/artrepo/src/cachedb"
	"github.com/ironsmile/artrepo/src/catalog"
	"github.com/ironsmile/artrepo/src/config"
	"github.com/ironsmile/artrepo/src/daemon"
	"github.com/ironsmile/artrepo/src/helpers"
	"github.com/ironsmile/artrepo/src/version"
	"github.com/ironsmile/artrepo/src/webserver"
)

// stopTimeout is how long requests in flight are given on shutdown.
const stopTimeout = 10 * time.Second

// Main is the only thing run in the project's root main.go file. For all
// intent and purposes this is the main function.
func Main(sqlFilesFS fs.FS) {
	flags, err := daemon.ParseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		os.Exit(2)
	}

	if flags.ShowVersion {
		version.Print(os.Stdout)
		os.Exit(0)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), daemon.StopSignals...)
	defer cancel()

	if err := run(ctx, flags, afero.NewOsFs(), sqlFilesFS); err != nil {
		fmt.Fprintf(os.Stderr, "artrepo: %s\n", err)
		os.Exit(1)
	}
}

// run starts the service and blocks until `ctx` is done or the webserver
// stops on its own.
func run(ctx context.Context, flags daemon.Flags, appfs afero.Fs, sqlFilesFS fs.FS) error {
	userPath, err := helpers.ProjectUserPath()
	if err != nil {
		return err
	}

	cfgPath := flags.ConfigPath
	if cfgPath == "" {
		cfgPath, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}

	cfg, err := config.Load(appfs, cfgPath)
	if err != nil {
		return err
	}

	logOut, closeLog, err := logOutput(appfs, flags, cfg, userPath)
	if err != nil {
		return err
	}
	defer closeLog()

	logger := helpers.NewLogger(logOut, flags.Debug || cfg.Debug)

	if flags.PidFile != "" {
		if err := helpers.SetUpPidFile(appfs, flags.PidFile); err != nil {
			return err
		}
		defer func() {
			if err := helpers.RemovePidFile(appfs, flags.PidFile); err != nil {
				logger.Error().Err(err).Msg("Removing pidfile failed")
			}
		}()
	}

	cfgStore := config.NewStore(appfs, cfgPath, logger)
	if err := cfgStore.Reload(); err != nil {
		return err
	}

	store, closeStore, err := catalogStore(cfg, userPath, sqlFilesFS, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	fetcher := catalog.NewHTTPFetcher(cfg.UserAgent, cfg.FetchTimeoutDuration())
	cache := catalog.NewCache(fetcher, store, logger)

	client := art.NewClient(cache, cfgStore, logger)
	client.SetConcurrency(cfg.Concurrency)

	watchCtx, stopWatching := context.WithCancel(ctx)
	defer stopWatching()

	if err := cfgStore.Watch(watchCtx); err != nil {
		logger.Warn().Err(err).Msg("Configuration changes will not be picked up")
	}

	srv := webserver.NewServer(cfg, client, cfgStore, logger)
	if err := srv.Serve(); err != nil {
		return fmt.Errorf("starting webserver: %w", err)
	}

	serverDone := make(chan error, 1)
	go func() {
		serverDone <- srv.Wait()
	}()

	select {
	case <-ctx.Done():
		logger.Info().Msg("Stopping artrepo")
		srv.Stop(stopTimeout)
		return <-serverDone
	case err := <-serverDone:
		return err
	}
}

// logOutput returns where the process logger writes and a function which
// releases it.
func logOutput(
	appfs afero.Fs,
	flags daemon.Flags,
	cfg config.Config,
	userPath string,
) (io.Writer, func(), error) {
	if flags.Debug || cfg.LogFile == "" {
		return os.Stderr, func() {}, nil
	}

	logFile, err := helpers.OpenLogFile(appfs, helpers.AbsolutePath(cfg.LogFile, userPath))
	if err != nil {
		return nil, nil, err
	}

	return logFile, func() { _ = logFile.Close() }, nil
}

// catalogStore returns the SQLite store when a cache database is configured
// and the in-memory one otherwise.
func catalogStore(
	cfg config.Config,
	userPath string,
	sqlFilesFS fs.FS,
	logger zerolog.Logger,
) (catalog.Store, func(), error) {
	if cfg.CacheDatabase == "" {
		return catalog.NewMemoryStore(), func() {}, nil
	}

	dbPath := helpers.AbsolutePath(cfg.CacheDatabase, userPath)
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating cache database directory: %w", err)
	}

	db, err := cachedb.Open(dbPath, sqlFilesFS, logger)
	if err != nil {
		return nil, nil, err
	}

	return db, func() {
		if err := db.Close(); err != nil {
			logger.Error().Err(err).Msg("Closing cache database failed")
		}
	}, nil
}
