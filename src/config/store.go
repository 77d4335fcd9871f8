package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/howeyc/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Store holds the active configuration of the process. It is loaded
// explicitly and may be reloaded at any time while it is being read. It is
// safe for concurrent use.
type Store struct {
	fs   afero.Fs
	path string
	log  zerolog.Logger

	mu  sync.RWMutex
	cfg Config
}

// NewStore returns a Store for the configuration file `path` in `fs`. It
// holds the default configuration until Reload is called.
func NewStore(fs afero.Fs, path string, logger zerolog.Logger) *Store {
	return &Store{
		fs:   fs,
		path: path,
		log:  logger.With().Str("component", "config").Logger(),
		cfg:  Default(),
	}
}

// Path returns the location of the configuration file.
func (s *Store) Path() string {
	return s.path
}

// Config returns a copy of the active configuration.
func (s *Store) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg := s.cfg
	cfg.Repositories = append([]string(nil), s.cfg.Repositories...)
	return cfg
}

// Repositories returns the configured repositories in order. The returned
// slice is owned by the caller.
func (s *Store) Repositories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]string{}, s.cfg.Repositories...)
}

// Reload reads the configuration file again. On error the active
// configuration stays as it was.
func (s *Store) Reload() error {
	cfg, err := Load(s.fs, s.path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()

	s.log.Info().
		Str("path", s.path).
		Int("repositories", len(cfg.Repositories)).
		Msg("configuration loaded")

	return nil
}

// Watch reloads the configuration every time its file is changed on disk.
// It returns once the watching has started and stops it when `ctx` is done.
// It only works for files on the OS file system.
func (s *Store) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating config watcher: %w", err)
	}

	// Editors often replace the file instead of writing into it. So the
	// directory is watched.
	dir := filepath.Dir(s.path)
	if err := watcher.Watch(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	go s.watchEventRoutine(ctx, watcher)
	return nil
}

func (s *Store) watchEventRoutine(ctx context.Context, watcher *fsnotify.Watcher) {
	defer func() {
		watcher.Close()
		s.log.Debug().Msg("config watcher stopped")
	}()

	for {
		select {
		case ev := <-watcher.Event:
			if ev == nil {
				return
			}
			s.handleWatchEvent(ev)
		case err := <-watcher.Error:
			if err == nil {
				return
			}
			s.log.Warn().Err(err).Msg("config watcher error")
		case <-ctx.Done():
			return
		}
	}
}

func (s *Store) handleWatchEvent(ev *fsnotify.FileEvent) {
	if filepath.Clean(ev.Name) != filepath.Clean(s.path) {
		return
	}

	if ev.IsAttrib() || ev.IsDelete() || ev.IsRename() {
		return
	}

	if err := s.Reload(); err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("reloading configuration failed")
	}
}
