// Package preview serves a built site locally and rebuilds it when its
// sources change.
package preview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/lyleresnick/folio/internal/config"
	"github.com/lyleresnick/folio/internal/logfields"
	"github.com/lyleresnick/folio/internal/metrics"
	"github.com/lyleresnick/folio/internal/publish"
)

// Server builds once, serves the output directory and rebuilds on change.
type Server struct {
	Driver   *publish.Driver
	Addr     string
	Registry *prom.Registry

	watchDirs  []string
	configDir  string
	configName string
}

// New wires a preview server for the config at configPath. The driver gets
// a Prometheus recorder registered on a fresh registry.
func New(configPath, outputDir, addr string) (*Server, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if outputDir != "" {
		cfg.Output.Directory = outputDir
	}
	reg := prom.NewRegistry()
	return &Server{
		Driver: &publish.Driver{
			ConfigPath: configPath,
			OutputDir:  cfg.OutputDir(),
			Recorder:   metrics.NewPrometheusRecorder(reg),
		},
		Addr:       addr,
		Registry:   reg,
		watchDirs:  []string{cfg.ArticlesDir(), cfg.ResourcesDir(), cfg.AssetsDir()},
		configDir:  cfg.Root,
		configName: filepath.Base(configPath),
	}, nil
}

// Handler serves the site with /metrics mounted alongside.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.HTTPHandler(s.Registry))
	mux.Handle("/", http.FileServer(http.Dir(s.Driver.OutputDir)))
	return mux
}

// Run builds the site, then serves it until ctx is done. A failed initial
// build is returned; failed rebuilds are logged and the last good output
// keeps being served.
func (s *Server) Run(ctx context.Context) error {
	if _, err := s.Driver.Run(ctx); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer func() { _ = watcher.Close() }()
	for _, dir := range s.watchDirs {
		if _, err := os.Stat(dir); err == nil {
			if err := addDirsRecursive(watcher, dir); err != nil {
				return err
			}
		}
	}
	if err := watcher.Add(s.configDir); err != nil {
		slog.Warn("Watch add failed", logfields.Path(s.configDir), logfields.Error(err))
	}

	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.Addr, err)
	}
	srv := &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 10 * time.Second}
	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.Serve(ln) }()
	slog.Info("Preview server listening", slog.String("url", "http://"+ln.Addr().String()), logfields.Output(s.Driver.OutputDir))

	rebuild, trigger := newDebouncer(DebounceInterval)
	for {
		select {
		case <-ctx.Done():
			slog.Info("Shutting down preview server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		case err := <-serveErr:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			s.handleEvent(watcher, ev, trigger)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(err))
		case <-rebuild:
			slog.Info("Change detected; rebuilding site")
			if _, err := s.Driver.Run(ctx); err != nil {
				slog.Warn("Rebuild failed", logfields.Error(err))
			}
		}
	}
}

func (s *Server) handleEvent(w *fsnotify.Watcher, ev fsnotify.Event, trigger func()) {
	if shouldIgnoreEvent(ev.Name) {
		return
	}
	// Only the config and env files matter in the project root.
	if filepath.Dir(ev.Name) == s.configDir {
		base := filepath.Base(ev.Name)
		if base != s.configName && base != ".env" && base != ".env.local" {
			return
		}
	}
	if ev.Op&fsnotify.Create == fsnotify.Create {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			_ = addDirsRecursive(w, ev.Name)
		}
	}
	slog.Debug("File change detected", logfields.Path(ev.Name), slog.String("op", ev.Op.String()))
	trigger()
}
