// Package app is the kernel: the single process-wide composition root that
// owns the component registry and the framework-default HTTP surface.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/hexkit/hexkit/framework/component"
	"github.com/hexkit/hexkit/framework/config"
	"github.com/hexkit/hexkit/framework/logging"
	"github.com/hexkit/hexkit/framework/routing"
)

// Options configure the composition pass. Supplied at bootstrap, never
// mutated at runtime.
type Options struct {
	// Namespaces are the package paths the scan covers. Must be non-empty.
	Namespaces []string

	// Pattern is the active naming rule set. Defaults to
	// component.DefaultPattern() when nil.
	Pattern *component.NamePattern

	// Catalog is the registration table to scan. Defaults to the
	// process-wide component.Default() catalog.
	Catalog *component.Catalog

	// EnvFiles are extra .env files for config.Load.
	EnvFiles []string
}

// Application is the composition root. It is created once at bootstrap,
// runs exactly one scan-and-register pass, and lives for the process
// lifetime. After Boot succeeds the registry it owns is immutable.
type Application struct {
	cfg      *config.Config
	log      *zap.Logger
	opts     Options
	state    component.State
	registry *component.Registry
	router   *routing.Router
	args     []string
}

// New creates the application: loads configuration, builds the process
// logger and the default router. Discovery does not run until Boot.
func New(opts Options) *Application {
	cfg := config.Load(opts.EnvFiles...)

	logger, err := logging.New(cfg)
	if err != nil {
		// Config-level defect before any logger exists; nothing to do but
		// report on stderr and refuse to start.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if opts.Pattern == nil {
		opts.Pattern = component.DefaultPattern()
	}
	if opts.Catalog == nil {
		opts.Catalog = component.Default()
	}

	return &Application{
		cfg:    cfg,
		log:    logger,
		opts:   opts,
		state:  component.Uninitialized,
		router: routing.New(),
	}
}

// ── Lifecycle ────────────────────────────────────────────────────────────────

// Boot runs the scan-and-register pass. It is the only state transition:
// Uninitialized → Scanning → Ready, or → Failed, in which case the error
// describes the wiring defect and nothing is retained. Calling Boot again
// after success is a no-op; the registry is never re-created.
func (a *Application) Boot() error {
	switch a.state {
	case component.Ready:
		return nil
	case component.Scanning:
		return errors.New("app: Boot called re-entrantly during scan")
	case component.Failed:
		// Failed is terminal: the process should have refused to start.
		return errors.New("app: Boot after failed scan")
	}

	a.state = component.Scanning
	a.log.Info("scanning for components",
		zap.Strings("namespaces", a.opts.Namespaces),
		zap.String("pattern", a.opts.Pattern.String()),
	)

	registry, err := component.Scan(a.opts.Catalog, a.opts.Namespaces, a.opts.Pattern)
	if err != nil {
		a.state = component.Failed
		return fmt.Errorf("app: component scan failed: %w", err)
	}

	a.registry = registry
	a.state = component.Ready
	for _, d := range registry.Descriptors() {
		a.log.Info("component registered",
			zap.String("component", d.FQN()),
			zap.String("classification", string(d.Classification())),
			zap.Int("capabilities", len(d.Capabilities())),
		)
	}
	a.log.Info("composition root ready", zap.Int("components", registry.Len()))
	a.mountKernelRoutes()
	return nil
}

// Run boots the application (if needed) and serves the framework-default
// routes until the process is externally terminated. A failed boot aborts
// the process with a diagnostic: the application never starts partially
// wired. args is the process argument vector, carried through opaquely.
func (a *Application) Run(args []string) {
	a.args = args
	if err := a.Boot(); err != nil {
		a.log.Fatal("application failed to start", zap.Error(err))
	}

	addr := ":" + a.cfg.Server.Port
	srv := &http.Server{Addr: addr, Handler: a.router}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		a.log.Info("kernel listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Fatal("kernel server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	a.log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.log.Warn("kernel shutdown", zap.Error(err))
	}
	_ = a.log.Sync()
}

// ── Accessors ────────────────────────────────────────────────────────────────

// Registry returns the component registry. Nil until Boot succeeds.
func (a *Application) Registry() *component.Registry { return a.registry }

// State returns the composition lifecycle state.
func (a *Application) State() component.State { return a.state }

// Router returns the framework-default router, where driving adapters
// register their routes before Run.
func (a *Application) Router() *routing.Router { return a.router }

// Config returns the process configuration.
func (a *Application) Config() *config.Config { return a.cfg }

// Log returns the process logger.
func (a *Application) Log() *zap.Logger { return a.log }

// Args returns the argument vector handed to Run.
func (a *Application) Args() []string { return a.args }

// ── Kernel routes ────────────────────────────────────────────────────────────

// mountKernelRoutes registers the framework-default routes. There is no
// business routing in the archetype; this is the entire default surface.
func (a *Application) mountKernelRoutes() {
	a.router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":     a.state.String(),
			"app":        a.cfg.App.Name,
			"components": a.registry.Len(),
		})
	})
}
