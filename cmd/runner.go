package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"leetdash/internal/catalog"
	"leetdash/internal/repositories"
	"leetdash/internal/services"
	"leetdash/internal/session"
	"leetdash/internal/shared"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	remote     services.Service
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer

	db  *sql.DB
	cat *catalog.Catalog
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	Remote     services.Service
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.Remote == nil {
		opts.Remote = services.NewLeetCodeService(opts.Config.LeetCode.ProxyURL, opts.HTTPClient, opts.Logger)
	}

	return &Runner{
		config:     opts.Config,
		remote:     opts.Remote,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

// SetLogger swaps the Runner's logger, used by the TUI to redirect logging to a file.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

// openDatabase opens (once per process) the preference database from config.
func (r *Runner) openDatabase() (*sql.DB, error) {
	if r.db != nil {
		return r.db, nil
	}

	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return nil, err
	}
	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)
	r.db = db
	return db, nil
}

// loadCatalog loads (once per process) the static problem catalog from config.
func (r *Runner) loadCatalog() (*catalog.Catalog, error) {
	if r.cat != nil {
		return r.cat, nil
	}

	cat, err := catalog.Load(r.config.Catalog.Path)
	if err != nil {
		return nil, err
	}
	r.cat = cat
	r.logger.Debug("catalog loaded", "path", r.config.Catalog.Path, "problems", cat.Len())
	return cat, nil
}

// openSession wires the full session aggregate: catalog, sqlite-backed
// preference store, remote service.
func (r *Runner) openSession() (*session.Session, *catalog.Catalog, error) {
	cat, err := r.loadCatalog()
	if err != nil {
		return nil, nil, err
	}

	db, err := r.openDatabase()
	if err != nil {
		return nil, nil, err
	}

	store, err := repositories.NewPrefRepository(db)
	if err != nil {
		return nil, nil, err
	}

	sess := session.New(session.Opts{
		Store:     store,
		Catalog:   cat,
		Remote:    r.remote,
		Logger:    r.logger,
		SyncLimit: r.config.LeetCode.SyncLimit,
	})
	return sess, cat, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	return r.writePlain(format+"\n", args...)
}
