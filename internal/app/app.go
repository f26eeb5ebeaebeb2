package app

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/txengine/internal/config"
	"github.com/hance08/txengine/internal/constants"
	"github.com/hance08/txengine/internal/importer"
	"github.com/hance08/txengine/internal/ledger"
	"github.com/hance08/txengine/internal/model"
	"github.com/hance08/txengine/internal/store"
	"github.com/hance08/txengine/internal/ui"
	"github.com/hance08/txengine/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

type App struct {
	Config *config.Config
	Logger *pterm.Logger
	Fs     afero.Fs
	Store  store.Repository // nil unless output.sqlite_path is set
}

type Result struct {
	RunID    string
	Accounts []model.AccountSnapshot
	Stats    model.Stats
}

// NewApp initialize logger, input filesystem and the optional archive, then return App entity
func NewApp(cfg *config.Config, migrationFS fs.FS, logOut io.Writer) (*App, func(), error) {
	logger, err := ui.NewLogger(cfg.Log, logOut)
	if err != nil {
		return nil, nil, err
	}

	application := &App{
		Config: cfg,
		Logger: logger,
		Fs:     afero.NewOsFs(),
	}

	cleanup := func() {}

	if cfg.Output.SQLitePath != "" {
		dbStore, err := store.NewStore(cfg.Output.SQLitePath, migrationFS)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		application.Store = dbStore

		cleanup = func() {
			if err := dbStore.Close(); err != nil {
				logger.Error("Error closing DB", logger.Args("error", err.Error()))
			}
		}
	}

	return application, cleanup, nil
}

// Run applies every transaction in inputPath, archives the run when a store is
// configured, and only then writes the final snapshot to out.
func (a *App) Run(ctx context.Context, inputPath string, out io.Writer) (*Result, error) {
	reader := importer.NewCSVReader(a.Fs, a.Logger)

	input, err := reader.Open(inputPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = input.Close()
	}()

	runID := uuid.NewString()
	startedAt := time.Now()
	a.Logger.Info("Processing transactions", a.Logger.Args("run", runID, "input", inputPath))

	feed := make(chan model.Record, a.Config.Feed.Capacity)
	state := ledger.NewState(feed, a.Logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return reader.Stream(gctx, input, feed)
	})
	g.Go(func() error {
		state.Run()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to process %s: %w", inputPath, err)
	}

	result := &Result{
		RunID:    runID,
		Accounts: state.Snapshot(),
		Stats:    state.Stats(),
	}

	if a.Store != nil {
		run := store.Run{
			ID:         runID,
			InputPath:  inputPath,
			StartedAt:  startedAt.Unix(),
			FinishedAt: time.Now().Unix(),
			Processed:  result.Stats.Processed,
			Applied:    result.Stats.Applied,
			Rejected:   result.Stats.Rejected,
		}
		if err := a.Store.ArchiveRun(run, result.Accounts); err != nil {
			return nil, fmt.Errorf("failed to archive run: %w", err)
		}
	}

	if err := a.render(out, result); err != nil {
		return nil, fmt.Errorf("failed to write snapshot: %w", err)
	}

	a.Logger.Info("Finished processing", a.Logger.Args(
		"run", runID,
		"accounts", len(result.Accounts),
		"applied", result.Stats.Applied,
		"rejected", result.Stats.Rejected,
	))

	return result, nil
}

func (a *App) render(out io.Writer, result *Result) error {
	if strings.EqualFold(a.Config.Output.Format, constants.OutputFormatTable) {
		return views.NewSnapshotTableView(out).Render(result.Accounts, result.Stats)
	}
	return views.RenderSnapshotCSV(out, result.Accounts)
}
