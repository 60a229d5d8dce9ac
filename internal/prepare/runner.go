package prepare

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"pvrank/internal/artifact"
	"pvrank/internal/config"
	"pvrank/internal/failure"
	"pvrank/internal/family"
	"pvrank/internal/fileutil"
	"pvrank/internal/history"
	"pvrank/internal/logging"
	"pvrank/internal/records"
)

const lockRetryDelay = 100 * time.Millisecond

// Outcome describes a successful prepare run.
type Outcome struct {
	RunID  string
	Path   string
	Digest string
	Stats  family.Stats
	Result artifact.Result
}

// Runner executes prepare runs for one configuration.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger
	now    func() time.Time
}

// New constructs a Runner. A nil logger discards output.
func New(cfg *config.Config, logger *slog.Logger) *Runner {
	return &Runner{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "prepare"),
		now:    time.Now,
	}
}

// Prepare builds and persists the lookup tables and returns both maps.
func (r *Runner) Prepare(ctx context.Context) (artifact.Result, error) {
	outcome, err := r.Run(ctx)
	if err != nil {
		return artifact.Result{}, err
	}
	return outcome.Result, nil
}

// Run is Prepare with run metadata.
func (r *Runner) Run(ctx context.Context) (*Outcome, error) {
	run := &history.Run{
		ID:           history.NewRunID(),
		StartedAt:    r.now(),
		ArtifactPath: r.cfg.Paths.OutputPath,
	}
	logger := r.logger.With(logging.String(logging.FieldRunID, run.ID))

	outcome, err := r.execute(ctx, logger, run)
	run.FinishedAt = r.now()
	if err != nil {
		run.Status = history.StatusFailed
		run.Error = err.Error()
		logging.ErrorWithContext(logger, "prepare failed", "prepare_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, hintFor(err)),
		)
	} else {
		run.Status = history.StatusSucceeded
		logger.Info("prepare complete",
			logging.Int("species", outcome.Stats.Species),
			logging.Int("names", outcome.Stats.Names),
			logging.Int("families", outcome.Stats.Families),
			logging.String(logging.FieldPath, outcome.Path),
			logging.Duration("elapsed", run.Duration()),
		)
	}
	r.record(ctx, logger, run)
	return outcome, err
}

func (r *Runner) execute(ctx context.Context, logger *slog.Logger, run *history.Run) (*Outcome, error) {
	unlock, err := r.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	logger.Debug("loading records", logging.String("data_dir", r.cfg.Paths.DataDir))
	ds, err := records.Load(r.cfg.Paths.DataDir)
	if err != nil {
		return nil, err
	}

	built := family.Build(ds)
	run.SpeciesCount = built.Stats.Species
	run.NameCount = built.Stats.Names
	run.FamilyCount = built.Stats.Families
	attrs := []logging.Attr{
		logging.Int("species", built.Stats.Species),
		logging.Int("qualifying", built.Stats.Qualifying),
		logging.Int("families", built.Stats.Families),
	}
	if largest, ok := built.Largest(); ok {
		attrs = append(attrs,
			logging.String("largest_family", largest.FamilyID),
			logging.Int("largest_family_size", len(largest.Members)),
		)
	}
	logger.Debug("built lookup tables", logging.Args(attrs...)...)

	result := artifact.Result{FamilyNames: built.FamilyNames, Rankings: built.Rankings}
	path := r.cfg.Paths.OutputPath
	if err := artifact.Write(path, result); err != nil {
		return nil, err
	}

	digest, err := fileutil.Digest(path)
	if err != nil {
		return nil, failure.Wrap(failure.ErrPersist, "prepare", "digest", path, err)
	}
	run.Digest = digest

	return &Outcome{
		RunID:  run.ID,
		Path:   path,
		Digest: digest,
		Stats:  built.Stats,
		Result: result,
	}, nil
}

// lock blocks until the artifact lock is held or ctx ends.
func (r *Runner) lock(ctx context.Context) (func(), error) {
	lockPath := r.cfg.LockPath()
	if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
		return nil, failure.Wrap(failure.ErrPersist, "prepare", "lock", lockPath, err)
	}
	fl := flock.New(lockPath)
	locked, err := fl.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, failure.Wrap(failure.ErrPersist, "prepare", "lock", lockPath, err)
	}
	if !locked {
		return nil, failure.Wrap(failure.ErrPersist, "prepare", "lock", fmt.Sprintf("%s is held by another process", lockPath), nil)
	}
	return func() {
		if err := fl.Unlock(); err != nil {
			r.logger.Debug("release artifact lock", logging.Error(err))
		}
	}, nil
}

func (r *Runner) record(ctx context.Context, logger *slog.Logger, run *history.Run) {
	if !r.cfg.History.Enabled {
		return
	}
	store, err := history.Open(ctx, r.cfg.HistoryPath())
	if err == nil {
		err = store.Record(ctx, run)
		_ = store.Close()
	}
	if err != nil {
		logging.WarnWithContext(logger, "run history not recorded", "history_record_failed",
			logging.Error(err),
			logging.String(logging.FieldPath, r.cfg.HistoryPath()),
			logging.String(logging.FieldErrorHint, "delete the history database if its schema is outdated"),
			logging.String(logging.FieldImpact, "this run is missing from `pvrank history`"),
		)
	}
}

func hintFor(err error) string {
	switch failure.ExitCode(err) {
	case failure.ExitSourceUnavailable:
		return "run `pvrank sync` to download the input files"
	case failure.ExitParse:
		return "delete the malformed file and run `pvrank sync` again"
	default:
		return "check logs for details"
	}
}
