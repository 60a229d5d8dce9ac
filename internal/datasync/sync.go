package datasync

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"pvrank/internal/config"
	"pvrank/internal/failure"
	"pvrank/internal/fileutil"
	"pvrank/internal/logging"
	"pvrank/internal/records"
)

const component = "datasync"

// File pairs a remote path under the source base URL with its local name.
type File struct {
	Remote string
	Local  string
}

// Files returns the fixed list of inputs in download order.
func Files() []File {
	files := []File{{Remote: "src/data/gamemaster/pokemon.json", Local: records.SpeciesFileName}}
	for _, b := range records.Brackets() {
		files = append(files, File{
			Remote: "src/data/rankings/all/overall/" + b.FileName(),
			Local:  b.FileName(),
		})
	}
	return files
}

// Result reports what happened to one file.
type Result struct {
	File       File
	Path       string
	Downloaded bool
	Bytes      int64
}

// Report summarizes a sync.
type Report struct {
	Results    []Result
	Downloaded int
	Skipped    int
}

// Options tunes a sync.
type Options struct {
	Force bool
}

// Syncer fetches input files from the configured source.
type Syncer struct {
	baseURL string
	dataDir string
	client  *http.Client
	logger  *slog.Logger
}

// New constructs a Syncer from cfg. A nil client uses one with the configured timeout.
func New(cfg *config.Config, client *http.Client, logger *slog.Logger) *Syncer {
	if client == nil {
		client = &http.Client{Timeout: cfg.SourceTimeout()}
	}
	return &Syncer{
		baseURL: strings.TrimRight(cfg.Source.BaseURL, "/"),
		dataDir: cfg.Paths.DataDir,
		client:  client,
		logger:  logging.NewComponentLogger(logger, component),
	}
}

// Sync fetches every missing file. It returns the partial report alongside
// the error when a download fails.
func (s *Syncer) Sync(ctx context.Context, opts Options) (Report, error) {
	var report Report
	for _, file := range Files() {
		dest := filepath.Join(s.dataDir, file.Local)

		if !opts.Force {
			exists, err := fileutil.Exists(dest)
			if err != nil {
				return report, failure.Wrap(failure.ErrSourceUnavailable, component, "stat", dest, err)
			}
			if exists {
				s.logger.Info("already present", logging.String("file", file.Local))
				report.Results = append(report.Results, Result{File: file, Path: dest})
				report.Skipped++
				continue
			}
		}

		url := s.baseURL + "/" + file.Remote
		started := time.Now()
		written, err := s.download(ctx, url, dest)
		if err != nil {
			logging.ErrorWithContext(s.logger, "download failed", "datasync_download_failed",
				logging.String("url", url),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check network access or source.base_url"),
			)
			return report, err
		}
		s.logger.Info("downloaded",
			logging.String("file", file.Local),
			logging.Int64("bytes", written),
			logging.Duration("elapsed", time.Since(started)),
		)
		report.Results = append(report.Results, Result{File: file, Path: dest, Downloaded: true, Bytes: written})
		report.Downloaded++
	}
	return report, nil
}

func (s *Syncer) download(ctx context.Context, url, dest string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, failure.Wrap(failure.ErrSourceUnavailable, component, "request", url, err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return 0, failure.Wrap(failure.ErrSourceUnavailable, component, "fetch", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, failure.Wrap(failure.ErrSourceUnavailable, component, "fetch", fmt.Sprintf("%s: unexpected status %d", url, resp.StatusCode), nil)
	}

	counter := &countingReader{r: resp.Body}
	if err := fileutil.WriteStreamAtomic(dest, counter, 0o644); err != nil {
		return 0, failure.Wrap(failure.ErrSourceUnavailable, component, "save", dest, err)
	}
	return counter.n, nil
}
