package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"pvrank/internal/config"
	"pvrank/internal/failure"
	"pvrank/internal/history"
	"pvrank/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv("PVRANK_DATA_DIR", "")
	t.Setenv("PVRANK_SOURCE_URL", "")
	cfg := testsupport.NewConfig(t, opts...)
	configPath := filepath.Join(testsupport.BaseDir(cfg), "pvrank.toml")
	writeTestConfig(t, configPath, cfg)
	return &cliTestEnv{cfg: cfg, configPath: configPath}
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{"--log-level", "error"}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q\noutput:\n%s", needle, haystack)
	}
}

func TestPrepareThenLookup(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithDataset(testsupport.SampleFixture()))

	out, _, err := runCLI(t, []string{"prepare"}, env.configPath)
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	requireContains(t, out, "Families:")
	requireContains(t, out, env.cfg.Paths.OutputPath)

	out, _, err = runCLI(t, []string{"lookup", "PiKaChU"}, env.configPath)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	want := "___ ___ 40.0 100.0 Raichu\n___ 12.3 ___ ___ Pikachu\n55.5 ___ ___ ___ Pichu\n"
	if out != want {
		t.Fatalf("lookup output = %q, want %q", out, want)
	}

	out, _, err = runCLI(t, []string{"lookup", "charmander"}, env.configPath)
	if err != nil {
		t.Fatalf("lookup miss should not fail: %v", err)
	}
	requireContains(t, out, `Pokemon "charmander" not found.`)

	out, _, err = runCLI(t, []string{"lookup", "ditto"}, env.configPath)
	if err != nil {
		t.Fatalf("family miss should not fail: %v", err)
	}
	requireContains(t, out, `Family data not found for "ditto".`)
}

func TestLookupPreparesWhenArtifactMissing(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithDataset(testsupport.SampleFixture()))

	out, _, err := runCLI(t, []string{"lookup", "--json", "azumarill"}, env.configPath)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	var outcome struct {
		Status   string `json:"status"`
		FamilyID string `json:"family_id"`
		Display  string `json:"display"`
	}
	if err := json.Unmarshal([]byte(out), &outcome); err != nil {
		t.Fatalf("decode lookup json: %v\n%s", err, out)
	}
	if outcome.Status != "found" || outcome.FamilyID != "azumarill" || outcome.Display != "___ 91.0 70.1 ___ Azumarill" {
		t.Fatalf("unexpected outcome %+v", outcome)
	}
	if _, err := os.Stat(env.cfg.Paths.OutputPath); err != nil {
		t.Fatalf("expected artifact to be written: %v", err)
	}
}

func TestPrepareJSONSummary(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithDataset(testsupport.SampleFixture()))

	out, _, err := runCLI(t, []string{"prepare", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("prepare --json: %v", err)
	}
	var summary prepareSummary
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("decode summary: %v\n%s", err, out)
	}
	if summary.Names != 7 || summary.Families != 3 || summary.Species != 7 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if len(summary.Digest) != 64 {
		t.Fatalf("expected sha256 digest, got %q", summary.Digest)
	}
}

func TestPrepareMissingInputsExitCode(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"prepare"}, env.configPath)
	if err == nil {
		t.Fatal("expected prepare to fail without input files")
	}
	if !errors.Is(err, failure.ErrSourceUnavailable) {
		t.Fatalf("expected source unavailable, got %v", err)
	}
	if code := failure.ExitCode(err); code != failure.ExitSourceUnavailable {
		t.Fatalf("exit code = %d, want %d", code, failure.ExitSourceUnavailable)
	}
	if _, statErr := os.Stat(env.cfg.Paths.OutputPath); !os.IsNotExist(statErr) {
		t.Fatalf("expected no artifact, stat err = %v", statErr)
	}
}

func TestDemoPrintsSampleLookups(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithDataset(testsupport.SampleFixture()))

	out, _, err := runCLI(t, []string{"demo"}, env.configPath)
	if err != nil {
		t.Fatalf("demo: %v", err)
	}
	requireContains(t, out, "== pikachu ==\n___ ___ 40.0 100.0 Raichu")
	requireContains(t, out, `Pokemon "charmander" not found.`)
	requireContains(t, out, "80.0 95.3 ___ ___ Medicham")
	requireContains(t, out, "___ 91.0 70.1 ___ Azumarill")

	out, _, err = runCLI(t, []string{"demo", "medicham"}, env.configPath)
	if err != nil {
		t.Fatalf("demo medicham: %v", err)
	}
	if out != "== medicham ==\n80.0 95.3 ___ ___ Medicham\n" {
		t.Fatalf("unexpected demo output %q", out)
	}
}

func TestFamiliesTable(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithDataset(testsupport.SampleFixture()))

	out, _, err := runCLI(t, []string{"families"}, env.configPath)
	if err != nil {
		t.Fatalf("families: %v", err)
	}
	requireContains(t, out, "FAMILY_PIKACHU")
	requireContains(t, out, "FAMILY_MEDITITE")
	requireContains(t, out, "azumarill")

	out, _, err = runCLI(t, []string{"families", "--limit", "1"}, env.configPath)
	if err != nil {
		t.Fatalf("families --limit: %v", err)
	}
	requireContains(t, out, "FAMILY_MEDITITE")
	requireContains(t, out, "Showing 1 of 3 families")
	if strings.Contains(out, "FAMILY_PIKACHU") {
		t.Fatalf("limit not applied:\n%s", out)
	}
}

func TestHistoryListsRuns(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithDataset(testsupport.SampleFixture()), testsupport.WithHistory())

	out, _, err := runCLI(t, []string{"history"}, env.configPath)
	if err != nil {
		t.Fatalf("history (empty): %v", err)
	}
	requireContains(t, out, "No prepare runs recorded")
	requireContains(t, out, "History database: "+env.cfg.HistoryPath())

	if _, _, err := runCLI(t, []string{"prepare"}, env.configPath); err != nil {
		t.Fatalf("prepare: %v", err)
	}

	out, _, err = runCLI(t, []string{"history", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("history --json: %v", err)
	}
	var runs []history.Run
	if err := json.Unmarshal([]byte(out), &runs); err != nil {
		t.Fatalf("decode runs: %v\n%s", err, out)
	}
	if len(runs) != 1 || runs[0].Status != history.StatusSucceeded || runs[0].FamilyCount != 3 {
		t.Fatalf("unexpected runs %+v", runs)
	}

	out, _, err = runCLI(t, []string{"history"}, env.configPath)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, runs[0].ID[:8])
	requireContains(t, out, "Last successful run")
}

func TestHistoryDisabled(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"history"}, env.configPath)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "Run history is disabled")
}

func TestSyncDownloadsThenSkips(t *testing.T) {
	src := t.TempDir()
	testsupport.WriteDataset(t, src, testsupport.SampleFixture())
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(src, path.Base(r.URL.Path)))
	}))
	t.Cleanup(srv.Close)

	env := setupCLITestEnv(t, testsupport.WithSourceURL(srv.URL))

	out, _, err := runCLI(t, []string{"sync"}, env.configPath)
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	requireContains(t, out, "5 downloaded, 0 skipped")
	requireContains(t, out, "rankings-1500.json")

	out, _, err = runCLI(t, []string{"sync"}, env.configPath)
	if err != nil {
		t.Fatalf("second sync: %v", err)
	}
	requireContains(t, out, "0 downloaded, 5 skipped")

	out, _, err = runCLI(t, []string{"lookup", "medicham"}, env.configPath)
	if err != nil {
		t.Fatalf("lookup after sync: %v", err)
	}
	requireContains(t, out, "80.0 95.3 ___ ___ Medicham")
}

func TestSyncFailureExitCode(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	env := setupCLITestEnv(t, testsupport.WithSourceURL(srv.URL))

	_, _, err := runCLI(t, []string{"sync"}, env.configPath)
	if err == nil {
		t.Fatal("expected sync to fail")
	}
	if code := failure.ExitCode(err); code != failure.ExitSourceUnavailable {
		t.Fatalf("exit code = %d, want %d (%v)", code, failure.ExitSourceUnavailable, err)
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, env.cfg.Paths.DataDir)

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, _, _, err := config.Load(target); err != nil {
		t.Fatalf("sample config should load: %v", err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected init to refuse overwriting")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestInvalidConfigIsConfigurationError(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	configPath := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(configPath, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, err := runCLI(t, []string{"prepare"}, configPath)
	if !errors.Is(err, failure.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}
