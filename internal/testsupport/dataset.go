package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"pvrank/internal/records"
)

// Fixture describes the contents of a data directory.
type Fixture struct {
	Species  []records.Species
	Rankings map[records.Bracket][]records.RankingEntry
}

// Species builds a catalog entry. An empty family leaves the family unset.
func Species(id, name, family string) records.Species {
	s := records.Species{SpeciesID: id, SpeciesName: name}
	if family != "" {
		s.Family = &records.Family{ID: family}
	}
	return s
}

// Entry builds a ranking row.
func Entry(id string, score float64) records.RankingEntry {
	return records.RankingEntry{SpeciesID: id, Score: score}
}

// SampleFixture returns a small catalog covering the interesting cases: a
// three-stage family, a family with an unranked member, a species without a
// family, and a species that is unranked everywhere.
func SampleFixture() Fixture {
	return Fixture{
		Species: []records.Species{
			Species("pichu", "Pichu", "FAMILY_PIKACHU"),
			Species("pikachu", "Pikachu", "FAMILY_PIKACHU"),
			Species("raichu", "Raichu", "FAMILY_PIKACHU"),
			Species("meditite", "Meditite", "FAMILY_MEDITITE"),
			Species("medicham", "Medicham", "FAMILY_MEDITITE"),
			Species("azumarill", "Azumarill", ""),
			Species("ditto", "Ditto", "FAMILY_DITTO"),
		},
		Rankings: map[records.Bracket][]records.RankingEntry{
			records.Little: {Entry("pichu", 55.5), Entry("medicham", 80.04)},
			records.Great:  {Entry("pikachu", 12.34), Entry("medicham", 95.26), Entry("azumarill", 91)},
			records.Ultra:  {Entry("raichu", 40), Entry("azumarill", 70.12)},
			records.Master: {Entry("raichu", 100)},
		},
	}
}

// WriteDataset writes the five input files for fx into dir. Brackets without
// rankings are written as empty arrays.
func WriteDataset(t testing.TB, dir string, fx Fixture) {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	species := fx.Species
	if species == nil {
		species = []records.Species{}
	}
	writeJSON(t, filepath.Join(dir, records.SpeciesFileName), species)
	for _, b := range records.Brackets() {
		entries := fx.Rankings[b]
		if entries == nil {
			entries = []records.RankingEntry{}
		}
		writeJSON(t, filepath.Join(dir, b.FileName()), entries)
	}
}

// WriteRaw writes content verbatim to dir/name.
func WriteRaw(t testing.TB, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func writeJSON(t testing.TB, path string, v any) {
	t.Helper()
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		t.Fatalf("marshal %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
