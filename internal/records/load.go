package records

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"pvrank/internal/failure"
)

const component = "records"

// Load reads the species catalog and all four ranking tables from dir. It stops
// at the first missing or malformed file.
func Load(dir string) (*Dataset, error) {
	var species []Species
	if err := readJSON(dir, SpeciesFileName, &species); err != nil {
		return nil, err
	}
	for i, s := range species {
		if s.SpeciesID == "" {
			return nil, failure.Wrap(failure.ErrParse, component, "validate", fmt.Sprintf("%s: entry %d has no speciesId", SpeciesFileName, i), nil)
		}
	}

	ds := &Dataset{
		Species:  species,
		Rankings: make(map[Bracket][]RankingEntry, len(Brackets())),
	}
	for _, b := range Brackets() {
		var entries []RankingEntry
		if err := readJSON(dir, b.FileName(), &entries); err != nil {
			return nil, err
		}
		for i, e := range entries {
			if e.SpeciesID == "" {
				return nil, failure.Wrap(failure.ErrParse, component, "validate", fmt.Sprintf("%s: entry %d has no speciesId", b.FileName(), i), nil)
			}
			if e.Score < 0 {
				return nil, failure.Wrap(failure.ErrParse, component, "validate", fmt.Sprintf("%s: %s has negative score %v", b.FileName(), e.SpeciesID, e.Score), nil)
			}
		}
		ds.Rankings[b] = entries
	}
	return ds, nil
}

// readJSON decodes a top-level JSON array from dir/name into dst.
func readJSON(dir, name string, dst any) error {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return failure.Wrap(failure.ErrSourceUnavailable, component, "read", path+" is missing (run `pvrank sync`)", err)
		}
		return failure.Wrap(failure.ErrSourceUnavailable, component, "read", path, err)
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return failure.Wrap(failure.ErrParse, component, "decode", path+": expected a JSON array", nil)
	}
	if err := json.Unmarshal(trimmed, dst); err != nil {
		return failure.Wrap(failure.ErrParse, component, "decode", path, err)
	}
	return nil
}
