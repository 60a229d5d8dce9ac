package artifact

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"pvrank/internal/failure"
	"pvrank/internal/fileutil"
)

const component = "artifact"

// Result is the on-disk shape consumed by the automation tool.
type Result struct {
	FamilyNames map[string]string `json:"familyNames"`
	Rankings    map[string]string `json:"rankings"`
}

// Encode renders r as indented JSON. Map keys are emitted in sorted order and
// HTML characters are left unescaped.
func Encode(r Result) ([]byte, error) {
	if r.FamilyNames == nil {
		r.FamilyNames = map[string]string{}
	}
	if r.Rankings == nil {
		r.Rankings = map[string]string{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes r and atomically replaces the file at path.
func Write(path string, r Result) error {
	data, err := Encode(r)
	if err != nil {
		return failure.Wrap(failure.ErrPersist, component, "encode", "", err)
	}
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return failure.Wrap(failure.ErrPersist, component, "write", path, err)
	}
	return nil
}

// Read loads a previously written artifact.
func Read(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{}, failure.Wrap(failure.ErrSourceUnavailable, component, "read", path+" does not exist (run `pvrank prepare`)", err)
		}
		return Result{}, failure.Wrap(failure.ErrSourceUnavailable, component, "read", path, err)
	}
	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return Result{}, failure.Wrap(failure.ErrParse, component, "decode", path, err)
	}
	if r.FamilyNames == nil || r.Rankings == nil {
		return Result{}, failure.Wrap(failure.ErrParse, component, "decode", fmt.Sprintf("%s: missing familyNames or rankings", path), nil)
	}
	return r, nil
}
