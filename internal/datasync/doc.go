// Package datasync downloads the five PvPoke input files into the data
// directory.
//
// Files that already exist locally are skipped; there is no freshness check
// beyond existence unless the caller forces a refresh. The first failed
// download stops the sync with failure.ErrSourceUnavailable, leaving files
// fetched earlier in place. Each download lands via a temp file so an
// interrupted transfer never looks like a complete file.
package datasync
