// Package records loads the PvPoke input files into typed values.
//
// A data directory holds the species catalog (pokemon.json) and one ranking
// table per league bracket (rankings-500.json through rankings-10000.json).
// Load reads all five; a missing file fails with failure.ErrSourceUnavailable
// and anything that does not decode into the expected shape fails with
// failure.ErrParse. No network access happens here.
package records
