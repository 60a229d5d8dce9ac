package records

// SpeciesFileName is the species catalog file name.
const SpeciesFileName = "pokemon.json"

// Family references the evolution family a species belongs to.
type Family struct {
	ID string `json:"id"`
}

// Species is one entry of the master catalog. Unknown catalog fields are ignored.
type Species struct {
	SpeciesID   string  `json:"speciesId"`
	SpeciesName string  `json:"speciesName"`
	Family      *Family `json:"family,omitempty"`
}

// FamilyID returns the species' family identifier, falling back to the
// species' own ID when no family is declared.
func (s Species) FamilyID() string {
	if s.Family != nil && s.Family.ID != "" {
		return s.Family.ID
	}
	return s.SpeciesID
}

// RankingEntry is one row of a bracket ranking table.
type RankingEntry struct {
	SpeciesID string  `json:"speciesId"`
	Score     float64 `json:"score"`
	Rank      *int    `json:"rank,omitempty"`
}

// Dataset holds everything Load read from a data directory.
type Dataset struct {
	Species  []Species
	Rankings map[Bracket][]RankingEntry
}

// FileNames lists the five input files in load order.
func FileNames() []string {
	names := []string{SpeciesFileName}
	for _, b := range Brackets() {
		names = append(names, b.FileName())
	}
	return names
}
