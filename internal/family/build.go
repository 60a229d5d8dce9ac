package family

import (
	"strings"

	"pvrank/internal/records"
)

// Member is a catalog species joined with its bracket scores, indexed by
// records.Bracket.
type Member struct {
	SpeciesID string
	Name      string
	FamilyID  string
	Scores    [4]float64
}

// Qualifies reports whether any bracket score is strictly positive.
func (m Member) Qualifies() bool {
	for _, s := range m.Scores {
		if s > 0 {
			return true
		}
	}
	return false
}

// Group is the ordered list of qualifying members of one family, in catalog order.
type Group struct {
	FamilyID string
	Members  []Member
}

// Display renders the group's text block: one line per member, latest catalog
// entry first.
func (g Group) Display() string {
	lines := make([]string, len(g.Members))
	for i, m := range g.Members {
		lines[len(g.Members)-1-i] = FormatLine(m)
	}
	return strings.Join(lines, "\n")
}

// Stats summarizes a Build.
type Stats struct {
	Species    int
	Names      int
	Qualifying int
	Families   int
}

// Result holds the two output maps plus the ordered groups they were built from.
type Result struct {
	FamilyNames map[string]string
	Rankings    map[string]string
	Groups      []Group
	Stats       Stats
}

// Largest returns the group with the most ranked members. Ties go to the
// family seen first.
func (r Result) Largest() (Group, bool) {
	if len(r.Groups) == 0 {
		return Group{}, false
	}
	best := r.Groups[0]
	for _, g := range r.Groups[1:] {
		if len(g.Members) > len(best.Members) {
			best = g
		}
	}
	return best, true
}

// ScoreIndex maps species ID to score for one bracket. When a species appears
// more than once the last entry wins.
func ScoreIndex(entries []records.RankingEntry) map[string]float64 {
	index := make(map[string]float64, len(entries))
	for _, e := range entries {
		index[e.SpeciesID] = e.Score
	}
	return index
}

// Join pairs every catalog species with its scores, preserving catalog order.
// Species absent from a bracket score 0 there.
func Join(ds *records.Dataset) []Member {
	brackets := records.Brackets()
	indexes := make([]map[string]float64, len(brackets))
	for i, b := range brackets {
		indexes[i] = ScoreIndex(ds.Rankings[b])
	}

	members := make([]Member, 0, len(ds.Species))
	for _, s := range ds.Species {
		m := Member{
			SpeciesID: s.SpeciesID,
			Name:      s.SpeciesName,
			FamilyID:  s.FamilyID(),
		}
		for i := range brackets {
			m.Scores[i] = indexes[i][s.SpeciesID]
		}
		members = append(members, m)
	}
	return members
}

// Build produces the name map and family display map for ds.
func Build(ds *records.Dataset) Result {
	members := Join(ds)

	names := make(map[string]string, len(members))
	groupIndex := make(map[string]int)
	var groups []Group
	qualifying := 0

	for _, m := range members {
		names[NormalizeName(m.Name)] = m.FamilyID

		if !m.Qualifies() {
			continue
		}
		qualifying++
		idx, ok := groupIndex[m.FamilyID]
		if !ok {
			idx = len(groups)
			groupIndex[m.FamilyID] = idx
			groups = append(groups, Group{FamilyID: m.FamilyID})
		}
		groups[idx].Members = append(groups[idx].Members, m)
	}

	rankings := make(map[string]string, len(groups))
	for _, g := range groups {
		rankings[g.FamilyID] = g.Display()
	}

	return Result{
		FamilyNames: names,
		Rankings:    rankings,
		Groups:      groups,
		Stats: Stats{
			Species:    len(members),
			Names:      len(names),
			Qualifying: qualifying,
			Families:   len(groups),
		},
	}
}
