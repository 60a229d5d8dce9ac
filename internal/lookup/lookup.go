package lookup

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"pvrank/internal/artifact"
	"pvrank/internal/family"
)

const maxSuggestions = 3

// DemoNames are the species the demo command looks up.
var DemoNames = []string{"pikachu", "charmander", "medicham", "azumarill"}

// Kind classifies a lookup outcome.
type Kind int

const (
	Found Kind = iota
	NameMiss
	FamilyMiss
)

func (k Kind) String() string {
	switch k {
	case Found:
		return "found"
	case NameMiss:
		return "name_miss"
	case FamilyMiss:
		return "family_miss"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Outcome is the result of one lookup.
type Outcome struct {
	Query       string   `json:"query"`
	Key         string   `json:"key"`
	Kind        Kind     `json:"-"`
	Status      string   `json:"status"`
	FamilyID    string   `json:"family_id,omitempty"`
	Display     string   `json:"display,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Lookup resolves query against r. Matching is case-insensitive and ignores
// surrounding whitespace.
func Lookup(r artifact.Result, query string) Outcome {
	key := family.NormalizeName(query)
	out := Outcome{Query: query, Key: key}

	familyID, ok := r.FamilyNames[key]
	if !ok || familyID == "" {
		out.Kind = NameMiss
		out.Status = out.Kind.String()
		out.Suggestions = Suggest(r.FamilyNames, key, maxSuggestions)
		return out
	}
	out.FamilyID = familyID

	display, ok := r.Rankings[familyID]
	if !ok || display == "" {
		out.Kind = FamilyMiss
		out.Status = out.Kind.String()
		return out
	}
	out.Kind = Found
	out.Status = out.Kind.String()
	out.Display = display
	return out
}

// Message renders the outcome the way the demo prints it.
func (o Outcome) Message() string {
	switch o.Kind {
	case Found:
		return o.Display
	case FamilyMiss:
		return fmt.Sprintf("Family data not found for %q.", o.Query)
	default:
		msg := fmt.Sprintf("Pokemon %q not found.", o.Query)
		if len(o.Suggestions) > 0 {
			msg += " Did you mean " + strings.Join(o.Suggestions, ", ") + "?"
		}
		return msg
	}
}

// Suggest returns up to limit name-map keys close to key, nearest first.
func Suggest(names map[string]string, key string, limit int) []string {
	if key == "" || limit <= 0 {
		return nil
	}

	type candidate struct {
		name string
		dist int
	}
	maxDist := distanceLimit(len([]rune(key)))
	var candidates []candidate
	for name := range names {
		var dist int
		switch {
		case strings.HasPrefix(name, key) && len(key) >= 3:
			dist = 0
		default:
			dist = levenshtein.ComputeDistance(key, name)
			if dist > maxDist {
				continue
			}
		}
		candidates = append(candidates, candidate{name: name, dist: dist})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dist == candidates[j].dist {
			return candidates[i].name < candidates[j].name
		}
		return candidates[i].dist < candidates[j].dist
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.name
	}
	return out
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
