package lookup_test

import (
	"reflect"
	"strings"
	"testing"

	"pvrank/internal/artifact"
	"pvrank/internal/lookup"
)

func sampleResult() artifact.Result {
	return artifact.Result{
		FamilyNames: map[string]string{
			"PICHU":    "FAMILY_PIKACHU",
			"PIKACHU":  "FAMILY_PIKACHU",
			"RAICHU":   "FAMILY_PIKACHU",
			"DITTO":    "FAMILY_DITTO",
			"MEDICHAM": "FAMILY_MEDITITE",
		},
		Rankings: map[string]string{
			"FAMILY_PIKACHU":  "___ ___ 40.0 100.0 Raichu\n___ 12.3 ___ ___ Pikachu",
			"FAMILY_MEDITITE": "80.0 95.3 ___ ___ Medicham",
		},
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	r := sampleResult()
	for _, query := range []string{"pikachu", "PIKACHU", " Pikachu "} {
		out := lookup.Lookup(r, query)
		if out.Kind != lookup.Found || out.FamilyID != "FAMILY_PIKACHU" {
			t.Fatalf("Lookup(%q) = %+v", query, out)
		}
		if out.Message() != r.Rankings["FAMILY_PIKACHU"] {
			t.Fatalf("unexpected message %q", out.Message())
		}
	}
}

func TestLookupNameMiss(t *testing.T) {
	out := lookup.Lookup(sampleResult(), "Charmander")
	if out.Kind != lookup.NameMiss || out.FamilyID != "" || out.Status != "name_miss" {
		t.Fatalf("unexpected outcome %+v", out)
	}
	if out.Message() != `Pokemon "Charmander" not found.` {
		t.Fatalf("unexpected message %q", out.Message())
	}
}

func TestLookupFamilyMiss(t *testing.T) {
	out := lookup.Lookup(sampleResult(), "ditto")
	if out.Kind != lookup.FamilyMiss || out.FamilyID != "FAMILY_DITTO" {
		t.Fatalf("unexpected outcome %+v", out)
	}
	if out.Message() != `Family data not found for "ditto".` {
		t.Fatalf("unexpected message %q", out.Message())
	}
}

func TestLookupSuggestsCloseNames(t *testing.T) {
	out := lookup.Lookup(sampleResult(), "pikachoo")
	if out.Kind != lookup.NameMiss {
		t.Fatalf("expected miss, got %+v", out)
	}
	if len(out.Suggestions) == 0 || out.Suggestions[0] != "PIKACHU" {
		t.Fatalf("expected PIKACHU suggestion, got %v", out.Suggestions)
	}
	if !strings.Contains(out.Message(), "Did you mean PIKACHU") {
		t.Fatalf("unexpected message %q", out.Message())
	}
}

func TestSuggest(t *testing.T) {
	names := sampleResult().FamilyNames
	cases := []struct {
		key   string
		limit int
		want  []string
	}{
		{"PICHU", 3, []string{"PICHU", "PIKACHU", "RAICHU"}},
		{"PICHU", 1, []string{"PICHU"}},
		{"RAICU", 3, []string{"RAICHU"}},
		{"MEDI", 3, []string{"MEDICHAM"}},
		{"ZZZZZZZZ", 3, []string{}},
		{"", 3, nil},
		{"PIKACHU", 0, nil},
	}
	for _, tc := range cases {
		got := lookup.Suggest(names, tc.key, tc.limit)
		if len(got) == 0 && len(tc.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("Suggest(%q) = %v, want %v", tc.key, got, tc.want)
		}
	}
}

func TestSuggestOrdersByDistanceThenName(t *testing.T) {
	names := map[string]string{"ABCD": "a", "ABCE": "b", "XBCD": "c", "ABCDEFGH": "d"}
	got := lookup.Suggest(names, "ABCF", 2)
	if !reflect.DeepEqual(got, []string{"ABCD", "ABCE"}) {
		t.Fatalf("unexpected order %v", got)
	}
}
