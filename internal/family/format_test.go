package family_test

import (
	"testing"

	"pvrank/internal/family"
)

func TestFormatScore(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0, "___"},
		{12.34, "12.3"},
		{100, "100.0"},
		{0.04, "0.0"},
		{99.96, "100.0"},
		{55.5, "55.5"},
		{12.25, "12.3"},
		{0.25, "0.3"},
		{80.25, "80.3"},
		{0.75, "0.8"},
		{2.5, "2.5"},
		{0.15, "0.1"},
		{80.35, "80.3"},
	}
	for _, tc := range cases {
		if got := family.FormatScore(tc.score); got != tc.want {
			t.Fatalf("FormatScore(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestFormatLine(t *testing.T) {
	m := family.Member{Name: "Mr. Mime (Galarian)", Scores: [4]float64{0, 88.88, 0, 7}}
	if got := family.FormatLine(m); got != "___ 88.9 ___ 7.0 Mr. Mime (Galarian)" {
		t.Fatalf("unexpected line %q", got)
	}
}

func TestNormalizeName(t *testing.T) {
	for _, input := range []string{"pikachu", "PIKACHU", " Pikachu ", "\tPiKaChU\n"} {
		if got := family.NormalizeName(input); got != "PIKACHU" {
			t.Fatalf("NormalizeName(%q) = %q", input, got)
		}
	}
	if got := family.NormalizeName("Flabébé"); got != "FLABÉBÉ" {
		t.Fatalf("expected accented upper-casing, got %q", got)
	}
}
