package family

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Unranked is rendered in place of a zero score.
const Unranked = "___"

// NormalizeName produces the name-map key for a display name: surrounding
// whitespace removed, then Unicode upper-cased. A Caser is not safe for
// concurrent use, so one is built per call.
func NormalizeName(name string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(name))
}

// FormatScore renders a score with one decimal place, or Unranked for zero.
// A value exactly halfway between two tenths rounds away from zero.
func FormatScore(score float64) string {
	if score == 0 {
		return Unranked
	}
	if isTenthTie(score) {
		score = math.Nextafter(score, math.Copysign(math.Inf(1), score))
	}
	return strconv.FormatFloat(score, 'f', 1, 64)
}

// isTenthTie reports whether v lies exactly halfway between two tenths, e.g. 12.25.
// Only multiples of 0.25 can, since 0.05 has no exact binary form.
func isTenthTie(v float64) bool {
	q := v * 4
	return q == math.Trunc(q) && math.Mod(q, 2) != 0
}

// FormatLine renders "<little> <great> <ultra> <master> <name>".
func FormatLine(m Member) string {
	var b strings.Builder
	for _, score := range m.Scores {
		b.WriteString(FormatScore(score))
		b.WriteByte(' ')
	}
	b.WriteString(m.Name)
	return b.String()
}
