// Package lookup answers "show me the rankings for this species" against a
// prepared artifact: name to family ID, then family ID to display text.
//
// A miss at either hop is a normal Outcome, never an error. Name misses carry
// close spellings from the name map so the CLI can offer a "did you mean".
package lookup
