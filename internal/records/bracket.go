package records

import "fmt"

// Bracket is a competitive league tier identified by its CP cap.
type Bracket int

const (
	Little Bracket = iota
	Great
	Ultra
	Master
)

var bracketCPs = [...]int{500, 1500, 2500, 10000}

var bracketNames = [...]string{"little", "great", "ultra", "master"}

// Brackets returns every bracket in display order (little to master).
func Brackets() []Bracket {
	return []Bracket{Little, Great, Ultra, Master}
}

// CP returns the league's combat power cap.
func (b Bracket) CP() int {
	if b < Little || b > Master {
		return 0
	}
	return bracketCPs[b]
}

func (b Bracket) String() string {
	if b < Little || b > Master {
		return fmt.Sprintf("bracket(%d)", int(b))
	}
	return bracketNames[b]
}

// FileName returns the ranking table file name for the bracket.
func (b Bracket) FileName() string {
	return fmt.Sprintf("rankings-%d.json", b.CP())
}
