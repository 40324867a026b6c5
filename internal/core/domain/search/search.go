/*
Package search defines the values produced by filtering a history view.
*/
package search

// Options controls how a query is matched against commands.
type Options struct {
	Regex         bool
	CaseSensitive bool
}

/*
Match is a command that satisfied the current query, together with the
character (rune) offsets that matched. Indices is sorted ascending and is
empty for an empty query.
*/
type Match struct {
	Command string
	Indices []int
}

// Highlighted reports whether the rune at position i is part of the match.
func (m Match) Highlighted(i int) bool {
	lo, hi := 0, len(m.Indices)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case m.Indices[mid] == i:
			return true
		case m.Indices[mid] < i:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return false
}
