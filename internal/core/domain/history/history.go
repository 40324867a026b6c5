/*
Package history defines core domain entities related to command history.
*/
package history

import "fmt"

/*
CommandFrequency represents a command and its execution count.
This is a core domain entity.
*/
type CommandFrequency struct {
	Command string
	Count   int
}

/*
View selects which projection of the history is shown.
Ranked and Raw are both derived from the chronological log; Favorites is
persisted on its own.
*/
type View int

const (
	ViewRanked View = iota
	ViewFavorites
	ViewRaw
)

var viewNames = map[View]string{
	ViewRanked:    "ranked",
	ViewFavorites: "favorites",
	ViewRaw:       "raw",
}

func (v View) String() string {
	if name, ok := viewNames[v]; ok {
		return name
	}
	return fmt.Sprintf("view(%d)", int(v))
}

// Next returns the view that follows v in the fixed cycle Ranked, Favorites, Raw.
func (v View) Next() View {
	return (v + 1) % 3
}

// ParseView converts a view name as used in settings and flags into a View.
func ParseView(name string) (View, error) {
	for v, n := range viewNames {
		if n == name {
			return v, nil
		}
	}
	return ViewRanked, fmt.Errorf("unknown view %q (expected ranked, favorites or raw)", name)
}
