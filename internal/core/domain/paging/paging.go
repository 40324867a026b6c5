package paging

// Direction is the step applied when moving the selection or turning a page.
type Direction int

const (
	Previous Direction = -1
	Next     Direction = 1
)

// Page is the visible window into the filtered list.
// Number is 1-based, Selected is 0-based within the page.
type Page struct {
	Number   int
	Selected int
}

// First is the page every view switch and query change starts from.
var First = Page{Number: 1, Selected: 0}
