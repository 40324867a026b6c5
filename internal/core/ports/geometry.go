package ports

// Geometry reports the live size of the terminal the picker is drawn on.
type Geometry interface {
	Height() int
}
