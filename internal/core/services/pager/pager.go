/*
Package pager splits a filtered list into terminal-sized pages and tracks the
current page and the selection inside it.

The pager never holds the list itself. Every operation takes the current list
length n, so the owner decides which list is paged and when paging resets.
*/
package pager

import (
	"github.com/AntonioJCosta/histpick/internal/core/domain/paging"
	"github.com/AntonioJCosta/histpick/internal/core/ports"
)

// ReservedRows is the number of terminal rows used by the prompt, label and status line.
const ReservedRows = 3

// Pager tracks the current page and selection over a list it does not own.
type Pager struct {
	geometry ports.Geometry
	page     paging.Page
}

// New returns a pager on the first page.
// It panics if geometry is nil.
func New(geometry ports.Geometry) *Pager {
	if geometry == nil {
		panic("geometry cannot be nil")
	}
	return &Pager{geometry: geometry, page: paging.First}
}

// Page returns the current page number and selection.
func (p *Pager) Page() paging.Page {
	return p.page
}

// PageSize is recomputed from the terminal on every call so resizes take
// effect immediately. It is never less than 1.
func (p *Pager) PageSize() int {
	size := p.geometry.Height() - ReservedRows
	if size < 1 {
		return 1
	}
	return size
}

// TotalPages returns the number of pages for n entries; 0 iff n is 0.
func (p *Pager) TotalPages(n int) int {
	if n <= 0 {
		return 0
	}
	size := p.PageSize()
	return (n + size - 1) / size
}

// Bounds returns the [start, end) range of the current page within n entries.
func (p *Pager) Bounds(n int) (int, int) {
	return p.boundsOf(p.page.Number, n)
}

// Reset moves to the first entry of the first page.
func (p *Pager) Reset() {
	p.page = paging.First
}

// ResetSelection moves to the first entry of the current page.
func (p *Pager) ResetSelection() {
	p.page.Selected = 0
}

// Turn moves one page in dir, wrapping around at either end.
func (p *Pager) Turn(n int, dir paging.Direction) {
	total := p.TotalPages(n)
	if total == 0 {
		return
	}
	p.page.Number = mod(p.page.Number-1+int(dir), total) + 1
	p.clampSelection(n)
}

/*
MoveSelection moves the selection one entry in dir. Moving past the last entry
of a page continues on the first entry of the next page; moving before the
first entry continues on the last entry of the previous page.
*/
func (p *Pager) MoveSelection(n int, dir paging.Direction) {
	if p.currentSize(n) == 0 {
		return
	}
	selected := p.page.Selected + int(dir)
	switch {
	case selected >= p.currentSize(n):
		p.Turn(n, paging.Next)
		p.page.Selected = 0
	case selected < 0:
		p.Turn(n, paging.Previous)
		p.page.Selected = p.currentSize(n) - 1
	default:
		p.page.Selected = selected
	}
}

// RetainSelection is called before the selected entry is removed from the
// list. When it is the last entry of its page the selection steps back, so it
// stays on an entry that will still exist.
func (p *Pager) RetainSelection(n int) {
	size := p.currentSize(n)
	if size > 0 && p.page.Selected == size-1 {
		p.MoveSelection(n, paging.Previous)
	}
}

// Clamp brings the page number and the selection back into range for n
// entries, e.g. after the list shrank or the terminal was resized.
func (p *Pager) Clamp(n int) {
	total := p.TotalPages(n)
	switch {
	case total == 0:
		p.page = paging.First
		return
	case p.page.Number > total:
		p.page.Number = total
	case p.page.Number < 1:
		p.page.Number = 1
	}
	p.clampSelection(n)
}

func (p *Pager) clampSelection(n int) {
	size := p.currentSize(n)
	switch {
	case size == 0:
		p.page.Selected = 0
	case p.page.Selected >= size:
		p.page.Selected = size - 1
	case p.page.Selected < 0:
		p.page.Selected = 0
	}
}

func (p *Pager) currentSize(n int) int {
	start, end := p.Bounds(n)
	return end - start
}

func (p *Pager) boundsOf(number, n int) (int, int) {
	size := p.PageSize()
	start := (number - 1) * size
	end := number * size
	if start > n {
		start = n
	}
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if end < start {
		end = start
	}
	return start, end
}

func mod(a, b int) int {
	return ((a % b) + b) % b
}
