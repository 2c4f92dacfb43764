// Package paginate computes the page-number display sequence for a paginated
// list, collapsing long runs into ellipsis markers.
package paginate

// Ellipsis is the marker page value for a collapsed run.
const Ellipsis = 0

// Marker is either a page number or Ellipsis.
type Marker int

// IsEllipsis reports whether the marker is a collapsed run.
func (m Marker) IsEllipsis() bool { return m == Ellipsis }

// delta is how many pages are shown on each side of the current page.
const delta = 2

// Pages returns the ordered marker sequence for the given position. With a
// single page (or none) there is nothing to render and the result is nil.
func Pages(current, total int) []Marker {
	if total <= 1 {
		return nil
	}

	if total <= 7 {
		pages := make([]Marker, 0, total)
		for i := 1; i <= total; i++ {
			pages = append(pages, Marker(i))
		}
		return pages
	}

	pages := []Marker{1}

	if current > delta+2 {
		pages = append(pages, Ellipsis)
	}

	start := max(2, current-delta)
	end := min(total-1, current+delta)
	for i := start; i <= end; i++ {
		pages = append(pages, Marker(i))
	}

	if current < total-delta-1 {
		pages = append(pages, Ellipsis)
	}

	return append(pages, Marker(total))
}

// HasPrev reports whether the previous-page control is enabled.
func HasPrev(current int) bool { return current > 1 }

// HasNext reports whether the next-page control is enabled.
func HasNext(current, total int) bool { return current < total }
