package pagination

// Page is one entry of a rendered page window.
type Page struct {
	Index     int  `json:"index"`
	IsCurrent bool `json:"is_current"`
}

// NewPage returns a Page or ErrNegativePageIndex.
func NewPage(index int, isCurrent bool) (Page, error) {
	if index < 0 {
		return Page{}, ErrNegativePageIndex
	}
	return Page{Index: index, IsCurrent: isCurrent}, nil
}

// Pages returns the page numbers to display around the current page.
//
// The window holds min(WindowSize, PagesCount) pages. It stays pinned to the
// first or last pages near the edges and slides one page per step in between.
// An even window sits one page further right of the current page than left.
func (p *Paginator) Pages() []int {
	pagesCount := p.PagesCount()
	current := p.currentPage
	window := min(p.windowSize, pagesCount)

	var left, right int
	if window%2 == 0 {
		left = window/2 - 1
		right = left + 1
	} else {
		// windowSize, not window: when the window is truncated by pagesCount
		// this keeps the current page out of the sliding branch.
		left = p.windowSize / 2
		right = left
	}

	var start, end int
	switch {
	case current <= left:
		start, end = 1, window
	case current > pagesCount-right:
		start, end = pagesCount-window+1, pagesCount
	default:
		start, end = current-left, current+right
	}
	return inclusive(start, end)
}

// inclusive returns start..end. It counts steps instead of comparing
// against end+1, which would overflow when end is math.MaxInt.
func inclusive(start, end int) []int {
	n := end - start + 1
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, start+i)
	}
	return out
}

// Window renders Pages as Page values, marking the current one.
func (p *Paginator) Window() []Page {
	pages := p.Pages()
	out := make([]Page, 0, len(pages))
	for _, idx := range pages {
		out = append(out, Page{Index: idx, IsCurrent: idx == p.currentPage})
	}
	return out
}

// Range returns start, start+step, ... up to but excluding end.
// A non-positive step or an empty interval gives an empty slice.
func Range(start, end, step int) []int {
	if step <= 0 || start >= end {
		return []int{}
	}
	out := make([]int, 0, (end-start+step-1)/step)
	for i := start; i < end; i += step {
		out = append(out, i)
	}
	return out
}
