// Package pagination computes page counts, page windows and item ranges
// for a collection the caller owns. It never touches the items themselves.
package pagination

// Paginator tracks the current page over totalItems split into pages of pageSize.
//
// Every mutator clamps its input instead of failing, so after construction
// the paginator is always usable. A Paginator is not safe for concurrent use.
type Paginator struct {
	totalItems  int
	pageSize    int
	currentPage int
	windowSize  int
}

// New builds a paginator from cfg, filling nil fields with defaults.
// It fails on the first invalid field: total items, then page size, then window size.
// The current page is taken as given; mutators clamp it later.
func New(cfg Config) (*Paginator, error) {
	s := cfg.resolve()
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &Paginator{
		totalItems:  s.TotalItems,
		pageSize:    s.PageSize,
		currentPage: s.CurrentPage,
		windowSize:  s.WindowSize,
	}, nil
}

// TotalItems is the number of items being paged over.
func (p *Paginator) TotalItems() int { return p.totalItems }

// PageSize is the number of items per page.
func (p *Paginator) PageSize() int { return p.pageSize }

// CurrentPage is the active page, 1-based.
func (p *Paginator) CurrentPage() int { return p.currentPage }

// WindowSize is the maximum number of page numbers Pages returns.
func (p *Paginator) WindowSize() int { return p.windowSize }

// FirstPage is always 1.
func (p *Paginator) FirstPage() int { return 1 }

// LastPage equals PagesCount.
func (p *Paginator) LastPage() int { return p.PagesCount() }

// PagesCount is ceil(totalItems / pageSize), never less than 1.
func (p *Paginator) PagesCount() int {
	pages := p.totalItems / p.pageSize
	if p.totalItems%p.pageSize != 0 {
		pages++
	}
	return max(pages, 1)
}

// HasItems reports whether there is at least one item.
func (p *Paginator) HasItems() bool { return p.totalItems > 0 }

// IsFirstPageActive reports whether the current page is the first one.
func (p *Paginator) IsFirstPageActive() bool { return p.currentPage == 1 }

// IsLastPageActive reports whether the current page is the last one.
func (p *Paginator) IsLastPageActive() bool { return p.currentPage == p.PagesCount() }

// IsGoToPreviousPageEnabled reports whether GoToPreviousPage would move.
func (p *Paginator) IsGoToPreviousPageEnabled() bool { return p.currentPage > 1 }

// IsGoToNextPageEnabled reports whether GoToNextPage would move.
func (p *Paginator) IsGoToNextPageEnabled() bool { return p.currentPage < p.PagesCount() }

// ShowingFrom is the 1-based number of the first item on the current page, or 0 without items.
func (p *Paginator) ShowingFrom() int {
	if !p.HasItems() {
		return 0
	}
	return (p.currentPage-1)*p.pageSize + 1
}

// ShowingTo is the 1-based number of the last item on the current page, or 0 without items.
func (p *Paginator) ShowingTo() int {
	if !p.HasItems() {
		return 0
	}
	from := p.ShowingFrom()
	// from+pageSize-1 can overflow near math.MaxInt; totalItems-from cannot.
	return from + min(p.pageSize-1, p.totalItems-from)
}

// Offset is the 0-based index of the first item on the current page.
func (p *Paginator) Offset() int {
	return max((p.currentPage-1)*p.pageSize, 0)
}

// Limit is the number of items a caller should read for the current page.
func (p *Paginator) Limit() int { return p.pageSize }

// SetCurrentPage stores page clamped into [1, PagesCount].
func (p *Paginator) SetCurrentPage(page int) {
	upper := min(page, p.PagesCount())
	p.currentPage = max(upper, 1)
}

// GoToFirstPage moves to page 1.
func (p *Paginator) GoToFirstPage() { p.SetCurrentPage(1) }

// GoToLastPage moves to the last page.
func (p *Paginator) GoToLastPage() { p.SetCurrentPage(p.PagesCount()) }

// GoToNextPage is a no-op on the last page.
func (p *Paginator) GoToNextPage() {
	if p.currentPage >= p.PagesCount() {
		// currentPage+1 would wrap at math.MaxInt
		p.SetCurrentPage(p.currentPage)
		return
	}
	p.SetCurrentPage(p.currentPage + 1)
}

// GoToPreviousPage is a no-op on the first page.
func (p *Paginator) GoToPreviousPage() {
	if p.currentPage <= 1 {
		p.SetCurrentPage(p.currentPage)
		return
	}
	p.SetCurrentPage(p.currentPage - 1)
}

// SetPageSize stores max(size, 1) and re-clamps the current page,
// so shrinking the page count never leaves the current page past the end.
func (p *Paginator) SetPageSize(size int) {
	p.pageSize = max(size, 1)
	p.SetCurrentPage(p.currentPage)
}

// SetPageWindowSize stores max(size, 1).
func (p *Paginator) SetPageWindowSize(size int) {
	p.windowSize = max(size, 1)
}

// SetTotalItems stores max(n, 0) and re-clamps the current page.
func (p *Paginator) SetTotalItems(n int) {
	p.totalItems = max(n, 0)
	p.SetCurrentPage(p.currentPage)
}
