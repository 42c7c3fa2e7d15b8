package pagination

// Metadata is a serialisable snapshot of a paginator's derived state.
type Metadata struct {
	TotalItems        int    `json:"total_items"`
	PageSize          int    `json:"page_size"`
	CurrentPage       int    `json:"current_page"`
	WindowSize        int    `json:"window_size"`
	PagesCount        int    `json:"pages_count"`
	FirstPage         int    `json:"first_page"`
	LastPage          int    `json:"last_page"`
	Pages             []int  `json:"pages"`
	Window            []Page `json:"window"`
	HasItems          bool   `json:"has_items"`
	IsFirstPageActive bool   `json:"is_first_page_active"`
	IsLastPageActive  bool   `json:"is_last_page_active"`
	HasPrevious       bool   `json:"has_previous"`
	HasNext           bool   `json:"has_next"`
	ShowingFrom       int    `json:"showing_from"`
	ShowingTo         int    `json:"showing_to"`
	Offset            int    `json:"offset"`
	Limit             int    `json:"limit"`
}

// Snapshot evaluates every derived query once.
func (p *Paginator) Snapshot() Metadata {
	return Metadata{
		TotalItems:        p.totalItems,
		PageSize:          p.pageSize,
		CurrentPage:       p.currentPage,
		WindowSize:        p.windowSize,
		PagesCount:        p.PagesCount(),
		FirstPage:         p.FirstPage(),
		LastPage:          p.LastPage(),
		Pages:             p.Pages(),
		Window:            p.Window(),
		HasItems:          p.HasItems(),
		IsFirstPageActive: p.IsFirstPageActive(),
		IsLastPageActive:  p.IsLastPageActive(),
		HasPrevious:       p.IsGoToPreviousPageEnabled(),
		HasNext:           p.IsGoToNextPageEnabled(),
		ShowingFrom:       p.ShowingFrom(),
		ShowingTo:         p.ShowingTo(),
		Offset:            p.Offset(),
		Limit:             p.Limit(),
	}
}
