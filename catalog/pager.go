package catalog

// Pager tracks the 1-based page cursor. Page always stays in [1, TotalPages].
type Pager struct {
	Page       int
	TotalPages int
}

func NewPager() Pager {
	return Pager{Page: 1, TotalPages: 1}
}

func (p Pager) HasPrev() bool {
	return p.Page > 1
}

func (p Pager) HasNext() bool {
	return p.Page < p.TotalPages
}

func (p Pager) Prev() Pager {
	return p.goTo(p.Page - 1)
}

func (p Pager) Next() Pager {
	return p.goTo(p.Page + 1)
}

// WithTotal records the page count reported by the server, pulling the
// cursor back if the catalog shrank under it.
func (p Pager) WithTotal(total int) Pager {
	if total < 1 {
		total = 1
	}
	p.TotalPages = total
	return p.goTo(p.Page)
}

func (p Pager) goTo(page int) Pager {
	total := p.TotalPages
	if total < 1 {
		total = 1
	}
	p.Page = max(1, min(total, page))
	return p
}
