package report

// Paginate returns the 1-indexed page slice [(page-1)*pageSize, page*pageSize)
// of entries. Pages past the end and non-positive arguments yield an empty
// slice.
func Paginate(entries []Entry, pageSize, page int) []Entry {
	if pageSize < 1 || page < 1 {
		return []Entry{}
	}
	start := (page - 1) * pageSize
	if start >= len(entries) {
		return []Entry{}
	}
	end := start + pageSize
	if end > len(entries) {
		end = len(entries)
	}
	return entries[start:end]
}

// Paginator tracks the current page over a changing result set. The page
// resets to 1 whenever the page size or the result count changes, so it can
// never point past the end of a newly filtered set.
type Paginator struct {
	PageSize int
	Page     int

	lastCount int
	seen      bool
}

// NewPaginator returns a paginator positioned on page 1.
func NewPaginator(pageSize int) *Paginator {
	return &Paginator{PageSize: pageSize, Page: 1}
}

// SetPageSize changes the page size, resetting to page 1 on any change.
func (p *Paginator) SetPageSize(n int) {
	if n != p.PageSize {
		p.PageSize = n
		p.Page = 1
	}
}

// Next advances to the following page.
func (p *Paginator) Next() { p.Page++ }

// Prev moves back one page, never below 1.
func (p *Paginator) Prev() {
	if p.Page > 1 {
		p.Page--
	}
}

// Slice pages the given (already filtered) entries, first resetting to page 1
// if the result count changed since the last call.
func (p *Paginator) Slice(entries []Entry) []Entry {
	if !p.seen || len(entries) != p.lastCount {
		p.lastCount = len(entries)
		p.seen = true
		p.Page = 1
	}
	return Paginate(entries, p.PageSize, p.Page)
}
