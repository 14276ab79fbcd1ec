// Package paging implements the page/per_page arithmetic shared by the
// restaurant listing and the filtered order listing.
package paging

const MaxPerPage = 100

// Params is a validated page request. Page is 1-based.
type Params struct {
	Page    int
	PerPage int
}

// New applies defaults to zero values.
func New(page, perPage, defaultPerPage int) Params {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return Params{Page: page, PerPage: perPage}
}

func (p Params) Offset() uint64 { return uint64(p.Page-1) * uint64(p.PerPage) }

func (p Params) Limit() uint64 { return uint64(p.PerPage) }

// LastPage is ceil(total/perPage); 0 when there is nothing to page.
func LastPage(total int64, perPage int) int64 {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	pp := int64(perPage)
	return (total + pp - 1) / pp
}

// Meta is the pagination block of the restaurant listing.
// swagger:model Pagination
type Meta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int64 `json:"last_page"`
	// 1-based index of the first returned row; omitted for an empty page
	From *int64 `json:"from,omitempty"`
	// 1-based index of the last returned row; omitted for an empty page
	To *int64 `json:"to,omitempty"`
}

// NewMeta describes a page holding `returned` rows out of `total`.
func NewMeta(p Params, total int64, returned int) Meta {
	m := Meta{
		CurrentPage: p.Page,
		PerPage:     p.PerPage,
		Total:       total,
		LastPage:    LastPage(total, p.PerPage),
	}
	if returned > 0 {
		from := int64(p.Offset()) + 1
		to := from + int64(returned) - 1
		m.From, m.To = &from, &to
	}
	return m
}
