package internal

// Pagination is the metadata envelope returned alongside every list response.
type Pagination struct {
	Page    int   `json:"page"`
	Pages   int   `json:"pages"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// NewPagination builds the envelope from a 1-based page, the page size and the
// total row count. Pages is 0 when there are no rows.
func NewPagination(page, perPage int, total int64) Pagination {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	pages := int((total + int64(perPage) - 1) / int64(perPage))

	return Pagination{
		Page:    page,
		Pages:   pages,
		PerPage: perPage,
		Total:   total,
		HasNext: page < pages,
		HasPrev: page > 1 && total > 0,
	}
}

// NormalizePageParams clamps raw query values to sane bounds.
func NormalizePageParams(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}
