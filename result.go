package paginator

import "github.com/samber/lo"

// Result is the outcome of a single Paginate call: one page of rows in query
// order plus the navigation metadata derived for the strategy. The number of
// rows never exceeds the configured limit.
type Result[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

// Meta holds navigation metadata. The page-number and offset strategies fill
// the page fields and leave NextCursor empty; the cursor strategy fills only
// NextCursor (cursor pagination does not assume a finite page index and never
// reports a total).
type Meta struct {
	Total       int64   `json:"total,omitempty"`
	LastPage    int     `json:"lastPage,omitempty"`
	CurrentPage int     `json:"currentPage,omitempty"`
	PerPage     int     `json:"perPage,omitempty"`
	Prev        *int    `json:"prev,omitempty"`
	Next        *int    `json:"next,omitempty"`
	NextCursor  *string `json:"nextCursor,omitempty"`
}

// pageMeta derives the page-indexed metadata shared by the page-number and
// offset strategies. Prev and Next are nil exactly at the first and last
// page. A page past the end keeps Prev pointing at the requested page minus
// one, matching what the caller asked for rather than what exists.
func pageMeta(total int64, page, limit int) Meta {
	lastPage := int((total + int64(limit) - 1) / int64(limit))

	meta := Meta{
		Total:       total,
		LastPage:    lastPage,
		CurrentPage: page,
		PerPage:     limit,
	}
	if page > 1 {
		meta.Prev = lo.ToPtr(page - 1)
	}
	if page < lastPage {
		meta.Next = lo.ToPtr(page + 1)
	}

	return meta
}
