package response

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int64 `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
	HasMore    bool  `json:"has_more"`
	From       int   `json:"from"`
	To         int   `json:"to"`
}

// Paginate clamps page and pageSize, then returns the metadata plus the
// half-open slice bounds [from, to) for the requested window.
func Paginate(page, pageSize, total int) (*Pagination, int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	from := (page - 1) * pageSize
	if from > total {
		from = total
	}
	to := from + pageSize
	if to > total {
		to = total
	}

	var totalPages int64
	if total > 0 {
		totalPages = int64((total + pageSize - 1) / pageSize)
	}
	return &Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: int64(total),
		HasMore:    to < total,
		From:       from,
		To:         to,
	}, from, to
}
