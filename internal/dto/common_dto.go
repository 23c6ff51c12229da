package dto

type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	TotalItems  int64 `json:"total_items"`
	Limit       int   `json:"limit"`
}

type PageQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// Normalize applies the list defaults used across all paginated endpoints.
func (q *PageQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 10
	}
}

func (q *PageQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

func NewPaginationMeta(q PageQuery, total int64) PaginationMeta {
	pages := int(total) / q.Limit
	if int(total)%q.Limit != 0 {
		pages++
	}
	return PaginationMeta{
		CurrentPage: q.Page,
		TotalPages:  pages,
		TotalItems:  total,
		Limit:       q.Limit,
	}
}
