package models

type Page struct {
	Number int
	Limit  int
}

func (p Page) Skip() int64 {
	return int64((p.Number - 1) * p.Limit)
}

// TotalPages rounds up, with zero results giving zero pages.
func (p Page) TotalPages(total int64) int {
	if p.Limit <= 0 {
		return 0
	}
	return int((total + int64(p.Limit) - 1) / int64(p.Limit))
}

type PagedResult[T any] struct {
	Items       []T
	Total       int64
	TotalPages  int
	CurrentPage int
}
