package response_models

import "github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/utils"

type PageMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func NewPageMeta(page, limit int, total int64) PageMeta {
	return PageMeta{Page: page, Limit: limit, Total: total, TotalPages: utils.TotalPages(total, limit)}
}

type Paged[T any] struct {
	Items      []T      `json:"items"`
	Pagination PageMeta `json:"pagination"`
}

func NewPaged[T any](items []T, page, limit int, total int64) *Paged[T] {
	if items == nil {
		items = []T{}
	}
	return &Paged[T]{Items: items, Pagination: NewPageMeta(page, limit, total)}
}

// PickerItem feeds select widgets in the portal.
type PickerItem struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Detail string `json:"detail,omitempty"`
}
