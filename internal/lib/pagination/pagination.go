// Package pagination считает offset-пагинацию для списочных запросов.
package pagination

import (
	"math"
	"net/http"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	// MaxPage верхняя граница номера страницы. (MaxPage-1)*MaxLimit помещается в int32,
	// поэтому OFFSET не переполняется ни в Go, ни в PostgreSQL.
	MaxPage = math.MaxInt32 / MaxLimit
)

// Params номер страницы и размер страницы.
type Params struct {
	Page  int
	Limit int
}

// Meta блок пагинации в ответе.
type Meta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// New нормализует page и limit: значения меньше 1 заменяются значениями по умолчанию,
// limit ограничен MaxLimit, page ограничен MaxPage.
func New(page, limit int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{Page: page, Limit: limit}
}

// FromRequest читает page и limit из query-параметров.
func FromRequest(r *http.Request) Params {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	return New(page, limit)
}

// Offset смещение для LIMIT/OFFSET.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Clamp сдвигает страницу на последнюю существующую.
func (p Params) Clamp(total int) Params {
	last := TotalPages(total, p.Limit)
	if last < 1 {
		last = 1
	}
	if p.Page > last {
		p.Page = last
	}
	return p
}

// TotalPages = ceil(total / limit).
func TotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// NewMeta собирает блок пагинации.
func NewMeta(p Params, total int) Meta {
	return Meta{
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: TotalPages(total, p.Limit),
	}
}
