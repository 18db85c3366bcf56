package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Vedantb04/Clothera/internal/domain"
)

// CategoryAll matches every category.
const CategoryAll = "all"

// DefaultPageSize is the storefront's grid size.
const DefaultPageSize = 12

type SortKey string

const (
	SortNameAsc    SortKey = "name"
	SortNameDesc   SortKey = "name-desc"
	SortPriceAsc   SortKey = "price"
	SortPriceDesc  SortKey = "price-desc"
	SortRatingDesc SortKey = "rating"
)

// Query describes one catalog view: filters are conjunctive, the sort is
// a total order, pagination slices the sorted result.
type Query struct {
	Text     string
	Category string
	PriceMin *decimal.Decimal
	PriceMax *decimal.Decimal
	Sort     SortKey
	Page     int
	PageSize int
}

// Page is one slice of the filtered, sorted catalog.
type Page struct {
	Items      []domain.Product
	TotalItems int
	TotalPages int
	Page       int
	PageSize   int
}

// Search filters, sorts and paginates the product collection. A page
// beyond the last one yields an empty page, not an error.
func Search(products []domain.Product, q Query) Page {
	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}
	if q.Page <= 0 {
		q.Page = 1
	}

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if matches(p, q) {
			filtered = append(filtered, p)
		}
	}

	sortProducts(filtered, q.Sort)

	total := len(filtered)
	totalPages := (total + q.PageSize - 1) / q.PageSize

	start := (q.Page - 1) * q.PageSize
	if start > total {
		start = total
	}
	end := start + q.PageSize
	if end > total {
		end = total
	}

	return Page{
		Items:      filtered[start:end],
		TotalItems: total,
		TotalPages: totalPages,
		Page:       q.Page,
		PageSize:   q.PageSize,
	}
}

func matches(p domain.Product, q Query) bool {
	if q.Text != "" {
		text := strings.ToLower(q.Text)
		if !strings.Contains(strings.ToLower(p.Name), text) &&
			!strings.Contains(strings.ToLower(p.Brand), text) {
			return false
		}
	}
	if q.Category != "" && q.Category != CategoryAll && p.Category != q.Category {
		return false
	}
	if q.PriceMin != nil && p.Price.LessThan(*q.PriceMin) {
		return false
	}
	if q.PriceMax != nil && p.Price.GreaterThan(*q.PriceMax) {
		return false
	}
	return true
}

func sortProducts(products []domain.Product, key SortKey) {
	var less func(a, b domain.Product) bool
	switch key {
	case SortNameDesc:
		less = func(a, b domain.Product) bool { return a.Name > b.Name }
	case SortPriceAsc:
		less = func(a, b domain.Product) bool { return a.Price.LessThan(b.Price) }
	case SortPriceDesc:
		less = func(a, b domain.Product) bool { return a.Price.GreaterThan(b.Price) }
	case SortRatingDesc:
		less = func(a, b domain.Product) bool { return a.Rating > b.Rating }
	default:
		// Name ascending is the storefront default.
		less = func(a, b domain.Product) bool { return a.Name < b.Name }
	}
	sort.SliceStable(products, func(i, j int) bool { return less(products[i], products[j]) })
}
