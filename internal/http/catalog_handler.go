package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/Vedantb04/Clothera/internal/catalog"
	"github.com/Vedantb04/Clothera/internal/domain"
)

// CatalogSearcher is the query surface of the catalog service.
type CatalogSearcher interface {
	ProductFinder
	Search(ctx context.Context, q catalog.Query) (catalog.Page, error)
}

type CatalogHandler struct {
	catalog CatalogSearcher
}

func NewCatalogHandler(catalog CatalogSearcher) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type ProductDTO struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Brand    string   `json:"brand"`
	Price    string   `json:"price"`
	Discount int      `json:"discount"`
	Rating   int      `json:"rating"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Image    string   `json:"image"`
}

type ProductPageDTO struct {
	Items      []ProductDTO `json:"items"`
	TotalItems int          `json:"total_items"`
	TotalPages int          `json:"total_pages"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_query", err.Error())
		return
	}

	page, err := h.catalog.Search(r.Context(), q)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to query catalog")
		return
	}

	items := make([]ProductDTO, 0, len(page.Items))
	for _, p := range page.Items {
		items = append(items, productDTO(p))
	}
	respondJSON(w, http.StatusOK, ProductPageDTO{
		Items:      items,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
		Page:       page.Page,
		PageSize:   page.PageSize,
	})
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id is required")
		return
	}

	p, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		handleCatalogError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, productDTO(p))
}

func parseQuery(r *http.Request) (catalog.Query, error) {
	values := r.URL.Query()
	q := catalog.Query{
		Text:     values.Get("q"),
		Category: values.Get("category"),
		Sort:     catalog.SortKey(values.Get("sort")),
	}

	if raw := values.Get("price_min"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			return catalog.Query{}, errors.New("price_min must be a number")
		}
		q.PriceMin = &min
	}
	if raw := values.Get("price_max"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			return catalog.Query{}, errors.New("price_max must be a number")
		}
		q.PriceMax = &max
	}
	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return catalog.Query{}, errors.New("page must be an integer")
		}
		q.Page = page
	}
	if raw := values.Get("page_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return catalog.Query{}, errors.New("page_size must be an integer")
		}
		q.PageSize = size
	}

	return q, nil
}

func productDTO(p domain.Product) ProductDTO {
	return ProductDTO{
		ID:       p.ID,
		Name:     p.Name,
		Brand:    p.Brand,
		Price:    p.Price.StringFixed(2),
		Discount: p.Discount,
		Rating:   p.Rating,
		Category: p.Category,
		Tags:     p.Tags,
		Image:    p.Image,
	}
}

func handleCatalogError(w http.ResponseWriter, err error) {
	if errors.Is(err, catalog.ErrNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	respondError(w, http.StatusInternalServerError, "internal_error", "failed to query catalog")
}
