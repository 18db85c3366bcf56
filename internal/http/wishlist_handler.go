package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Vedantb04/Clothera/internal/wishlist"
)

type WishlistHandler struct {
	wishlist *wishlist.Store
	catalog  ProductFinder
}

func NewWishlistHandler(wishlist *wishlist.Store, catalog ProductFinder) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist, catalog: catalog}
}

type ToggleWishlistRequestDTO struct {
	ProductID string `json:"product_id"`
}

type WishlistResponseDTO struct {
	Items []ProductDTO `json:"items"`
}

type ToggleWishlistResponseDTO struct {
	InWishlist bool         `json:"in_wishlist"`
	Items      []ProductDTO `json:"items"`
}

func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, WishlistResponseDTO{Items: h.items()})
}

// Toggle adds the product when absent and removes it when present, the
// heart-icon behavior.
func (h *WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var req ToggleWishlistRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	product, err := h.catalog.Get(r.Context(), req.ProductID)
	if err != nil {
		handleCatalogError(w, err)
		return
	}

	in := h.wishlist.Toggle(r.Context(), product)
	respondJSON(w, http.StatusOK, ToggleWishlistResponseDTO{InWishlist: in, Items: h.items()})
}

func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	h.wishlist.Remove(r.Context(), productID)
	respondJSON(w, http.StatusOK, WishlistResponseDTO{Items: h.items()})
}

func (h *WishlistHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.wishlist.Clear(r.Context())
	respondJSON(w, http.StatusOK, WishlistResponseDTO{Items: h.items()})
}

func (h *WishlistHandler) items() []ProductDTO {
	products := h.wishlist.Products()
	items := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		items = append(items, productDTO(p))
	}
	return items
}
