package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/Vedantb04/Clothera/internal/cart"
	"github.com/Vedantb04/Clothera/internal/coupon"
	"github.com/Vedantb04/Clothera/internal/domain"
	"github.com/Vedantb04/Clothera/internal/pricing"
)

// ProductFinder resolves a product id against the catalog before it can
// enter the cart.
type ProductFinder interface {
	Get(ctx context.Context, id string) (domain.Product, error)
}

type CartHandler struct {
	cart    *cart.Store
	catalog ProductFinder
}

func NewCartHandler(cart *cart.Store, catalog ProductFinder) *CartHandler {
	return &CartHandler{cart: cart, catalog: catalog}
}

type AddItemRequestDTO struct {
	ProductID string `json:"product_id"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

type ApplyCouponRequestDTO struct {
	Code string `json:"code"`
}

type CartLineDTO struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Brand     string `json:"brand"`
	Image     string `json:"image"`
	Price     string `json:"price"`
	Discount  int    `json:"discount"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type CouponDTO struct {
	Code   string `json:"code"`
	Type   string `json:"type"`
	Amount string `json:"amount"`
}

// CartResponseDTO is the full outbound read surface: the line sequence
// plus every derived pricing value, recomputed for each response. Money
// is rendered with two decimals here and nowhere earlier.
type CartResponseDTO struct {
	Items                []CartLineDTO `json:"items"`
	Coupon               *CouponDTO    `json:"coupon,omitempty"`
	Subtotal             string        `json:"subtotal"`
	ProductDiscountTotal string        `json:"product_discount_total"`
	CouponDiscount       string        `json:"coupon_discount"`
	ShippingCost         string        `json:"shipping_cost"`
	GrandTotal           string        `json:"grand_total"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
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

	h.cart.Add(r.Context(), product)
	respondJSON(w, http.StatusCreated, h.cartResponse())
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	// A quantity of zero or less removes the line; there is no upper
	// bound, stock limits are not this service's concern.
	h.cart.SetQuantity(r.Context(), productID, req.Quantity)
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	h.cart.Remove(r.Context(), productID)
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear(r.Context())
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var req ApplyCouponRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Code == "" {
		respondError(w, http.StatusBadRequest, "invalid_code", "code is required")
		return
	}

	c, err := coupon.Resolve(req.Code)
	if errors.Is(err, coupon.ErrUnknownCode) {
		// Rejected before the cart ever sees it.
		respondError(w, http.StatusUnprocessableEntity, "unknown_coupon", "coupon code is not valid")
		return
	}

	h.cart.ApplyCoupon(c)
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) RemoveCoupon(w http.ResponseWriter, r *http.Request) {
	h.cart.RemoveCoupon()
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) cartResponse() CartResponseDTO {
	return buildCartResponse(h.cart.Lines(), h.cart.Coupon(), h.cart.Summary())
}

func buildCartResponse(lines []domain.CartLine, activeCoupon *domain.Coupon, summary pricing.Summary) CartResponseDTO {
	items := make([]CartLineDTO, 0, len(lines))
	for _, l := range lines {
		items = append(items, CartLineDTO{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Brand:     l.Product.Brand,
			Image:     l.Product.Image,
			Price:     l.Product.Price.StringFixed(2),
			Discount:  l.Product.Discount,
			Quantity:  l.Quantity,
			LineTotal: l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity))).StringFixed(2),
		})
	}

	resp := CartResponseDTO{
		Items:                items,
		Subtotal:             summary.Subtotal.StringFixed(2),
		ProductDiscountTotal: summary.ProductDiscountTotal.StringFixed(2),
		CouponDiscount:       summary.CouponDiscount.StringFixed(2),
		ShippingCost:         summary.ShippingCost.StringFixed(2),
		GrandTotal:           summary.GrandTotal.StringFixed(2),
	}
	if activeCoupon != nil {
		resp.Coupon = &CouponDTO{
			Code:   activeCoupon.Code,
			Type:   string(activeCoupon.Type),
			Amount: activeCoupon.Amount.StringFixed(2),
		}
	}
	return resp
}
