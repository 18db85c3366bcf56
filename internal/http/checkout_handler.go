package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Vedantb04/Clothera/internal/cart"
)

// CheckoutHandler is the demo checkout: no payment integration exists in
// this storefront. Placing an order returns a receipt built from the
// final pricing summary and empties the cart, nothing more.
type CheckoutHandler struct {
	cart *cart.Store
	log  zerolog.Logger
}

func NewCheckoutHandler(cart *cart.Store, log zerolog.Logger) *CheckoutHandler {
	return &CheckoutHandler{cart: cart, log: log.With().Str("component", "checkout").Logger()}
}

type ReceiptDTO struct {
	OrderID  string          `json:"order_id"`
	Status   string          `json:"status"`
	PlacedAt time.Time       `json:"placed_at"`
	Cart     CartResponseDTO `json:"cart"`
}

func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	lines := h.cart.Lines()
	if len(lines) == 0 {
		respondError(w, http.StatusBadRequest, "empty_cart", "cannot check out an empty cart")
		return
	}

	receipt := ReceiptDTO{
		OrderID:  uuid.NewString(),
		Status:   "placed",
		PlacedAt: time.Now().UTC(),
		Cart:     buildCartResponse(lines, h.cart.Coupon(), h.cart.Summary()),
	}

	h.cart.Clear(r.Context())
	h.cart.RemoveCoupon()

	h.log.Info().
		Str("order_id", receipt.OrderID).
		Str("request_id", getRequestID(r.Context())).
		Str("grand_total", receipt.Cart.GrandTotal).
		Msg("demo order placed")

	respondJSON(w, http.StatusCreated, receipt)
}
