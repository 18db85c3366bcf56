package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vedantb04/Clothera/internal/domain"
	"github.com/Vedantb04/Clothera/internal/wishlist"
)

func newWishlistHandler() (*WishlistHandler, *wishlist.Store) {
	store := wishlist.NewStore(nopSnapshots[domain.Product]{}, zerolog.Nop())
	return NewWishlistHandler(store, testFinder()), store
}

func TestToggleWishlist_AddsThenRemoves(t *testing.T) {
	handler, store := newWishlistHandler()

	recorder := httptest.NewRecorder()
	handler.Toggle(recorder, httptest.NewRequest("POST", "/api/v1/wishlist/items", bytes.NewBufferString(`{"product_id":"tee"}`)))

	require.Equal(t, http.StatusOK, recorder.Code)
	var resp ToggleWishlistResponseDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.True(t, resp.InWishlist)
	assert.Len(t, resp.Items, 1)

	recorder = httptest.NewRecorder()
	handler.Toggle(recorder, httptest.NewRequest("POST", "/api/v1/wishlist/items", bytes.NewBufferString(`{"product_id":"tee"}`)))

	require.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.False(t, resp.InWishlist)
	assert.False(t, store.Contains("tee"))
}

func TestToggleWishlist_UnknownProduct(t *testing.T) {
	handler, _ := newWishlistHandler()

	recorder := httptest.NewRecorder()
	handler.Toggle(recorder, httptest.NewRequest("POST", "/api/v1/wishlist/items", bytes.NewBufferString(`{"product_id":"ghost"}`)))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestRemoveAndClearWishlist(t *testing.T) {
	handler, store := newWishlistHandler()
	ctx := httptest.NewRequest("GET", "/", nil).Context()
	store.Add(ctx, testFinder().products["tee"])
	store.Add(ctx, testFinder().products["jacket"])

	request := httptest.NewRequest("DELETE", "/api/v1/wishlist/items/tee", nil)
	recorder := httptest.NewRecorder()
	handler.Remove(recorder, withURLParam(request, "product_id", "tee"))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.False(t, store.Contains("tee"))
	assert.True(t, store.Contains("jacket"))

	recorder = httptest.NewRecorder()
	handler.Clear(recorder, httptest.NewRequest("DELETE", "/api/v1/wishlist", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, store.Products())
}
