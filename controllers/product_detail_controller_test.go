package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProductDetail(t *testing.T) {
	router := setupTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/oil-filter", r.URL.Path)
		w.Write([]byte(`{"data":{"id":3,"slug":"oil-filter","name":"Oil filter","description":"Genuine part","price":95000,"is_active":true,"category":{"id":1,"name":"Engine"}}}`))
	}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/products/oil-filter", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Product struct {
				Name         string `json:"name"`
				Category     string `json:"category"`
				InStock      bool   `json:"inStock"`
				CanAddToCart bool   `json:"canAddToCart"`
			} `json:"product"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Oil filter", body.Data.Product.Name)
	assert.Equal(t, "Engine", body.Data.Product.Category)
	assert.True(t, body.Data.Product.InStock)
	assert.True(t, body.Data.Product.CanAddToCart)
}

func TestGetProductDetailNotFound(t *testing.T) {
	var cartCalls int
	router := setupTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/carts/add" {
			cartCalls++
		}
		w.WriteHeader(http.StatusNotFound)
	}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/products/no-such-part", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Product not found")
	assert.Zero(t, cartCalls)
}

func TestGetProductDetailUpstreamFailure(t *testing.T) {
	router := setupTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/products/oil-filter", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
