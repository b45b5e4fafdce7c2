package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProductsTranslatesFilters(t *testing.T) {
	var mu sync.Mutex
	var listingQueries []url.Values

	router := setupTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products":
			mu.Lock()
			listingQueries = append(listingQueries, r.URL.Query())
			mu.Unlock()
			w.Write([]byte(`{"data":[{"id":1,"slug":"gasket","name":"Gasket","price":120000,"is_active":true}]}`))
		case "/categories":
			w.Write([]byte(`{"data":[{"id":1,"name":"Engine"},{"id":2,"name":"Brakes"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/products?categories=Engine&priceMin=0&priceMax=500000", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	// Filter changes dispatch fetches concurrently; the settled one must
	// carry the requested filter selection.
	mu.Lock()
	queries := listingQueries
	mu.Unlock()
	var matched bool
	for _, query := range queries {
		if query.Get("categories") == "Engine" &&
			query.Get("priceMin") == "0" &&
			query.Get("priceMax") == "500000" &&
			!query.Has("search") {
			matched = true
		}
	}
	assert.True(t, matched, "no upstream request carried the requested filters, saw: %v", queries)

	var body struct {
		Data struct {
			Products []ProductCard `json:"products"`
			Count    int           `json:"count"`
			AvailableFilters struct {
				Categories []string `json:"categories"`
			} `json:"availableFilters"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data.Products, 1)
	assert.Equal(t, "gasket", body.Data.Products[0].Slug)
	assert.Equal(t, 1, body.Data.Count)
	assert.Equal(t, []string{"Engine", "Brakes"}, body.Data.AvailableFilters.Categories)
}

func TestGetProductsEmptyDataReplacesList(t *testing.T) {
	router := setupTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products":
			w.Write([]byte(`{}`)) // no data array at all
		case "/categories":
			w.Write([]byte(`{"data":[]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Products []ProductCard `json:"products"`
			Count    int           `json:"count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Data.Products)
	assert.Zero(t, body.Data.Count)
}

func TestGetProductsUpstreamFailure(t *testing.T) {
	router := setupTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to load products")
}
