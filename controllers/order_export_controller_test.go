package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/TuanAnh19122003/motoparts-storefront/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportOrderHistory(t *testing.T) {
	router := setupTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders/user/7/details", r.URL.Path)
		w.Write([]byte(invoiceOrdersPayload))
	}))
	cookies := registerTestLogin(t, router, models.User{ID: 7, Email: "khach@example.com"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/user/orders/export", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "orders_7.xlsx")
	// xlsx files are zip archives.
	assert.True(t, strings.HasPrefix(w.Body.String(), "PK"), "response body should be an xlsx archive")
}

func TestExportOrderHistoryUpstreamFailure(t *testing.T) {
	router := setupTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	cookies := registerTestLogin(t, router, models.User{ID: 7})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/user/orders/export", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to fetch order history")
}

func TestExportOrderHistoryWithoutSession(t *testing.T) {
	var upstreamCalls int32
	router := setupTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&upstreamCalls, 1)
	}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/user/orders/export", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"redirect":"/v1/login"`)
	assert.Zero(t, atomic.LoadInt32(&upstreamCalls))
}
