package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listingServer answers /products with a single product named after the
// search keyword. A keyword of "slow" is delayed, "boom" fails.
func listingServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		keyword := r.URL.Query().Get("search")
		switch keyword {
		case "slow":
			time.Sleep(300 * time.Millisecond)
		case "boom":
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		name := keyword
		if name == "" {
			name = "unfiltered"
		}
		fmt.Fprintf(w, `{"data":[{"id":1,"slug":"p","name":%q,"price":1000,"is_active":true}]}`, name)
	}))
}

func waitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestListingSessionInitialFetch(t *testing.T) {
	server := listingServer(t)
	defer server.Close()

	session := NewListingSession(NewClient(server.URL))
	snap := session.Wait(waitCtx(t))

	require.NoError(t, snap.Err)
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "unfiltered", snap.Products[0].Name)
	assert.False(t, snap.Loading)
}

func TestListingSessionRefetchOnFilterChange(t *testing.T) {
	server := listingServer(t)
	defer server.Close()

	session := NewListingSession(NewClient(server.URL))
	session.Wait(waitCtx(t))

	session.SetKeyword("sprocket")
	snap := session.Wait(waitCtx(t))

	require.NoError(t, snap.Err)
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "sprocket", snap.Products[0].Name)
	assert.Equal(t, "sprocket", snap.Filter.Keyword)
}

func TestListingSessionDiscardsStaleResponse(t *testing.T) {
	server := listingServer(t)
	defer server.Close()

	session := NewListingSession(NewClient(server.URL))
	session.Wait(waitCtx(t))

	// The slow fetch is superseded before it completes; its response must
	// not overwrite the newer one.
	session.SetKeyword("slow")
	session.SetKeyword("fast")

	snap := session.Wait(waitCtx(t))
	require.NoError(t, snap.Err)
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "fast", snap.Products[0].Name)

	// Let the slow response arrive and check nothing changed.
	time.Sleep(400 * time.Millisecond)
	snap = session.Snapshot()
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "fast", snap.Products[0].Name)
}

func TestListingSessionKeepsListOnFetchFailure(t *testing.T) {
	server := listingServer(t)
	defer server.Close()

	session := NewListingSession(NewClient(server.URL))
	session.SetKeyword("sprocket")
	session.Wait(waitCtx(t))

	session.SetKeyword("boom")
	snap := session.Wait(waitCtx(t))

	require.Error(t, snap.Err)
	// Previous list retained, not cleared.
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "sprocket", snap.Products[0].Name)
}

func TestListingSessionRetriesAfterFailure(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"data":[{"id":1,"slug":"p","name":"gasket","price":1000,"is_active":true}]}`)
	}))
	defer server.Close()

	session := NewListingSession(NewClient(server.URL))
	snap := session.Wait(waitCtx(t))
	require.Error(t, snap.Err)

	// Re-running the same selection after a failure must fetch again, not
	// replay the stale error.
	session.SetKeyword("")
	snap = session.Wait(waitCtx(t))

	require.NoError(t, snap.Err)
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "gasket", snap.Products[0].Name)
	mu.Lock()
	assert.Equal(t, 2, calls)
	mu.Unlock()
}

func TestListingSessionIgnoresNoopChange(t *testing.T) {
	server := listingServer(t)
	defer server.Close()

	session := NewListingSession(NewClient(server.URL))
	session.Wait(waitCtx(t))

	before := session.Snapshot()
	session.SetKeyword("") // already empty
	session.SetPriceRange(before.Filter.PriceRange[0], before.Filter.PriceRange[1])

	snap := session.Snapshot()
	assert.False(t, snap.Loading)
}

func TestRegistryReusesAndExpiresSessions(t *testing.T) {
	server := listingServer(t)
	defer server.Close()

	registry := NewRegistry(NewClient(server.URL), 50*time.Millisecond)

	first := registry.Get("sid-a")
	assert.Same(t, first, registry.Get("sid-a"))
	assert.Equal(t, 1, registry.Len())

	time.Sleep(80 * time.Millisecond)
	registry.Get("sid-b") // access sweeps the expired session
	assert.NotSame(t, first, registry.Get("sid-a"))
}
