package search

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeES struct {
	mu      sync.Mutex
	indexes map[string]bool
	docs    map[string]string
}

func (f *fakeES) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")
	body, _ := io.ReadAll(r.Body)
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	switch {
	case r.URL.Path == "/":
		io.WriteString(w, `{"version":{"number":"8.19.0"},"tagline":"You Know, for Search"}`)
	case len(parts) == 1 && r.Method == http.MethodHead:
		if !f.indexes[parts[0]] {
			w.WriteHeader(http.StatusNotFound)
		}
	case len(parts) == 1 && r.Method == http.MethodPut:
		f.indexes[parts[0]] = true
		io.WriteString(w, `{"acknowledged":true}`)
	case len(parts) == 3 && parts[1] == "_doc":
		f.docs[parts[0]+"/"+parts[2]] = string(body)
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"result":"created"}`)
	case len(parts) == 2 && parts[1] == "_search":
		io.WriteString(w, `{"hits":{"total":{"value":1},"hits":[{"_id":"m1","_source":{"id":"m1"}}]}}`)
	default:
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":"unexpected `+r.Method+` `+r.URL.Path+`"}`)
	}
}

func newTestClient(t *testing.T) (*Client, *fakeES) {
	fake := &fakeES{indexes: map[string]bool{}, docs: map[string]string{}}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	c, err := NewClient(&Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return c, fake
}

func TestClient_IndexAndSearch(t *testing.T) {
	c, fake := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.CreateIndex(ctx, "stock_movements", `{"mappings":{}}`))
	require.NoError(t, c.CreateIndex(ctx, "stock_movements", `{"mappings":{}}`))
	assert.True(t, fake.indexes["stock_movements"])

	require.NoError(t, c.Index(ctx, "stock_movements", "m1", map[string]string{"id": "m1"}))
	assert.JSONEq(t, `{"id":"m1"}`, fake.docs["stock_movements/m1"])

	res, err := c.Search(ctx, "stock_movements", map[string]interface{}{"query": map[string]interface{}{"match_all": map[string]interface{}{}}})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Hits.Total.Value)
	require.Len(t, res.Hits.Hits, 1)
	assert.Equal(t, "m1", res.Hits.Hits[0].ID)
}

func TestClient_ErrorBody(t *testing.T) {
	c, _ := newTestClient(t)

	err := c.Index(context.Background(), "stock_movements", "", map[string]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "elasticsearch index document")
}
