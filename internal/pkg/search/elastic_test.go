package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCluster struct {
	mu       sync.Mutex
	requests []string
	bodies   map[string]string
}

func (f *fakeCluster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)
	f.bodies[r.Method+" "+r.URL.Path] = string(body)
	f.mu.Unlock()

	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/":
		io.WriteString(w, `{"version":{"number":"8.19.0","build_flavor":"default"},"tagline":"You Know, for Search"}`)
	case r.Method == http.MethodPut && r.URL.Path == "/exists":
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":{"type":"resource_already_exists_exception"}}`)
	case r.Method == http.MethodPut && r.URL.Path == "/broken/_doc/v1":
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"error":"boom"}`)
	case r.URL.Path == "/product_variants/_search":
		io.WriteString(w, `{"hits":{"total":{"value":2},"hits":[{"_id":"v2","_source":{"sku":"B"}},{"_id":"v1","_source":{"sku":"A"}}]}}`)
	default:
		io.WriteString(w, `{"acknowledged":true}`)
	}
}

func newClient(t *testing.T) (*Client, *fakeCluster) {
	t.Helper()
	cluster := &fakeCluster{bodies: map[string]string{}}
	srv := httptest.NewServer(cluster)
	t.Cleanup(srv.Close)

	c, err := NewClient(&Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return c, cluster
}

func TestCreateIndex(t *testing.T) {
	c, cluster := newClient(t)
	ctx := context.Background()

	require.NoError(t, c.CreateIndex(ctx, "product_variants", `{"mappings":{}}`))
	assert.Equal(t, `{"mappings":{}}`, cluster.bodies["PUT /product_variants"])

	require.NoError(t, c.CreateIndex(ctx, "exists", `{}`), "an existing index is not an error")
}

func TestIndex(t *testing.T) {
	c, cluster := newClient(t)
	ctx := context.Background()

	require.NoError(t, c.Index(ctx, "product_variants", "v1", map[string]string{"sku": "A"}))
	assert.JSONEq(t, `{"sku":"A"}`, cluster.bodies["PUT /product_variants/_doc/v1"])

	err := c.Index(ctx, "broken", "v1", map[string]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestSearch(t *testing.T) {
	c, cluster := newClient(t)

	res, err := c.Search(context.Background(), "product_variants", map[string]any{
		"query": map[string]any{"match_all": map[string]any{}},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Hits.Total.Value)
	require.Len(t, res.Hits.Hits, 2)
	assert.Equal(t, "v2", res.Hits.Hits[0].ID)
	assert.JSONEq(t, `{"sku":"B"}`, string(res.Hits.Hits[0].Source))

	var sent map[string]any
	require.NoError(t, json.Unmarshal([]byte(cluster.bodies["POST /product_variants/_search"]), &sent))
	assert.Contains(t, sent, "query")
}
