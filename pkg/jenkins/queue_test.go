package jenkins

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetQueueItem(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/queue/item/42/api/json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 42, "why": "Waiting for next available executor"}`))
	}))
	defer server.Close()

	client, err := NewClient(WithEndpoint(server.URL), WithoutCSRF())
	require.NoError(t, err)

	item, err := client.GetQueueItem(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), item.ID)
	assert.Equal(t, "Waiting for next available executor", item.Why)
}

func TestGetFullQueueItemFollowsLocation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/queue/item/7/api/json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 7, "buildable": true}`))
	}))
	defer server.Close()

	client, err := NewClient(WithEndpoint(server.URL), WithoutCSRF())
	require.NoError(t, err)

	short := &ShortQueueItem{URL: server.URL + "/queue/item/7/"}

	item, err := short.GetFullQueueItem(context.Background(), client)
	require.NoError(t, err)

	assert.Equal(t, int64(7), item.ID)
	assert.True(t, item.Buildable)
}

func TestGetFullQueueItemRejectsOtherLinks(t *testing.T) {
	client, err := NewClient(WithEndpoint("http://localhost:8080"), WithoutCSRF())
	require.NoError(t, err)

	short := &ShortQueueItem{URL: "http://localhost:8080/job/myjob/"}

	_, err = short.GetFullQueueItem(context.Background(), client)

	invalidErr := &InvalidURLError{}
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, ExpectedQueueItem, invalidErr.Expected)
}
