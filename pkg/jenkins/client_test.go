package jenkins

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientRequiresValidEndpoint(t *testing.T) {
	_, err := NewClient(WithEndpoint("not a url"))
	require.Error(t, err)

	_, err = NewClient(WithEndpoint("/relative/only"))
	require.Error(t, err)

	client, err := NewClient(WithEndpoint("http://localhost:8080"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", client.Endpoint())
}

func TestNewClientTrimsTrailingSlash(t *testing.T) {
	client, err := NewClient(WithEndpoint("http://localhost:8080/"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", client.Endpoint())
}

func TestGetSendsDepthByDefault(t *testing.T) {
	var seen *http.Request

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Clone(r.Context())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"mode": "NORMAL"}`))
	}))
	defer server.Close()

	client, err := NewClient(WithEndpoint(server.URL), WithoutCSRF())
	require.NoError(t, err)

	home, err := client.GetHome(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "NORMAL", home.Mode)
	require.NotNil(t, seen)
	assert.Equal(t, "/api/json", seen.URL.Path)
	assert.Equal(t, "1", seen.URL.Query().Get("depth"))
	assert.Empty(t, seen.URL.Query().Get("tree"))
}

func TestGetObjectSendsTreeInsteadOfDepth(t *testing.T) {
	var seen *http.Request

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Clone(r.Context())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"displayName": "my job"}`))
	}))
	defer server.Close()

	client, err := NewClient(WithEndpoint(server.URL), WithoutCSRF())
	require.NoError(t, err)

	var out struct {
		DisplayName string `json:"displayName"`
	}

	parsed, err := client.ParsePath("/job/myjob/")
	require.NoError(t, err)

	err = client.GetObject(
		context.Background(),
		parsed,
		Tree(NewTreeObject("displayName").Build()),
		&out,
	)
	require.NoError(t, err)

	assert.Equal(t, "my job", out.DisplayName)
	require.NotNil(t, seen)
	assert.Equal(t, "/job/myjob/api/json", seen.URL.Path)
	assert.Equal(t, "displayName", seen.URL.Query().Get("tree"))
	assert.Empty(t, seen.URL.Query().Get("depth"))
}

func TestGetUsesBasicAuth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()

		if !ok || username != "user" || password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err := NewClient(
		WithEndpoint(server.URL),
		WithUsername("user"),
		WithPassword("secret"),
		WithoutCSRF(),
	)
	require.NoError(t, err)

	_, err = client.GetHome(context.Background())
	require.NoError(t, err)
}

func TestGetSurfacesStatusErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewClient(WithEndpoint(server.URL), WithoutCSRF())
	require.NoError(t, err)

	_, err = client.GetHome(context.Background())
	require.Error(t, err)

	statusErr := &StatusError{}
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
}

func TestPostFetchesAndAttachesCrumb(t *testing.T) {
	var crumbHeader string

	mux := http.NewServeMux()
	mux.HandleFunc("/crumbIssuer/api/json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"crumb": "abc123", "crumbRequestField": "Jenkins-Crumb"}`))
	})
	mux.HandleFunc("/job/myjob/enable", func(w http.ResponseWriter, r *http.Request) {
		crumbHeader = r.Header.Get("Jenkins-Crumb")
		w.WriteHeader(http.StatusOK)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client, err := NewClient(WithEndpoint(server.URL))
	require.NoError(t, err)

	job := &Job{URL: server.URL + "/job/myjob/"}
	require.NoError(t, job.Enable(context.Background(), client))

	assert.Equal(t, "abc123", crumbHeader)
}

func TestPostSkipsCrumbWhenDisabled(t *testing.T) {
	crumbRequested := false

	mux := http.NewServeMux()
	mux.HandleFunc("/crumbIssuer/api/json", func(w http.ResponseWriter, _ *http.Request) {
		crumbRequested = true
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/job/myjob/disable", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client, err := NewClient(WithEndpoint(server.URL), WithoutCSRF())
	require.NoError(t, err)

	job := &Job{URL: server.URL + "/job/myjob/"}
	require.NoError(t, job.Disable(context.Background(), client))

	assert.False(t, crumbRequested)
}
