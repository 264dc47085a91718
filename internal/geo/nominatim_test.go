package geo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"clearview-wipers/internal/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"47.61","lon":"-122.33","display_name":"142 Oak Street, Seattle"}]`))
	}))
	defer srv.Close()

	c := geo.NewClient(srv.URL)
	place, err := c.Search(context.Background(), "142 Oak Street")
	require.NoError(t, err)
	require.NotNil(t, place)
	assert.Equal(t, "47.61", place.Lat)
	assert.Equal(t, "142 Oak Street, Seattle", place.DisplayName)

	// results must stay bounded to the service area
	assert.Contains(t, gotQuery, "bounded=1")
	assert.Contains(t, gotQuery, "viewbox=")
	assert.Contains(t, gotQuery, "limit=1")
}

func TestSearchNoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	place, err := geo.NewClient(srv.URL).Search(context.Background(), "nowhere")
	require.NoError(t, err)
	assert.Nil(t, place)
}

func TestSearchUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := geo.NewClient(srv.URL).Search(context.Background(), "142 Oak Street")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not verify address")
}

func TestSuggest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"lat":"47.61","lon":"-122.33","display_name":"Oak Street"},
			{"lat":"47.62","lon":"-122.34","display_name":"Oak Avenue"}
		]`))
	}))
	defer srv.Close()

	places, err := geo.NewClient(srv.URL).Suggest(context.Background(), "oak")
	require.NoError(t, err)
	assert.Len(t, places, 2)
}

func TestSuggestShortQuery(t *testing.T) {
	// no request should be made below three characters
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected request for short query")
	}))
	defer srv.Close()

	places, err := geo.NewClient(srv.URL).Suggest(context.Background(), "oa")
	require.NoError(t, err)
	assert.Empty(t, places)
}
