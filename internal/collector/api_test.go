package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-autoapply/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apiFixture = `[
  {"legal": "API terms of use blurb", "last_updated": 1700000000},
  {
    "position": "Python Engineer",
    "company": "Acme",
    "url": "https://example.com/jobs/1",
    "location": "Remote",
    "tags": ["python", "backend"],
    "description": "Build things",
    "date": "2026-01-27T00:00:00+00:00"
  },
  {
    "position": "",
    "company": "Ghost Co",
    "url": "https://example.com/jobs/2"
  }
]`

func TestAPISourceFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(apiFixture))
	}))
	defer srv.Close()

	source := NewAPISource("Test", srv.URL)
	jobs, err := source.Fetch(context.Background())

	require.NoError(t, err)
	//the metadata element and the title-less entry are skipped
	require.Len(t, jobs, 1)

	assert.Equal(t, "Python Engineer", jobs[0].Title)
	assert.Equal(t, "Acme", jobs[0].Company)
	assert.Equal(t, "https://example.com/jobs/1", jobs[0].URL)
	assert.Equal(t, []string{"python", "backend"}, jobs[0].Tags)
	assert.Equal(t, models.SourceAPI, jobs[0].Source)
}

func TestAPISourceFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	source := NewAPISource("Test", srv.URL)
	_, err := source.Fetch(context.Background())

	assert.Error(t, err)
}

func TestAPISourceFetchBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	source := NewAPISource("Test", srv.URL)
	_, err := source.Fetch(context.Background())

	assert.Error(t, err)
}
