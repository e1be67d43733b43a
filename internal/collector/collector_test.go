package collector

import (
	"context"
	"errors"
	"testing"

	"go-autoapply/internal/models"

	"github.com/stretchr/testify/assert"
)

type fakeSource struct {
	name string
	jobs []models.JobPosting
	err  error
}

func (f fakeSource) Name() string { return f.name }

func (f fakeSource) Fetch(ctx context.Context) ([]models.JobPosting, error) {
	return f.jobs, f.err
}

func TestDedupKeepsFirstSeen(t *testing.T) {
	jobs := []models.JobPosting{
		{Title: "First", URL: "https://example.com/1", Source: models.SourceRSS},
		{Title: "Second", URL: "https://example.com/2"},
		{Title: "Duplicate of first", URL: "https://example.com/1", Source: models.SourceAPI},
		{Title: "No URL"},
		{Title: "Second again", URL: "https://example.com/2"},
	}

	unique := Dedup(jobs)

	assert.Len(t, unique, 2)
	assert.Equal(t, "First", unique[0].Title)
	assert.Equal(t, models.SourceRSS, unique[0].Source)
	assert.Equal(t, "Second", unique[1].Title)
}

func TestCollectSurvivesFailingSource(t *testing.T) {
	sources := []Source{
		fakeSource{name: "broken", err: errors.New("connection refused")},
		fakeSource{name: "working", jobs: []models.JobPosting{
			{Title: "Engineer", URL: "https://example.com/1"},
		}},
	}

	jobs := Collect(context.Background(), sources)

	assert.Len(t, jobs, 1)
	assert.Equal(t, "Engineer", jobs[0].Title)
}

func TestCollectMergesAndDedups(t *testing.T) {
	sources := []Source{
		fakeSource{name: "a", jobs: []models.JobPosting{
			{Title: "From A", URL: "https://example.com/1"},
		}},
		fakeSource{name: "b", jobs: []models.JobPosting{
			{Title: "From B", URL: "https://example.com/1"},
			{Title: "Only B", URL: "https://example.com/2"},
		}},
	}

	jobs := Collect(context.Background(), sources)

	assert.Len(t, jobs, 2)
	assert.Equal(t, "From A", jobs[0].Title)
	assert.Equal(t, "Only B", jobs[1].Title)
}
