package notify

import (
	"strings"
	"testing"

	"go-autoapply/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildDigest(t *testing.T) {
	matches := []models.ScoredMatch{
		{Posting: models.JobPosting{Title: "Python Engineer", Company: "Acme", URL: "https://example.com/1"}, Score: 19},
		{Posting: models.JobPosting{Title: "Go Developer", Company: "Beta", URL: "https://example.com/2"}, Score: 9},
	}

	digest := BuildDigest(matches)

	assert.True(t, strings.HasPrefix(digest, "Your Daily Job Suggestions"))
	assert.Contains(t, digest, "• Python Engineer @ Acme")
	assert.Contains(t, digest, "→ https://example.com/1")
	assert.Contains(t, digest, "• Go Developer @ Beta")
	//scores are ranking-only, never shown or persisted
	assert.NotContains(t, digest, "19")
}

func TestBuildDigestEmpty(t *testing.T) {
	digest := BuildDigest(nil)
	assert.Contains(t, digest, "No matches found today")
}
