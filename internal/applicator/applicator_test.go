package applicator

import (
	"testing"

	"go-autoapply/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocatorSelection(t *testing.T) {
	assert.Equal(t, "name", NewLocator("name", nil).Name())
	assert.Equal(t, "placeholder", NewLocator("placeholder", nil).Name())
	assert.Equal(t, "css", NewLocator("css", map[string]string{"email": "#email"}).Name())
	//unknown strategies fall back to name matching
	assert.Equal(t, "name", NewLocator("xpath", nil).Name())
	assert.Equal(t, "name", NewLocator("", nil).Name())
}

func TestCSSLocatorUnknownField(t *testing.T) {
	locator := CSSLocator{Selectors: map[string]string{"email": "#email"}}

	_, err := locator.Locate(nil, "phone")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "phone")
}

func TestSummarize(t *testing.T) {
	results := []Result{
		{Job: models.JobPosting{URL: "a"}, Outcome: OutcomeSubmitted},
		{Job: models.JobPosting{URL: "b"}, Outcome: OutcomeSkippedUnreachable},
		{Job: models.JobPosting{URL: "c"}, Outcome: OutcomeSubmitted},
		{Job: models.JobPosting{URL: "d"}, Outcome: OutcomeFailedSubmit},
	}

	counts := Summarize(results)

	assert.Equal(t, 2, counts[OutcomeSubmitted])
	assert.Equal(t, 1, counts[OutcomeSkippedUnreachable])
	assert.Equal(t, 1, counts[OutcomeFailedSubmit])
	assert.Equal(t, 0, counts[OutcomeFailedFieldNotFound])
}
