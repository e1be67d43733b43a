package notify

import (
	"errors"
	"testing"

	"go-autoapply/internal/models"

	"github.com/stretchr/testify/assert"
)

type fakeChannel struct {
	name  string
	err   error
	calls int
}

func (f *fakeChannel) Name() string { return f.name }

func (f *fakeChannel) Deliver(matches []models.ScoredMatch) error {
	f.calls++
	return f.err
}

func TestFanoutCountsSuccesses(t *testing.T) {
	matches := []models.ScoredMatch{
		{Posting: models.JobPosting{Title: "Engineer", URL: "https://example.com/1"}, Score: 10},
	}

	broken := &fakeChannel{name: "broken", err: errors.New("smtp timeout")}
	working := &fakeChannel{name: "working"}

	delivered := Fanout([]Channel{broken, working}, matches)

	assert.Equal(t, 1, delivered)
	//a failing channel must not stop the others
	assert.Equal(t, 1, broken.calls)
	assert.Equal(t, 1, working.calls)
}

// Zero deliveries tells the caller the jobs never reached anyone, so they
// must not be marked as seen.
func TestFanoutAllFailed(t *testing.T) {
	broken := &fakeChannel{name: "broken", err: errors.New("connection refused")}

	delivered := Fanout([]Channel{broken}, nil)

	assert.Zero(t, delivered)
}
