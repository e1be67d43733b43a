package applicator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-autoapply/internal/config"
	"go-autoapply/internal/models"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const formHTML = `<html><body>
<form>
  <input name="name">
  <input name="email">
  <button type="submit">Apply</button>
</form>
</body></html>`

//helper start browser; needs an installed playwright runtime
func setupPlaywright(t *testing.T) (*playwright.Playwright, playwright.Browser, playwright.Page) {
	pw, err := playwright.Run()
	if err != nil {
		t.Fatalf("could not launch playwright: %v", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		t.Fatalf("could not launch browser: %v", err)
	}
	page, err := browser.NewPage()
	if err != nil {
		t.Fatalf("could not create page: %v", err)
	}
	return pw, browser, page
}

// One unreachable job must not stop the rest of the batch.
func TestApplicatorResilience(t *testing.T) {
	if os.Getenv("APPLY_E2E") == "" {
		t.Skip("set APPLY_E2E=1 to run browser tests")
	}

	pw, browser, page := setupPlaywright(t)
	defer pw.Stop()
	defer browser.Close()

	//mock the network: one host is dead, the rest serve a plain form
	page.Route("**/*", func(route playwright.Route) {
		if strings.Contains(route.Request().URL(), "unreachable") {
			route.Abort()
			return
		}
		route.Fulfill(playwright.RouteFulfillOptions{
			Status:      playwright.Int(200),
			ContentType: playwright.String("text/html"),
			Body:        formHTML,
		})
	})

	dir := t.TempDir()
	resume := filepath.Join(dir, "resume.txt")
	cover := filepath.Join(dir, "cover_letter.txt")
	require.NoError(t, os.WriteFile(resume, []byte("resume"), 0644))
	require.NoError(t, os.WriteFile(cover, []byte("cover"), 0644))

	profile := &config.UserProfile{Name: "Jane Doe", Email: "jane@example.com"}
	app := New(page, NameLocator{}, "button[type=submit]", profile)

	jobs := []models.JobPosting{
		{Title: "Dead", URL: "https://unreachable.invalid/jobs/1"},
		{Title: "Alive A", URL: "https://jobs.example.com/2"},
		{Title: "Alive B", URL: "https://jobs.example.com/3"},
	}

	results := app.Run(jobs, func(models.JobPosting) Artifacts {
		return Artifacts{ResumePath: resume, CoverLetterPath: cover}
	})

	require.Len(t, results, 3)
	assert.Equal(t, OutcomeSkippedUnreachable, results[0].Outcome)
	assert.Equal(t, OutcomeSubmitted, results[1].Outcome)
	assert.Equal(t, OutcomeSubmitted, results[2].Outcome)
}
