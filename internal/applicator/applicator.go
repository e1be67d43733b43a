package applicator

import (
	"log"

	"go-autoapply/internal/browser"
	"go-autoapply/internal/config"
	"go-autoapply/internal/models"
	"go-autoapply/utils"

	"github.com/playwright-community/playwright-go"
)

// Outcome is the terminal state of one application attempt.
type Outcome string

const (
	OutcomeSubmitted           Outcome = "SUBMITTED"
	OutcomeSkippedUnreachable  Outcome = "SKIPPED_UNREACHABLE"
	OutcomeFailedFieldNotFound Outcome = "FAILED_FIELD_NOT_FOUND"
	OutcomeFailedSubmit        Outcome = "FAILED_SUBMIT"
)

type Result struct {
	Job     models.JobPosting
	Outcome Outcome
	Detail  string
}

// Artifacts are the rendered document paths for one job.
type Artifacts struct {
	ResumePath      string
	CoverLetterPath string
}

// Applicator drives one browser page through the application form of each
// job: navigate, locate fields, fill, upload, submit. Every failure is
// terminal for that job only; the loop always moves on.
type Applicator struct {
	page           playwright.Page
	locator        Locator
	submitSelector string
	profile        *config.UserProfile
	shots          *utils.ScreenshotDebugger
	fieldTimeout   float64 //ms
}

func New(page playwright.Page, locator Locator, submitSelector string, profile *config.UserProfile) *Applicator {
	return &Applicator{
		page:           page,
		locator:        locator,
		submitSelector: submitSelector,
		profile:        profile,
		shots:          utils.NewScreenshotDebugger(),
		fieldTimeout:   5000,
	}
}

// Run applies to every job sequentially on the shared page. The artifacts
// callback maps a job to its rendered document paths.
func (a *Applicator) Run(jobs []models.JobPosting, artifacts func(models.JobPosting) Artifacts) []Result {
	results := make([]Result, 0, len(jobs))
	for i, job := range jobs {
		log.Printf("➡️ [%d/%d] Applying to %s", i+1, len(jobs), job.URL)
		res := a.applyOne(job, artifacts(job))
		log.Printf("   %s: %s", res.Outcome, job.Title)
		results = append(results, res)

		//pause between jobs to look less like a robot
		browser.RandomDelay(1000, 3000)
	}
	return results
}

func (a *Applicator) applyOne(job models.JobPosting, art Artifacts) Result {
	//Navigate
	if _, err := a.page.Goto(job.URL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		log.Printf("   ⚠️ Cannot reach %s: %v. Skipping.", job.URL, err)
		return Result{Job: job, Outcome: OutcomeSkippedUnreachable, Detail: err.Error()}
	}

	browser.RandomDelay(500, 1500)
	if err := browser.HumanScroll(a.page); err != nil {
		log.Printf("   ⚠️ Scroll failed: %v", err)
	}

	//Fill identity fields. A missing field is logged and skipped;
	//partial fills are accepted.
	filled := 0
	textFields := []struct{ field, value string }{
		{"name", a.profile.Name},
		{"email", a.profile.Email},
		{"phone", a.profile.Phone},
	}
	for _, f := range textFields {
		if f.value == "" {
			continue
		}
		if a.fillField(f.field, f.value) {
			filled++
		}
	}

	//Upload the rendered documents into file inputs when present
	uploads := []struct{ field, path string }{
		{"resume", art.ResumePath},
		{"cover_letter", art.CoverLetterPath},
	}
	for _, u := range uploads {
		if a.uploadField(u.field, u.path) {
			filled++
		}
	}

	if filled == 0 {
		a.shots.CaptureAndLog(a.page, "no-fields", "🚨 No form fields found: "+job.URL)
		return Result{Job: job, Outcome: OutcomeFailedFieldNotFound, Detail: "no form fields located"}
	}

	//Submit
	if err := a.page.Locator(a.submitSelector).First().Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(a.fieldTimeout),
	}); err != nil {
		a.shots.CaptureAndLog(a.page, "no-submit", "🚨 Submit control not found: "+job.URL)
		return Result{Job: job, Outcome: OutcomeFailedSubmit, Detail: err.Error()}
	}

	return Result{Job: job, Outcome: OutcomeSubmitted}
}

func (a *Applicator) fillField(field, value string) bool {
	loc, err := a.locator.Locate(a.page, field)
	if err != nil {
		log.Printf("   ⚠️ Field %q not addressable (%s strategy): %v", field, a.locator.Name(), err)
		return false
	}
	if err := loc.First().Fill(value, playwright.LocatorFillOptions{
		Timeout: playwright.Float(a.fieldTimeout),
	}); err != nil {
		log.Printf("   ⚠️ Field %q not found. Skipping.", field)
		return false
	}
	return true
}

func (a *Applicator) uploadField(field, path string) bool {
	loc, err := a.locator.Locate(a.page, field)
	if err != nil {
		log.Printf("   ⚠️ Upload %q not addressable (%s strategy): %v", field, a.locator.Name(), err)
		return false
	}
	if err := loc.First().SetInputFiles([]string{path}, playwright.LocatorSetInputFilesOptions{
		Timeout: playwright.Float(a.fieldTimeout),
	}); err != nil {
		log.Printf("   ⚠️ File input %q not found. Skipping.", field)
		return false
	}
	return true
}

// Summarize tallies results per terminal state.
func Summarize(results []Result) map[Outcome]int {
	counts := make(map[Outcome]int)
	for _, r := range results {
		counts[r.Outcome]++
	}
	return counts
}
