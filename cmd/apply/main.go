package main

import (
	"log"
	"os"
	"path/filepath"

	"go-autoapply/internal/applicator"
	"go-autoapply/internal/browser"
	"go-autoapply/internal/config"
	"go-autoapply/internal/models"
	"go-autoapply/internal/render"
	"go-autoapply/internal/store"

	"github.com/playwright-community/playwright-go"
)

func main() {
	cfg := config.Load("configs/config.yaml")

	profile, err := config.LoadProfile(cfg.ProfilePath)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	jobs, err := store.LoadJobs(store.MatchedFile)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	if len(jobs) == 0 {
		log.Println("ℹ️ No matched jobs; exiting.")
		return
	}

	//every artifact must exist before the loop starts
	renderer := render.NewRenderer(cfg.OutputDir)
	for _, job := range jobs {
		for _, path := range []string{renderer.ResumePath(job), renderer.CoverLetterPath(job)} {
			if _, err := os.Stat(path); err != nil {
				log.Fatalf("❌ Required file not found: %s", path)
			}
		}
	}

	pwManager, err := browser.NewManager(cfg.Apply.Headless)
	if err != nil {
		log.Fatalf("❌ Failed to init browser: %v", err)
	}
	//release the browser session unconditionally at the end
	defer pwManager.Close()

	//cookies are optional; sites with login walls need them
	var cookies []playwright.OptionalCookie
	cookieFile := filepath.Join(cfg.CookiesPath, "cookies.json")
	if loaded, err := browser.LoadCookies(cookieFile); err != nil {
		log.Printf("⚠️ Could not load cookies: %v. Continuing.", err)
	} else {
		log.Printf("🍪 Loaded cookies (%d)", len(loaded))
		cookies = loaded
	}

	browserCtx, err := pwManager.NewContext(cookies)
	if err != nil {
		log.Fatalf("❌ Failed to create browser context: %v", err)
	}

	page, err := browserCtx.NewPage()
	if err != nil {
		log.Fatalf("❌ Failed to create new page: %v", err)
	}
	log.Println("✅ Browser initialized successfully!")

	locator := applicator.NewLocator(cfg.Apply.Strategy, cfg.Apply.Selectors)
	log.Printf("🧭 Field strategy: %s", locator.Name())

	app := applicator.New(page, locator, cfg.Apply.SubmitSelector, profile)
	results := app.Run(jobs, func(job models.JobPosting) applicator.Artifacts {
		return applicator.Artifacts{
			ResumePath:      renderer.ResumePath(job),
			CoverLetterPath: renderer.CoverLetterPath(job),
		}
	})

	counts := applicator.Summarize(results)
	log.Printf("🏁 Done. Submitted: %d, unreachable: %d, no fields: %d, no submit: %d",
		counts[applicator.OutcomeSubmitted],
		counts[applicator.OutcomeSkippedUnreachable],
		counts[applicator.OutcomeFailedFieldNotFound],
		counts[applicator.OutcomeFailedSubmit])
}
