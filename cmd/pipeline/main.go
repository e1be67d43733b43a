package main

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"go-autoapply/internal/collector"
	"go-autoapply/internal/config"
	"go-autoapply/internal/dedup"
	"go-autoapply/internal/filter"
	"go-autoapply/internal/models"
	"go-autoapply/internal/notify"
	"go-autoapply/internal/pdf"
	"go-autoapply/internal/render"
	"go-autoapply/internal/store"
)

func main() {
	//load config and profile before touching the network
	cfg := config.Load("configs/config.yaml")

	profile, err := config.LoadProfile(cfg.ProfilePath)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	log.Printf("🔧 Config loaded. Skills: %v, preferred titles: %v",
		profile.Skills, profile.JobPreferences.PreferredTitles)

	//setup context with timeout = 10 mins
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	log.Println("🚀 Starting job search pipeline...")

	//collect from all configured sources, dedup by URL
	sources := collector.FromConfig(cfg)
	if len(sources) == 0 {
		log.Fatal("❌ No sources configured")
	}
	jobs := collector.Collect(ctx, sources)
	log.Printf("📦 Total postings collected: %d", len(jobs))

	if err := store.SaveJobs(store.JobsFile, jobs); err != nil {
		log.Printf("⚠️ %v", err)
	}
	if len(jobs) == 0 {
		log.Println("ℹ️ No jobs found. Nothing to do.")
		return
	}

	//scam pass
	safe := filter.DropScams(jobs)
	log.Printf("🛡️ Scam filter: %d -> %d postings", len(jobs), len(safe))
	if err := store.SaveJobs(store.SafeJobsFile, safe); err != nil {
		log.Printf("⚠️ %v", err)
	}

	//relevance + freshness pass, then rank
	relevant := filter.KeepRelevant(profile, safe)
	matches := filter.Rank(profile, relevant, cfg.MaxResults)
	matched := models.Postings(matches)
	log.Printf("🎯 Matched %d postings (top %d)", len(matched), cfg.MaxResults)

	if err := store.SaveJobs(store.MatchedFile, matched); err != nil {
		log.Printf("⚠️ %v", err)
	}
	if err := store.SaveURLs(store.URLsFile, matched); err != nil {
		log.Printf("⚠️ %v", err)
	}
	if len(matched) == 0 {
		log.Println("ℹ️ No postings matched the profile. Nothing to do.")
		return
	}

	//render artifacts
	renderer := render.NewRenderer(cfg.OutputDir)
	if err := renderer.RenderAll(profile, matched); err != nil {
		log.Fatalf("❌ Rendering failed: %v", err)
	}

	if cfg.RenderPDF {
		renderPDFs(cfg, profile, matched)
	}

	//drop jobs already notified in earlier runs
	cache := dedup.NewSeenCache(cfg.CachePath)
	var unseen []models.ScoredMatch
	for _, m := range matches {
		if !cache.IsSeen(m.Posting.URL) {
			unseen = append(unseen, m)
		}
	}
	log.Printf("🔍 Deduplication: %d matched -> %d unseen", len(matches), len(unseen))
	if len(unseen) == 0 {
		log.Println("ℹ️ All matches were already sent. Nothing to notify.")
		return
	}
	unseenJobs := models.Postings(unseen)

	//the CSV log is written before the send and never rolled back
	sentLog := notify.NewSentLog("sent_jobs_log.csv")
	if err := sentLog.Append(unseenJobs); err != nil {
		log.Printf("⚠️ Failed to append to sent log: %v", err)
	}

	//jobs only count as seen once at least one channel delivered them,
	//so a transient outage gets retried on the next run
	channels := buildChannels(cfg)
	if len(channels) > 0 && notify.Fanout(channels, unseen) == 0 {
		log.Println("⚠️ Every channel failed; jobs stay unseen for the next run.")
		return
	}

	var urls []string
	for _, job := range unseenJobs {
		urls = append(urls, job.URL)
	}
	cache.Add(urls)
	log.Printf("💾 Marked %d jobs as seen", len(urls))

	log.Println("🏁 Execution finished.")
}

func buildChannels(cfg *config.Config) []notify.Channel {
	var channels []notify.Channel

	if err := cfg.ValidateSMTP(); err != nil {
		log.Printf("⚠️ Email disabled: %v", err)
	} else {
		channels = append(channels, notify.EmailChannel{
			Mailer:  notify.NewMailer(cfg.SMTP),
			Subject: "Daily Job Suggestions",
		})
	}

	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		reporter, err := notify.NewTelegramReporter(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("⚠️ %v", err)
		} else {
			channels = append(channels, reporter)
		}
	}

	return channels
}

func renderPDFs(cfg *config.Config, profile *config.UserProfile, jobs []models.JobPosting) {
	gen := pdf.NewGenerator(filepath.Join("templates", "resume.html"))
	for _, job := range jobs {
		data, err := gen.Generate(profile, job)
		if err != nil {
			log.Printf("⚠️ PDF generation failed for %s: %v", job.Title, err)
			continue
		}
		name := render.ArtifactName(job.Company, job.Title, "resume.pdf")
		path := filepath.Join(cfg.OutputDir, "resumes", name)
		if err := pdf.SaveToFile(data, path); err != nil {
			log.Printf("⚠️ Failed to save %s: %v", path, err)
			continue
		}
		log.Printf("📄 PDF resume saved to %s", path)
	}
}
