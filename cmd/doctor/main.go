// Diagnoses the run environment: config files, output files, and each
// configured source.

package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"go-autoapply/internal/collector"
	"go-autoapply/internal/config"
	"go-autoapply/internal/store"
)

func main() {
	log.Println("🐛 Pipeline Doctor")

	cfg := config.Load("configs/config.yaml")

	checkProfile(cfg.ProfilePath)
	checkOutputs()
	probeSources(cfg)

	log.Println("🏁 Diagnostics complete.")
}

func checkProfile(path string) {
	log.Println("👤 Checking profile...")
	profile, err := config.LoadProfile(path)
	if err != nil {
		log.Printf("❌ %v", err)
		return
	}
	log.Printf("✅ %s loaded", path)
	log.Printf("   Skills: %v", profile.Skills)
	log.Printf("   Preferred titles: %v", profile.JobPreferences.PreferredTitles)
	if profile.Location == "" {
		log.Println("   Location: not set")
	} else {
		log.Printf("   Location: %s", profile.Location)
	}
	if len(profile.Skills) == 0 && len(profile.JobPreferences.PreferredTitles) == 0 {
		log.Println("   ⚠️ No skills or titles: relevance filter will keep everything")
	}
}

func checkOutputs() {
	log.Println("📁 Checking output files...")
	for _, path := range []string{store.JobsFile, store.SafeJobsFile, store.MatchedFile} {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("📄 %s - not found", path)
			continue
		}
		var jobs []json.RawMessage
		if err := json.Unmarshal(data, &jobs); err != nil {
			log.Printf("❌ %s - invalid JSON: %v", path, err)
			continue
		}
		log.Printf("📄 %s - found (%d jobs)", path, len(jobs))
	}
}

func probeSources(cfg *config.Config) {
	log.Println("🌐 Probing sources...")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	for _, s := range collector.FromConfig(cfg) {
		jobs, err := s.Fetch(ctx)
		if err != nil {
			log.Printf("❌ %s failed: %v", s.Name(), err)
			continue
		}
		log.Printf("✅ %s - %d postings", s.Name(), len(jobs))
		if len(jobs) > 0 {
			log.Printf("   Sample: %s @ %s", jobs[0].Title, jobs[0].Company)
		}
	}
}
