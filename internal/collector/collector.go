// Define an interface for all source adapters
// Ensure consistency

package collector

import (
	"context"
	"log"

	"go-autoapply/internal/config"
	"go-autoapply/internal/models"

	mapset "github.com/deckarep/golang-set/v2"
)

//Source defines the interface that all posting sources must implement
type Source interface {
	//Fetch postings from the source
	Fetch(ctx context.Context) ([]models.JobPosting, error)

	//Name is the source name (WeWorkRemotely, RemoteOK, ...)
	Name() string
}

// Collect runs every source sequentially. A failing source is logged and
// contributes zero postings; it never aborts the run. The merged result is
// deduplicated by URL, first-seen order preserved.
func Collect(ctx context.Context, sources []Source) []models.JobPosting {
	var all []models.JobPosting
	for _, s := range sources {
		log.Printf("🔍 Fetching from %s...", s.Name())
		jobs, err := s.Fetch(ctx)
		if err != nil {
			log.Printf("⚠️ Source %s failed: %v. Continuing.", s.Name(), err)
			continue
		}
		log.Printf("✅ %s contributed %d postings", s.Name(), len(jobs))
		all = append(all, jobs...)
	}
	return Dedup(all)
}

// Dedup keeps the first posting seen per URL. Postings without a URL
// cannot be deduplicated or applied to, so they are dropped.
func Dedup(jobs []models.JobPosting) []models.JobPosting {
	seen := mapset.NewSet[string]()
	unique := make([]models.JobPosting, 0, len(jobs))
	for _, job := range jobs {
		if job.URL == "" {
			continue
		}
		if seen.Add(job.URL) {
			unique = append(unique, job)
		}
	}
	return unique
}

// FromConfig builds the source list out of the run configuration.
// Unknown source types are logged and skipped.
func FromConfig(cfg *config.Config) []Source {
	var sources []Source
	for _, sc := range cfg.Sources {
		switch sc.Type {
		case "rss":
			sources = append(sources, NewRSSSource(sc.Name, sc.URL))
		case "api":
			sources = append(sources, NewAPISource(sc.Name, sc.URL))
		case "html":
			sources = append(sources, NewHTMLSource(sc))
		default:
			log.Printf("⚠️ Unknown source type %q (%s). Skipping.", sc.Type, sc.Name)
		}
	}
	return sources
}
