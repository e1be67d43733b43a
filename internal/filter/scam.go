package filter

import (
	"log"
	"regexp"
	"strings"

	"go-autoapply/internal/models"
)

//red-flag phrases that keep showing up in scam listings
var scamPhrases = []string{
	"quick money", "no experience needed", "whatsapp", "telegram",
	"processing fee", "startup fee", "bitcoin", "wire transfer", "gift card",
	"send your bank info", "no resume", "daily payout", "earn from home",
}

//sketchy top-level domains
var suspectTLDs = []string{".xyz", ".top", ".click", ".gq", ".tk", ".ml"}

var shortenerRegex = regexp.MustCompile(`(?i)(bit\.ly|tinyurl\.com|rb\.gy|rebrand\.ly|shorturl\.at)`)

// IsScam classifies a posting from its description and link. Checks are
// independent and deterministic; the first hit short-circuits.
func IsScam(description, link string) bool {
	text := strings.ToLower(description)

	for _, phrase := range scamPhrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}

	if link != "" {
		for _, tld := range suspectTLDs {
			if strings.HasSuffix(strings.ToLower(link), tld) {
				return true
			}
		}
	}

	//shady redirect links embedded in the description
	return shortenerRegex.MatchString(description)
}

// DropScams filters a batch, logging each verdict.
func DropScams(jobs []models.JobPosting) []models.JobPosting {
	safe := make([]models.JobPosting, 0, len(jobs))
	for _, job := range jobs {
		if IsScam(job.Description, job.URL) {
			log.Printf("❌ Skipping suspicious job: %s", job.Title)
			continue
		}
		safe = append(safe, job)
	}
	return safe
}
