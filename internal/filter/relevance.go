package filter

import (
	"strings"

	"go-autoapply/internal/config"
	"go-autoapply/internal/models"
)

// IsRelevant keeps a posting when any user skill or preferred title shows
// up in its title or description. A profile with no skills and no preferred
// titles fails open: everything is kept.
func IsRelevant(profile *config.UserProfile, job models.JobPosting) bool {
	skills := profile.Skills
	titles := profile.JobPreferences.PreferredTitles
	if len(skills) == 0 && len(titles) == 0 {
		return true
	}

	text := Normalize(job.Title + " " + job.Description)
	for _, kw := range titles {
		if kw != "" && strings.Contains(text, Normalize(kw)) {
			return true
		}
	}
	for _, kw := range skills {
		if kw != "" && strings.Contains(text, Normalize(kw)) {
			return true
		}
	}
	return false
}

// KeepRelevant applies the relevance and freshness passes to a batch.
func KeepRelevant(profile *config.UserProfile, jobs []models.JobPosting) []models.JobPosting {
	kept := make([]models.JobPosting, 0, len(jobs))
	for _, job := range jobs {
		if !IsRelevant(profile, job) {
			continue
		}
		if !IsRecent(job.PostedDate) {
			continue
		}
		kept = append(kept, job)
	}
	return kept
}
