package filter

import (
	"sort"
	"strings"

	"go-autoapply/internal/config"
	"go-autoapply/internal/models"

	mapset "github.com/deckarep/golang-set/v2"
)

//signal weights, summed independently
const (
	weightTitlePreferred = 10
	weightTitleSkill     = 8
	weightTagSkill       = 5
	weightLocation       = 3
	weightDescSkill      = 2
	weightNoLocationPref = 1
)

// Score sums the independent relevance signals for one posting.
func Score(profile *config.UserProfile, job models.JobPosting) int {
	score := 0
	title := Normalize(job.Title)
	desc := Normalize(job.Description)

	//title mentions a preferred title (+10)
	for _, preferred := range profile.JobPreferences.PreferredTitles {
		if preferred != "" && strings.Contains(title, Normalize(preferred)) {
			score += weightTitlePreferred
			break
		}
	}

	//title mentions a skill (+8)
	if anyContains(title, profile.Skills) {
		score += weightTitleSkill
	}

	//tags carry a skill (+5)
	if tagsCarrySkill(job.Tags, profile.Skills) {
		score += weightTagSkill
	}

	//description mentions a skill (+2)
	if anyContains(desc, profile.Skills) {
		score += weightDescSkill
	}

	//location (+3 on match, +1 when no preference is given)
	if profile.Location == "" {
		score += weightNoLocationPref
	} else if strings.Contains(Normalize(job.Location), Normalize(profile.Location)) {
		score += weightLocation
	}

	return score
}

// Rank scores a batch, drops non-matches, sorts by score descending and
// truncates to max. The sort is stable: ties keep their input order.
func Rank(profile *config.UserProfile, jobs []models.JobPosting, max int) []models.ScoredMatch {
	var matches []models.ScoredMatch
	for _, job := range jobs {
		if s := Score(profile, job); s > 0 {
			matches = append(matches, models.ScoredMatch{Posting: job, Score: s})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if max > 0 && len(matches) > max {
		matches = matches[:max]
	}
	return matches
}

func anyContains(text string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(text, Normalize(kw)) {
			return true
		}
	}
	return false
}

func tagsCarrySkill(tags, skills []string) bool {
	if len(tags) == 0 || len(skills) == 0 {
		return false
	}
	tagSet := mapset.NewSet[string]()
	for _, tag := range tags {
		tagSet.Add(Normalize(tag))
	}
	skillSet := mapset.NewSet[string]()
	for _, skill := range skills {
		if skill != "" {
			skillSet.Add(Normalize(skill))
		}
	}
	return tagSet.Intersect(skillSet).Cardinality() > 0
}
