package models

// Source identifies which collector adapter produced a posting.
type Source string

const (
	SourceRSS  Source = "rss"
	SourceAPI  Source = "api"
	SourceHTML Source = "html"
)

// JobPosting is the common record shape every source maps onto.
// URL is the dedup key for the whole pipeline.
type JobPosting struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	URL         string   `json:"url"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location,omitempty"`
	Source      Source   `json:"source"`
	Tags        []string `json:"tags,omitempty"`
	PostedDate  string   `json:"posted_date,omitempty"`
}

// ScoredMatch pairs a posting with its relevance score.
// The score is only used for ranking inside a run and is never persisted.
type ScoredMatch struct {
	Posting JobPosting
	Score   int
}

// Postings strips the scores back off a ranked result.
func Postings(matches []ScoredMatch) []JobPosting {
	jobs := make([]JobPosting, 0, len(matches))
	for _, m := range matches {
		jobs = append(jobs, m.Posting)
	}
	return jobs
}
