package collector

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go-autoapply/internal/models"

	"github.com/mmcdole/gofeed"
)

// RSSSource reads a job board feed. Boards like WeWorkRemotely publish
// entries titled "Company: Job Title", so the company is split off the
// entry title when that convention holds.
type RSSSource struct {
	name   string
	url    string
	client *http.Client
}

func NewRSSSource(name, url string) *RSSSource {
	return &RSSSource{
		name: name,
		url:  url,
		client: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

func (s *RSSSource) Name() string {
	return s.name
}

func (s *RSSSource) Fetch(ctx context.Context) ([]models.JobPosting, error) {
	parser := gofeed.NewParser()
	parser.Client = s.client

	feed, err := parser.ParseURLWithContext(s.url, ctx)
	if err != nil {
		return nil, fmt.Errorf("rss parse failed: %w", err)
	}

	jobs := make([]models.JobPosting, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Link == "" {
			continue
		}

		company, title := splitFeedTitle(item.Title)
		jobs = append(jobs, models.JobPosting{
			Title:       title,
			Company:     company,
			URL:         item.Link,
			Description: item.Description,
			Source:      models.SourceRSS,
			PostedDate:  item.Published,
		})
	}
	return jobs, nil
}

// splitFeedTitle handles the "Company: Job Title" entry convention.
// Titles without a separator come back with an empty company.
func splitFeedTitle(raw string) (company, title string) {
	if before, after, found := strings.Cut(raw, ": "); found {
		return strings.TrimSpace(before), strings.TrimSpace(after)
	}
	return "", strings.TrimSpace(raw)
}
