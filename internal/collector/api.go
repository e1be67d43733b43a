package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go-autoapply/internal/models"
)

const apiUserAgent = "go-autoapply/1.0"

// APISource fetches a RemoteOK-shaped JSON jobs API. The first array
// element is a legal-notice blob, not a job; entries without a position
// or URL are skipped.
type APISource struct {
	name   string
	url    string
	client *http.Client
}

type apiJob struct {
	Position    string   `json:"position"`
	Company     string   `json:"company"`
	URL         string   `json:"url"`
	Location    string   `json:"location"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
}

func NewAPISource(name, url string) *APISource {
	return &APISource{
		name: name,
		url:  url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (s *APISource) Name() string {
	return s.name
}

func (s *APISource) Fetch(ctx context.Context) ([]models.JobPosting, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("could not build request: %w", err)
	}
	req.Header.Set("User-Agent", apiUserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("api returned status %d", resp.StatusCode)
	}

	var raw []apiJob
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("could not decode api response: %w", err)
	}

	var jobs []models.JobPosting
	for _, entry := range raw {
		//metadata element and malformed entries have no position/url
		if entry.Position == "" || entry.URL == "" {
			continue
		}
		jobs = append(jobs, models.JobPosting{
			Title:       strings.TrimSpace(entry.Position),
			Company:     strings.TrimSpace(entry.Company),
			URL:         strings.TrimSpace(entry.URL),
			Description: entry.Description,
			Location:    strings.TrimSpace(entry.Location),
			Source:      models.SourceAPI,
			Tags:        entry.Tags,
			PostedDate:  entry.Date,
		})
	}
	return jobs, nil
}
