// Flat JSON file IO between pipeline stages.
// Files are overwritten each run; only the CSV log appends.

package store

import (
	"encoding/json"
	"fmt"
	"os"

	"go-autoapply/internal/models"
)

const (
	JobsFile     = "jobs.json"
	SafeJobsFile = "safe_jobs.json"
	MatchedFile  = "matched_jobs.json"
	URLsFile     = "job_urls.json"
)

func SaveJobs(path string, jobs []models.JobPosting) error {
	data, err := json.MarshalIndent(jobs, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal jobs: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	return nil
}

func LoadJobs(path string) ([]models.JobPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}
	var jobs []models.JobPosting
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}
	return jobs, nil
}

// SaveURLs writes just the posting URLs as a flat string array.
func SaveURLs(path string, jobs []models.JobPosting) error {
	urls := make([]string, 0, len(jobs))
	for _, job := range jobs {
		urls = append(urls, job.URL)
	}
	data, err := json.MarshalIndent(urls, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal urls: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	return nil
}
