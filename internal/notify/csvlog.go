package notify

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"go-autoapply/internal/models"
)

var csvHeader = []string{"timestamp", "title", "company", "url"}

// SentLog is the append-only CSV record of every job included in a digest.
// The header row is written once, when the file is first created.
type SentLog struct {
	path string
}

func NewSentLog(path string) *SentLog {
	return &SentLog{path: path}
}

// Append writes one row per job with a single UTC timestamp for the batch.
func (l *SentLog) Append(jobs []models.JobPosting) error {
	_, statErr := os.Stat(l.path)
	newFile := os.IsNotExist(statErr)

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open %s: %w", l.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if newFile {
		if err := w.Write(csvHeader); err != nil {
			return fmt.Errorf("could not write header: %w", err)
		}
	}

	ts := time.Now().UTC().Format(time.RFC3339)
	for _, job := range jobs {
		if err := w.Write([]string{ts, job.Title, job.Company, job.URL}); err != nil {
			return fmt.Errorf("could not write row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
