package notify

import (
	"fmt"
	"strings"

	"go-autoapply/internal/models"
)

// BuildDigest renders the top matches as the plain-text email body.
func BuildDigest(matches []models.ScoredMatch) string {
	if len(matches) == 0 {
		return "No matches found today. Check your profile or try again later."
	}

	lines := []string{"Your Daily Job Suggestions", ""}
	for _, m := range matches {
		lines = append(lines, fmt.Sprintf("• %s @ %s", m.Posting.Title, m.Posting.Company))
		lines = append(lines, fmt.Sprintf("    → %s", m.Posting.URL))
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
