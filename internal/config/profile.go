package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type JobPreferences struct {
	PreferredTitles []string `json:"preferred_titles"`
	Remote          bool     `json:"remote"`
}

// UserProfile holds the applicant identity and search preferences.
// The schema is permissive: every field is optional and defaults to empty.
type UserProfile struct {
	Name              string         `json:"name"`
	Email             string         `json:"email"`
	Phone             string         `json:"phone"`
	Skills            []string       `json:"skills"`
	JobPreferences    JobPreferences `json:"job_preferences"`
	Location          string         `json:"location"`
	ExperienceSummary string         `json:"experience_summary"`
}

func LoadProfile(path string) (*UserProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read profile %s: %w", path, err)
	}

	profile := &UserProfile{}
	if err := json.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("could not parse profile %s: %w", path, err)
	}

	//trim stray whitespace so substring matching behaves
	for i, s := range profile.Skills {
		profile.Skills[i] = strings.TrimSpace(s)
	}
	for i, t := range profile.JobPreferences.PreferredTitles {
		profile.JobPreferences.PreferredTitles[i] = strings.TrimSpace(t)
	}
	profile.Location = strings.TrimSpace(profile.Location)

	return profile, nil
}

// SkillsLine joins the skills for template interpolation.
func (p *UserProfile) SkillsLine() string {
	return strings.Join(p.Skills, ", ")
}
