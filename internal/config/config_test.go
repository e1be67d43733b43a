package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Equal(t, "config/user_profile.json", cfg.ProfilePath)
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, 3, cfg.MaxResults)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, "name", cfg.Apply.Strategy)
	assert.Equal(t, "button[type=submit]", cfg.Apply.SubmitSelector)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
max_results: 5
output_dir: artifacts
sources:
  - type: rss
    name: WWR
    url: https://example.com/feed.rss
  - type: html
    name: Board
    url: https://example.com/jobs
    card_selector: li.job
    title_selector: span.title
smtp:
  from: me@example.com
  to: me@example.com
apply:
  strategy: css
  selectors:
    email: "#email"
`)

	cfg := Load(path)

	assert.Equal(t, 5, cfg.MaxResults)
	assert.Equal(t, "artifacts", cfg.OutputDir)
	require.Len(t, cfg.Sources, 2)
	assert.Equal(t, "rss", cfg.Sources[0].Type)
	assert.Equal(t, "li.job", cfg.Sources[1].CardSelector)
	assert.Equal(t, "css", cfg.Apply.Strategy)
	assert.Equal(t, "#email", cfg.Apply.Selectors["email"])
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.test.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_PASSWORD", "hunter2")

	cfg := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Equal(t, "smtp.test.example.com", cfg.SMTP.Host)
	assert.Equal(t, 2525, cfg.SMTP.Port)
	assert.Equal(t, "hunter2", cfg.SMTP.Password)
}

func TestValidateSMTP(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.ValidateSMTP())

	cfg.SMTP = SMTPConfig{Host: "smtp.example.com", From: "a@example.com", To: "b@example.com"}
	assert.NoError(t, cfg.ValidateSMTP())
}

func TestLoadProfile(t *testing.T) {
	path := writeFile(t, "user_profile.json", `{
		"name": "Jane Doe",
		"skills": [" python ", "go"],
		"job_preferences": {"preferred_titles": ["engineer "]},
		"location": " remote "
	}`)

	profile, err := LoadProfile(path)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", profile.Name)
	//whitespace is trimmed so substring matching behaves
	assert.Equal(t, []string{"python", "go"}, profile.Skills)
	assert.Equal(t, []string{"engineer"}, profile.JobPreferences.PreferredTitles)
	assert.Equal(t, "remote", profile.Location)
	//missing fields default to empty
	assert.Empty(t, profile.Email)
	assert.Empty(t, profile.ExperienceSummary)
}

func TestLoadProfileMissingFile(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadProfileBadJSON(t *testing.T) {
	path := writeFile(t, "user_profile.json", "{not json")
	_, err := LoadProfile(path)
	assert.Error(t, err)
}

func TestSkillsLine(t *testing.T) {
	p := &UserProfile{Skills: []string{"python", "go"}}
	assert.Equal(t, "python, go", p.SkillsLine())
}
