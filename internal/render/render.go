package render

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"text/template"

	"go-autoapply/internal/config"
	"go-autoapply/internal/models"
)

// descriptionBudget caps how much of a job description is quoted inside
// a cover letter.
const descriptionBudget = 120

const resumeTemplate = `Name: {{.Name}}
Email: {{.Email}}
Phone: {{.Phone}}

Applying for: {{.JobTitle}} at {{.Company}}

Professional Summary:
{{.ExperienceSummary}}

Key Skills:
{{.Skills}}
`

const coverLetterTemplate = `Dear {{.Company}},

I'm excited to apply for the {{.JobTitle}} position at {{.Company}}. With my background in {{.Skills}} and experience summarized as:
"{{.DescriptionSnippet}}"
I'm confident I can help {{.Company}} succeed.

Thank you for considering my application.

Best regards,
{{.Name}}
`

// templateContext is the flat substitution context shared by both
// templates. No conditional logic, literal interpolation only.
type templateContext struct {
	Name               string
	Email              string
	Phone              string
	Skills             string
	ExperienceSummary  string
	JobTitle           string
	Company            string
	DescriptionSnippet string
}

type Renderer struct {
	outputDir string
	resume    *template.Template
	cover     *template.Template
}

func NewRenderer(outputDir string) *Renderer {
	return &Renderer{
		outputDir: outputDir,
		resume:    template.Must(template.New("resume").Parse(resumeTemplate)),
		cover:     template.Must(template.New("cover_letter").Parse(coverLetterTemplate)),
	}
}

// ResumePath returns where the resume artifact for a job lives.
func (r *Renderer) ResumePath(job models.JobPosting) string {
	return filepath.Join(r.outputDir, "resumes", ArtifactName(job.Company, job.Title, "resume.txt"))
}

// CoverLetterPath returns where the cover-letter artifact for a job lives.
func (r *Renderer) CoverLetterPath(job models.JobPosting) string {
	return filepath.Join(r.outputDir, "cover_letters", ArtifactName(job.Company, job.Title, "cover_letter.txt"))
}

// RenderAll writes one resume and one cover letter per job.
func (r *Renderer) RenderAll(profile *config.UserProfile, jobs []models.JobPosting) error {
	for _, dir := range []string{
		filepath.Join(r.outputDir, "resumes"),
		filepath.Join(r.outputDir, "cover_letters"),
	} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create %s: %w", dir, err)
		}
	}

	for _, job := range jobs {
		ctx := templateContext{
			Name:               profile.Name,
			Email:              profile.Email,
			Phone:              profile.Phone,
			Skills:             profile.SkillsLine(),
			ExperienceSummary:  profile.ExperienceSummary,
			JobTitle:           job.Title,
			Company:            job.Company,
			DescriptionSnippet: Truncate(job.Description, descriptionBudget),
		}

		if err := r.renderOne(r.resume, r.ResumePath(job), ctx); err != nil {
			return err
		}
		if err := r.renderOne(r.cover, r.CoverLetterPath(job), ctx); err != nil {
			return err
		}
		log.Printf("📄 Generated artifacts for %s @ %s", job.Title, job.Company)
	}
	return nil
}

func (r *Renderer) renderOne(tmpl *template.Template, path string, ctx templateContext) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return fmt.Errorf("could not render %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	return nil
}

// Truncate cuts s to limit runes, appending an ellipsis when cut.
// Counting runes instead of bytes keeps accented descriptions valid UTF-8.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
