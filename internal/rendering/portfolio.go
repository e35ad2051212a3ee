package rendering

import (
	_ "embed"
	"html/template"
	"strings"
	"sync"

	"github.com/jonathan/resume-studio/internal/resume"
)

//go:embed portfolio.html
var portfolioSkeleton string

var (
	portfolioOnce sync.Once
	portfolioTmpl *template.Template
	portfolioErr  error
)

// Section titles located by case-insensitive match when filling the
// portfolio's repeating card sections.
const (
	skillsSectionTitle   = "SKILLS"
	projectsSectionTitle = "PROJECTS"
)

// portfolioData is the value set rendered into the portfolio skeleton.
type portfolioData struct {
	Name        string
	Title       string
	Summary     string
	ContactLine string
	Skills      []string
	Projects    []resume.Item
}

// RenderPortfolio fills the embedded single-file portfolio skeleton with the
// résumé document's fields. Repeating sections (skills, projects) are located
// by title match; when a section is absent the container renders an explicit
// "None listed yet." placeholder instead of being omitted. Escaping is
// handled by html/template.
func RenderPortfolio(doc *resume.Document) (string, error) {
	portfolioOnce.Do(func() {
		portfolioTmpl, portfolioErr = template.New("portfolio").Parse(portfolioSkeleton)
	})
	if portfolioErr != nil {
		return "", &TemplateError{Message: "failed to parse portfolio skeleton", Cause: portfolioErr}
	}

	data := portfolioData{
		Name:        doc.Name,
		Title:       doc.Title,
		Summary:     doc.Summary,
		ContactLine: doc.Contact.ContactLine(),
	}
	if section := doc.FindSection(skillsSectionTitle); section != nil {
		data.Skills = section.Skills
	}
	if section := doc.FindSection(projectsSectionTitle); section != nil {
		data.Projects = section.Items
	}

	var sb strings.Builder
	if err := portfolioTmpl.Execute(&sb, data); err != nil {
		return "", &RenderError{Message: "failed to render portfolio", Cause: err}
	}

	return sb.String(), nil
}
