package rendering

import (
	"html"
	"strings"

	"github.com/jonathan/resume-studio/internal/resume"
)

// aboutHeading is the heading placed above the summary paragraph.
const aboutHeading = "ABOUT ME"

// RenderHTML converts a résumé document into an inline HTML fragment for the
// browser preview. The mapping is deterministic: name and title as headings,
// the summary under an ABOUT ME heading, then one heading per section in
// document order followed by a skill list or item paragraphs. Missing
// optional fields are omitted entirely, not rendered as empty tags. All
// model-supplied text is escaped.
func RenderHTML(doc *resume.Document) string {
	var sb strings.Builder

	sb.WriteString(`<div class="resume-preview">`)

	sb.WriteString("<h1>" + html.EscapeString(doc.Name) + "</h1>")
	if doc.Title != "" {
		sb.WriteString("<h2>" + html.EscapeString(doc.Title) + "</h2>")
	}
	if contact := doc.Contact.ContactLine(); contact != "" {
		sb.WriteString(`<p class="contact">` + html.EscapeString(contact) + "</p>")
	}

	sb.WriteString("<h3>" + aboutHeading + "</h3>")
	if doc.Summary != "" {
		sb.WriteString("<p>" + html.EscapeString(doc.Summary) + "</p>")
	}

	for _, section := range doc.Sections {
		writeSection(&sb, section)
	}

	sb.WriteString("</div>")
	return sb.String()
}

func writeSection(sb *strings.Builder, section resume.Section) {
	sb.WriteString("<h3>" + html.EscapeString(section.Title) + "</h3>")

	if section.Kind == resume.KindSkills {
		sb.WriteString("<ul>")
		for _, skill := range section.Skills {
			sb.WriteString("<li>" + html.EscapeString(skill) + "</li>")
		}
		sb.WriteString("</ul>")
		return
	}

	for _, item := range section.Items {
		if item.Heading != "" {
			sb.WriteString("<h4>" + html.EscapeString(item.Heading) + "</h4>")
		}
		if item.Subheading != "" {
			sb.WriteString("<h5>" + html.EscapeString(item.Subheading) + "</h5>")
		}
		if item.Description != "" {
			sb.WriteString("<p>" + html.EscapeString(item.Description) + "</p>")
		}
	}
}
