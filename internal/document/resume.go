package document

import (
	"bytes"

	godocx "github.com/fumiama/go-docx"

	"github.com/jonathan/resume-studio/internal/resume"
)

// aboutHeading is always present in the generated document, even when the
// summary or the section list is empty.
const aboutHeading = "ABOUT ME"

// BuildResume converts a résumé document into a .docx binary. The structure
// is fixed: centered name, centered title, centered contact line, an ABOUT ME
// heading with the summary, then each section in document order. Detail
// sections emit exactly three paragraphs per item (heading, subheading,
// description) even when optional fields are empty, so the visual rhythm
// stays constant.
func BuildResume(doc *resume.Document) ([]byte, error) {
	w := godocx.New().WithDefaultTheme()

	name := w.AddParagraph().Justification("center")
	name.AddText(doc.Name).Font(fontFamily, fontFamily, fontFamily, "").Size(sizeName).Bold()

	if doc.Title != "" {
		title := w.AddParagraph().Justification("center")
		title.AddText(doc.Title).Font(fontFamily, fontFamily, fontFamily, "").Size(sizeTitle).Color(colorTitle)
	}

	if contact := doc.Contact.ContactLine(); contact != "" {
		line := w.AddParagraph().Justification("center")
		line.AddText(contact).Font(fontFamily, fontFamily, fontFamily, "").Size(sizeContact)
	}

	w.AddParagraph() // spacer between header and body

	addSectionHeading(w, aboutHeading)
	if doc.Summary != "" {
		addBodyText(w, doc.Summary)
	}

	for _, section := range doc.Sections {
		w.AddParagraph()
		addSectionHeading(w, section.Title)

		if section.Kind == resume.KindSkills {
			addBodyText(w, joinSkills(section.Skills))
			continue
		}

		for _, item := range section.Items {
			heading := w.AddParagraph()
			heading.AddText(item.Heading).Font(fontFamily, fontFamily, fontFamily, "").Size(sizeBody).Bold()

			subheading := w.AddParagraph()
			subheading.AddText(item.Subheading).Font(fontFamily, fontFamily, fontFamily, "").Size(sizeBody).Italic().Color(colorSubheading)

			addBodyText(w, item.Description)
		}
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, &AssemblyError{Message: "failed to write resume document", Cause: err}
	}
	return buf.Bytes(), nil
}

// BuildCoverLetter converts cover letter text into a .docx binary, one
// document paragraph per text paragraph.
func BuildCoverLetter(text string) ([]byte, error) {
	w := godocx.New().WithDefaultTheme()

	for _, paragraph := range splitParagraphs(text) {
		addBodyText(w, paragraph)
		w.AddParagraph()
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, &AssemblyError{Message: "failed to write cover letter document", Cause: err}
	}
	return buf.Bytes(), nil
}

// addSectionHeading writes a heading line. The underline stands in for the
// bottom border rule under each section title.
func addSectionHeading(w *godocx.Docx, title string) {
	p := w.AddParagraph()
	p.AddText(title).Font(fontFamily, fontFamily, fontFamily, "").Size(sizeHeading).Bold().Color(colorHeading).Underline("single")
}

// addBodyText writes a plain body paragraph.
func addBodyText(w *godocx.Docx, text string) {
	p := w.AddParagraph()
	p.AddText(text).Font(fontFamily, fontFamily, fontFamily, "").Size(sizeBody)
}
