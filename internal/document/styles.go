// Package document assembles résumé schemas into downloadable .docx files
// and extracts plain text from uploaded ones.
package document

// Fixed style table for generated documents. Sizes are OOXML half-points,
// colors are hex without the leading '#'. These are product styling choices,
// not user-configurable.
const (
	fontFamily = "Calibri"

	sizeName    = "56" // 28pt
	sizeTitle   = "32" // 16pt
	sizeContact = "20" // 10pt
	sizeHeading = "26" // 13pt
	sizeBody    = "22" // 11pt

	colorTitle      = "595959"
	colorSubheading = "808080"
	colorHeading    = "1F4E79"

	skillSeparator = " • " // bullet glyph between skills
)

// AssemblyError represents a document assembly failure
type AssemblyError struct {
	Message string
	Cause   error
}

func (e *AssemblyError) Error() string {
	if e.Cause != nil {
		return "document assembly failed: " + e.Message + ": " + e.Cause.Error()
	}
	return "document assembly failed: " + e.Message
}

func (e *AssemblyError) Unwrap() error {
	return e.Cause
}
