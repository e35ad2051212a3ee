package document

import "strings"

// joinSkills joins skill strings with the bullet separator, skipping blanks.
func joinSkills(skills []string) string {
	var kept []string
	for _, skill := range skills {
		if strings.TrimSpace(skill) != "" {
			kept = append(kept, skill)
		}
	}
	return strings.Join(kept, skillSeparator)
}

// splitParagraphs splits free text into paragraphs on blank lines. Single
// newlines inside a paragraph are kept as spaces.
func splitParagraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var paragraphs []string
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		paragraphs = append(paragraphs, strings.ReplaceAll(block, "\n", " "))
	}
	return paragraphs
}
