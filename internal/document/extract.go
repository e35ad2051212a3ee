package document

import (
	"fmt"
	"html"
	"io"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var xmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// ExtractText reads an uploaded .docx résumé and returns its plain text,
// one line per document paragraph. The extracted text is meant to be fed
// back into generation as candidate background.
func ExtractText(r io.ReaderAt, size int64) (string, error) {
	doc, err := docx.ReadDocxFromMemory(r, size)
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return normalizeDocxText(doc.Editable().GetContent()), nil
}

// normalizeDocxText converts raw document.xml content into plain text:
// paragraph ends become newlines, remaining tags are dropped, entities are
// decoded, and blank lines are collapsed.
func normalizeDocxText(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = xmlTagPattern.ReplaceAllString(content, "")
	content = html.UnescapeString(content)

	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
