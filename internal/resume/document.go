// Package resume defines the résumé document schema produced by the model
// and consumed by every renderer.
package resume

import (
	"encoding/json"
	"fmt"
	"strings"
)

// skillsTitle is the section title that selects the skills variant.
// Comparison is case-insensitive.
const skillsTitle = "SKILLS"

// Contact holds the optional contact details rendered in the document header.
type Contact struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// Item is a single entry in a detail section (experience, education, ...).
// All fields are optional; renderers treat missing fields as empty.
type Item struct {
	Heading     string `json:"heading,omitempty"`
	Subheading  string `json:"subheading,omitempty"`
	Description string `json:"description,omitempty"`
}

// SectionKind discriminates the two section variants.
type SectionKind string

// Section kinds. The variant is decided once, when the section is decoded,
// instead of re-checking the title at every render site.
const (
	// KindSkills marks a section whose items are plain skill strings
	KindSkills SectionKind = "skills"
	// KindDetail marks a section whose items are structured records
	KindDetail SectionKind = "detail"
)

// Section is a named, ordered group of résumé content. On the wire the items
// array is either plain strings (skills) or structured records (everything
// else), keyed by the section title; decoding resolves that into an explicit
// tagged variant.
type Section struct {
	Title  string
	Kind   SectionKind
	Skills []string // populated when Kind == KindSkills
	Items  []Item   // populated when Kind == KindDetail
}

// sectionWire is the JSON shape of a section as the model emits it.
type sectionWire struct {
	Title string          `json:"title"`
	Items json.RawMessage `json:"items"`
}

// UnmarshalJSON decodes a section and resolves its variant from the title.
func (s *Section) UnmarshalJSON(data []byte) error {
	var wire sectionWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	s.Title = wire.Title
	if strings.EqualFold(strings.TrimSpace(wire.Title), skillsTitle) {
		s.Kind = KindSkills
		if len(wire.Items) == 0 {
			return nil
		}
		if err := json.Unmarshal(wire.Items, &s.Skills); err != nil {
			return fmt.Errorf("section %q: items must be strings: %w", wire.Title, err)
		}
		return nil
	}

	s.Kind = KindDetail
	if len(wire.Items) == 0 {
		return nil
	}
	if err := json.Unmarshal(wire.Items, &s.Items); err != nil {
		return fmt.Errorf("section %q: items must be records: %w", wire.Title, err)
	}
	return nil
}

// MarshalJSON emits the wire shape the web client and the model both use.
func (s Section) MarshalJSON() ([]byte, error) {
	var items any
	switch s.Kind {
	case KindSkills:
		items = s.Skills
	default:
		items = s.Items
	}
	return json.Marshal(struct {
		Title string `json:"title"`
		Items any    `json:"items"`
	}{Title: s.Title, Items: items})
}

// Document is the parsed résumé schema. It is constructed once per request
// from model output, consumed by one renderer, then discarded.
type Document struct {
	Name        string    `json:"name"`
	Title       string    `json:"title,omitempty"`
	Contact     Contact   `json:"contact,omitempty"`
	Summary     string    `json:"summary,omitempty"`
	Sections    []Section `json:"sections"`
	ATSScore    string    `json:"atsScore,omitempty"`
	Suggestions string    `json:"suggestions,omitempty"`
}

// ContactLine joins the populated contact fields with a separator glyph for
// single-line display. Empty fields are skipped, not rendered as gaps.
func (c Contact) ContactLine() string {
	var parts []string
	for _, v := range []string{c.Phone, c.Email, c.Address} {
		if strings.TrimSpace(v) != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " | ")
}

// FindSection returns the first section whose title matches name
// case-insensitively, or nil when absent.
func (d *Document) FindSection(name string) *Section {
	for i := range d.Sections {
		if strings.EqualFold(strings.TrimSpace(d.Sections[i].Title), name) {
			return &d.Sections[i]
		}
	}
	return nil
}
