package resume

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionUnmarshal_SkillsVariant(t *testing.T) {
	data := `{"title": "SKILLS", "items": ["Go", "SQL", "Docker"]}`

	var section Section
	err := json.Unmarshal([]byte(data), &section)
	require.NoError(t, err)

	assert.Equal(t, KindSkills, section.Kind)
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, section.Skills)
	assert.Empty(t, section.Items)
}

func TestSectionUnmarshal_SkillsCaseInsensitive(t *testing.T) {
	for _, title := range []string{"skills", "Skills", "SKILLS", " skills "} {
		var section Section
		err := json.Unmarshal([]byte(`{"title": "`+title+`", "items": ["Go"]}`), &section)
		require.NoError(t, err)
		assert.Equal(t, KindSkills, section.Kind, "title %q", title)
	}
}

func TestSectionUnmarshal_DetailVariant(t *testing.T) {
	data := `{
		"title": "EXPERIENCE",
		"items": [{"heading": "Acme Corp", "subheading": "Intern", "description": "Built tools"}]
	}`

	var section Section
	err := json.Unmarshal([]byte(data), &section)
	require.NoError(t, err)

	assert.Equal(t, KindDetail, section.Kind)
	require.Len(t, section.Items, 1)
	assert.Equal(t, "Acme Corp", section.Items[0].Heading)
	assert.Equal(t, "Intern", section.Items[0].Subheading)
	assert.Equal(t, "Built tools", section.Items[0].Description)
}

func TestSectionUnmarshal_WrongItemShape(t *testing.T) {
	var section Section
	err := json.Unmarshal([]byte(`{"title": "SKILLS", "items": [{"heading": "x"}]}`), &section)
	assert.Error(t, err)

	err = json.Unmarshal([]byte(`{"title": "EXPERIENCE", "items": ["plain string"]}`), &section)
	assert.Error(t, err)
}

func TestSectionUnmarshal_MissingItems(t *testing.T) {
	var section Section
	err := json.Unmarshal([]byte(`{"title": "PROJECTS"}`), &section)
	require.NoError(t, err)
	assert.Equal(t, KindDetail, section.Kind)
	assert.Empty(t, section.Items)
}

func TestSectionMarshal_RoundTrip(t *testing.T) {
	sections := []Section{
		{Title: "SKILLS", Kind: KindSkills, Skills: []string{"Go", "SQL"}},
		{Title: "EXPERIENCE", Kind: KindDetail, Items: []Item{{Heading: "Acme"}}},
	}

	data, err := json.Marshal(sections)
	require.NoError(t, err)

	var decoded []Section
	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)
	assert.Equal(t, sections, decoded)
}

func TestContactLine(t *testing.T) {
	tests := []struct {
		name     string
		contact  Contact
		expected string
	}{
		{
			name:     "all fields",
			contact:  Contact{Phone: "555-1234", Email: "jane@example.com", Address: "Springfield"},
			expected: "555-1234 | jane@example.com | Springfield",
		},
		{
			name:     "missing middle field",
			contact:  Contact{Phone: "555-1234", Address: "Springfield"},
			expected: "555-1234 | Springfield",
		},
		{
			name:     "empty",
			contact:  Contact{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.contact.ContactLine())
		})
	}
}

func TestFindSection(t *testing.T) {
	doc := &Document{
		Sections: []Section{
			{Title: "Education", Kind: KindDetail},
			{Title: "PROJECTS", Kind: KindDetail},
		},
	}

	assert.NotNil(t, doc.FindSection("projects"))
	assert.NotNil(t, doc.FindSection("EDUCATION"))
	assert.Nil(t, doc.FindSection("AWARDS"))
}
