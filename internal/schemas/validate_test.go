package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResumeDocument_Valid(t *testing.T) {
	doc := `{
		"name": "Jane Doe",
		"sections": [
			{"title": "SKILLS", "items": ["Go", "SQL"]},
			{"title": "EXPERIENCE", "items": [{"heading": "Acme", "description": "Built tools"}]}
		]
	}`

	assert.NoError(t, ValidateResumeDocument([]byte(doc)))
}

func TestValidateResumeDocument_MissingRequired(t *testing.T) {
	err := ValidateResumeDocument([]byte(`{"summary": "no name or sections"}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Errors, 2)
}

func TestValidateResumeDocument_WrongTypes(t *testing.T) {
	err := ValidateResumeDocument([]byte(`{"name": 42, "sections": "nope"}`))
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateResumeDocument_NotJSON(t *testing.T) {
	err := ValidateResumeDocument([]byte("plain text, not JSON"))
	assert.Error(t, err)
}

func TestValidateResumeDocument_EmptySections(t *testing.T) {
	assert.NoError(t, ValidateResumeDocument([]byte(`{"name": "Jane Doe", "sections": []}`)))
}
