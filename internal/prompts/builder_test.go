package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResume_InterpolatesStudentData(t *testing.T) {
	prompt := Resume("Jane Doe, B.Sc. Computer Science", "")

	assert.Contains(t, prompt, "Jane Doe, B.Sc. Computer Science")
	assert.Contains(t, prompt, `"sections"`)
	assert.Contains(t, prompt, `"atsScore"`)
	assert.NotContains(t, prompt, "{{.")
}

func TestResume_WithJobDescription(t *testing.T) {
	prompt := Resume("Jane Doe", "Backend engineer, Go required")

	assert.Contains(t, prompt, "Backend engineer, Go required")
	assert.Contains(t, prompt, "Tailor the resume")
}

func TestResume_WithoutJobDescription(t *testing.T) {
	prompt := Resume("Jane Doe", "")

	assert.NotContains(t, prompt, "Tailor the resume")
	assert.NotContains(t, prompt, "{{.")
}

func TestImprove(t *testing.T) {
	prompt := Improve("Worked on a team project")

	assert.Contains(t, prompt, "Worked on a team project")
	assert.Contains(t, prompt, "rewritten text")
	assert.NotContains(t, prompt, "{{.")
}

func TestCoverLetter(t *testing.T) {
	prompt := CoverLetter("Jane Doe", "Backend role", `{"name": "Jane Doe"}`)

	assert.Contains(t, prompt, "Jane Doe")
	assert.Contains(t, prompt, "Backend role")
	assert.Contains(t, prompt, `{"name": "Jane Doe"}`)
	assert.NotContains(t, prompt, "{{.")
}

func TestInterviewPrep(t *testing.T) {
	withJob := InterviewPrep("Jane Doe", "Backend role")
	withoutJob := InterviewPrep("Jane Doe", "")

	assert.Contains(t, withJob, "Backend role")
	assert.NotContains(t, withoutJob, "target role:")
	assert.NotContains(t, withoutJob, "{{.")
}

func TestFormat_ReplacesAllOccurrences(t *testing.T) {
	result := Format("{{.A}} and {{.A}} and {{.B}}", map[string]string{"A": "x", "B": "y"})
	assert.Equal(t, "x and x and y", result)
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get(featuresFile, "no-such-feature")
	assert.Error(t, err)
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "resume")
	assert.Error(t, err)
}

func TestResumePrompt_RequestsBareJSON(t *testing.T) {
	prompt := Resume("background", "")
	assert.True(t, strings.Contains(prompt, "ONLY a JSON object"))
	assert.Contains(t, prompt, "no code fences")
}
