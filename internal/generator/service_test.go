package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/resume"
)

// stubClient is a recording llm.Client stub.
type stubClient struct {
	response string
	err      error

	calls   int
	prompts []string
	tiers   []llm.ModelTier
}

func (c *stubClient) GenerateContent(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	c.record(prompt, tier)
	return c.response, c.err
}

func (c *stubClient) GenerateJSON(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	c.record(prompt, tier)
	return c.response, c.err
}

func (c *stubClient) Close() error { return nil }

func (c *stubClient) record(prompt string, tier llm.ModelTier) {
	c.calls++
	c.prompts = append(c.prompts, prompt)
	c.tiers = append(c.tiers, tier)
}

const stubSchema = `{
	"name": "Jane Doe",
	"summary": "Recent graduate.",
	"sections": [
		{"title": "SKILLS", "items": ["Go"]},
		{"title": "EXPERIENCE", "items": [{"heading": "Acme Corp"}]}
	],
	"atsScore": "85%",
	"suggestions": "Add metrics."
}`

func TestGenerateResume_Success(t *testing.T) {
	client := &stubClient{response: stubSchema}
	svc := New(client, 0)

	result, err := svc.GenerateResume(context.Background(), "Jane Doe, B.Sc. Computer Science, internship at Acme Corp", "")
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", result.Doc.Name)
	assert.Equal(t, "85%", result.Doc.ATSScore)
	assert.Contains(t, result.HTML, "ABOUT ME")
	assert.Equal(t, 1, client.calls)
	assert.Equal(t, llm.TierStandard, client.tiers[0])
	assert.Contains(t, client.prompts[0], "Jane Doe, B.Sc. Computer Science")
}

func TestGenerateResume_FencedResponse(t *testing.T) {
	client := &stubClient{response: "```json\n" + stubSchema + "\n```"}
	svc := New(client, 0)

	result, err := svc.GenerateResume(context.Background(), "background", "")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", result.Doc.Name)
}

func TestGenerateResume_NonJSONResponse(t *testing.T) {
	client := &stubClient{response: "Sorry, I cannot help with that."}
	svc := New(client, 0)

	_, err := svc.GenerateResume(context.Background(), "background", "")
	require.Error(t, err)

	var malformed *resume.MalformedSchemaError
	assert.ErrorAs(t, err, &malformed)
}

func TestGenerateResume_SchemaViolation(t *testing.T) {
	// valid JSON, wrong shape
	client := &stubClient{response: `{"name": 42, "sections": "nope"}`}
	svc := New(client, 0)

	_, err := svc.GenerateResume(context.Background(), "background", "")
	var malformed *resume.MalformedSchemaError
	assert.ErrorAs(t, err, &malformed)
}

func TestGenerateResume_UpstreamError(t *testing.T) {
	upstream := &llm.UpstreamError{Model: "test-model", Cause: errors.New("quota exceeded")}
	client := &stubClient{err: upstream}
	svc := New(client, 0)

	_, err := svc.GenerateResume(context.Background(), "background", "")
	assert.ErrorIs(t, err, upstream)
}

func TestImproveText(t *testing.T) {
	client := &stubClient{response: "  Spearheaded internal tooling efforts.\n"}
	svc := New(client, 0)

	improved, err := svc.ImproveText(context.Background(), "Worked on tools")
	require.NoError(t, err)

	assert.Equal(t, "Spearheaded internal tooling efforts.", improved)
	assert.Equal(t, llm.TierLite, client.tiers[0])
}

func TestGenerateCoverLetter(t *testing.T) {
	client := &stubClient{response: "Dear Hiring Manager, ..."}
	svc := New(client, 0)

	letter, err := svc.GenerateCoverLetter(context.Background(), "background", "role", `{"name":"Jane Doe"}`)
	require.NoError(t, err)

	assert.Equal(t, "Dear Hiring Manager, ...", letter)
	assert.Contains(t, client.prompts[0], `{"name":"Jane Doe"}`)
}

func TestGenerateInterviewPrep(t *testing.T) {
	client := &stubClient{response: "1. Tell me about yourself..."}
	svc := New(client, 0)

	notes, err := svc.GenerateInterviewPrep(context.Background(), "background", "")
	require.NoError(t, err)
	assert.NotEmpty(t, notes)
}
