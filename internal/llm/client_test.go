package llm

import (
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextFromResponse_Success(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []genai.Part{genai.Text("first "), genai.Text("second")},
				},
			},
		},
	}

	text, err := extractTextFromResponse(resp, "test-model")
	require.NoError(t, err)
	assert.Equal(t, "first second", text)
}

func TestExtractTextFromResponse_NoCandidates(t *testing.T) {
	resp := &genai.GenerateContentResponse{}

	_, err := extractTextFromResponse(resp, "test-model")
	require.Error(t, err)

	var emptyErr *EmptyResponseError
	assert.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, "test-model", emptyErr.Model)
}

func TestExtractTextFromResponse_NoContent(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: nil}},
	}

	_, err := extractTextFromResponse(resp, "test-model")
	var emptyErr *EmptyResponseError
	assert.ErrorAs(t, err, &emptyErr)
}

func TestExtractTextFromResponse_WhitespaceOnly(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []genai.Part{genai.Text("   \n")},
				},
			},
		},
	}

	_, err := extractTextFromResponse(resp, "test-model")
	var emptyErr *EmptyResponseError
	assert.ErrorAs(t, err, &emptyErr)
}

func TestUpstreamError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &UpstreamError{Model: "test-model", Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "test-model")
}
