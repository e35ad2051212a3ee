// Package generator orchestrates prompt building, model calls and response
// parsing for each résumé-studio feature. Every feature is a single upstream
// call with no shared state, so the service is safe for concurrent use.
package generator

import (
	"context"
	"strings"
	"time"

	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/prompts"
	"github.com/jonathan/resume-studio/internal/rendering"
	"github.com/jonathan/resume-studio/internal/resume"
	"github.com/jonathan/resume-studio/internal/schemas"
)

// DefaultUpstreamTimeout bounds a single generation call when the
// configuration does not override it.
const DefaultUpstreamTimeout = 60 * time.Second

// Service combines the prompt builder, the model client and the schema
// parser. It accepts the llm.Client interface so tests can substitute a
// recording stub.
type Service struct {
	client  llm.Client
	timeout time.Duration
}

// New creates a generation service. A non-positive timeout falls back to
// DefaultUpstreamTimeout.
func New(client llm.Client, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultUpstreamTimeout
	}
	return &Service{client: client, timeout: timeout}
}

// ResumeResult bundles everything /api/generate returns to the client.
type ResumeResult struct {
	Doc  *resume.Document
	HTML string
}

// GenerateResume asks the model for a résumé schema from the candidate
// background, validates and parses the response, and renders the preview
// HTML. jobDescription may be empty.
func (s *Service) GenerateResume(ctx context.Context, studentData, jobDescription string) (*ResumeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.client.GenerateJSON(ctx, prompts.Resume(studentData, jobDescription), llm.TierStandard)
	if err != nil {
		return nil, err
	}

	cleaned := llm.CleanJSONBlock(raw)
	if err := schemas.ValidateResumeDocument([]byte(cleaned)); err != nil {
		return nil, &resume.MalformedSchemaError{Reason: "output does not match the resume schema", Cause: err}
	}

	doc, err := resume.Parse(cleaned)
	if err != nil {
		return nil, err
	}

	return &ResumeResult{Doc: doc, HTML: rendering.RenderHTML(doc)}, nil
}

// ImproveText rewrites a text snippet for impact.
func (s *Service) ImproveText(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	improved, err := s.client.GenerateContent(ctx, prompts.Improve(text), llm.TierLite)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(improved), nil
}

// GenerateCoverLetter writes a cover letter from the candidate background,
// the target role and the generated résumé schema JSON.
func (s *Service) GenerateCoverLetter(ctx context.Context, studentData, jobDescription, resumeJSON string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	letter, err := s.client.GenerateContent(ctx, prompts.CoverLetter(studentData, jobDescription, resumeJSON), llm.TierStandard)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(letter), nil
}

// GenerateInterviewPrep produces interview-preparation notes. jobDescription
// may be empty.
func (s *Service) GenerateInterviewPrep(ctx context.Context, studentData, jobDescription string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	notes, err := s.client.GenerateContent(ctx, prompts.InterviewPrep(studentData, jobDescription), llm.TierStandard)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(notes), nil
}
