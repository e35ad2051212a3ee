// Package server provides the HTTP REST API for the resume studio.
package server

import (
	"fmt"
	"net/http"

	"github.com/jonathan/resume-studio/internal/document"
	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/rendering"
	"github.com/jonathan/resume-studio/internal/resume"
)

// Stable machine-readable error kinds carried in every error body, so the
// client can distinguish failure classes without parsing free-form messages.
const (
	KindValidation      = "validation"
	KindUpstreamFailure = "upstream_failure"
	KindEmptyResponse   = "empty_response"
	KindMalformedSchema = "malformed_schema"
	KindRenderFailure   = "render_failure"
	KindInternal        = "internal"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// Classify maps an error to its HTTP status and stable error kind. Upstream
// problems are 502s since the failure belongs to the generation service;
// rendering problems are plain 500s.
func Classify(err error) (int, string) {
	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest, KindValidation
	case *llm.UpstreamError:
		return http.StatusBadGateway, KindUpstreamFailure
	case *llm.EmptyResponseError:
		return http.StatusBadGateway, KindEmptyResponse
	case *resume.MalformedSchemaError:
		return http.StatusBadGateway, KindMalformedSchema
	case *rendering.RenderError, *rendering.TemplateError, *document.AssemblyError:
		return http.StatusInternalServerError, KindRenderFailure
	default:
		return http.StatusInternalServerError, KindInternal
	}
}

// publicMessage returns the user-facing message for an error. Validation
// details are client-caused and safe to echo; everything else gets a generic
// message while the detail goes to the log.
func publicMessage(err error, kind string) string {
	switch kind {
	case KindValidation:
		return err.Error()
	case KindUpstreamFailure, KindEmptyResponse:
		return "generation service is unavailable, try again shortly"
	case KindMalformedSchema:
		return "the model returned an unexpected response, try again"
	case KindRenderFailure:
		return "failed to build the document"
	default:
		return "internal error"
	}
}
