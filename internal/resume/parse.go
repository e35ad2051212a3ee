package resume

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-studio/internal/llm"
)

// MalformedSchemaError indicates model output could not be parsed into the
// résumé schema. It is expected-frequency, not exceptional: models sometimes
// ignore formatting instructions, so callers surface it as a user-facing
// error rather than crashing.
type MalformedSchemaError struct {
	Reason string
	Cause  error
}

func (e *MalformedSchemaError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed resume schema: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("malformed resume schema: %s", e.Reason)
}

func (e *MalformedSchemaError) Unwrap() error {
	return e.Cause
}

// Parse converts raw model text into a Document. Code fence wrappers are
// stripped before decoding (stripping is idempotent, so already-clean JSON
// passes through unchanged). The top-level name and sections fields are
// required; everything else is optional.
func Parse(text string) (*Document, error) {
	cleaned := llm.CleanJSONBlock(text)
	if cleaned == "" {
		return nil, &MalformedSchemaError{Reason: "empty model output"}
	}

	var doc Document
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, &MalformedSchemaError{Reason: "output is not valid JSON", Cause: err}
	}

	if doc.Name == "" {
		return nil, &MalformedSchemaError{Reason: "missing required field: name"}
	}
	if doc.Sections == nil {
		return nil, &MalformedSchemaError{Reason: "missing required field: sections"}
	}

	return &doc, nil
}
