package llm

import "fmt"

// UpstreamError indicates the generation service call itself failed
// (network, auth, quota). It wraps the underlying transport error.
type UpstreamError struct {
	Model string
	Cause error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("generation request to %s failed: %v", e.Model, e.Cause)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// EmptyResponseError indicates the generation service answered but returned
// no candidate or no usable text.
type EmptyResponseError struct {
	Model  string
	Reason string
}

func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("empty response from %s: %s", e.Model, e.Reason)
}
