package translator

import "fmt"

// ValidationError reports invalid caller input detected before any network
// call. Requests failing validation are never sent and never retried.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid request: " + e.Reason
}

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// APIError reports a non-2xx server response. Message carries the error
// body reported by the API when one was present.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	switch {
	case e.Message == "":
		return fmt.Sprintf("API error: status %d", e.StatusCode)
	case e.StatusCode == 0:
		return "API error: " + e.Message
	default:
		return fmt.Sprintf("API error: status %d: %s", e.StatusCode, e.Message)
	}
}

// DocumentNotReadyError reports a result download attempted before the
// document job reached its done state.
type DocumentNotReadyError struct {
	DocumentID string
}

func (e *DocumentNotReadyError) Error() string {
	return fmt.Sprintf("document %s is not ready for download", e.DocumentID)
}

// DocumentTranslationError wraps any failure of the composed
// upload/wait/download pipeline. Handle is nil only when the failure
// happened during or before the upload; otherwise it equals the handle the
// upload returned, and callers can resume with WaitUntilDone and
// DownloadDocument without uploading again.
type DocumentTranslationError struct {
	Message string
	Handle  *DocumentHandle
	Err     error
}

func (e *DocumentTranslationError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *DocumentTranslationError) Unwrap() error {
	return e.Err
}
