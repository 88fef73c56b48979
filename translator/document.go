package translator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DocumentHandle identifies one in-flight document translation job. It is
// issued by a successful upload and only ever round-tripped back to the
// API. DocumentKey is a bearer credential for the job; it must never be
// logged.
type DocumentHandle struct {
	DocumentID  string `json:"document_id"`
	DocumentKey string `json:"document_key"`
}

// DocumentStatus is a transient snapshot of one document job. Each poll
// produces a fresh value superseding the previous one. OK=false is
// terminal; Done=true is terminal success and makes download valid.
type DocumentStatus struct {
	OK               bool   `json:"ok"`
	Done             bool   `json:"done"`
	SecondsRemaining *int   `json:"seconds_remaining,omitempty"`
	ErrorMessage     string `json:"error_message,omitempty"`
}

const (
	minPollDelay = 1 * time.Second
	maxPollDelay = 60 * time.Second
)

// UploadDocument submits a document for translation and returns the handle
// for the new job. Parameter validation happens before any network call.
func (c *Client) UploadDocument(ctx context.Context, content io.Reader, filename, sourceLang, targetLang string, opts *TranslationOptions) (DocumentHandle, error) {
	if strings.TrimSpace(filename) == "" {
		return DocumentHandle{}, newValidationError("document filename is required")
	}
	params, err := documentParams(sourceLang, targetLang, opts)
	if err != nil {
		return DocumentHandle{}, err
	}

	var handle DocumentHandle
	if err := c.rest.Upload(ctx, "/v2/document/", params, filename, content, &handle); err != nil {
		return DocumentHandle{}, err
	}
	if handle.DocumentID == "" || handle.DocumentKey == "" {
		return DocumentHandle{}, &APIError{Message: "upload response missing document handle"}
	}

	c.log.Debug().Str("document_id", handle.DocumentID).Msg("document uploaded")
	return handle, nil
}

// GetDocumentStatus fetches one status snapshot for the job.
func (c *Client) GetDocumentStatus(ctx context.Context, handle DocumentHandle) (DocumentStatus, error) {
	var status DocumentStatus
	err := c.rest.PostForm(
		ctx,
		"/v2/document/"+url.PathEscape(handle.DocumentID),
		[]Param{{"document_key", handle.DocumentKey}},
		&status,
	)
	if err != nil {
		return DocumentStatus{}, err
	}
	return status, nil
}

// WaitUntilDone polls the job until it reports done, sleeping an adaptive
// interval derived from the server's remaining-time hint between polls.
// A status with OK=false ends the wait with an *APIError carrying the
// reported error message. The loop has no iteration bound; cancel the
// context to abort a pending sleep or in-flight request.
func (c *Client) WaitUntilDone(ctx context.Context, handle DocumentHandle) error {
	for {
		status, err := c.GetDocumentStatus(ctx, handle)
		if err != nil {
			return err
		}

		switch pollDecision(status) {
		case pollSucceed:
			return nil
		case pollFail:
			message := strings.TrimSpace(status.ErrorMessage)
			if message == "" {
				message = "document translation failed"
			}
			return &APIError{Message: message}
		}

		if err := c.sleep(ctx, pollDelay(status.SecondsRemaining)); err != nil {
			return err
		}
	}
}

// DownloadDocument streams the translated result into sink. The result
// endpoint reports a distinguished not-ready condition (HTTP 503) before
// the job is done; that surfaces as *DocumentNotReadyError rather than a
// generic *APIError.
func (c *Client) DownloadDocument(ctx context.Context, handle DocumentHandle, sink io.Writer) error {
	err := c.rest.Download(
		ctx,
		"/v2/document/"+url.PathEscape(handle.DocumentID)+"/result",
		[]Param{{"document_key", handle.DocumentKey}},
		sink,
	)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusServiceUnavailable {
		return &DocumentNotReadyError{DocumentID: handle.DocumentID}
	}
	return err
}

// TranslateDocument runs upload, wait and download as one pipeline behind
// a single error boundary. Any stage failure comes back as a
// *DocumentTranslationError carrying the handle obtained so far; callers
// holding a handle can resume with WaitUntilDone and DownloadDocument
// without uploading again.
func (c *Client) TranslateDocument(ctx context.Context, content io.Reader, sink io.Writer, filename, sourceLang, targetLang string, opts *TranslationOptions) error {
	var handle *DocumentHandle
	err := func() error {
		uploaded, err := c.UploadDocument(ctx, content, filename, sourceLang, targetLang, opts)
		if err != nil {
			return err
		}
		handle = &uploaded

		if err := c.WaitUntilDone(ctx, uploaded); err != nil {
			return err
		}
		return c.DownloadDocument(ctx, uploaded, sink)
	}()
	if err != nil {
		return &DocumentTranslationError{
			Message: "document translation failed",
			Handle:  handle,
			Err:     err,
		}
	}
	return nil
}

// TranslateDocumentToFile translates the document at inputPath into a new
// file at outputPath. When any stage fails the partially written output is
// removed best-effort, so a failed run never leaves a truncated result on
// disk; the original error still propagates.
func (c *Client) TranslateDocumentToFile(ctx context.Context, inputPath, outputPath, sourceLang, targetLang string, opts *TranslationOptions) error {
	input, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open input document: %w", err)
	}
	defer input.Close()

	output, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output document: %w", err)
	}

	translateErr := c.TranslateDocument(ctx, input, output, filepath.Base(inputPath), sourceLang, targetLang, opts)
	closeErr := output.Close()
	if translateErr != nil {
		_ = os.Remove(outputPath)
		return translateErr
	}
	if closeErr != nil {
		_ = os.Remove(outputPath)
		return fmt.Errorf("close output document: %w", closeErr)
	}
	return nil
}

type pollVerdict int

const (
	pollContinue pollVerdict = iota
	pollSucceed
	pollFail
)

// pollDecision maps one status snapshot to the next loop action. Kept pure
// so the decision table is testable without timers or I/O.
func pollDecision(status DocumentStatus) pollVerdict {
	switch {
	case !status.OK:
		return pollFail
	case status.Done:
		return pollSucceed
	default:
		return pollContinue
	}
}

// pollDelay converts the server's remaining-time hint into the next poll
// wait: half the hint plus one second, clamped to [1s, 60s]. Halving
// re-polls before the estimated completion; the floor avoids busy-polling
// and the cap keeps very long jobs checked about once a minute.
func pollDelay(secondsRemaining *int) time.Duration {
	hint := 0
	if secondsRemaining != nil && *secondsRemaining > 0 {
		hint = *secondsRemaining
	}
	delay := time.Duration(hint/2+1) * time.Second
	if delay < minPollDelay {
		return minPollDelay
	}
	if delay > maxPollDelay {
		return maxPollDelay
	}
	return delay
}
