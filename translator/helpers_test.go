package translator

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func isValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// fakeRest scripts RestClient responses for orchestration tests.
type fakeRest struct {
	uploadHandle DocumentHandle
	uploadErr    error
	uploadCalls  int
	uploadParams []Param

	statuses    []DocumentStatus
	statusErr   error
	statusCalls int

	downloadBody string
	downloadErr  error
	downloads    int

	glossaries     []GlossaryInfo
	glossaryErr    error
	glossaryCalls  int
	deletedPaths   []string
	lastFormParams []Param
}

func (f *fakeRest) GetJSON(_ context.Context, path string, _ []Param, out any) error {
	if strings.HasPrefix(path, "/v2/glossaries/") {
		f.glossaryCalls++
		if f.glossaryErr != nil {
			return f.glossaryErr
		}
		if len(f.glossaries) == 0 {
			return &APIError{StatusCode: 404, Message: "glossary not found"}
		}
		info := f.glossaries[0]
		if len(f.glossaries) > 1 {
			f.glossaries = f.glossaries[1:]
		}
		if target, ok := out.(*GlossaryInfo); ok {
			*target = info
		}
		return nil
	}
	return &APIError{StatusCode: 404, Message: "unexpected GET " + path}
}

func (f *fakeRest) PostForm(_ context.Context, path string, params []Param, out any) error {
	f.lastFormParams = params
	if strings.HasPrefix(path, "/v2/document/") {
		f.statusCalls++
		if f.statusErr != nil {
			return f.statusErr
		}
		if f.statusCalls > len(f.statuses) {
			return &APIError{Message: "status sequence exhausted"}
		}
		if target, ok := out.(*DocumentStatus); ok {
			*target = f.statuses[f.statusCalls-1]
		}
		return nil
	}
	return &APIError{StatusCode: 404, Message: "unexpected POST " + path}
}

func (f *fakeRest) Upload(_ context.Context, _ string, params []Param, _ string, content io.Reader, out any) error {
	f.uploadCalls++
	f.uploadParams = params
	_, _ = io.Copy(io.Discard, content)
	if f.uploadErr != nil {
		return f.uploadErr
	}
	if target, ok := out.(*DocumentHandle); ok {
		*target = f.uploadHandle
	}
	return nil
}

func (f *fakeRest) Download(_ context.Context, _ string, _ []Param, sink io.Writer) error {
	f.downloads++
	if f.downloadErr != nil {
		return f.downloadErr
	}
	_, err := io.WriteString(sink, f.downloadBody)
	return err
}

func (f *fakeRest) Delete(_ context.Context, path string) error {
	f.deletedPaths = append(f.deletedPaths, path)
	return nil
}

// newTestClient wires a client around a scripted RestClient and records
// every sleep instead of waiting.
func newTestClient(t *testing.T, rest RestClient) (*Client, *[]time.Duration) {
	t.Helper()

	sleeps := &[]time.Duration{}
	client := &Client{
		rest: rest,
		log:  zerolog.Nop(),
		sleep: func(ctx context.Context, d time.Duration) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			*sleeps = append(*sleeps, d)
			return nil
		},
	}
	return client, sleeps
}

func intPtr(v int) *int {
	return &v
}
