package translator

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func newTestRest(t *testing.T, handler http.Handler) *httpRestClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return newHTTPRestClient(server.URL, "test-key", server.Client(), zerolog.Nop())
}

func TestPostForm_AuthHeaderAndOrderedBody(t *testing.T) {
	t.Parallel()

	var gotAuth, gotBody, gotContentType string
	rest := newTestRest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		_, _ = w.Write([]byte(`{"ok":true,"done":false}`))
	}))

	var status DocumentStatus
	params := []Param{
		{"target_lang", "de"},
		{"source_lang", "en"},
		{"document_key", "key with spaces"},
	}
	if err := rest.PostForm(context.Background(), "/v2/document/abc", params, &status); err != nil {
		t.Fatalf("post form: %v", err)
	}

	if gotAuth != "Glotta-Auth-Key test-key" {
		t.Fatalf("unexpected auth header: %q", gotAuth)
	}
	if gotContentType != "application/x-www-form-urlencoded" {
		t.Fatalf("unexpected content type: %q", gotContentType)
	}
	if gotBody != "target_lang=de&source_lang=en&document_key=key+with+spaces" {
		t.Fatalf("parameter order not preserved: %q", gotBody)
	}
	if !status.OK || status.Done {
		t.Fatalf("unexpected decoded status: %+v", status)
	}
}

func TestAPIErrorExtraction(t *testing.T) {
	t.Parallel()

	rest := newTestRest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"wrong auth key"}`))
	}))

	err := rest.PostForm(context.Background(), "/v2/translate", nil, nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusForbidden || apiErr.Message != "wrong auth key" {
		t.Fatalf("unexpected APIError: %+v", apiErr)
	}
}

func TestAPIErrorExtraction_NonJSONBody(t *testing.T) {
	t.Parallel()

	rest := newTestRest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable\n"))
	}))

	err := rest.GetJSON(context.Background(), "/v2/usage", nil, &Usage{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway || apiErr.Message != "upstream unavailable" {
		t.Fatalf("unexpected APIError: %+v", apiErr)
	}
}

func TestUpload_MultipartFieldsAndFile(t *testing.T) {
	t.Parallel()

	var gotTarget, gotFilename, gotFile string
	rest := newTestRest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		gotTarget = r.FormValue("target_lang")
		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()
		gotFilename = header.Filename
		content, _ := io.ReadAll(file)
		gotFile = string(content)
		_, _ = w.Write([]byte(`{"document_id":"doc-1","document_key":"key-1"}`))
	}))

	var handle DocumentHandle
	params := []Param{{"target_lang", "de"}}
	err := rest.Upload(context.Background(), "/v2/document/", params, "report.txt", bytes.NewReader([]byte("contents")), &handle)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if gotTarget != "de" || gotFilename != "report.txt" || gotFile != "contents" {
		t.Fatalf("unexpected multipart request: target=%q filename=%q file=%q", gotTarget, gotFilename, gotFile)
	}
	if handle.DocumentID != "doc-1" || handle.DocumentKey != "key-1" {
		t.Fatalf("unexpected handle: %+v", handle)
	}
}

func TestDownload_StreamsBodyAndKeepsStatusCode(t *testing.T) {
	t.Parallel()

	notReady := true
	rest := newTestRest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if notReady {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"message":"document is still translating"}`))
			return
		}
		_, _ = w.Write([]byte{0x00, 0x01, 0x02})
	}))

	var sink bytes.Buffer
	err := rest.Download(context.Background(), "/v2/document/doc-1/result", []Param{{"document_key", "k"}}, &sink)
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 APIError, got %v", err)
	}

	notReady = false
	sink.Reset()
	if err := rest.Download(context.Background(), "/v2/document/doc-1/result", []Param{{"document_key", "k"}}, &sink); err != nil {
		t.Fatalf("download: %v", err)
	}
	if !bytes.Equal(sink.Bytes(), []byte{0x00, 0x01, 0x02}) {
		t.Fatalf("unexpected downloaded bytes: %v", sink.Bytes())
	}
}

func TestDelete_ChecksStatus(t *testing.T) {
	t.Parallel()

	rest := newTestRest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.Error(w, "unexpected method", http.StatusMethodNotAllowed)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	if err := rest.Delete(context.Background(), "/v2/glossaries/g-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
}
