package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RestClient is the transport collaborator behind the SDK: authenticated
// GET/POST/upload/download/delete with status-code checking. Implementations
// must be safe for concurrent use. Non-2xx responses surface as *APIError.
type RestClient interface {
	GetJSON(ctx context.Context, path string, query []Param, out any) error
	PostForm(ctx context.Context, path string, params []Param, out any) error
	Upload(ctx context.Context, path string, params []Param, filename string, content io.Reader, out any) error
	Download(ctx context.Context, path string, params []Param, sink io.Writer) error
	Delete(ctx context.Context, path string) error
}

const (
	connectTimeout        = 10 * time.Second
	tlsHandshakeTimeout   = 10 * time.Second
	responseHeaderTimeout = 30 * time.Second
	keepAliveTimeout      = 30 * time.Second
	idleConnTimeout       = 90 * time.Second
	maxIdleConns          = 100
	maxIdleConnsPerHost   = 10

	maxErrorBodyBytes = 1 << 20
)

// httpRestClient is the default RestClient on net/http with a pooled
// transport. Request bodies are never logged: document keys and auth
// material travel in them.
type httpRestClient struct {
	serverURL string
	authKey   string
	http      *http.Client
	log       zerolog.Logger
}

func newHTTPRestClient(serverURL, authKey string, httpClient *http.Client, log zerolog.Logger) *httpRestClient {
	if httpClient == nil {
		dialer := &net.Dialer{
			Timeout:   connectTimeout,
			KeepAlive: keepAliveTimeout,
		}
		httpClient = &http.Client{
			Transport: &http.Transport{
				Proxy:                 http.ProxyFromEnvironment,
				DialContext:           dialer.DialContext,
				TLSHandshakeTimeout:   tlsHandshakeTimeout,
				ResponseHeaderTimeout: responseHeaderTimeout,
				IdleConnTimeout:       idleConnTimeout,
				MaxIdleConns:          maxIdleConns,
				MaxIdleConnsPerHost:   maxIdleConnsPerHost,
			},
		}
	}
	return &httpRestClient{
		serverURL: strings.TrimRight(serverURL, "/"),
		authKey:   authKey,
		http:      httpClient,
		log:       log,
	}
}

func (c *httpRestClient) GetJSON(ctx context.Context, path string, query []Param, out any) error {
	target := c.serverURL + path
	if len(query) > 0 {
		target += "?" + encodeParams(query)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.doJSON(req, out)
}

func (c *httpRestClient) PostForm(ctx context.Context, path string, params []Param, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serverURL+path, strings.NewReader(encodeParams(params)))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.doJSON(req, out)
}

func (c *httpRestClient) Upload(ctx context.Context, path string, params []Param, filename string, content io.Reader, out any) error {
	body, contentType, err := multipartBody(params, filename, content)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serverURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	return c.doJSON(req, out)
}

func (c *httpRestClient) Download(ctx context.Context, path string, params []Param, sink io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serverURL+path, strings.NewReader(encodeParams(params)))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return apiErrorFromResponse(resp)
	}
	if _, err := io.Copy(sink, resp.Body); err != nil {
		return fmt.Errorf("stream result body: %w", err)
	}
	return nil
}

func (c *httpRestClient) Delete(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.serverURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.doJSON(req, nil)
}

func (c *httpRestClient) doJSON(req *http.Request, out any) error {
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return apiErrorFromResponse(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

func (c *httpRestClient) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Glotta-Auth-Key "+c.authKey)

	requestID := uuid.NewString()
	started := time.Now()
	c.log.Debug().
		Str("request_id", requestID).
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Msg("api request")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().
			Str("request_id", requestID).
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Int64("duration_ms", time.Since(started).Milliseconds()).
			Err(err).
			Msg("api request failed")
		return nil, fmt.Errorf("send request: %w", err)
	}

	c.log.Debug().
		Str("request_id", requestID).
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status_code", resp.StatusCode).
		Int64("duration_ms", time.Since(started).Milliseconds()).
		Msg("api response")
	return resp, nil
}

func apiErrorFromResponse(resp *http.Response) *APIError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if msg := strings.TrimSpace(payload.Message); msg != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: msg}
		}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
}

// encodeParams form-encodes parameters preserving append order.
// url.Values.Encode sorts keys and would break the documented ordering.
func encodeParams(params []Param) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

func multipartBody(params []Param, filename string, content io.Reader) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, p := range params {
		if err := writer.WriteField(p.Key, p.Value); err != nil {
			return nil, "", fmt.Errorf("write multipart field %s: %w", p.Key, err)
		}
	}
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, "", fmt.Errorf("create multipart file part: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, "", fmt.Errorf("copy document content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("finish multipart body: %w", err)
	}
	return &buf, writer.FormDataContentType(), nil
}
