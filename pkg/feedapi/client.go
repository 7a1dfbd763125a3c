// Package feedapi is the single point of contact with the remote feed API.
// It builds requests against a fixed base URL, attaches the stored bearer
// token when one exists, and normalizes every failure into a classified
// error the UI can show directly.
package feedapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
)

// TokenSource supplies the persisted bearer token. It is read fresh on
// every request so a near-concurrent login or logout is reflected
// immediately instead of through a stale capture.
type TokenSource interface {
	Token() string
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// NewClient builds a client for the given base URL. tokens may be nil for
// unauthenticated use; absence of a token is never an error here, the
// server decides whether an endpoint requires auth.
func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
	}
}

// requestBody is the tagged JSON-or-multipart variant: each implementation
// produces its own payload and content type, so dispatch is explicit rather
// than sniffed at call time.
type requestBody interface {
	encode() (io.Reader, string, error)
}

type jsonBody map[string]any

func (b jsonBody) encode() (io.Reader, string, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, "", fmt.Errorf("encode request body: %w", err)
	}
	return bytes.NewReader(data), "application/json", nil
}

type multipartBody struct {
	fields    map[string]string
	fileField string
	fileName  string
	fileType  string
	file      io.Reader
}

func (b *multipartBody) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range b.fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("write form field %s: %w", name, err)
		}
	}
	// CreateFormFile would type the part application/octet-stream; the
	// server expects the photo's real MIME type on the binary part.
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, b.fileField, b.fileName))
	if b.fileType != "" {
		header.Set("Content-Type", b.fileType)
	}
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, b.file); err != nil {
		return nil, "", fmt.Errorf("copy file into form: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

// do issues one request and decodes a successful response into out.
//
// Success handling is deliberately lenient, matching the upstream contract:
// a 204, an explicit zero content length, an empty body, or a body that is
// not valid JSON all yield the zero value of out rather than an error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body requestBody, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	contentType := "application/json"
	if body != nil {
		r, ct, err := body.encode()
		if err != nil {
			return err
		}
		reader, contentType = r, ct
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return err
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return classifyTransport(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(resp.Body)
		return classify(resp.StatusCode, data)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || resp.ContentLength == 0 {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil || len(data) == 0 {
		return nil
	}
	_ = json.Unmarshal(data, out)
	return nil
}
