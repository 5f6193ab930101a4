package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"docmark/internal/intake"
)

const (
	defaultBaseURL = "https://api.mistral.ai"

	// Signed URLs only need to outlive the OCR call that follows.
	signedURLExpiryHours = 1

	// Error bodies are logged and discarded; cap how much we slurp.
	maxErrorBody = 64 << 10
)

// Client calls the Mistral OCR API. The credential is injected here,
// never read from the environment by the client itself.
type Client struct {
	APIKey  string
	BaseURL string
	Model   string
	client  *http.Client
}

func NewClient(apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		APIKey:  apiKey,
		BaseURL: defaultBaseURL,
		Model:   model,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Process runs the full upstream flow for one request: upload the file,
// fetch a signed URL for it, then OCR it. Blocks until the response or
// a network-level failure; nothing is retried.
func (c *Client) Process(ctx context.Context, req Request) (*Result, error) {
	if c.APIKey == "" {
		return nil, ErrMissingCredential
	}
	if len(req.Data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrUpstream)
	}

	fileID, err := c.uploadFile(ctx, req.Filename, req.Data)
	if err != nil {
		return nil, err
	}

	signedURL, err := c.signedURL(ctx, fileID)
	if err != nil {
		return nil, err
	}

	resp, err := c.process(ctx, signedURL, req.Kind)
	if err != nil {
		return nil, err
	}

	if len(resp.Pages) == 0 {
		return nil, fmt.Errorf("%w: no pages in response", ErrUpstream)
	}

	return &Result{
		Markdown: combineMarkdown(resp),
		Pages:    len(resp.Pages),
	}, nil
}

// uploadFile sends the raw bytes to the files endpoint with purpose=ocr.
func (c *Client) uploadFile(ctx context.Context, filename string, data []byte) (string, error) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	if err := mw.WriteField("purpose", "ocr"); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/files", body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var up uploadResponse
	if err := c.do(req, &up); err != nil {
		return "", err
	}
	if up.ID == "" {
		return "", fmt.Errorf("%w: upload response missing file id", ErrUpstream)
	}

	return up.ID, nil
}

// signedURL fetches a short-lived URL for an uploaded file id.
func (c *Client) signedURL(ctx context.Context, fileID string) (string, error) {
	endpoint := fmt.Sprintf("%s/v1/files/%s/url?expiry=%d",
		c.BaseURL, url.PathEscape(fileID), signedURLExpiryHours)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	var signed signedURLResponse
	if err := c.do(req, &signed); err != nil {
		return "", err
	}
	if signed.URL == "" {
		return "", fmt.Errorf("%w: signed URL response missing url", ErrUpstream)
	}

	return signed.URL, nil
}

// process runs OCR against the signed URL. PDFs go in as document_url,
// everything else as image_url.
func (c *Client) process(ctx context.Context, signedURL string, kind intake.Kind) (*Response, error) {
	doc := ocrDocument{}
	if kind == intake.KindDocument {
		doc.Type = "document_url"
		doc.DocumentURL = signedURL
	} else {
		doc.Type = "image_url"
		doc.ImageURL = signedURL
	}

	payload, err := json.Marshal(ocrRequest{
		Model:              c.Model,
		Document:           doc,
		IncludeImageBase64: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/ocr", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var resp Response
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// do executes one request with the bearer credential and decodes the
// JSON body into out, classifying failures into the error taxonomy.
func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w (status %d)", ErrAuthentication, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slurp, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		log.Printf("OCR_API_ERROR status=%d body=%s", resp.StatusCode, string(slurp))
		return fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return nil
}
