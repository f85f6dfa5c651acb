// Package nas uploads exported workbooks to the network storage gateway.
package nas

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"time"
)

type Client struct {
	httpClient *http.Client
	uploadURL  string
	baseDir    string
}

func NewClient(uploadURL, baseDir string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		uploadURL:  uploadURL,
		baseDir:    baseDir,
	}
}

// APIError is a non-success response from the NAS gateway.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("nas upload failed [%d]: %s", e.StatusCode, e.Body)
}

// Upload sends the artifact as multipart form data: the file itself, the
// target directory relative to the share root, and an overwrite flag that
// is always false: an existing remote file makes the upload fail rather
// than be replaced.
func (c *Client) Upload(ctx context.Context, dir, filename string, data []byte) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("failed to write file part: %w", err)
	}
	if err := writer.WriteField("path", path.Join(c.baseDir, dir)); err != nil {
		return fmt.Errorf("failed to write path field: %w", err)
	}
	if err := writer.WriteField("overwrite", "false"); err != nil {
		return fmt.Errorf("failed to write overwrite field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, &body)
	if err != nil {
		return fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &APIError{StatusCode: resp.StatusCode, Body: string(msg)}
	}
	return nil
}
