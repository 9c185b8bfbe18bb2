package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// File is an image to upload
type File struct {
	Name    string
	Content io.Reader
}

type uploadEnvelope struct {
	FileURL string `json:"fileUrl"`
}

// UploadImage sends one file as multipart field "file" and returns its public URL
func (c *Client) UploadImage(ctx context.Context, f File) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", f.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, f.Content); err != nil {
		return "", fmt.Errorf("failed to copy %s: %w", f.Name, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finish multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/upload", &buf, writer.FormDataContentType())
	if err != nil {
		return "", err
	}
	var env uploadEnvelope
	if err := c.do(req, &env); err != nil {
		return "", err
	}
	if env.FileURL == "" {
		return "", fmt.Errorf("upload of %s returned no file url", f.Name)
	}
	return env.FileURL, nil
}

// UploadImages uploads files one after another, stopping at the first failure.
// The URLs come back in input order.
func (c *Client) UploadImages(ctx context.Context, files []File) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, f := range files {
		u, err := c.UploadImage(ctx, f)
		if err != nil {
			return urls, err
		}
		urls = append(urls, u)
	}
	return urls, nil
}
