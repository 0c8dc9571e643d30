package processing

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
)

// ProgressFunc receives upload progress as a 0-100 percentage.
type ProgressFunc func(percent int)

type progressReader struct {
	r     io.Reader
	total int64
	read  int64
	fn    ProgressFunc
	last  int
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.read += int64(n)
	if p.fn != nil && p.total > 0 {
		percent := int(p.read * 100 / p.total)
		if percent > 100 {
			percent = 100
		}
		if percent != p.last {
			p.last = percent
			p.fn(percent)
		}
	}
	return n, err
}

// Upload sends the file as a multipart form (field "file") and returns the
// stored resource locator. Progress covers the full request body, reported
// only on percentage changes.
func (c *Client) Upload(ctx context.Context, fileName string, content io.Reader, progress ProgressFunc) (*UploadedFile, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("copy file content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	body := &progressReader{
		r:     &buf,
		total: int64(buf.Len()),
		fn:    progress,
	}

	var resp uploadResponse
	if err := c.do(ctx, "POST", "/upload", body, writer.FormDataContentType(), &resp); err != nil {
		return nil, err
	}
	if resp.File == nil || resp.File.URL == "" {
		return nil, fmt.Errorf("upload failed: no file URL received")
	}
	return resp.File, nil
}

// ListFiles returns the files currently stored on the backend.
func (c *Client) ListFiles(ctx context.Context) ([]RemoteFile, error) {
	var resp listFilesResponse
	if err := c.doJSON(ctx, "GET", "/list", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Files, nil
}

// DeleteFile removes a stored file by name.
func (c *Client) DeleteFile(ctx context.Context, fileName string) error {
	return c.doJSON(ctx, "DELETE", "/delete/"+url.PathEscape(fileName), nil, nil)
}

// Parse runs document parsing for an uploaded file.
func (c *Client) Parse(ctx context.Context, fileName string) (*ParseResult, error) {
	var resp ParseResult
	if err := c.doJSON(ctx, "GET", "/parse/"+url.PathEscape(fileName), nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.Pages) == 0 {
		return nil, fmt.Errorf("parse failed: no page data received")
	}
	return &resp, nil
}
