package processing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, 5*time.Second), srv
}

func TestUploadSendsMultipartFile(t *testing.T) {
	var gotName, gotContent string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/upload" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("missing form file: %v", err)
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		defer file.Close()
		gotName = header.Filename
		buf := make([]byte, header.Size)
		n, _ := file.Read(buf)
		gotContent = string(buf[:n])
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"file":{"url":"https://storage.example/doc.pdf"}}`))
	})
	defer srv.Close()

	uploaded, err := client.Upload(context.Background(), "doc.pdf", strings.NewReader("%PDF-1.4 body"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uploaded.URL != "https://storage.example/doc.pdf" {
		t.Fatalf("unexpected URL: %q", uploaded.URL)
	}
	if gotName != "doc.pdf" || gotContent != "%PDF-1.4 body" {
		t.Fatalf("server received name=%q content=%q", gotName, gotContent)
	}
}

func TestUploadReportsProgress(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"file":{"url":"https://storage.example/doc.pdf"}}`))
	})
	defer srv.Close()

	var last int
	_, err := client.Upload(context.Background(), "doc.pdf", strings.NewReader(strings.Repeat("a", 4096)), func(percent int) {
		if percent < last {
			t.Errorf("progress went backwards: %d after %d", percent, last)
		}
		last = percent
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if last != 100 {
		t.Fatalf("expected final progress 100, got %d", last)
	}
}

func TestUploadRejectsMissingURL(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	defer srv.Close()

	_, err := client.Upload(context.Background(), "doc.pdf", strings.NewReader("x"), nil)
	if err == nil || !strings.Contains(err.Error(), "no file URL received") {
		t.Fatalf("expected missing URL error, got %v", err)
	}
}

func TestAPIErrorCarriesDetail(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"file not found"}`))
	})
	defer srv.Close()

	err := client.DeleteFile(context.Background(), "missing.pdf")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusNotFound || apiErr.Detail != "file not found" {
		t.Fatalf("unexpected APIError: %+v", apiErr)
	}
}

func TestAPIErrorFallsBackToMessage(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"message":"upstream unavailable"}`))
	})
	defer srv.Close()

	_, err := client.ListFiles(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Detail != "upstream unavailable" {
		t.Fatalf("unexpected detail: %q", apiErr.Detail)
	}
}

func TestDeleteFileEscapesName(t *testing.T) {
	var gotPath string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`{}`))
	})
	defer srv.Close()

	if err := client.DeleteFile(context.Background(), "my report.pdf"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/delete/my%20report.pdf" {
		t.Fatalf("unexpected path: %q", gotPath)
	}
}

func TestParseRejectsEmptyPages(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"pages":[]}`))
	})
	defer srv.Close()

	_, err := client.Parse(context.Background(), "doc.pdf")
	if err == nil || !strings.Contains(err.Error(), "no page data received") {
		t.Fatalf("expected empty pages error, got %v", err)
	}
}

func TestParseReturnsPages(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/parse/doc.pdf" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"pages":[{"page":1,"text":"hello","status":"ok"}],"job_id":"j1"}`))
	})
	defer srv.Close()

	result, err := client.Parse(context.Background(), "doc.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Pages) != 1 || result.Pages[0].Text != "hello" {
		t.Fatalf("unexpected result: %+v", result)
	}
}
