package receipts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPReceiptFetcher_Fetch(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/pdf")
			_, _ = w.Write([]byte("%PDF-1.4"))
		}))
		defer server.Close()
		t.Setenv("RECEIPT_SOURCE_URL", server.URL)

		fetcher := NewHTTPReceiptFetcher()
		content, contentType, err := fetcher.Fetch(context.Background())
		if err != nil {
			t.Fatalf("Fetch failed: %v", err)
		}
		if string(content) != "%PDF-1.4" {
			t.Fatalf("unexpected content: %q", content)
		}
		if contentType != "application/pdf" {
			t.Fatalf("unexpected content type: %s", contentType)
		}
	})

	t.Run("missing content type falls back to pdf", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header()["Content-Type"] = nil
			_, _ = w.Write([]byte("data"))
		}))
		defer server.Close()
		t.Setenv("RECEIPT_SOURCE_URL", server.URL)

		fetcher := NewHTTPReceiptFetcher()
		_, contentType, err := fetcher.Fetch(context.Background())
		if err != nil {
			t.Fatalf("Fetch failed: %v", err)
		}
		if contentType != "application/pdf" {
			t.Fatalf("expected pdf fallback, got %s", contentType)
		}
	})

	t.Run("non-2xx status is a failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()
		t.Setenv("RECEIPT_SOURCE_URL", server.URL)

		fetcher := NewHTTPReceiptFetcher()
		if _, _, err := fetcher.Fetch(context.Background()); err == nil {
			t.Fatal("expected error for 503 response")
		}
	})
}
