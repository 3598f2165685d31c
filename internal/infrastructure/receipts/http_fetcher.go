package receipts

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"novo_seguros/internal/usecase/interfaces"
)

// The dashboard serves a fixed sample comprovante; the real document store is
// out of scope. RECEIPT_SOURCE_URL overrides the default.
const defaultReceiptSourceURL = "https://cdn.filestackcontent.com/wcrjf9qPTCKXV3hMXDwK"

// HTTPReceiptFetcher fetches the receipt binary over HTTP. Any network error
// or non-2xx response is a fetch failure.

type HTTPReceiptFetcher struct {
	client    *http.Client
	sourceURL string
}

var _ interfaces.IReceiptFetcher = (*HTTPReceiptFetcher)(nil)

func NewHTTPReceiptFetcher() *HTTPReceiptFetcher {
	sourceURL := os.Getenv("RECEIPT_SOURCE_URL")
	if sourceURL == "" {
		sourceURL = defaultReceiptSourceURL
	}
	return &HTTPReceiptFetcher{
		client:    &http.Client{Timeout: 30 * time.Second},
		sourceURL: sourceURL,
	}
}

func (f *HTTPReceiptFetcher) Fetch(ctx context.Context) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.sourceURL, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		log.Printf("[download][fetcher] request failed url=%s err=%v", f.sourceURL, err)
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[download][fetcher] unexpected status url=%s status=%d", f.sourceURL, resp.StatusCode)
		return nil, "", fmt.Errorf("receipt source returned status %d", resp.StatusCode)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/pdf"
	}
	return content, contentType, nil
}
