package interfaces

import "context"

// IReceiptFetcher abstracts the outbound fetch of a slip receipt (comprovante)
// binary. The core only cares about "success => bytes" or "failure => error",
// independent of the concrete endpoint.
//
//go:generate mockgen -source=receipt_fetcher_interface.go -destination=mocks/mock_receipt_fetcher.go -package=mock_interfaces

type IReceiptFetcher interface {
	Fetch(ctx context.Context) (content []byte, contentType string, err error)
}
