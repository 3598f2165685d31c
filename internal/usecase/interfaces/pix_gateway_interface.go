package interfaces

import "context"

// IPixGateway abstracts external PIX charge providers (e.g. Mercado Pago).
// It returns the copy-and-paste BR Code for the created charge.
//
//go:generate mockgen -source=pix_gateway_interface.go -destination=mocks/mock_pix_gateway.go -package=mock_interfaces

type IPixGateway interface {
	CreatePixCharge(ctx context.Context, amount float64, description string) (code string, err error)
}
