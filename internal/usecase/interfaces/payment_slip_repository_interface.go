package interfaces

import (
	"context"

	"novo_seguros/internal/domain/entities"
)

// IPaymentSlipRepository abstracts the read-only payment slip collection.
//
//go:generate mockgen -source=payment_slip_repository_interface.go -destination=mocks/mock_payment_slip_repository.go -package=mock_interfaces

type IPaymentSlipRepository interface {
	ListAll(ctx context.Context) ([]entities.PaymentSlip, error)
	GetByID(ctx context.Context, id string) (entities.PaymentSlip, error)
}
