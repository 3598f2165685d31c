package repository

import (
	"context"

	"novo_seguros/internal/domain/entities"
	"novo_seguros/internal/usecase/interfaces"
)

// In-memory repositories back the fixture deployment mode (DATA_SOURCE
// unset or "fixture"): the collections are seeded once and served read-only.

type MemoryVehicleRepository struct {
	vehicles []entities.Vehicle
}

var _ interfaces.IVehicleRepository = (*MemoryVehicleRepository)(nil)

func NewMemoryVehicleRepository(vehicles []entities.Vehicle) *MemoryVehicleRepository {
	return &MemoryVehicleRepository{vehicles: vehicles}
}

func (r *MemoryVehicleRepository) ListAll(ctx context.Context) ([]entities.Vehicle, error) {
	out := make([]entities.Vehicle, len(r.vehicles))
	copy(out, r.vehicles)
	return out, nil
}

func (r *MemoryVehicleRepository) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	for _, v := range r.vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return entities.Vehicle{}, nil
}

type MemoryPaymentSlipRepository struct {
	slips []entities.PaymentSlip
}

var _ interfaces.IPaymentSlipRepository = (*MemoryPaymentSlipRepository)(nil)

func NewMemoryPaymentSlipRepository(slips []entities.PaymentSlip) *MemoryPaymentSlipRepository {
	return &MemoryPaymentSlipRepository{slips: slips}
}

func (r *MemoryPaymentSlipRepository) ListAll(ctx context.Context) ([]entities.PaymentSlip, error) {
	out := make([]entities.PaymentSlip, len(r.slips))
	copy(out, r.slips)
	return out, nil
}

func (r *MemoryPaymentSlipRepository) GetByID(ctx context.Context, id string) (entities.PaymentSlip, error) {
	for _, s := range r.slips {
		if s.ID == id {
			return s, nil
		}
	}
	return entities.PaymentSlip{}, nil
}
