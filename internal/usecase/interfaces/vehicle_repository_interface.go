package interfaces

import (
	"context"

	"novo_seguros/internal/domain/entities"
)

// IVehicleRepository abstracts the read-only vehicle collection (DynamoDB in
// a real deployment, the static fixture locally).
//
//go:generate mockgen -source=vehicle_repository_interface.go -destination=mocks/mock_vehicle_repository.go -package=mock_interfaces

type IVehicleRepository interface {
	ListAll(ctx context.Context) ([]entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
}
