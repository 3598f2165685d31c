package entities

// VehicleStatus represents the policy situation of an insured vehicle.

type VehicleStatus string

const (
	VehicleStatusAtiva     VehicleStatus = "Ativa"
	VehicleStatusSuspensa  VehicleStatus = "Suspensa"
	VehicleStatusCancelada VehicleStatus = "Cancelada"
)

// Vehicle is an insured vehicle as exposed by the policy backend.
//
// Domain notes:
//   - The collection is read-only for the lifetime of a dashboard session;
//     it is loaded once at session start.
//   - Premium keeps the backend's locale formatting ("R$ 1.120,00"); the
//     dashboard never computes over it.
//
// Storage model (DynamoDB):
//   - PK: id

type Vehicle struct {
	ID           string        `json:"id"`
	Make         string        `json:"make"`
	Model        string        `json:"model"`
	Year         string        `json:"year"`
	LicensePlate string        `json:"licensePlate"`
	Color        string        `json:"color"`
	PolicyNumber string        `json:"policyNumber"`
	Premium      string        `json:"premium"`
	Status       VehicleStatus `json:"status"`
}

// VehicleIndex resolves slips to their vehicle in O(1).
type VehicleIndex map[string]Vehicle

func IndexVehicles(vehicles []Vehicle) VehicleIndex {
	idx := make(VehicleIndex, len(vehicles))
	for _, v := range vehicles {
		idx[v.ID] = v
	}
	return idx
}
