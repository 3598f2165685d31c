package request

// FilterUpdateRequest carries a partial filter change. Absent fields leave
// the criteria untouched, so "set make" and "clear search" are the same
// endpoint.
type FilterUpdateRequest struct {
	SearchTerm   *string `json:"searchTerm"`
	Make         *string `json:"make"`
	Model        *string `json:"model"`
	Year         *string `json:"year"`
	Status       *string `json:"status"`
	LicensePlate *string `json:"licensePlate"`
	PolicyNumber *string `json:"policyNumber"`
}

type SortRequest struct {
	SortBy    string `json:"sortBy" binding:"required"`
	SortOrder string `json:"sortOrder" binding:"required"`
}

type TabRequest struct {
	Tab string `json:"tab" binding:"required"`
}

type VehicleSelectionRequest struct {
	VehicleID string `json:"vehicleId" binding:"required"`
}

type PageRequest struct {
	Page int `json:"page" binding:"required"`
}
