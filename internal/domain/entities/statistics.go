package entities

// Statistics are the dashboard-wide counters derived from the full and
// filtered collections plus the group expansion states.
//
// The tab counts (AllCount..OverdueCount) are scoped by the vehicle selection
// only, never by the active tab or the other filters, so tab badges stay
// stable while the user switches tabs.

type Statistics struct {
	ExpandedCount             int `json:"expandedCount"`
	GloballyControlledCount   int `json:"globallyControlledCount"`
	IndividuallyControlledCnt int `json:"individuallyControlledCount"`

	TotalSlips         int `json:"totalSlips"`
	FilteredSlips      int `json:"filteredSlips"`
	ActiveFiltersCount int `json:"activeFiltersCount"`

	AllCount     int `json:"allCount"`
	PaidCount    int `json:"paidCount"`
	PendingCount int `json:"pendingCount"`
	OverdueCount int `json:"overdueCount"`
}
