package entities

// Tab is the coarse status view over slips, applied on top of the explicit
// filter criteria.

type Tab string

const (
	TabAll     Tab = "all"
	TabPending Tab = "pending"
	TabPaid    Tab = "paid"
	TabOverdue Tab = "overdue"
)

func (t Tab) Valid() bool {
	switch t {
	case TabAll, TabPending, TabPaid, TabOverdue:
		return true
	}
	return false
}

// SortField is a field slips can be ordered by.

type SortField string

const (
	SortByDate   SortField = "date"
	SortByAmount SortField = "amount"
	SortByPeriod SortField = "period"
)

func (f SortField) Valid() bool {
	switch f {
	case SortByDate, SortByAmount, SortByPeriod:
		return true
	}
	return false
}

// SortOrder is the ordering direction.

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (o SortOrder) Valid() bool {
	return o == SortAsc || o == SortDesc
}

// Neutral values: enum-like criteria use "all", text criteria use "".
const FilterValueAll = "all"

// FilterCriteria holds the seven independent slip filters. A field is active
// iff it differs from its neutral default; all active criteria are applied
// conjunctively.

type FilterCriteria struct {
	SearchTerm   string `json:"searchTerm"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         string `json:"year"`
	Status       string `json:"status"`
	LicensePlate string `json:"licensePlate"`
	PolicyNumber string `json:"policyNumber"`
}

func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		SearchTerm:   "",
		Make:         FilterValueAll,
		Model:        FilterValueAll,
		Year:         FilterValueAll,
		Status:       FilterValueAll,
		LicensePlate: "",
		PolicyNumber: "",
	}
}

// ActiveCount is the number of criteria differing from their neutral default.
func (c FilterCriteria) ActiveCount() int {
	n := 0
	if c.SearchTerm != "" {
		n++
	}
	if c.Make != FilterValueAll {
		n++
	}
	if c.Model != FilterValueAll {
		n++
	}
	if c.Year != FilterValueAll {
		n++
	}
	if c.Status != FilterValueAll {
		n++
	}
	if c.LicensePlate != "" {
		n++
	}
	if c.PolicyNumber != "" {
		n++
	}
	return n
}

// FilterField names a single FilterCriteria field for targeted clears.

type FilterField string

const (
	FilterFieldSearchTerm   FilterField = "searchTerm"
	FilterFieldMake         FilterField = "make"
	FilterFieldModel        FilterField = "model"
	FilterFieldYear         FilterField = "year"
	FilterFieldStatus       FilterField = "status"
	FilterFieldLicensePlate FilterField = "licensePlate"
	FilterFieldPolicyNumber FilterField = "policyNumber"
)

// Clear resets one field to its neutral default. Unknown fields report false.
func (c *FilterCriteria) Clear(field FilterField) bool {
	switch field {
	case FilterFieldSearchTerm:
		c.SearchTerm = ""
	case FilterFieldMake:
		c.Make = FilterValueAll
	case FilterFieldModel:
		c.Model = FilterValueAll
	case FilterFieldYear:
		c.Year = FilterValueAll
	case FilterFieldStatus:
		c.Status = FilterValueAll
	case FilterFieldLicensePlate:
		c.LicensePlate = ""
	case FilterFieldPolicyNumber:
		c.PolicyNumber = ""
	default:
		return false
	}
	return true
}

// FilterOptions are the distinct values the filter UI can offer, collected
// from the loaded dataset.

type FilterOptions struct {
	Makes    []string `json:"makes"`
	Models   []string `json:"models"`
	Years    []string `json:"years"`
	Statuses []string `json:"statuses"`
}
