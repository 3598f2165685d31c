package usecase

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"novo_seguros/internal/domain/entities"
)

// SlipsPerPage is the fixed page size of every paginated slip view.
const SlipsPerPage = 5

// The engines below are pure: they own no state and never mutate their
// inputs. The dashboard session re-runs them on every transition.

// FilterSlips applies the tab predicate, the free-text search, the vehicle
// selection and the six discrete criteria conjunctively. Slips whose CarID
// does not resolve to a vehicle are dropped unconditionally.
func FilterSlips(
	slips []entities.PaymentSlip,
	vehicles entities.VehicleIndex,
	criteria entities.FilterCriteria,
	tab entities.Tab,
	selectedVehicleID string,
) []entities.PaymentSlip {
	out := make([]entities.PaymentSlip, 0, len(slips))
	for _, slip := range slips {
		vehicle, ok := vehicles[slip.CarID]
		if !ok {
			continue
		}

		switch tab {
		case entities.TabPending:
			if slip.Status != entities.SlipStatusPendente {
				continue
			}
		case entities.TabPaid:
			if slip.Status != entities.SlipStatusPago {
				continue
			}
		case entities.TabOverdue:
			if slip.Status != entities.SlipStatusVencido {
				continue
			}
		}

		if !matchesSearch(slip, vehicle, criteria.SearchTerm) {
			continue
		}
		if selectedVehicleID != entities.FilterValueAll && slip.CarID != selectedVehicleID {
			continue
		}
		if criteria.Make != entities.FilterValueAll && vehicle.Make != criteria.Make {
			continue
		}
		if criteria.Model != entities.FilterValueAll && vehicle.Model != criteria.Model {
			continue
		}
		if criteria.Year != entities.FilterValueAll && vehicle.Year != criteria.Year {
			continue
		}
		if criteria.Status != entities.FilterValueAll && string(slip.Status) != criteria.Status {
			continue
		}
		if criteria.LicensePlate != "" &&
			!containsFold(slip.LicensePlate, criteria.LicensePlate) &&
			!containsFold(vehicle.LicensePlate, criteria.LicensePlate) {
			continue
		}
		if criteria.PolicyNumber != "" && !containsFold(vehicle.PolicyNumber, criteria.PolicyNumber) {
			continue
		}

		out = append(out, slip)
	}
	return out
}

func matchesSearch(slip entities.PaymentSlip, vehicle entities.Vehicle, term string) bool {
	if term == "" {
		return true
	}
	return containsFold(slip.ID, term) ||
		containsFold(slip.Period, term) ||
		containsFold(slip.LicensePlate, term) ||
		containsFold(vehicle.Make, term) ||
		containsFold(vehicle.Model, term) ||
		containsFold(vehicle.PolicyNumber, term)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// SortSlips orders a copy of slips by the given field and direction. The sort
// is stable: ties keep their input order. Unparseable dates and amounts sort
// as zero values.
//
// Period is compared lexicographically on the label ("Jan 2025" < "Fev 2025"
// does NOT hold), matching the dashboard's observed ordering.
func SortSlips(slips []entities.PaymentSlip, field entities.SortField, order entities.SortOrder) []entities.PaymentSlip {
	out := make([]entities.PaymentSlip, len(slips))
	copy(out, slips)

	less := func(a, b entities.PaymentSlip) int {
		switch field {
		case entities.SortByAmount:
			av, _ := a.AmountValue()
			bv, _ := b.AmountValue()
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		case entities.SortByPeriod:
			return strings.Compare(a.Period, b.Period)
		default: // date
			at := issueDateOrZero(a)
			bt := issueDateOrZero(b)
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			}
			return 0
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		cmp := less(out[i], out[j])
		if order == entities.SortDesc {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}

func issueDateOrZero(s entities.PaymentSlip) time.Time {
	t, err := s.IssueDate()
	if err != nil {
		return time.Time{}
	}
	return t
}

// GroupSlips partitions an already filtered and sorted collection by vehicle.
// The returned order lists vehicle ids by first encounter; each group's slip
// order inherits the input order. Amounts that fail to parse contribute zero
// to the group total.
func GroupSlips(slips []entities.PaymentSlip, vehicles entities.VehicleIndex) ([]string, map[string]*entities.GroupSummary) {
	order := make([]string, 0)
	groups := make(map[string]*entities.GroupSummary)

	for _, slip := range slips {
		vehicle, ok := vehicles[slip.CarID]
		if !ok {
			continue
		}

		group, ok := groups[slip.CarID]
		if !ok {
			group = &entities.GroupSummary{Vehicle: vehicle, Slips: []entities.PaymentSlip{}}
			groups[slip.CarID] = group
			order = append(order, slip.CarID)
		}

		group.Slips = append(group.Slips, slip)
		if amount, err := slip.AmountValue(); err == nil {
			group.TotalAmount += amount
		}
		switch slip.Status {
		case entities.SlipStatusPago:
			group.PaidCount++
		case entities.SlipStatusPendente:
			group.PendingCount++
		case entities.SlipStatusVencido:
			group.OverdueCount++
		}
	}
	return order, groups
}

// ComputeStatistics derives the dashboard counters. The tab counts are scoped
// by the vehicle selection only: they ignore the active tab and the criteria
// so tab badges stay stable while switching tabs.
func ComputeStatistics(
	allSlips []entities.PaymentSlip,
	filteredSlips []entities.PaymentSlip,
	vehicles entities.VehicleIndex,
	criteria entities.FilterCriteria,
	groupStates map[string]*entities.GroupState,
	selectedVehicleID string,
) entities.Statistics {
	stats := entities.Statistics{
		TotalSlips:         len(allSlips),
		FilteredSlips:      len(filteredSlips),
		ActiveFiltersCount: criteria.ActiveCount(),
	}

	for _, state := range groupStates {
		if state.IsExpanded {
			stats.ExpandedCount++
		}
		if state.IsGloballyControlled {
			stats.GloballyControlledCount++
		}
		if state.IsExpanded && !state.IsGloballyControlled {
			stats.IndividuallyControlledCnt++
		}
	}

	for _, slip := range allSlips {
		if _, ok := vehicles[slip.CarID]; !ok {
			continue
		}
		if selectedVehicleID != entities.FilterValueAll && slip.CarID != selectedVehicleID {
			continue
		}
		stats.AllCount++
		switch slip.Status {
		case entities.SlipStatusPago:
			stats.PaidCount++
		case entities.SlipStatusPendente:
			stats.PendingCount++
		case entities.SlipStatusVencido:
			stats.OverdueCount++
		}
	}
	return stats
}

// Page is one fixed-size slice of an ordered slip collection.

type Page struct {
	Items       []entities.PaymentSlip `json:"items"`
	TotalPages  int                    `json:"totalPages"`
	CurrentPage int                    `json:"currentPage"`
}

// Paginate slices slips into the requested page. The page number is NOT
// clamped: out-of-range requests yield an empty item list, and it is the
// caller's responsibility to steer the cursor back into [1, TotalPages].
func Paginate(slips []entities.PaymentSlip, pageSize, page int) Page {
	if pageSize <= 0 {
		pageSize = SlipsPerPage
	}
	totalPages := (len(slips) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start < 0 || start >= len(slips) {
		return Page{Items: []entities.PaymentSlip{}, TotalPages: totalPages, CurrentPage: page}
	}
	if end > len(slips) {
		end = len(slips)
	}
	items := make([]entities.PaymentSlip, end-start)
	copy(items, slips[start:end])
	return Page{Items: items, TotalPages: totalPages, CurrentPage: page}
}

// CollectFilterOptions gathers the distinct filter values present in the
// dataset. Makes, models and statuses sort ascending; years sort newest
// first.
func CollectFilterOptions(slips []entities.PaymentSlip, vehicles []entities.Vehicle) entities.FilterOptions {
	makes := make(map[string]struct{})
	models := make(map[string]struct{})
	years := make(map[string]struct{})
	statuses := make(map[string]struct{})

	for _, v := range vehicles {
		makes[v.Make] = struct{}{}
		models[v.Model] = struct{}{}
		years[v.Year] = struct{}{}
	}
	for _, s := range slips {
		statuses[string(s.Status)] = struct{}{}
	}

	opts := entities.FilterOptions{
		Makes:    sortedKeys(makes),
		Models:   sortedKeys(models),
		Years:    sortedKeys(years),
		Statuses: sortedKeys(statuses),
	}
	sort.Slice(opts.Years, func(i, j int) bool {
		a, _ := strconv.Atoi(opts.Years[i])
		b, _ := strconv.Atoi(opts.Years[j])
		return a > b
	})
	return opts
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
