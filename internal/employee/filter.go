package employee

import (
	"strings"

	"github.com/aanand-mishra/employee-dashboard/internal/types"
)

// Criteria is the state of the list view's search box and two selects.
// Empty Gender or Status means types.FilterAll.
type Criteria struct {
	Search string
	Gender string
	Status string
}

// Filter returns the employees matching every predicate in c, in their
// original order. The result is never nil.
func Filter(employees []types.Employee, c Criteria) []types.Employee {
	search := strings.ToLower(c.Search)

	out := make([]types.Employee, 0, len(employees))
	for _, e := range employees {
		if !strings.Contains(strings.ToLower(e.FullName), search) {
			continue
		}
		if !matchesGender(e, c.Gender) || !matchesStatus(e, c.Status) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesGender(e types.Employee, gender string) bool {
	return gender == "" || gender == types.FilterAll || string(e.Gender) == gender
}

func matchesStatus(e types.Employee, status string) bool {
	switch status {
	case types.StatusActive:
		return e.Active
	case types.StatusInactive:
		return !e.Active
	default:
		return true
	}
}

// ComputeStats counts total, active and inactive employees.
func ComputeStats(employees []types.Employee) types.Stats {
	st := types.Stats{Total: len(employees)}
	for _, e := range employees {
		if e.Active {
			st.Active++
		}
	}
	st.Inactive = st.Total - st.Active
	return st
}
