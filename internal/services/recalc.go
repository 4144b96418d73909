package services

import (
	"fmt"
	"strings"

	"nestegg/internal/money"
)

// RecalcPolicy decides when RecalculateTotal overwrites a main budget's
// total with the sum of its materialized week allocations.
type RecalcPolicy string

const (
	// RecalcAlways overwrites the total with any non-zero sum.
	RecalcAlways RecalcPolicy = "always"
	// RecalcGrowOnly overwrites only when the sum exceeds the current total.
	RecalcGrowOnly RecalcPolicy = "grow_only"
	// RecalcCompleteOnly overwrites only once every week is materialized.
	RecalcCompleteOnly RecalcPolicy = "complete_only"
)

// DefaultRecalcPolicy is used when no policy is configured.
const DefaultRecalcPolicy = RecalcGrowOnly

// ParseRecalcPolicy parses a configured policy name. Empty selects the
// default.
func ParseRecalcPolicy(s string) (RecalcPolicy, error) {
	switch p := RecalcPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DefaultRecalcPolicy, nil
	case RecalcAlways, RecalcGrowOnly, RecalcCompleteOnly:
		return p, nil
	}
	return "", fmt.Errorf("unknown recalc policy %q", s)
}

// decide reports whether a recalculation should replace current with sum.
func (p RecalcPolicy) decide(current, sum money.Amount, materialized, weeks int) (bool, string) {
	if sum == 0 {
		return false, "no materialized week has an allocation"
	}
	if sum == current {
		return false, "total already matches the allocated sum"
	}
	switch p {
	case RecalcAlways:
		return true, "total replaced by the allocated sum"
	case RecalcCompleteOnly:
		if materialized < weeks {
			return false, fmt.Sprintf("%d of %d weeks materialized", materialized, weeks)
		}
		return true, "every week is materialized"
	default:
		if sum <= current {
			return false, "allocated sum does not exceed the current total"
		}
		return true, "allocated sum exceeds the current total"
	}
}
