package generator

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// PlannedEntry is one slot of a run: its entry number and, for error
// entries, the category it will carry.
type PlannedEntry struct {
	EntryNum int
	Category Category // empty for a valid entry
}

// IsError reports whether the entry is planned to fail import.
func (e PlannedEntry) IsError() bool {
	return e.Category != ""
}

// checkPlan rejects entry counts and percentages that cannot be planned.
func checkPlan(total int, percent float64) error {
	if total < 0 {
		return fmt.Errorf("entries must not be negative, got %d", total)
	}
	if math.IsNaN(percent) || percent < 0 || percent > 100 {
		return fmt.Errorf("error percent must be within [0, 100], got %g", percent)
	}
	return nil
}

// ErrorCount returns floor(total * percent / 100). NaN and infinite
// percentages count as zero.
func ErrorCount(total int, percent float64) int {
	if math.IsNaN(percent) || math.IsInf(percent, 0) {
		return 0
	}
	return int(decimal.NewFromInt(int64(total)).
		Mul(decimal.NewFromFloat(percent)).
		Div(decimal.NewFromInt(100)).
		Floor().
		IntPart())
}

// Plan lays out total entries: valid ones first, then errors with a category
// drawn uniformly from categories. When shuffle is set the whole plan is
// permuted before entries are numbered 1..total.
func (g *Generator) Plan(total int, percent float64, categories []Category, shuffle bool) ([]PlannedEntry, error) {
	if err := checkPlan(total, percent); err != nil {
		return nil, err
	}
	errorCount := ErrorCount(total, percent)
	if len(categories) == 0 {
		categories = Categories()
	}

	plan := make([]PlannedEntry, total-errorCount, total)
	for range errorCount {
		plan = append(plan, PlannedEntry{Category: pick(g.rng, categories)})
	}

	if shuffle {
		g.rng.Shuffle(len(plan), func(i, j int) {
			plan[i], plan[j] = plan[j], plan[i]
		})
	}

	for i := range plan {
		plan[i].EntryNum = i + 1
	}
	return plan, nil
}
