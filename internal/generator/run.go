package generator

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/cleared-dev/journalgen/internal/journal"
	"github.com/cleared-dev/journalgen/internal/model"
)

// ProgressInterval is how many entries pass between Progress callbacks.
const ProgressInterval = 50000

// Options describes one run.
type Options struct {
	Entries        int
	ErrorPercent   float64
	Categories     []Category // empty means every category
	AccountingDate time.Time  // zero means today
	Shuffle        bool

	// Progress, when set, is called after every ProgressInterval entries.
	Progress func(done int)
}

// Validate rejects option values that would produce a degenerate file.
func (o Options) Validate() error {
	if err := checkPlan(o.Entries, o.ErrorPercent); err != nil {
		return err
	}
	for _, c := range o.Categories {
		if _, ok := defaultRegistry.Get(c); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownCategory, c)
		}
	}
	return nil
}

// CategoryCount is the number of emitted entries of one category.
type CategoryCount struct {
	Category Category
	Count    int
}

// Result summarizes a completed run.
type Result struct {
	Plan   []PlannedEntry
	Valid  int
	Errors map[Category]int
	Rows   int
}

// ErrorTotal returns the number of error entries emitted.
func (r Result) ErrorTotal() int {
	n := 0
	for _, c := range r.Errors {
		n += c
	}
	return n
}

// ErrorCounts returns per-category counts sorted by category name.
func (r Result) ErrorCounts() []CategoryCount {
	counts := make([]CategoryCount, 0, len(r.Errors))
	for c, n := range r.Errors {
		counts = append(counts, CategoryCount{Category: c, Count: n})
	}
	slices.SortFunc(counts, func(a, b CategoryCount) int {
		return cmp.Compare(a.Category, b.Category)
	})
	return counts
}

// ErrNilWriter is returned when Write is given no destination.
var ErrNilWriter = errors.New("nil writer")

// Write plans a run and writes the header plus two rows per entry to w in
// plan order.
func (g *Generator) Write(w io.Writer, opts Options) (Result, error) {
	if w == nil {
		return Result{}, ErrNilWriter
	}
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	date := opts.AccountingDate
	if date.IsZero() {
		date = g.today
	}

	plan, err := g.Plan(opts.Entries, opts.ErrorPercent, opts.Categories, opts.Shuffle)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Plan:   plan,
		Errors: make(map[Category]int),
	}

	jw := journal.NewWriter(w)
	if err := jw.WriteHeader(); err != nil {
		return res, err
	}

	for _, entry := range res.Plan {
		var pair model.Pair
		if entry.IsError() {
			pair, err = g.ApplyError(entry.EntryNum, entry.Category, date)
			if err != nil {
				return res, err
			}
			res.Errors[entry.Category]++
		} else {
			pair = g.BuildValidPair(entry.EntryNum, date)
			res.Valid++
		}

		if err := jw.WritePair(pair); err != nil {
			return res, fmt.Errorf("entry %d: %w", entry.EntryNum, err)
		}
		res.Rows += 2

		if opts.Progress != nil && entry.EntryNum%ProgressInterval == 0 {
			opts.Progress(entry.EntryNum)
		}
	}

	if err := jw.Flush(); err != nil {
		return res, fmt.Errorf("flushing journal: %w", err)
	}
	return res, nil
}
