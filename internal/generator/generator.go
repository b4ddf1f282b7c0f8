// Package generator builds journal entry pairs for bulk import fixtures and
// corrupts a chosen share of them so each fails import for a single,
// known reason.
package generator

import (
	"math/rand/v2"
	"time"

	"github.com/cleared-dev/journalgen/internal/accounts"
	"github.com/cleared-dev/journalgen/internal/model"
)

// Params configures a Generator. Zero values fall back to the staging
// catalog, the default line constants and the current date.
type Params struct {
	Rand     *rand.Rand
	Catalog  *accounts.Catalog
	Defaults *model.LineDefaults
	Today    time.Time
}

// Generator produces entry pairs. All randomness comes from its own source,
// so two generators built from the same seed emit the same entries.
type Generator struct {
	rng      *rand.Rand
	catalog  *accounts.Catalog
	defaults model.LineDefaults
	today    time.Time
}

// NewRand returns a deterministic random source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// New creates a Generator.
func New(p Params) *Generator {
	g := &Generator{
		rng:      p.Rand,
		catalog:  p.Catalog,
		defaults: model.DefaultLineDefaults(),
		today:    p.Today,
	}
	if g.rng == nil {
		g.rng = NewRand(uint64(time.Now().UnixNano()))
	}
	if g.catalog == nil {
		g.catalog = accounts.Default()
	}
	if p.Defaults != nil {
		g.defaults = *p.Defaults
	}
	if g.today.IsZero() {
		g.today = time.Now()
	}
	g.today = Day(g.today)
	return g
}

// Today returns the date future-date and past-date errors are relative to.
func (g *Generator) Today() time.Time {
	return g.today
}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// between returns a uniform integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}
