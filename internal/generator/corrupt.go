package generator

import (
	"fmt"
	"time"

	"github.com/cleared-dev/journalgen/internal/model"
)

// ApplyError returns a pair that is valid in every respect except the one
// property category c breaks.
func (g *Generator) ApplyError(entryNum int, c Category, accountingDate time.Time) (model.Pair, error) {
	rule, ok := defaultRegistry.Get(c)
	if !ok {
		return model.Pair{}, fmt.Errorf("entry %d: %w: %q", entryNum, ErrUnknownCategory, c)
	}

	p := g.BuildValidPair(entryNum, accountingDate)
	p.SetDescription(ErrorDescription(c))
	rule.apply(g, &p)
	return p, nil
}
