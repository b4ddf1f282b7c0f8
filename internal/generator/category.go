package generator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/journalgen/internal/model"
)

// Category names one way an entry is made to fail import.
type Category string

const (
	Unbalanced         Category = "unbalanced"
	InvalidAsset       Category = "invalid-asset"
	InvalidAccount     Category = "invalid-account"
	InvalidNaturalAcct Category = "invalid-natural-acct"
	FutureDate         Category = "future-date"
	PastDate           Category = "past-date"
	MissingAmount      Category = "missing-amount"
	NegativeAmount     Category = "negative-amount"
	ZeroAmount         Category = "zero-amount"
)

// Mixed selects every registered category.
const Mixed = "mixed"

// ErrUnknownCategory is returned for a category name that is not registered.
var ErrUnknownCategory = errors.New("unknown error type")

// Rule corrupts one field-level property of an otherwise valid pair.
type Rule struct {
	Category Category
	Help     string
	apply    func(g *Generator, p *model.Pair)
}

// Registry holds the corruption rules in registration order.
type Registry struct {
	rules map[Category]Rule
	order []Category
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[Category]Rule)}
}

// Register adds a rule. Panics on duplicate category.
func (r *Registry) Register(rule Rule) {
	if _, ok := r.rules[rule.Category]; ok {
		panic("duplicate error category: " + string(rule.Category))
	}
	r.rules[rule.Category] = rule
	r.order = append(r.order, rule.Category)
}

// Get returns the rule for c.
func (r *Registry) Get(c Category) (Rule, bool) {
	rule, ok := r.rules[c]
	return rule, ok
}

// Categories returns all categories in registration order.
func (r *Registry) Categories() []Category {
	return append([]Category(nil), r.order...)
}

// Parse resolves a selector to the categories it covers: Mixed (or empty)
// expands to every category, anything else must name exactly one.
func (r *Registry) Parse(selector string) ([]Category, error) {
	if selector == "" || selector == Mixed {
		return r.Categories(), nil
	}
	c := Category(selector)
	if _, ok := r.rules[c]; !ok {
		return nil, fmt.Errorf("%w: %q (valid: %s, %s)", ErrUnknownCategory, selector, r.names(), Mixed)
	}
	return []Category{c}, nil
}

func (r *Registry) names() string {
	names := make([]string, len(r.order))
	for i, c := range r.order {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

var defaultRegistry = DefaultRegistry()

// DefaultRegistry returns a registry with every built-in category.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Rule{Category: Unbalanced, Help: "DR != CR (will fail balancing validation)", apply: unbalance})
	r.Register(Rule{Category: InvalidAsset, Help: "Non-existent asset ID", apply: invalidAsset})
	r.Register(Rule{Category: InvalidAccount, Help: "Non-existent sub-account ID", apply: invalidAccount})
	r.Register(Rule{Category: InvalidNaturalAcct, Help: "Natural account doesn't match sub-account type", apply: invalidNaturalAcct})
	r.Register(Rule{Category: FutureDate, Help: "Accounting date 30+ days in future", apply: futureDate})
	r.Register(Rule{Category: PastDate, Help: "Accounting date in closed period (>2 years ago)", apply: pastDate})
	r.Register(Rule{Category: MissingAmount, Help: "Both DR and CR are empty", apply: missingAmount})
	r.Register(Rule{Category: NegativeAmount, Help: "Negative amounts", apply: negativeAmount})
	r.Register(Rule{Category: ZeroAmount, Help: "Zero amounts", apply: zeroAmount})
	return r
}

// Categories returns every built-in category.
func Categories() []Category {
	return defaultRegistry.Categories()
}

// Help returns the one-line description of c.
func Help(c Category) string {
	rule, _ := defaultRegistry.Get(c)
	return rule.Help
}

// ParseCategories resolves selector against the built-in registry.
func ParseCategories(selector string) ([]Category, error) {
	return defaultRegistry.Parse(selector)
}

// ErrorDescription is the line description written on entries of category c.
func ErrorDescription(c Category) string {
	return "ERROR: " + strings.ToUpper(string(c))
}

// Description returns the line description for a planned entry; an empty
// category means a valid entry.
func Description(c Category) string {
	if c == "" {
		return ValidDescription
	}
	return ErrorDescription(c)
}

// Imbalance is added to the credit side of unbalanced entries.
var Imbalance = decimal.New(1, -10)

// Day offsets for date errors, relative to today.
const (
	minFutureDays = 30
	maxFutureDays = 365
	minPastDays   = 730
	maxPastDays   = 1000
)

func unbalance(_ *Generator, p *model.Pair) {
	p.Credit.EnteredCR = decimal.NewNullDecimal(p.Debit.EnteredDR.Decimal.Add(Imbalance))
}

func invalidAsset(g *Generator, p *model.Pair) {
	p.SetAsset(pick(g.rng, g.catalog.InvalidAssets))
}

func invalidAccount(g *Generator, p *model.Pair) {
	acct := pick(g.rng, g.catalog.InvalidAccounts)
	g.pickLeg(p).SetAccount(acct)
}

func invalidNaturalAcct(g *Generator, p *model.Pair) {
	leg := g.pickLeg(p)
	leg.NaturalAcct = pick(g.rng, g.catalog.MismatchedNaturalAccts)
}

func futureDate(g *Generator, p *model.Pair) {
	p.SetDate(g.today.AddDate(0, 0, g.between(minFutureDays, maxFutureDays)))
}

func pastDate(g *Generator, p *model.Pair) {
	p.SetDate(g.today.AddDate(0, 0, -g.between(minPastDays, maxPastDays)))
}

func missingAmount(_ *Generator, p *model.Pair) {
	p.Debit.EnteredDR = decimal.NullDecimal{}
	p.Credit.EnteredCR = decimal.NullDecimal{}
}

func negativeAmount(_ *Generator, p *model.Pair) {
	p.Debit.EnteredDR = decimal.NewNullDecimal(p.Debit.EnteredDR.Decimal.Neg())
	p.Credit.EnteredCR = decimal.NewNullDecimal(p.Credit.EnteredCR.Decimal.Neg())
}

func zeroAmount(_ *Generator, p *model.Pair) {
	p.Debit.EnteredDR = decimal.NewNullDecimal(decimal.Zero)
	p.Credit.EnteredCR = decimal.NewNullDecimal(decimal.Zero)
}

// pickLeg chooses the DEL or REC leg with equal probability.
func (g *Generator) pickLeg(p *model.Pair) *model.Record {
	if g.rng.IntN(2) == 0 {
		return &p.Debit
	}
	return &p.Credit
}
