package generator

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/journalgen/internal/model"
)

// ValidDescription is the line description of entries expected to import cleanly.
const ValidDescription = "VALID ENTRY - SHOULD PASS"

// Amount bounds: mantissa / 10^exponent.
const (
	minMantissa = 1
	maxMantissa = 9999
	minExponent = 8
	maxExponent = 10
)

// BuildValidPair returns a balanced entry: a DEL leg on a valid account and a
// REC leg on a writeoff account, both for the same asset and amount.
func (g *Generator) BuildValidPair(entryNum int, accountingDate time.Time) model.Pair {
	asset := pick(g.rng, g.catalog.Assets)
	source := pick(g.rng, g.catalog.Valid)
	dest := pick(g.rng, g.catalog.Writeoff)
	amount := g.randomAmount()

	debit := g.defaults.NewRecord(entryNum, model.TransCodeDebit)
	debit.SetAccount(source)
	debit.EnteredDR = decimal.NewNullDecimal(amount)

	credit := g.defaults.NewRecord(entryNum, model.TransCodeCredit)
	credit.SetAccount(dest)
	credit.EnteredCR = decimal.NewNullDecimal(amount)

	p := model.Pair{Debit: debit, Credit: credit}
	p.SetAsset(asset)
	p.SetDate(Day(accountingDate))
	p.SetDescription(ValidDescription)
	return p
}

// randomAmount returns a small positive amount with at most 10 fractional digits.
func (g *Generator) randomAmount() decimal.Decimal {
	mantissa := g.between(minMantissa, maxMantissa)
	exponent := g.between(minExponent, maxExponent)
	return decimal.New(int64(mantissa), -int32(exponent))
}
