package accounts

import (
	"slices"

	"github.com/cleared-dev/journalgen/internal/model"
)

// Asset ids known to the staging environment.
var validAssets = []string{
	"00000000000000026236", // BTC
	"00000000000000026237", // ETH
	"00000000000000026264", // SOL
	"00000000000000026261", // ADA
	"00000000000000026255", // DOGE
	"00000000000000026277", // USDC
}

// Sub-accounts used on the DEL leg.
var validAccounts = []model.Account{
	{SubAcct: "HQ0243B17CAD", NaturalAcct: "000000"},
	{SubAcct: "HQ011XM14CAD", NaturalAcct: "000000"},
	{SubAcct: "BR00135L1USD", NaturalAcct: "000000"},
	{SubAcct: "BR00136L0USD", NaturalAcct: "000000"},
	{SubAcct: "HQ05VJC14CAD", NaturalAcct: "000000"},
	{SubAcct: "HQ07FQK13CAD", NaturalAcct: "000000"},
	{SubAcct: "HQ0QV8R16CAD", NaturalAcct: "000000"},
	{SubAcct: "BR00142X6USD", NaturalAcct: "000000"},
	{SubAcct: "BR00144R7USD", NaturalAcct: "000000"},
	{SubAcct: "BR00145R6USD", NaturalAcct: "000000"},
}

// Writeoff sub-accounts used on the REC leg.
var writeoffAccounts = []model.Account{
	{SubAcct: "HQ0C7XCK3CAD", NaturalAcct: "201030"},
	{SubAcct: "HM93593K8CAD", NaturalAcct: "201030"},
	{SubAcct: "WB7218549CAD", NaturalAcct: "201030"},
	{SubAcct: "H19930702CAD", NaturalAcct: "201010"},
	{SubAcct: "WB7658603CAD", NaturalAcct: "201060"},
}

var invalidAssets = []string{
	"00000000000000099999", // non-existent
	"00000000000000000001", // below the issued range
	"99999999999999999999", // above the issued range
	"INVALID_ASSET_ID_XXX", // wrong format
	"",
}

var invalidAccounts = []model.Account{
	{SubAcct: "XXXXXX99999", NaturalAcct: "000000"},     // non-existent
	{SubAcct: "", NaturalAcct: "000000"},                // empty
	{SubAcct: "TOOLONG12345678", NaturalAcct: "000000"}, // more than 12 chars
	{SubAcct: "SHORT", NaturalAcct: "000000"},
}

var mismatchedNaturalAccts = []string{
	"999999", // non-existent
	"123456",
	"",
}

// Default returns a fresh copy of the staging catalog.
func Default() *Catalog {
	return &Catalog{
		Assets:                 slices.Clone(validAssets),
		Valid:                  slices.Clone(validAccounts),
		Writeoff:               slices.Clone(writeoffAccounts),
		InvalidAssets:          slices.Clone(invalidAssets),
		InvalidAccounts:        slices.Clone(invalidAccounts),
		MismatchedNaturalAccts: slices.Clone(mismatchedNaturalAccts),
	}
}
