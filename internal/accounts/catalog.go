package accounts

import "github.com/cleared-dev/journalgen/internal/model"

// Catalog holds the reference data entries are drawn from, both the values the
// import system resolves and the values chosen to make it fail.
type Catalog struct {
	Assets   []string
	Valid    []model.Account
	Writeoff []model.Account

	InvalidAssets          []string
	InvalidAccounts        []model.Account
	MismatchedNaturalAccts []string
}

// HasAsset reports whether id is a known asset.
func (c *Catalog) HasAsset(id string) bool {
	for _, a := range c.Assets {
		if a == id {
			return true
		}
	}
	return false
}

// HasAccount reports whether acct is a known sub-account with its matching
// natural account, on either side of an entry.
func (c *Catalog) HasAccount(acct model.Account) bool {
	for _, set := range [][]model.Account{c.Valid, c.Writeoff} {
		for _, a := range set {
			if a == acct {
				return true
			}
		}
	}
	return false
}

// HasSubAccount reports whether subAcct exists regardless of natural account.
func (c *Catalog) HasSubAccount(subAcct string) bool {
	for _, set := range [][]model.Account{c.Valid, c.Writeoff} {
		for _, a := range set {
			if a.SubAcct == subAcct {
				return true
			}
		}
	}
	return false
}
