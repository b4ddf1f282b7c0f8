package model

// Account is a sub-account paired with its natural account code.
type Account struct {
	SubAcct     string
	NaturalAcct string
}
