package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransCode marks which side of an entry a record posts to.
type TransCode string

const (
	TransCodeDebit  TransCode = "DEL"
	TransCodeCredit TransCode = "REC"
)

// Record is a single row of a bulk journal file (one leg of an entry).
type Record struct {
	EntryNum       int
	JiraID         string
	AssetID        string
	Position       string
	AccountingDate time.Time
	NaturalAcct    string
	SubAcct        string
	TransCode      TransCode
	Currency       string
	EnteredDR      decimal.NullDecimal // invalid = empty cell
	EnteredCR      decimal.NullDecimal // invalid = empty cell
	Description    string
	TransSubcode   string
	FXRate         string
	BusinessUnit   string
	BVDeltaDR      string
	BVDeltaCR      string
	RelatedAssetID string
	Commission     string
	ReferenceValue string
	ReferenceType  string
	ExternalSource string
}

// Account returns the sub-account/natural-account pair the record posts to.
func (r Record) Account() Account {
	return Account{SubAcct: r.SubAcct, NaturalAcct: r.NaturalAcct}
}

// SetAccount points the record at acct.
func (r *Record) SetAccount(acct Account) {
	r.SubAcct = acct.SubAcct
	r.NaturalAcct = acct.NaturalAcct
}

// Pair is one journal entry: a DEL leg and a REC leg sharing an entry number.
type Pair struct {
	Debit  Record
	Credit Record
}

// Records returns the legs in output order.
func (p Pair) Records() []Record {
	return []Record{p.Debit, p.Credit}
}

// SetDate sets the accounting date on both legs.
func (p *Pair) SetDate(d time.Time) {
	p.Debit.AccountingDate = d
	p.Credit.AccountingDate = d
}

// SetAsset sets the asset id on both legs.
func (p *Pair) SetAsset(assetID string) {
	p.Debit.AssetID = assetID
	p.Credit.AssetID = assetID
}

// SetDescription sets the line description on both legs.
func (p *Pair) SetDescription(desc string) {
	p.Debit.Description = desc
	p.Credit.Description = desc
}

// LineDefaults holds the columns that are identical on every generated row.
type LineDefaults struct {
	JiraID         string `yaml:"jira_id"         env:"JIRA_ID"`
	Position       string `yaml:"position"        env:"POSITION"`
	Currency       string `yaml:"currency"        env:"CURRENCY"`
	TransSubcode   string `yaml:"trans_subcode"   env:"TRANS_SUBCODE"`
	FXRate         string `yaml:"fx_rate"         env:"FX_RATE"`
	BusinessUnit   string `yaml:"business_unit"   env:"BUSINESS_UNIT"`
	BVDelta        string `yaml:"bv_delta"        env:"BV_DELTA"`
	RelatedAssetID string `yaml:"related_asset_id" env:"RELATED_ASSET_ID"`
	Commission     string `yaml:"commission"      env:"COMMISSION"`
	ReferenceValue string `yaml:"reference_value" env:"REFERENCE_VALUE"`
	ReferenceType  string `yaml:"reference_type"  env:"REFERENCE_TYPE"`
	ExternalSource string `yaml:"external_source" env:"EXTERNAL_SOURCE"`
}

// DefaultLineDefaults returns the constants the import staging environment expects.
func DefaultLineDefaults() LineDefaults {
	return LineDefaults{
		JiraID:        "DCOE-9999",
		Position:      "CP",
		Currency:      "STAT",
		FXRate:        "1",
		BusinessUnit:  "DISC",
		BVDelta:       "0",
		Commission:    "0",
		ReferenceType: "NONE",
	}
}

// NewRecord returns a record for one leg with all constant columns filled in.
func (d LineDefaults) NewRecord(entryNum int, code TransCode) Record {
	return Record{
		EntryNum:       entryNum,
		JiraID:         d.JiraID,
		Position:       d.Position,
		TransCode:      code,
		Currency:       d.Currency,
		TransSubcode:   d.TransSubcode,
		FXRate:         d.FXRate,
		BusinessUnit:   d.BusinessUnit,
		BVDeltaDR:      d.BVDelta,
		BVDeltaCR:      d.BVDelta,
		RelatedAssetID: d.RelatedAssetID,
		Commission:     d.Commission,
		ReferenceValue: d.ReferenceValue,
		ReferenceType:  d.ReferenceType,
		ExternalSource: d.ExternalSource,
	}
}
