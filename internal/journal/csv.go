package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/journalgen/internal/model"
)

// Header is the CSV header of a bulk journal import file.
const Header = "ENTRY_NUM,JIRA_ID,ASSET_ID,POSITION,ACCOUNTING_DATE,NATURAL_ACCT,SUB_ACCT,TRANS_CODE,CURRENCY,ENTERED_DR,ENTERED_CR,LINE_DESCRIPTION,TRANS_SUBCODE,FX_RATE,BUSINESS_UNIT,BV_DELTA_DR,BV_DELTA_CR,RELATED_ASSET_ID,COMMISSION,REFERENCE_VALUE,REFERENCE_TYPE,EXTERNAL_SOURCE"

// AmountPlaces is the number of fractional digits written for ENTERED_DR/ENTERED_CR.
const AmountPlaces = 10

// DateFormat is the layout of ACCOUNTING_DATE.
const DateFormat = "2006-01-02"

const (
	numFields       = 22
	colEntryNum     = 0
	colJiraID       = 1
	colAssetID      = 2
	colPosition     = 3
	colDate         = 4
	colNaturalAcct  = 5
	colSubAcct      = 6
	colTransCode    = 7
	colCurrency     = 8
	colDebit        = 9
	colCredit       = 10
	colDesc         = 11
	colTransSubcode = 12
	colFXRate       = 13
	colBusinessUnit = 14
	colBVDeltaDR    = 15
	colBVDeltaCR    = 16
	colRelatedAsset = 17
	colCommission   = 18
	colRefValue     = 19
	colRefType      = 20
	colExtSource    = 21
)

// FormatAmount renders an amount cell: fixed-point with AmountPlaces digits,
// or empty when the amount is absent.
func FormatAmount(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.StringFixed(AmountPlaces)
}

func parseAmount(s string) (decimal.NullDecimal, error) {
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}

// Writer streams records to a journal CSV file.
type Writer struct {
	cw   *csv.Writer
	rows int
}

// NewWriter returns a Writer that writes to w. Nothing is written until
// WriteHeader or WritePair is called.
func NewWriter(w io.Writer) *Writer {
	return &Writer{cw: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	if err := w.cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	return nil
}

// WritePair writes the DEL leg followed by the REC leg.
func (w *Writer) WritePair(p model.Pair) error {
	for _, rec := range p.Records() {
		if err := w.WriteRecord(rec); err != nil {
			return err
		}
	}
	return nil
}

// WriteRecord writes a single row.
func (w *Writer) WriteRecord(rec model.Record) error {
	w.rows++
	if err := w.cw.Write(MarshalRecord(rec)); err != nil {
		return fmt.Errorf("writing row %d: %w", w.rows+1, err)
	}
	return nil
}

// Flush flushes buffered rows and reports any write error.
func (w *Writer) Flush() error {
	w.cw.Flush()
	return w.cw.Error()
}

// WriteRecords writes a complete journal file (including header).
func WriteRecords(w io.Writer, records []model.Record) error {
	jw := NewWriter(w)
	if err := jw.WriteHeader(); err != nil {
		return err
	}
	for _, rec := range records {
		if err := jw.WriteRecord(rec); err != nil {
			return err
		}
	}
	return jw.Flush()
}

// ReadRecords reads all records from a journal CSV reader.
func ReadRecords(r io.Reader) ([]model.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	// Skip header row.
	var records []model.Record
	for i, row := range rows[1:] {
		rec, err := UnmarshalRecord(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// MarshalRecord converts a Record to a CSV row.
func MarshalRecord(rec model.Record) []string {
	row := make([]string, numFields)
	row[colEntryNum] = strconv.Itoa(rec.EntryNum)
	row[colJiraID] = rec.JiraID
	row[colAssetID] = rec.AssetID
	row[colPosition] = rec.Position
	if !rec.AccountingDate.IsZero() {
		row[colDate] = rec.AccountingDate.Format(DateFormat)
	}
	row[colNaturalAcct] = rec.NaturalAcct
	row[colSubAcct] = rec.SubAcct
	row[colTransCode] = string(rec.TransCode)
	row[colCurrency] = rec.Currency
	row[colDebit] = FormatAmount(rec.EnteredDR)
	row[colCredit] = FormatAmount(rec.EnteredCR)
	row[colDesc] = rec.Description
	row[colTransSubcode] = rec.TransSubcode
	row[colFXRate] = rec.FXRate
	row[colBusinessUnit] = rec.BusinessUnit
	row[colBVDeltaDR] = rec.BVDeltaDR
	row[colBVDeltaCR] = rec.BVDeltaCR
	row[colRelatedAsset] = rec.RelatedAssetID
	row[colCommission] = rec.Commission
	row[colRefValue] = rec.ReferenceValue
	row[colRefType] = rec.ReferenceType
	row[colExtSource] = rec.ExternalSource
	return row
}

// UnmarshalRecord converts a CSV row to a Record.
func UnmarshalRecord(row []string) (model.Record, error) {
	if len(row) != numFields {
		return model.Record{}, fmt.Errorf("expected %d fields, got %d", numFields, len(row))
	}

	entryNum, err := strconv.Atoi(row[colEntryNum])
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing entry_num %q: %w", row[colEntryNum], err)
	}

	var date time.Time
	if row[colDate] != "" {
		date, err = time.Parse(DateFormat, row[colDate])
		if err != nil {
			return model.Record{}, fmt.Errorf("parsing accounting_date %q: %w", row[colDate], err)
		}
	}

	debit, err := parseAmount(row[colDebit])
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing entered_dr %q: %w", row[colDebit], err)
	}
	credit, err := parseAmount(row[colCredit])
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing entered_cr %q: %w", row[colCredit], err)
	}

	return model.Record{
		EntryNum:       entryNum,
		JiraID:         row[colJiraID],
		AssetID:        row[colAssetID],
		Position:       row[colPosition],
		AccountingDate: date,
		NaturalAcct:    row[colNaturalAcct],
		SubAcct:        row[colSubAcct],
		TransCode:      model.TransCode(row[colTransCode]),
		Currency:       row[colCurrency],
		EnteredDR:      debit,
		EnteredCR:      credit,
		Description:    row[colDesc],
		TransSubcode:   row[colTransSubcode],
		FXRate:         row[colFXRate],
		BusinessUnit:   row[colBusinessUnit],
		BVDeltaDR:      row[colBVDeltaDR],
		BVDeltaCR:      row[colBVDeltaCR],
		RelatedAssetID: row[colRelatedAsset],
		Commission:     row[colCommission],
		ReferenceValue: row[colRefValue],
		ReferenceType:  row[colRefType],
		ExternalSource: row[colExtSource],
	}, nil
}
