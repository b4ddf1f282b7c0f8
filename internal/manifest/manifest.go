package manifest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cleared-dev/journalgen/internal/generator"
)

// Entry records what one generated entry is expected to do on import.
type Entry struct {
	EntryNum    int
	Category    generator.Category // empty for a valid entry
	Description string
}

// Header is the CSV header of a manifest file.
const Header = "entry_num,category,description"

// ValidLabel is written in the category column for valid entries.
const ValidLabel = "valid"

const (
	numFields   = 3
	colEntryNum = 0
	colCategory = 1
	colDesc     = 2
)

// FromPlan builds manifest entries for a generated plan.
func FromPlan(plan []generator.PlannedEntry) []Entry {
	entries := make([]Entry, len(plan))
	for i, p := range plan {
		entries[i] = Entry{
			EntryNum:    p.EntryNum,
			Category:    p.Category,
			Description: generator.Description(p.Category),
		}
	}
	return entries
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colEntryNum] = strconv.Itoa(e.EntryNum)
	row[colCategory] = ValidLabel
	if e.Category != "" {
		row[colCategory] = string(e.Category)
	}
	row[colDesc] = e.Description
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	num, err := strconv.Atoi(record[colEntryNum])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing entry_num %q: %w", record[colEntryNum], err)
	}

	var category generator.Category
	if record[colCategory] != ValidLabel {
		category = generator.Category(record[colCategory])
	}

	return Entry{
		EntryNum:    num,
		Category:    category,
		Description: record[colDesc],
	}, nil
}

// Write creates (or truncates) the manifest at path.
func Write(path string, entries []Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating manifest: %w", err)
	}
	defer f.Close()

	if err := writeEntries(f, entries); err != nil {
		return err
	}
	return f.Close()
}

func writeEntries(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Read returns all entries from the manifest at path.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening manifest: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading manifest CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
