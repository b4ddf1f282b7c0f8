package generator

import (
	"bytes"
	"errors"
	"io"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/journalgen/internal/journal"
	"github.com/cleared-dev/journalgen/internal/model"
)

func run(t *testing.T, seed uint64, opts Options) (Result, []byte) {
	t.Helper()
	var buf bytes.Buffer
	res, err := newTestGenerator(seed).Write(&buf, opts)
	require.NoError(t, err)
	return res, buf.Bytes()
}

func readPairs(t *testing.T, data []byte) []model.Pair {
	t.Helper()
	recs, err := journal.ReadRecords(bytes.NewReader(data))
	require.NoError(t, err)
	require.Zero(t, len(recs)%2, "rows must come in pairs")

	pairs := make([]model.Pair, 0, len(recs)/2)
	for i := 0; i < len(recs); i += 2 {
		pairs = append(pairs, model.Pair{Debit: recs[i], Credit: recs[i+1]})
	}
	return pairs
}

func TestWrite_RowCount(t *testing.T) {
	for _, percent := range []float64{0, 10, 55.5, 100} {
		res, data := run(t, 1, Options{Entries: 137, ErrorPercent: percent})
		recs, err := journal.ReadRecords(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Len(t, recs, 274, "percent %g", percent)
		assert.Equal(t, 274, res.Rows)
		assert.Equal(t, 137, res.Valid+res.ErrorTotal())
		assert.Equal(t, ErrorCount(137, percent), res.ErrorTotal())
	}
}

func TestWrite_ZeroEntries(t *testing.T) {
	res, data := run(t, 1, Options{Entries: 0, ErrorPercent: 10})
	assert.Equal(t, journal.Header+"\n", string(data))
	assert.Zero(t, res.Rows)
	assert.Empty(t, res.Plan)
}

func TestWrite_AllUnbalanced(t *testing.T) {
	res, data := run(t, 3, Options{Entries: 10, ErrorPercent: 100, Categories: []Category{Unbalanced}})
	assert.Equal(t, map[Category]int{Unbalanced: 10}, res.Errors)
	assert.Zero(t, res.Valid)

	pairs := readPairs(t, data)
	require.Len(t, pairs, 10)
	for i, p := range pairs {
		assert.Equal(t, i+1, p.Debit.EntryNum)
		require.True(t, p.Debit.EnteredDR.Valid)
		require.True(t, p.Credit.EnteredCR.Valid)
		diff := p.Debit.EnteredDR.Decimal.Sub(p.Credit.EnteredCR.Decimal)
		assert.True(t, diff.Equal(decimal.RequireFromString("-0.0000000001")), "entry %d diff %s", i+1, diff)
		assert.False(t, p.Debit.EnteredDR.Decimal.Equal(p.Credit.EnteredCR.Decimal))
	}
}

func TestWrite_ValidEntriesBalance(t *testing.T) {
	res, data := run(t, 4, Options{Entries: 200, ErrorPercent: 10, Shuffle: true})

	pairs := readPairs(t, data)
	require.Len(t, pairs, len(res.Plan))
	for i, entry := range res.Plan {
		p := pairs[i]
		assert.Equal(t, entry.EntryNum, p.Debit.EntryNum)
		assert.Equal(t, Description(entry.Category), p.Debit.Description)
		if !entry.IsError() {
			assertValidPair(t, p)
			assert.True(t, p.Debit.AccountingDate.Equal(today))
		}
	}
}

func TestWrite_AccountingDateOverride(t *testing.T) {
	date := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	_, data := run(t, 5, Options{Entries: 5, AccountingDate: date})
	for _, p := range readPairs(t, data) {
		assert.Equal(t, "2024-12-31", p.Debit.AccountingDate.Format(journal.DateFormat))
	}
}

func TestWrite_ExactCSV(t *testing.T) {
	_, data := run(t, 5, Options{Entries: 1, ErrorPercent: 100, Categories: []Category{ZeroAmount}})
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, journal.Header, lines[0])
	assert.Regexp(t, `^1,DCOE-9999,\d{20},CP,2025-06-15,000000,\w+,DEL,STAT,0\.0000000000,,ERROR: ZERO-AMOUNT,,1,DISC,0,0,,0,,NONE,$`, lines[1])
	assert.Regexp(t, `^1,DCOE-9999,\d{20},CP,2025-06-15,2010[1-6]0,\w+,REC,STAT,,0\.0000000000,ERROR: ZERO-AMOUNT,,1,DISC,0,0,,0,,NONE,$`, lines[2])
}

func TestWrite_Deterministic(t *testing.T) {
	opts := Options{Entries: 300, ErrorPercent: 40, Shuffle: true}
	_, a := run(t, 1234, opts)
	_, b := run(t, 1234, opts)
	_, c := run(t, 1235, opts)

	assert.Equal(t, a, b, "same seed must produce identical output")
	assert.NotEqual(t, a, c)
}

func TestWrite_Progress(t *testing.T) {
	var calls []int
	g := newTestGenerator(6)
	_, err := g.Write(io.Discard, Options{
		Entries:  ProgressInterval*2 + 1,
		Progress: func(done int) { calls = append(calls, done) },
	})
	require.NoError(t, err)
	assert.Equal(t, []int{ProgressInterval, ProgressInterval * 2}, calls)
}

func TestWrite_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"negative entries", Options{Entries: -1}},
		{"percent below range", Options{Entries: 1, ErrorPercent: -0.5}},
		{"percent above range", Options{Entries: 1, ErrorPercent: 100.1}},
		{"NaN percent", Options{Entries: 1, ErrorPercent: math.NaN()}},
		{"unknown category", Options{Entries: 1, ErrorPercent: 50, Categories: []Category{"nope"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			_, err := newTestGenerator(1).Write(&buf, tt.opts)
			require.Error(t, err)
			assert.Zero(t, buf.Len(), "nothing should be written on invalid options")
		})
	}
}

func TestWrite_NilWriter(t *testing.T) {
	_, err := newTestGenerator(1).Write(nil, Options{})
	assert.ErrorIs(t, err, ErrNilWriter)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite_PropagatesWriteErrors(t *testing.T) {
	_, err := newTestGenerator(1).Write(failingWriter{}, Options{Entries: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestResult_ErrorCounts(t *testing.T) {
	res := Result{Errors: map[Category]int{ZeroAmount: 2, FutureDate: 1, Unbalanced: 4}}
	assert.Equal(t, []CategoryCount{
		{Category: FutureDate, Count: 1},
		{Category: Unbalanced, Count: 4},
		{Category: ZeroAmount, Count: 2},
	}, res.ErrorCounts())
	assert.Equal(t, 7, res.ErrorTotal())
}
