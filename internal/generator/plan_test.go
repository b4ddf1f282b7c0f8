package generator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCount(t *testing.T) {
	tests := []struct {
		total   int
		percent float64
		want    int
	}{
		{1000, 10, 100},
		{1000, 5, 50},
		{10, 100, 10},
		{100, 0, 0},
		{0, 50, 0},
		{3, 50, 1},
		{7, 33.3, 2},
		{1000, 0.1, 1},
		{999, 99.9, 998},
		{10, math.NaN(), 0},
		{10, math.Inf(1), 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorCount(tt.total, tt.percent), "ErrorCount(%d, %g)", tt.total, tt.percent)
	}
}

func TestPlan_ValidFirst(t *testing.T) {
	g := newTestGenerator(1)
	plan, err := g.Plan(20, 25, nil, false)
	require.NoError(t, err)
	require.Len(t, plan, 20)

	for i, e := range plan {
		assert.Equal(t, i+1, e.EntryNum)
		if i < 15 {
			assert.False(t, e.IsError(), "entry %d should be valid", e.EntryNum)
		} else {
			assert.True(t, e.IsError(), "entry %d should be an error", e.EntryNum)
		}
	}
}

func TestPlan_SingleCategory(t *testing.T) {
	g := newTestGenerator(2)
	plan, err := g.Plan(50, 100, []Category{ZeroAmount}, false)
	require.NoError(t, err)
	for _, e := range plan {
		assert.Equal(t, ZeroAmount, e.Category)
	}
}

func TestPlan_MixedDrawsEveryCategory(t *testing.T) {
	g := newTestGenerator(3)
	seen := make(map[Category]bool)
	plan, err := g.Plan(900, 100, Categories(), false)
	require.NoError(t, err)
	for _, e := range plan {
		seen[e.Category] = true
	}
	assert.Len(t, seen, len(Categories()))
}

func TestPlan_ShuffleKeepsCounts(t *testing.T) {
	g := newTestGenerator(4)
	plan, err := g.Plan(200, 30, nil, true)
	require.NoError(t, err)
	require.Len(t, plan, 200)

	errs := 0
	firstError := -1
	for i, e := range plan {
		assert.Equal(t, i+1, e.EntryNum)
		if e.IsError() {
			errs++
			if firstError < 0 {
				firstError = i
			}
		}
	}
	assert.Equal(t, 60, errs)
	assert.Less(t, firstError, 140, "shuffled errors should not all sit at the end")
}

func TestPlan_Empty(t *testing.T) {
	g := newTestGenerator(5)
	plan, err := g.Plan(0, 50, nil, true)
	require.NoError(t, err)
	assert.Empty(t, plan)
}

func TestPlan_Deterministic(t *testing.T) {
	a, err := newTestGenerator(99).Plan(100, 40, nil, true)
	require.NoError(t, err)
	b, err := newTestGenerator(99).Plan(100, 40, nil, true)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPlan_RejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		percent float64
	}{
		{"negative total", -1, 10},
		{"percent above 100", 10, 150},
		{"negative percent", 10, -1},
		{"NaN percent", 10, math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGenerator(6)
			require.NotPanics(t, func() {
				plan, err := g.Plan(tt.total, tt.percent, nil, false)
				require.Error(t, err)
				assert.Nil(t, plan)
			})
		})
	}
}
