package vertex_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zvertex/vertex"
)

// TestOptions_Panics verifies option constructors fail fast on meaningless input.
func TestOptions_Panics(t *testing.T) {
	cases := []struct {
		name string
		fn   func()
	}{
		{"EmptyTable", func() { vertex.WithTable() }},
		{"DegenerateRow", func() { vertex.WithTable(vertex.Limits{Low: 1, High: 1}) }},
		{"InvertedRow", func() { vertex.WithTable(vertex.Limits{Low: 0, High: 1}, vertex.Limits{Low: 2, High: -2}) }},
		{"NaNBound", func() { vertex.WithTable(vertex.Limits{Low: math.NaN(), High: 1}) }},
		{"InfBound", func() { vertex.WithTable(vertex.Limits{Low: 0, High: math.Inf(1)}) }},
		{"ZeroScale", func() { vertex.WithScale(0) }},
		{"NegativeScale", func() { vertex.WithScale(-10) }},
		{"NaNScale", func() { vertex.WithScale(math.NaN()) }},
		{"InfScale", func() { vertex.WithScale(math.Inf(1)) }},
		{"EmptyTarget", func() { vertex.WithTarget("", 8) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Panics(t, tc.fn)
		})
	}
}

// TestNewSampler_Defaults checks that a bare NewSampler behaves like SingleTarget.
func TestNewSampler_Defaults(t *testing.T) {
	s := vertex.NewSampler()
	assert.Equal(t, 3, s.Len())
	assert.False(t, s.TargetAware())

	want, err := vertex.SingleTarget().Sample(2, 0.3, "")
	require.NoError(t, err)
	got, err := s.Sample(2, 0.3, "D2")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestNewSampler_Custom exercises a fully custom configuration.
func TestNewSampler_Custom(t *testing.T) {
	s := vertex.NewSampler(
		vertex.WithTable(vertex.Limits{Low: 0, High: 10}),
		vertex.WithScale(2),
		vertex.WithTarget("LH2", -1),
	)
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.TargetAware())

	z, err := s.Sample(1, 0.5, "LH2")
	require.NoError(t, err)
	assert.Equal(t, 2.5, z)

	z, err = s.Sample(1, 0.5, vertex.TargetD2)
	require.NoError(t, err)
	assert.Equal(t, -1.0, z)
}

// TestNewSampler_LaterOverrides verifies options apply in order.
func TestNewSampler_LaterOverrides(t *testing.T) {
	s := vertex.NewSampler(
		vertex.WithTable(vertex.Limits{Low: 0, High: 8}),
		vertex.WithScale(2),
		vertex.WithScale(4),
	)
	z, err := s.Sample(1, 1, "")
	require.NoError(t, err)
	assert.Equal(t, 2.0, z)
}

// TestWithTable_CopiesRows guards against aliasing the caller's slice.
func TestWithTable_CopiesRows(t *testing.T) {
	rows := []vertex.Limits{{Low: 0, High: 1}}
	s := vertex.NewSampler(vertex.WithTable(rows...))
	rows[0] = vertex.Limits{Low: 5, High: 6}

	row, err := s.Limits(1)
	require.NoError(t, err)
	assert.Equal(t, vertex.Limits{Low: 0, High: 1}, row)
}
