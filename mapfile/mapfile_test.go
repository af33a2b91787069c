// SPDX-License-Identifier: MIT
package mapfile_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rotas/core"
	"github.com/katalvlaran/rotas/mapfile"
)

func TestLoadFile_Square(t *testing.T) {
	m, err := mapfile.LoadFile("testdata/square.map")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D"}, m.Graph.Names())
	assert.Equal(t, 5, m.Graph.EdgeCount())

	b, err := m.City("B")
	require.NoError(t, err)
	assert.Equal(t, core.Point{X: 0, Y: 15}, b.Point())
	assert.Equal(t, core.Supplied, b.Mode())
	assert.Equal(t, 15.0, b.SuppliedEstimate())

	edges := m.Graph.Edges()
	assert.Equal(t, "BR-101", edges[0].Label())
	assert.Equal(t, 17.0, edges[0].Cost())

	d, err := m.Destination()
	require.NoError(t, err)
	assert.Equal(t, "D", d.Name())
}

func TestLoad_ComputedMode(t *testing.T) {
	m, err := mapfile.LoadFile("testdata/square.map", mapfile.WithMode(core.Computed))
	require.NoError(t, err)

	a, _ := m.City("A")
	d, _ := m.City("D")
	assert.Equal(t, core.Computed, a.Mode())
	assert.Equal(t, 20.0, a.Estimate(d))
	// The destination marker still comes from the estimate records.
	dest, err := m.Destination()
	require.NoError(t, err)
	assert.Equal(t, "D", dest.Name())
}

func TestLoad_Lenient(t *testing.T) {
	src := `
cidade A
cidade B

# comment line
teleporte A B
estrada A B
estrada B A free
estimativa A
estimativa B lots
`
	m, err := mapfile.Load(strings.NewReader(src))
	require.NoError(t, err)

	edges := m.Graph.Edges()
	require.Len(t, edges, 2)
	assert.Zero(t, edges[0].Cost(), "missing cost")
	assert.Zero(t, edges[1].Cost(), "non-numeric cost")

	// Both estimates parse as 0; the first record wins.
	d, err := m.Destination()
	require.NoError(t, err)
	assert.Equal(t, "A", d.Name())
}

func TestLoad_NoDestination(t *testing.T) {
	m, err := mapfile.Load(strings.NewReader("cidade A\ncidade B\nestimativa A 3\n"))
	require.NoError(t, err)
	_, err = m.Destination()
	assert.ErrorIs(t, err, mapfile.ErrNoDestination)
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]struct {
		src  string
		want error
		line string
	}{
		"unknown road end":     {"cidade A\nestrada A Z 3\n", mapfile.ErrUnknownCity, "line 2"},
		"unknown estimate":     {"cidade A\n\nestimativa Q 0\n", mapfile.ErrUnknownCity, "line 3"},
		"city without name":    {"cidade\n", mapfile.ErrMalformedRecord, "line 1"},
		"city half coordinate": {"cidade A 1\n", mapfile.ErrMalformedRecord, "line 1"},
		"city bad coordinate":  {"cidade A x y\n", mapfile.ErrMalformedRecord, "line 1"},
		"road one end":         {"cidade A\nestrada A\n", mapfile.ErrMalformedRecord, "line 2"},
		"estimate no name":     {"estimativa\n", mapfile.ErrMalformedRecord, "line 1"},
		"negative cost":        {"cidade A\ncidade B\nestrada A B -4\n", core.ErrNegativeCost, "line 3"},
		"self loop":            {"cidade A\nestrada A A 1\n", core.ErrSelfLoop, "line 2"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := mapfile.Load(strings.NewReader(tc.src))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), tc.line)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := mapfile.LoadFile("testdata/nope.map")
	assert.Error(t, err)
}
