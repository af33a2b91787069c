// SPDX-License-Identifier: MIT
package trail_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rotas/core"
	"github.com/katalvlaran/rotas/trail"
)

func nodes(t *testing.T, names ...string) []*core.Node {
	t.Helper()

	g := core.NewGraph()
	out := make([]*core.Node, len(names))
	for i, name := range names {
		n, err := g.AddNode(name)
		require.NoError(t, err)
		out[i] = n
	}

	return out
}

func TestNew_Origin(t *testing.T) {
	ns := nodes(t, "A")
	p := trail.New(ns[0])

	assert.Same(t, ns[0], p.Node())
	assert.Nil(t, p.Prev())
	assert.Zero(t, p.Cost())
	assert.Zero(t, p.Len())
	assert.Same(t, ns[0], p.Origin())
	assert.Equal(t, []string{"A"}, p.Names())
	assert.Equal(t, "A", p.String())
}

func TestNewAt_SeedCost(t *testing.T) {
	ns := nodes(t, "A", "B")
	p := trail.NewAt(ns[0], 5).Extend(ns[1], 3)
	assert.Equal(t, 8.0, p.Cost())

	steps := p.Steps()
	assert.Equal(t, 5.0, steps[0].Cost)
	assert.Zero(t, steps[0].Delta)
	assert.Equal(t, 3.0, steps[1].Delta)
}

func TestExtend_RoundTrip(t *testing.T) {
	ns := nodes(t, "A", "C", "B", "D")
	p := trail.New(ns[0]).Extend(ns[1], 12).Extend(ns[2], 1).Extend(ns[3], 13)

	assert.Equal(t, 26.0, p.Cost())
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, []string{"A", "C", "B", "D"}, p.Names())
	assert.Equal(t, ns, p.Nodes())
	assert.Equal(t, "A -> C -> B -> D", p.String())

	steps := p.Steps()
	require.Len(t, steps, 4)
	assert.Equal(t, "A", steps[0].Name)
	assert.Equal(t, "D", steps[3].Name)

	var sum float64
	last := -1.0
	for _, s := range steps {
		sum += s.Delta
		assert.GreaterOrEqual(t, s.Cost, last, "cost must be non-decreasing")
		last = s.Cost
	}
	assert.Equal(t, p.Cost(), sum)
}

func TestExtend_SharedPrefix(t *testing.T) {
	ns := nodes(t, "A", "B", "C", "D")
	root := trail.New(ns[0])
	ab := root.Extend(ns[1], 1)

	left := ab.Extend(ns[2], 2)
	right := ab.Extend(ns[3], 7)

	assert.Same(t, ab, left.Prev())
	assert.Same(t, ab, right.Prev())
	assert.Equal(t, []string{"A", "B", "C"}, left.Names())
	assert.Equal(t, []string{"A", "B", "D"}, right.Names())
	// The shared prefix is untouched by either branch.
	assert.Equal(t, []string{"A", "B"}, ab.Names())
	assert.Equal(t, 1.0, ab.Cost())
}

func TestContains(t *testing.T) {
	ns := nodes(t, "A", "B", "C")
	p := trail.New(ns[0]).Extend(ns[1], 1)
	assert.True(t, p.Contains("A"))
	assert.True(t, p.Contains("B"))
	assert.False(t, p.Contains("C"))
}

func TestString_Nil(t *testing.T) {
	var p *trail.Path
	assert.Equal(t, "<no path>", p.String())
}
