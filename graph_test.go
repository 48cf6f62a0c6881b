// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeSet(t *testing.T) {
	t.Run("AddNode", func(t *testing.T) {
		n := NewNode()
		var s NodeSet
		require.NoError(t, s.AddNode(n))
		assert.Same(t, &s, n.Set())
		assert.Equal(t, []*Node{n}, s.Nodes)
	})

	t.Run("Duplicates", func(t *testing.T) {
		n := NewNode()
		var s NodeSet
		require.NoError(t, s.AddNode(n))
		require.NoError(t, s.AddNode(n))
		assert.Len(t, s.Nodes, 2)
		assert.Same(t, &s, n.Set())
	})

	t.Run("OwnedByAnotherSet", func(t *testing.T) {
		n := NewNode()
		var s1, s2 NodeSet
		require.NoError(t, s1.AddNode(n))
		err := s2.AddNode(n)
		assert.ErrorIs(t, err, ErrState)
		assert.Same(t, &s1, n.Set())
		assert.Empty(t, s2.Nodes)
	})

	t.Run("RequestSetMember", func(t *testing.T) {
		n := NewNode()
		rs := NewRequestSet(2)
		require.NoError(t, rs.AddNode(n))
		assert.Same(t, &rs.NodeSet, n.Set())
	})
}

func TestRequestSet(t *testing.T) {
	var r RequestSet
	assert.Equal(t, 0.0, r.Qty)

	q := 1.5
	r = *NewRequestSet(q)
	assert.Equal(t, q, r.Qty)
}

func TestNodeIDs(t *testing.T) {
	m, n := NewNode(), NewNode()
	assert.NotEqual(t, m.ID, n.ID)
	assert.Less(t, m.ID, n.ID)
}

func TestArcEquality(t *testing.T) {
	u, v, w := NewNode(), NewNode(), NewNode()
	assert.Equal(t, NewArc(u, v), NewArc(u, v))
	assert.NotEqual(t, NewArc(u, v), NewArc(v, u))
	assert.NotEqual(t, NewArc(u, v), NewArc(u, w))

	m := map[Arc]int{NewArc(u, v): 1}
	assert.Equal(t, 1, m[Arc{U: u, V: v}])
}

func TestAddRequestSet(t *testing.T) {
	rs := NewRequestSet(0)
	g := NewExchangeGraph()
	g.AddRequestSet(rs)
	require.Len(t, g.RequestSets, 1)
	assert.Same(t, rs, g.RequestSets[0])
}

func TestAddSupplySet(t *testing.T) {
	ss := &NodeSet{}
	g := NewExchangeGraph()
	g.AddSupplySet(ss)
	require.Len(t, g.SupplySets, 1)
	assert.Same(t, ss, g.SupplySets[0])
}

func TestAddArc(t *testing.T) {
	t.Run("OneArc", func(t *testing.T) {
		g := NewExchangeGraph()
		u, v := NewNode(), NewNode()
		a := NewArc(u, v)

		g.AddArc(a)
		assert.Equal(t, []Arc{a}, g.NodeArcs[u])
		assert.Equal(t, []Arc{a}, g.NodeArcs[v])
		assert.Equal(t, 1, g.NumArcs())
	})

	t.Run("SharedEndpoints", func(t *testing.T) {
		g := NewExchangeGraph()
		u, v, w, x := NewNode(), NewNode(), NewNode(), NewNode()
		a1 := NewArc(u, v)
		a2 := NewArc(u, w)
		a3 := NewArc(x, w)

		g.AddArc(a1)
		g.AddArc(a2)
		g.AddArc(a3)

		assert.Equal(t, []Arc{a1, a2}, g.NodeArcs[u])
		assert.Equal(t, []Arc{a1}, g.NodeArcs[v])
		assert.Equal(t, []Arc{a2, a3}, g.NodeArcs[w])
		assert.Equal(t, []Arc{a3}, g.NodeArcs[x])
		assert.Equal(t, 3, g.NumArcs())
	})

	t.Run("ZeroGraph", func(t *testing.T) {
		var g ExchangeGraph
		a := NewArc(NewNode(), NewNode())
		g.AddArc(a)
		assert.Equal(t, []Arc{a}, g.NodeArcs[a.U])
	})

	t.Run("NoDedup", func(t *testing.T) {
		g := NewExchangeGraph()
		a := NewArc(NewNode(), NewNode())
		g.AddArc(a)
		g.AddArc(a)
		assert.Equal(t, []Arc{a, a}, g.NodeArcs[a.U])
		assert.Equal(t, []Arc{a, a}, g.NodeArcs[a.V])
	})
}

func TestAddMatch(t *testing.T) {
	g := NewExchangeGraph()

	uval, vval := 1.0, 0.5
	large := 500.0
	u, v := NewNode(), NewNode()
	a := NewArc(u, v)
	u.UnitCapacities[a] = []float64{uval}
	v.UnitCapacities[a] = []float64{vval}

	uset := &NodeSet{Capacities: []float64{uval * large}}
	require.NoError(t, uset.AddNode(u))
	vset := &NodeSet{Capacities: []float64{vval * large}}
	require.NoError(t, vset.AddNode(v))

	qty := large * 0.1
	g.AddMatch(a, qty)
	assert.Equal(t, []Match{{Arc: a, Qty: qty}}, g.Matches)

	// recording never consumes capacity
	assert.Equal(t, []float64{uval * large}, uset.Capacities)
	assert.Equal(t, []float64{vval * large}, vset.Capacities)

	g.AddMatch(a, qty)
	g.AddMatch(a, 2*qty)
	assert.Equal(t, []Match{{a, qty}, {a, qty}, {a, 2 * qty}}, g.Matches)
}
