// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exchange

// ExchangeGraph holds everything a solver works on during one exchange round.
type ExchangeGraph struct {
	RequestSets []*RequestSet
	SupplySets  []*NodeSet
	// Arcs touching each node, in registration order.
	NodeArcs map[*Node][]Arc
	Matches  []Match

	numArcs int
}

func NewExchangeGraph() *ExchangeGraph {
	return &ExchangeGraph{
		NodeArcs: make(map[*Node][]Arc),
	}
}

func (g *ExchangeGraph) AddRequestSet(rs *RequestSet) {
	g.RequestSets = append(g.RequestSets, rs)
}

func (g *ExchangeGraph) AddSupplySet(ss *NodeSet) {
	g.SupplySets = append(g.SupplySets, ss)
}

// AddArc indexes a under both of its endpoints. Registering the same arc
// twice indexes it twice.
func (g *ExchangeGraph) AddArc(a Arc) {
	if g.NodeArcs == nil {
		g.NodeArcs = make(map[*Node][]Arc)
	}
	g.NodeArcs[a.U] = append(g.NodeArcs[a.U], a)
	g.NodeArcs[a.V] = append(g.NodeArcs[a.V], a)
	g.numArcs++
}

// AddMatch records qty along a. Capacity is not consumed here, see
// UpdateCapacity.
func (g *ExchangeGraph) AddMatch(a Arc, qty float64) {
	g.Matches = append(g.Matches, Match{Arc: a, Qty: qty})
}

// NumArcs returns the number of AddArc calls.
func (g *ExchangeGraph) NumArcs() int {
	return g.numArcs
}
