// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exchange

import (
	"fmt"
	"sync/atomic"
)

var lastNodeID atomic.Uint64

// Node is an endpoint of a potential trade.
type Node struct {
	ID uint64
	// Consumption rate per constraint dimension, keyed by arc.
	UnitCapacities map[Arc][]float64

	set *NodeSet
}

func NewNode() *Node {
	return &Node{
		ID:             lastNodeID.Add(1),
		UnitCapacities: make(map[Arc][]float64),
	}
}

// Set returns the group the node belongs to, nil until added.
func (n *Node) Set() *NodeSet {
	return n.set
}

func (n *Node) String() string {
	return fmt.Sprintf("node#%d", n.ID)
}

// NodeSet is a group of nodes sharing one capacity budget.
type NodeSet struct {
	// Remaining capacity per constraint dimension.
	Capacities []float64
	Nodes      []*Node
}

// AddNode appends n to the set. A node joins exactly one set; adding it to
// the same set again only duplicates membership.
func (s *NodeSet) AddNode(n *Node) error {
	if n.set != nil && n.set != s {
		return fmt.Errorf("add %v: already owned by another set: %w", n, ErrState)
	}
	n.set = s
	s.Nodes = append(s.Nodes, n)
	return nil
}

// RequestSet is a node set that carries the quantity its requester wants.
type RequestSet struct {
	NodeSet
	Qty float64
}

func NewRequestSet(qty float64) *RequestSet {
	return &RequestSet{Qty: qty}
}

// Arc connects a request node U with a supply node V. Arcs compare by their
// endpoints.
type Arc struct {
	U *Node
	V *Node
}

func NewArc(u, v *Node) Arc {
	return Arc{U: u, V: v}
}

func (a Arc) String() string {
	return fmt.Sprintf("(%v, %v)", a.U, a.V)
}
