// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trade

import (
	"fmt"

	"github.com/someonegg/exchange"
)

// Translator lowers portfolios into an exchange graph and raises the
// graph's matches back into trades. It remembers which node stands for
// which request and bid, so one translator serves one round.
type Translator[T Resource] struct {
	reqNodes map[*Request[T]]*exchange.Node
	nodeReqs map[*exchange.Node]*Request[T]
	nodeBids map[*exchange.Node]*Bid[T]
}

func NewTranslator[T Resource]() *Translator[T] {
	return &Translator[T]{}
}

// Translate builds one request set per request portfolio and one supply set
// per bid portfolio, with an arc for every bid. Besides the portfolio
// constraints, every supply set gets one dimension per bid that caps the
// bid's arc at the offered quantity.
func (t *Translator[T]) Translate(reqs []*RequestPortfolio[T], bids []*BidPortfolio[T]) (*exchange.ExchangeGraph, error) {
	t.reqNodes = make(map[*Request[T]]*exchange.Node)
	t.nodeReqs = make(map[*exchange.Node]*Request[T])
	t.nodeBids = make(map[*exchange.Node]*Bid[T])

	g := exchange.NewExchangeGraph()

	for _, rp := range reqs {
		rs := exchange.NewRequestSet(rp.Qty())
		rs.Capacities = bounds(rp.constraints)
		for _, r := range rp.requests {
			n := exchange.NewNode()
			if err := rs.AddNode(n); err != nil {
				return nil, err
			}
			t.reqNodes[r] = n
			t.nodeReqs[n] = r
		}
		g.AddRequestSet(rs)
	}

	for _, bp := range bids {
		ss := &exchange.NodeSet{Capacities: bounds(bp.constraints)}
		for _, b := range bp.bids {
			ss.Capacities = append(ss.Capacities, b.Quantity())
		}

		for i, b := range bp.bids {
			u, ok := t.reqNodes[b.request]
			if !ok {
				return nil, fmt.Errorf("translate bid of %s: request for %q not in any portfolio: %w",
					b.bidder.TraderID(), b.request.commodity, exchange.ErrState)
			}
			v := exchange.NewNode()
			if err := ss.AddNode(v); err != nil {
				return nil, err
			}
			t.nodeBids[v] = b

			a := exchange.NewArc(u, v)
			u.UnitCapacities[a] = unitCapacities(b.request.portfolio.constraints, b.request.target)

			units := unitCapacities(bp.constraints, b.offer)
			for j := range bp.bids {
				if j == i {
					units = append(units, 1)
				} else {
					units = append(units, 0)
				}
			}
			v.UnitCapacities[a] = units

			g.AddArc(a)
		}
		g.AddSupplySet(ss)
	}

	return g, nil
}

// Find ranks an arc by the preference of its request.
func (t *Translator[T]) Find(a exchange.Arc) float64 {
	if r, ok := t.nodeReqs[a.U]; ok {
		return r.preference
	}
	return 0
}

// Node returns the node standing for request r.
func (t *Translator[T]) Node(r *Request[T]) *exchange.Node {
	return t.reqNodes[r]
}

func (t *Translator[T]) BackTranslate(matches []exchange.Match) ([]Trade[T], error) {
	trades := make([]Trade[T], 0, len(matches))
	for _, m := range matches {
		r, ok := t.nodeReqs[m.Arc.U]
		if !ok {
			return nil, fmt.Errorf("back translate %v: unknown request node: %w", m.Arc, exchange.ErrState)
		}
		b, ok := t.nodeBids[m.Arc.V]
		if !ok {
			return nil, fmt.Errorf("back translate %v: unknown bid node: %w", m.Arc, exchange.ErrState)
		}
		trades = append(trades, Trade[T]{Request: r, Bid: b, Qty: m.Qty})
	}
	return trades, nil
}

func bounds[T Resource](cs []CapacityConstraint[T]) []float64 {
	caps := make([]float64, len(cs))
	for i, c := range cs {
		caps[i] = c.capacity
	}
	return caps
}

// unitCapacities returns the constraint usage of one unit of r.
func unitCapacities[T Resource](cs []CapacityConstraint[T], r T) []float64 {
	units := make([]float64, len(cs))
	qty := r.Quantity()
	if qty == 0 {
		return units
	}
	for i, c := range cs {
		units[i] = c.Convert(r) / qty
	}
	return units
}

// Parties returns the trader IDs on both sides of a.
func (t *Translator[T]) Parties(a exchange.Arc) (requester, bidder string, ok bool) {
	r, ok := t.nodeReqs[a.U]
	if !ok {
		return "", "", false
	}
	b, ok := t.nodeBids[a.V]
	if !ok {
		return "", "", false
	}
	return r.requester.TraderID(), b.bidder.TraderID(), true
}
