// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exchange

import (
	"fmt"
	"math"

	"github.com/someonegg/exchange/limits"
)

// Capacity returns the largest quantity that can flow along a through n,
// given what remains of n's group budget. The tightest dimension wins.
// A node without unit capacities on a is unconstrained and reports
// limits.MaxQty.
func Capacity(n *Node, a Arc) (float64, error) {
	if n.set == nil {
		return 0, fmt.Errorf("capacity of %v: node has no set: %w", n, ErrState)
	}

	units, ok := n.UnitCapacities[a]
	if !ok {
		return limits.MaxQty, nil
	}
	caps := n.set.Capacities
	if len(units) != len(caps) {
		return 0, fmt.Errorf("capacity of %v on %v: %d unit capacities for %d dimensions: %w",
			n, a, len(units), len(caps), ErrState)
	}

	qty := limits.MaxQty
	for i, unit := range units {
		if unit == 0 {
			// zero rate, nothing consumed on this dimension
			if caps[i] >= 0 {
				continue
			}
			// already overdrawn
			return 0, nil
		}
		qty = math.Min(qty, caps[i]/unit)
	}
	return qty, nil
}

// Capacity returns the bottleneck of both endpoints of a.
func (a Arc) Capacity() (float64, error) {
	ucap, err := Capacity(a.U, a)
	if err != nil {
		return 0, err
	}
	vcap, err := Capacity(a.V, a)
	if err != nil {
		return 0, err
	}
	return math.Min(ucap, vcap), nil
}

// UpdateCapacity consumes qty units of flow along a from n's group budget.
// Every node of the group observes the reduced budget. The update is
// rejected as a whole when any dimension would go negative beyond
// tolerance; a result negative within tolerance is stored as zero.
func UpdateCapacity(n *Node, a Arc, qty float64) error {
	units, ok := n.UnitCapacities[a]
	if !ok {
		return fmt.Errorf("update %v on %v: no unit capacities: %w", n, a, ErrState)
	}
	if n.set == nil {
		return fmt.Errorf("update %v on %v: node has no set: %w", n, a, ErrState)
	}
	if qty < 0 || math.IsNaN(qty) {
		return fmt.Errorf("update %v on %v: invalid quantity %g: %w", n, a, qty, ErrValue)
	}
	caps := n.set.Capacities
	if len(units) != len(caps) {
		return fmt.Errorf("update %v on %v: %d unit capacities for %d dimensions: %w",
			n, a, len(units), len(caps), ErrState)
	}

	next := make([]float64, len(caps))
	for i, unit := range units {
		used := unit * qty
		rest := caps[i] - used
		if limits.DoubleNeg(rest, math.Max(math.Abs(caps[i]), math.Abs(used))) {
			return fmt.Errorf("update %v on %v: dimension %d left at %g: %w", n, a, i, rest, ErrValue)
		}
		if rest < 0 {
			rest = 0
		}
		next[i] = rest
	}
	copy(caps, next)
	return nil
}
