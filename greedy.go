// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exchange

import (
	"log"
	"math"
	"sort"

	"github.com/someonegg/exchange/limits"
)

type greedySolver struct {
	sens    float64
	verbose bool
}

// GreedySolver fills request sets one after another, taking the most
// preferred arcs first. Preferences closer than prefSensitivity are treated
// as equal and keep registration order.
func GreedySolver(prefSensitivity float64, verbose bool) Solver {
	if prefSensitivity <= 0 {
		prefSensitivity = limits.Eps
	}
	return greedySolver{prefSensitivity, verbose}
}

type greedyArc struct {
	arc  Arc
	pref float64
}

func (s greedySolver) sensCompare(a, b float64) int {
	iA, iB := math.Floor(a/s.sens), math.Floor(b/s.sens)
	switch {
	case iA < iB:
		return -1
	case iA > iB:
		return 1
	}
	return 0
}

func (s greedySolver) Solve(g *ExchangeGraph, prefs PreferenceTable) (perfect bool, err error) {
	perfect = true

	for _, rs := range g.RequestSets {
		var al []greedyArc
		for _, u := range rs.Nodes {
			for _, a := range g.NodeArcs[u] {
				if a.U != u {
					continue
				}
				ga := greedyArc{arc: a}
				if prefs != nil {
					ga.pref = prefs.Find(a)
				}
				al = append(al, ga)
			}
		}

		sort.SliceStable(al, func(i, j int) bool {
			return s.sensCompare(al[i].pref, al[j].pref) > 0
		})

		demandRest := rs.Qty
		for _, ga := range al {
			if demandRest <= limits.Eps {
				break
			}

			available, err := ga.arc.Capacity()
			if err != nil {
				return false, err
			}
			amount := math.Min(available, demandRest)
			if amount <= limits.Eps {
				continue
			}

			if err := consume(ga.arc.U, ga.arc, amount); err != nil {
				return false, err
			}
			if err := consume(ga.arc.V, ga.arc, amount); err != nil {
				return false, err
			}
			g.AddMatch(ga.arc, amount)
			demandRest -= amount

			if s.verbose {
				log.Println("match", ga.arc, "pref:", ga.pref, "qty:", amount, "demand_rest:", demandRest)
			}
		}

		if demandRest > limits.Tolerance(rs.Qty) {
			perfect = false
			if s.verbose {
				log.Println("request set qty:", rs.Qty, "unmet:", demandRest)
			}
		}
	}

	return
}

// consume skips nodes that are unconstrained on a.
func consume(n *Node, a Arc, qty float64) error {
	if _, ok := n.UnitCapacities[a]; !ok {
		return nil
	}
	return UpdateCapacity(n, a, qty)
}
