// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exchange provides the resource exchange graph that reconciles
// requests against bids under group capacity constraints.
//
// A solver reads the graph through Capacity, commits flow through
// UpdateCapacity and records accepted trades with AddMatch. The graph never
// decides which matches are best, it only keeps them consistent.
package exchange

type Solver interface {
	Solve(g *ExchangeGraph, prefs PreferenceTable) (perfect bool, err error)
}

// PreferenceTable ranks candidate arcs, higher is better.
type PreferenceTable interface {
	Find(a Arc) float64
}

type Match struct {
	Arc Arc
	Qty float64
}
