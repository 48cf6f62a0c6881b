// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prefs overrides arc preferences per pair of traders.
package prefs

import "github.com/someonegg/exchange"

// PartyTable is a preference table that also knows who trades on an arc.
type PartyTable interface {
	exchange.PreferenceTable

	Parties(a exchange.Arc) (requester, bidder string, ok bool)
}

type Record struct {
	Key
	Val
}

type Key struct {
	Requester string
	Bidder    string
}

type Val struct {
	Preference float64
}

type overlay struct {
	orig PartyTable
	recs map[Key]Val
}

// NewOverlay returns a table answering from records first and from orig for
// every other pair. Later records win.
func NewOverlay(orig PartyTable, records []Record) exchange.PreferenceTable {
	recs := make(map[Key]Val)
	for _, rec := range records {
		recs[rec.Key] = rec.Val
	}
	return &overlay{
		orig: orig,
		recs: recs,
	}
}

func (o *overlay) Find(a exchange.Arc) float64 {
	if requester, bidder, ok := o.orig.Parties(a); ok {
		if val, ok := o.recs[Key{Requester: requester, Bidder: bidder}]; ok {
			return val.Preference
		}
	}
	return o.orig.Find(a)
}
