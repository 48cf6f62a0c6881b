// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenario

import (
	"fmt"
	"log"
	"math"

	"github.com/someonegg/exchange"
	"github.com/someonegg/exchange/limits"
	"github.com/someonegg/exchange/record"
	"github.com/someonegg/exchange/trade"
	"github.com/someonegg/exchange/trade/prefs"
)

// Lot is an amount of one commodity.
type Lot struct {
	Commodity string
	Qty       float64
}

func (l Lot) Quantity() float64 {
	return l.Qty
}

type agent struct {
	name string
}

func (a *agent) TraderID() string {
	return a.name
}

type scaleConverter struct {
	factor float64
}

func (c *scaleConverter) Convert(l Lot) float64 {
	return l.Qty * c.factor
}

func constraintsOf(cs []Constraint) []trade.CapacityConstraint[Lot] {
	out := make([]trade.CapacityConstraint[Lot], len(cs))
	for i, c := range cs {
		out[i] = trade.NewCapacityConstraint[Lot](c.Capacity, &scaleConverter{c.Factor})
	}
	return out
}

// Run settles one exchange round: every supplier bids on every request of
// its commodity, then the greedy solver picks the trades.
func Run(sc *Scenario) (*Result, error) {
	sens := DefaultSensitivity
	if sc.Solver.Sensitivity != nil {
		sens = *sc.Solver.Sensitivity
	}
	verbose := sc.Solver.Verbose

	agents := make(map[string]*agent)
	newAgent := func(name string) (*agent, error) {
		if _, ok := agents[name]; ok {
			return nil, fmt.Errorf("duplicate trader %q", name)
		}
		a := &agent{name}
		agents[name] = a
		return a, nil
	}

	var summ Summary

	reqs := make([]*trade.RequestPortfolio[Lot], 0, len(sc.Requesters))
	byCommodity := make(map[string][]*trade.Request[Lot])
	for _, rq := range sc.Requesters {
		a, err := newAgent(rq.Name)
		if err != nil {
			return nil, err
		}
		rp := trade.NewRequestPortfolio[Lot]()
		for _, r := range rq.Requests {
			req, err := rp.AddRequest(Lot{r.Commodity, r.Qty}, a, r.Commodity)
			if err != nil {
				return nil, err
			}
			req.SetPreference(r.Preference)
			byCommodity[r.Commodity] = append(byCommodity[r.Commodity], req)
		}
		for _, c := range constraintsOf(rq.Constraints) {
			rp.AddConstraint(c)
		}
		reqs = append(reqs, rp)
		summ.Requested += rp.Qty()
	}

	bids := make([]*trade.BidPortfolio[Lot], 0, len(sc.Suppliers))
	for _, sp := range sc.Suppliers {
		a, err := newAgent(sp.Name)
		if err != nil {
			return nil, err
		}
		bp := trade.NewBidPortfolio[Lot]()
		for _, req := range byCommodity[sp.Commodity] {
			offer := Lot{sp.Commodity, math.Min(sp.Offer, req.Target().Qty)}
			if _, err := bp.AddBid(req, offer, a); err != nil {
				return nil, err
			}
		}
		for _, c := range constraintsOf(sp.Constraints) {
			bp.AddConstraint(c)
		}
		// the offer bounds the sum over all bids
		bp.AddConstraint(trade.NewCapacityConstraint[Lot](sp.Offer, &scaleConverter{1}))
		bids = append(bids, bp)
		summ.Bids += len(bp.Bids())
	}

	summ.Requesters = len(reqs)
	summ.Suppliers = len(bids)

	tr := trade.NewTranslator[Lot]()
	g, err := tr.Translate(reqs, bids)
	if err != nil {
		return nil, err
	}
	summ.Arcs = g.NumArcs()

	if verbose {
		log.Printf("round: %v, requesters: %v, suppliers: %v, arcs: %v, requested: %v",
			sc.Round, summ.Requesters, summ.Suppliers, summ.Arcs, summ.Requested)
	}

	var table exchange.PreferenceTable = tr
	if len(sc.Preferences) > 0 {
		records := make([]prefs.Record, len(sc.Preferences))
		for i, p := range sc.Preferences {
			records[i] = prefs.Record{
				Key: prefs.Key{Requester: p.Requester, Bidder: p.Supplier},
				Val: prefs.Val{Preference: p.Preference},
			}
		}
		table = prefs.NewOverlay(tr, records)
	}

	perfect, err := exchange.GreedySolver(sens, verbose).Solve(g, table)
	if err != nil {
		return nil, err
	}

	trades, err := tr.BackTranslate(g.Matches)
	if err != nil {
		return nil, err
	}

	rows := make([]record.Row, len(trades))
	for i, t := range trades {
		rows[i] = record.Row{
			Round:     sc.Round,
			Requester: t.Request.Requester().TraderID(),
			Supplier:  t.Bid.Bidder().TraderID(),
			Commodity: t.Request.Commodity(),
			Qty:       t.Qty,
		}
		summ.Matched += t.Qty
	}
	summ.Unmet = math.Max(0, summ.Requested-summ.Matched)
	if limits.DoubleEq(summ.Unmet, 0) {
		summ.Unmet = 0
	}

	if verbose {
		log.Printf("trades: %v, matched: %v, unmet: %v, perfect: %v",
			len(rows), summ.Matched, summ.Unmet, perfect)
	}

	return &Result{Trades: rows, Perfect: perfect, Summary: summ}, nil
}
