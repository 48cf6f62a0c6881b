// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trade

import (
	"fmt"

	"github.com/someonegg/exchange"
)

// Bid offers a resource against one request.
type Bid[T Resource] struct {
	request   *Request[T]
	offer     T
	bidder    Trader
	portfolio *BidPortfolio[T]
}

func (b *Bid[T]) Request() *Request[T] {
	return b.request
}

func (b *Bid[T]) Offer() T {
	return b.offer
}

func (b *Bid[T]) Bidder() Trader {
	return b.bidder
}

func (b *Bid[T]) Portfolio() *BidPortfolio[T] {
	return b.portfolio
}

// Quantity is the offered amount.
func (b *Bid[T]) Quantity() float64 {
	return b.offer.Quantity()
}

// BidPortfolio groups the bids of one bidder on one commodity, together with
// the constraints that bound the bidder.
type BidPortfolio[T Resource] struct {
	bids        []*Bid[T]
	constraints []CapacityConstraint[T]
	bidder      Trader
	commodity   string
}

func NewBidPortfolio[T Resource]() *BidPortfolio[T] {
	return &BidPortfolio[T]{}
}

// AddBid stores a bid of offer against request. The first bid fixes the
// portfolio's bidder and commodity, later bids must match both.
func (p *BidPortfolio[T]) AddBid(request *Request[T], offer T, bidder Trader) (*Bid[T], error) {
	if request == nil {
		return nil, fmt.Errorf("add bid: nil request: %w", exchange.ErrState)
	}
	if bidder == nil {
		return nil, fmt.Errorf("add bid: nil bidder: %w", exchange.ErrState)
	}
	if p.bidder != nil {
		if p.bidder != bidder {
			return nil, fmt.Errorf("add bid: bidder %s does not match %s: %w",
				bidder.TraderID(), p.bidder.TraderID(), exchange.ErrKey)
		}
		if p.commodity != request.commodity {
			return nil, fmt.Errorf("add bid: commodity %q does not match %q: %w",
				request.commodity, p.commodity, exchange.ErrKey)
		}
	}
	p.bidder = bidder
	p.commodity = request.commodity

	b := &Bid[T]{
		request:   request,
		offer:     offer,
		bidder:    bidder,
		portfolio: p,
	}
	p.bids = append(p.bids, b)
	return b, nil
}

// AddConstraint appends c, equal constraints are kept twice.
func (p *BidPortfolio[T]) AddConstraint(c CapacityConstraint[T]) {
	p.constraints = append(p.constraints, c)
}

func (p *BidPortfolio[T]) Bidder() Trader {
	return p.bidder
}

func (p *BidPortfolio[T]) Commodity() string {
	return p.commodity
}

func (p *BidPortfolio[T]) Bids() []*Bid[T] {
	return p.bids
}

func (p *BidPortfolio[T]) Constraints() []CapacityConstraint[T] {
	return p.constraints
}
