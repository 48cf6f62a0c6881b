// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trade

import (
	"fmt"

	"github.com/someonegg/exchange"
)

type Request[T Resource] struct {
	target     T
	requester  Trader
	commodity  string
	preference float64
	portfolio  *RequestPortfolio[T]
}

func (r *Request[T]) Target() T {
	return r.target
}

func (r *Request[T]) Requester() Trader {
	return r.requester
}

func (r *Request[T]) Commodity() string {
	return r.commodity
}

func (r *Request[T]) Preference() float64 {
	return r.preference
}

// SetPreference sets how much the requester favors this request, higher is
// better.
func (r *Request[T]) SetPreference(pref float64) {
	r.preference = pref
}

func (r *Request[T]) Portfolio() *RequestPortfolio[T] {
	return r.portfolio
}

// RequestPortfolio groups the requests of one requester for one round. The
// requests are alternatives, the portfolio wants Qty in total.
type RequestPortfolio[T Resource] struct {
	requests    []*Request[T]
	constraints []CapacityConstraint[T]
	requester   Trader
	qty         float64
}

func NewRequestPortfolio[T Resource]() *RequestPortfolio[T] {
	return &RequestPortfolio[T]{}
}

func (p *RequestPortfolio[T]) AddRequest(target T, requester Trader, commodity string) (*Request[T], error) {
	if requester == nil {
		return nil, fmt.Errorf("add request for %q: nil requester: %w", commodity, exchange.ErrState)
	}
	if p.requester != nil && p.requester != requester {
		return nil, fmt.Errorf("add request for %q: requester %s does not match %s: %w",
			commodity, requester.TraderID(), p.requester.TraderID(), exchange.ErrKey)
	}
	p.requester = requester

	r := &Request[T]{
		target:    target,
		requester: requester,
		commodity: commodity,
		portfolio: p,
	}
	p.requests = append(p.requests, r)
	if q := target.Quantity(); q > p.qty {
		p.qty = q
	}
	return r, nil
}

func (p *RequestPortfolio[T]) AddConstraint(c CapacityConstraint[T]) {
	p.constraints = append(p.constraints, c)
}

func (p *RequestPortfolio[T]) Requester() Trader {
	return p.requester
}

func (p *RequestPortfolio[T]) Requests() []*Request[T] {
	return p.requests
}

func (p *RequestPortfolio[T]) Constraints() []CapacityConstraint[T] {
	return p.constraints
}

// Qty is the largest single request quantity.
func (p *RequestPortfolio[T]) Qty() float64 {
	return p.qty
}
