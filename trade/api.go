// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trade holds the requests and bids agents hand to an exchange
// round, and lowers them into an exchange graph.
package trade

// Resource is an opaque payload that can be traded.
type Resource interface {
	Quantity() float64
}

// Trader is the agent behind requests and bids. Traders compare by
// identity, implement it on a pointer type.
type Trader interface {
	TraderID() string
}

// Converter maps a resource to the unit of a capacity constraint.
// Constraints compare converters by identity, implement it on a pointer type.
type Converter[T Resource] interface {
	Convert(r T) float64
}

type CapacityConstraint[T Resource] struct {
	capacity  float64
	converter Converter[T]
}

func NewCapacityConstraint[T Resource](capacity float64, converter Converter[T]) CapacityConstraint[T] {
	return CapacityConstraint[T]{capacity: capacity, converter: converter}
}

func (c CapacityConstraint[T]) Capacity() float64 {
	return c.capacity
}

func (c CapacityConstraint[T]) Converter() Converter[T] {
	return c.converter
}

func (c CapacityConstraint[T]) Convert(r T) float64 {
	return c.converter.Convert(r)
}

// Equal reports whether both constraints share bound and converter.
func (c CapacityConstraint[T]) Equal(o CapacityConstraint[T]) bool {
	return c.capacity == o.capacity && c.converter == o.converter
}

// Trade is a match raised back to the request and bid it settles.
type Trade[T Resource] struct {
	Request *Request[T]
	Bid     *Bid[T]
	Qty     float64
}
