// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenario runs one exchange round described by a YAML or JSON file.
package scenario

import (
	"github.com/someonegg/exchange/record"
)

type Scenario struct {
	Round       int          `json:"round"`
	Requesters  []Requester  `json:"requesters"`
	Suppliers   []Supplier   `json:"suppliers"`
	Preferences []Preference `json:"preferences,omitempty"`
	Solver      SolverOption `json:"solver"`
}

type Requester struct {
	Name        string       `json:"name"`
	Requests    []Request    `json:"requests"`
	Constraints []Constraint `json:"constraints,omitempty"`
}

type Request struct {
	Commodity  string  `json:"commodity"`
	Qty        float64 `json:"qty"`
	Preference float64 `json:"preference,omitempty"`
}

type Supplier struct {
	Name        string       `json:"name"`
	Commodity   string       `json:"commodity"`
	Offer       float64      `json:"offer"`
	Constraints []Constraint `json:"constraints,omitempty"`
}

// Constraint bounds the traded quantity, measured in Factor units per unit
// of resource.
type Constraint struct {
	Capacity float64 `json:"capacity"`
	Factor   float64 `json:"factor"`
}

// Preference overrides the preference of every request of Requester served
// by Supplier.
type Preference struct {
	Requester  string  `json:"requester"`
	Supplier   string  `json:"supplier"`
	Preference float64 `json:"preference"`
}

const (
	DefaultSensitivity = 1.0
)

type SolverOption struct {
	Sensitivity *float64 `json:"sensitivity,omitempty"`
	Verbose     bool     `json:"verbose,omitempty"`
}

type Result struct {
	Trades  []record.Row
	Perfect bool
	Summary Summary
}

type Summary struct {
	Requesters int     `json:"requesters"`
	Suppliers  int     `json:"suppliers"`
	Bids       int     `json:"bids"`
	Arcs       int     `json:"arcs"`
	Requested  float64 `json:"requested"`
	Matched    float64 `json:"matched"`
	Unmet      float64 `json:"unmet"`
}
