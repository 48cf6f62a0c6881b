// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package record persists the trades settled by exchange rounds.
package record

type Row struct {
	Round     int     `json:"round"`
	Requester string  `json:"requester"`
	Supplier  string  `json:"supplier"`
	Commodity string  `json:"commodity"`
	Qty       float64 `json:"qty"`
}
