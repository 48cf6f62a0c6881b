// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exchange

import "errors"

var (
	// ErrState reports an operation on a structurally incomplete object.
	ErrState = errors.New("exchange: invalid state")
	// ErrValue reports a capacity update that would violate a constraint.
	ErrValue = errors.New("exchange: constraint violated")
	// ErrKey reports an item that does not belong with the others in its group.
	ErrKey = errors.New("exchange: key mismatch")
)
