// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trade

type testMaterial struct {
	qty  float64
	mass float64
}

func (m testMaterial) Quantity() float64 {
	return m.qty
}

func getMat(qty float64) testMaterial {
	return testMaterial{qty: qty, mass: 2 * qty}
}

type testFacility struct {
	name string
}

func (f *testFacility) TraderID() string {
	return f.name
}

// massConverter converts to mass.
type massConverter struct {
	scale float64
}

func (c *massConverter) Convert(m testMaterial) float64 {
	return m.mass * c.scale
}

type qtyConverter struct {
	scale float64
}

func (c *qtyConverter) Convert(m testMaterial) float64 {
	return m.qty * c.scale
}
