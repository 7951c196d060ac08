/*
 * conformer.go, part of rdkit.
 *
 * Copyright 2025 Clara Blanes <cblanes{at}gmxDOTcom>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package chem

import (
	v3 "github.com/clarablanes/rdkit/v3"
)

//Conformer is one 3D (or flat 2D) arrangement of the atoms of a molecule,
//one position per atom, in atom order.
type Conformer struct {
	Coords *v3.Matrix
	is3D   bool
}

//NewConformer returns a conformer with room for n atom positions, all at
//the origin.
func NewConformer(n int) *Conformer {
	return &Conformer{Coords: v3.Zeros(n)}
}

//Len returns the number of positions in the conformer.
func (C *Conformer) Len() int {
	return C.Coords.NVecs()
}

//SetAtomPos sets the position of atom i.
func (C *Conformer) SetAtomPos(i int, x, y, z float64) {
	C.Coords.SetVec(i, []float64{x, y, z})
}

//AtomPos returns the position of atom i.
func (C *Conformer) AtomPos(i int) (x, y, z float64) {
	return C.Coords.At(i, 0), C.Coords.At(i, 1), C.Coords.At(i, 2)
}

//Set3D marks the conformer as carrying true 3D coordinates, as opposed to a
//flat drawing.
func (C *Conformer) Set3D(is3D bool) {
	C.is3D = is3D
}

//Is3D tells whether the conformer carries true 3D coordinates.
func (C *Conformer) Is3D() bool {
	return C.is3D
}
