/*
 * bond.go, part of rdkit.
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

//BondOrder is the bond order variant carried by a bond.
type BondOrder int

const (
	Unspecified BondOrder = iota
	Single
	Double
	Triple
	Aromatic
)

//Valence returns the contribution of a bond of this order to the explicit
//valence of its end atoms.
func (o BondOrder) Valence() float64 {
	switch o {
	case Single:
		return 1
	case Double:
		return 2
	case Triple:
		return 3
	case Aromatic:
		return 1.5
	}
	return 0
}

func (o BondOrder) String() string {
	switch o {
	case Single:
		return "single"
	case Double:
		return "double"
	case Triple:
		return "triple"
	case Aromatic:
		return "aromatic"
	}
	return "unspecified"
}

//BondDir is the wedging of a bond as drawn.
type BondDir int

const (
	NoDir BondDir = iota
	BeginWedge
	BeginDash
	EitherDouble
	UnknownDir
)

//BondStereo is the perceived or declared stereochemistry tag of a bond.
type BondStereo int

const (
	StereoNone BondStereo = iota
	StereoAny
	StereoZ
	StereoE
)

//Bond is one edge of the molecular graph. Begin and End are internal atom
//indices of the owning molecule. A bond with a non-nil Query is a query
//bond.
type Bond struct {
	Begin      int
	End        int
	Order      BondOrder
	Dir        BondDir
	Stereo     BondStereo
	IsAromatic bool
	Index      int //position in the owning molecule, set by Mol.AddBond
	Query      *BondQuery
	Props      Props
}

//NewBond returns a bond of the given order with unset end points.
func NewBond(order BondOrder) *Bond {
	return &Bond{Order: order, Begin: -1, End: -1, Props: make(Props)}
}

//HasQuery tells whether the bond is a query bond.
func (B *Bond) HasQuery() bool {
	return B.Query != nil
}

//Other returns the index of the atom at the other end of the bond from the
//given one. Panics if origin is on neither end, as that is a programming
//error.
func (B *Bond) Other(origin int) int {
	if origin == B.Begin {
		return B.End
	}
	if origin == B.End {
		return B.Begin
	}
	panic(PanicMsg("Trying to cross a bond: The origin atom given is not present in the bond!"))
}

//Copy returns a copy of the bond.
func (B *Bond) Copy() *Bond {
	newb := new(Bond)
	*newb = *B
	newb.Props = make(Props, len(B.Props))
	for k, v := range B.Props {
		newb.Props[k] = v
	}
	if B.Query != nil {
		newb.Query = B.Query.Copy()
	}
	return newb
}
