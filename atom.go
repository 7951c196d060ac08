/*
 * atom.go, part of rdkit.
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

//ChiralTag marks the perceived handedness of a tetrahedral center.
type ChiralTag int

const (
	ChiralNone ChiralTag = iota
	ChiralCW
	ChiralCCW
)

//Atom is one node of the molecular graph. An atom with a non-nil Query is a
//query atom: its scalar fields remain but matching semantics are governed by
//the query tree.
type Atom struct {
	AtomicNum        int     //0 for unspecified, R-groups and wildcards
	FormalCharge     int
	Mass             float64 //standard atomic weight unless the molfile set an isotope mass (M  ISO stores the mass number)
	RadicalElectrons int
	NoImplicitH      bool
	IsAromatic       bool
	Chirality        ChiralTag
	ExplicitValence  int //-1 until computed after parsing
	ImplicitHCount   int
	Index            int //position in the owning molecule, set by Mol.AddAtom
	Bonds            []*Bond
	Query            *AtomQuery
	Props            Props
}

//NewAtom returns an atom of the given element carrying its standard atomic
//weight.
func NewAtom(z int) *Atom {
	return &Atom{AtomicNum: z, Mass: AtomicWeight(z), ExplicitValence: -1, Props: make(Props)}
}

//newEmptyAtom returns a zeroed atom, as needed by the fixed-column decoders
//which fill every field themselves.
func newEmptyAtom() *Atom {
	return &Atom{ExplicitValence: -1, Props: make(Props)}
}

//HasQuery tells whether the atom is a query atom.
func (A *Atom) HasQuery() bool {
	return A.Query != nil
}

//Degree returns the number of explicit bonds of the atom.
func (A *Atom) Degree() int {
	return len(A.Bonds)
}

//Symbol returns the element symbol of the atom.
func (A *Atom) Symbol() string {
	return SymbolFromNumber(A.AtomicNum)
}

//TotalHCount returns the number of hydrogens on the atom, explicit
//neighbors plus the implicit count computed by sanitization.
func (A *Atom) TotalHCount(mol *Mol) int {
	h := A.ImplicitHCount
	for _, b := range A.Bonds {
		if mol.Atom(b.Other(A.Index)).AtomicNum == 1 {
			h++
		}
	}
	return h
}

//Unsaturated tells whether the atom takes part in any double, triple or
//aromatic bond.
func (A *Atom) Unsaturated() bool {
	for _, b := range A.Bonds {
		if b.Order == Double || b.Order == Triple || b.Order == Aromatic {
			return true
		}
	}
	return false
}

//Copy returns a copy of the Atom object. The bond adjacency is shared with
//the original, as it belongs to the owning molecule.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic(PanicMsg("Attempted to copy a nil atom"))
	}
	newat := new(Atom)
	*newat = *A
	newat.Props = make(Props, len(A.Props))
	for k, v := range A.Props {
		newat.Props[k] = v
	}
	if A.Query != nil {
		newat.Query = A.Query.Copy()
	}
	return newat
}
