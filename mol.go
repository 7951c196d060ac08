/*
 * mol.go, part of rdkit.
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

import "fmt"

//Mol is a molecular graph under construction or freshly parsed: atoms,
//bonds, one conformer and a property bag. The molecule exclusively owns its
//atoms, bonds and conformer.
//
//Bookmarks are the user-assigned integer indices that V3000 blocks put on
//atoms and bonds; they may be non-contiguous, so the molecule keeps a side
//table from bookmark to internal index for resolving cross-references
//within the block.
type Mol struct {
	Atoms []*Atom
	Bonds []*Bond
	Props Props

	conf          *Conformer
	atomBookmarks map[int]int
	bondBookmarks map[int]int
	rings         *RingInfo
}

//NewMol returns an empty molecule.
func NewMol() *Mol {
	return &Mol{Props: make(Props)}
}

//Len returns the number of atoms in the molecule.
func (M *Mol) Len() int {
	return len(M.Atoms)
}

//NumBonds returns the number of bonds in the molecule.
func (M *Mol) NumBonds() int {
	return len(M.Bonds)
}

//Atom returns the atom corresponding to the index i. Panics if out of
//range.
func (M *Mol) Atom(i int) *Atom {
	if i < 0 || i >= len(M.Atoms) {
		panic(PanicMsg(fmt.Sprintf("Mol: Requested Atom (%d) out of bounds (%d)", i, len(M.Atoms))))
	}
	return M.Atoms[i]
}

//Bond returns the bond corresponding to the index i. Panics if out of
//range.
func (M *Mol) Bond(i int) *Bond {
	if i < 0 || i >= len(M.Bonds) {
		panic(PanicMsg(fmt.Sprintf("Mol: Requested Bond (%d) out of bounds (%d)", i, len(M.Bonds))))
	}
	return M.Bonds[i]
}

//AddAtom appends at to the molecule and returns its internal index.
func (M *Mol) AddAtom(at *Atom) int {
	at.Index = len(M.Atoms)
	M.Atoms = append(M.Atoms, at)
	M.rings = nil
	return at.Index
}

//AddBond appends b to the molecule, wiring it into the adjacency lists of
//its end atoms, and returns its internal index. The end points must be
//in-range, distinct atom indices.
func (M *Mol) AddBond(b *Bond) (int, error) {
	n := len(M.Atoms)
	if b.Begin < 0 || b.Begin >= n || b.End < 0 || b.End >= n {
		return 0, &CError{msg: fmt.Sprintf("Bond (%d-%d) refers to nonexistent atoms (%d in molecule)", b.Begin, b.End, n), deco: []string{"AddBond"}}
	}
	if b.Begin == b.End {
		return 0, &CError{msg: fmt.Sprintf("Bond from atom %d to itself", b.Begin), deco: []string{"AddBond"}}
	}
	b.Index = len(M.Bonds)
	M.Bonds = append(M.Bonds, b)
	M.Atoms[b.Begin].Bonds = append(M.Atoms[b.Begin].Bonds, b)
	M.Atoms[b.End].Bonds = append(M.Atoms[b.End].Bonds, b)
	M.rings = nil
	return b.Index, nil
}

//BondBetween returns the bond joining atoms i and j, or nil if there is
//none.
func (M *Mol) BondBetween(i, j int) *Bond {
	for _, b := range M.Atom(i).Bonds {
		if b.Other(i) == j {
			return b
		}
	}
	return nil
}

//ReplaceAtom puts at in the slot idx, preserving the index and the bond
//adjacency of the atom previously there. Callers holding a pointer to the
//old atom must re-fetch it. This is how plain atoms get promoted to query
//atoms in place.
func (M *Mol) ReplaceAtom(idx int, at *Atom) {
	old := M.Atom(idx)
	at.Index = old.Index
	at.Bonds = old.Bonds
	M.Atoms[idx] = at
}

//SetAtomBookmark records the V3000 wire index of the atom at internal
//index idx.
func (M *Mol) SetAtomBookmark(bookmark, idx int) {
	if M.atomBookmarks == nil {
		M.atomBookmarks = make(map[int]int)
	}
	M.atomBookmarks[bookmark] = idx
}

//AtomWithBookmark returns the atom carrying the given V3000 wire index.
func (M *Mol) AtomWithBookmark(bookmark int) (*Atom, error) {
	idx, ok := M.atomBookmarks[bookmark]
	if !ok {
		return nil, &CError{msg: fmt.Sprintf("No atom with bookmark %d", bookmark), deco: []string{"AtomWithBookmark"}}
	}
	return M.Atoms[idx], nil
}

//SetBondBookmark records the V3000 wire index of the bond at internal
//index idx.
func (M *Mol) SetBondBookmark(bookmark, idx int) {
	if M.bondBookmarks == nil {
		M.bondBookmarks = make(map[int]int)
	}
	M.bondBookmarks[bookmark] = idx
}

//BondWithBookmark returns the bond carrying the given V3000 wire index.
func (M *Mol) BondWithBookmark(bookmark int) (*Bond, error) {
	idx, ok := M.bondBookmarks[bookmark]
	if !ok {
		return nil, &CError{msg: fmt.Sprintf("No bond with bookmark %d", bookmark), deco: []string{"BondWithBookmark"}}
	}
	return M.Bonds[idx], nil
}

//clearBookmarks drops the V3000 side tables, which have no meaning outside
//the block being parsed.
func (M *Mol) clearBookmarks() {
	M.atomBookmarks = nil
	M.bondBookmarks = nil
}

//AddConformer attaches conf to the molecule, replacing any previous one.
func (M *Mol) AddConformer(conf *Conformer) {
	M.conf = conf
}

//Conformer returns the conformer of the molecule, or nil if none was
//attached.
func (M *Mol) Conformer() *Conformer {
	return M.conf
}

//Name returns the _Name property, i.e. the first header line of the
//molfile the molecule was read from.
func (M *Mol) Name() string {
	s, _ := M.Props.String("_Name")
	return s
}
