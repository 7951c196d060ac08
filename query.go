/*
 * query.go, part of rdkit.
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

import "math"

//Query atoms and query bonds carry a predicate tree instead of plain scalar
//matching semantics. Leaves compare an observable of a candidate atom or
//bond against a stored value; inner nodes combine their children. Any node
//can be negated.

//magicVal is the reserved sentinel stored in a query leaf whose value can
//only be computed once the full graph is known ("as drawn" queries). The
//completion pass replaces it, checking by identity; it lies far outside the
//legal domain of every observable.
const magicVal = -0xDEADBEEF

//AtomQueryKind selects the observable compared by an atom-query leaf, or
//marks the node as a combinator.
type AtomQueryKind int

const (
	AQNull AtomQueryKind = iota //matches anything
	AQAtomicNum
	AQFormalCharge
	AQMass //compared against the rounded atom mass
	AQExplicitDegree
	AQRingBondCount
	AQRingBondCountLE
	AQUnsaturated
	AQHCount
	AQAnd
	AQOr
)

//AtomQuery is one node of an atom predicate tree.
type AtomQuery struct {
	Kind   AtomQueryKind
	Val    int
	Negate bool
	Kids   []*AtomQuery
}

//atomObservable is the data function of a leaf: it computes, on a candidate
//atom, the quantity the leaf compares its value against.
func atomObservable(kind AtomQueryKind, mol *Mol, at *Atom) int {
	switch kind {
	case AQAtomicNum:
		return at.AtomicNum
	case AQFormalCharge:
		return at.FormalCharge
	case AQMass:
		return int(math.Round(at.Mass))
	case AQExplicitDegree:
		return at.Degree()
	case AQRingBondCount, AQRingBondCountLE:
		return mol.RingBondCount(at.Index)
	case AQUnsaturated:
		if at.Unsaturated() {
			return 1
		}
		return 0
	case AQHCount:
		return at.TotalHCount(mol)
	}
	return 0
}

func (q *AtomQuery) isLeaf() bool {
	return q.Kind != AQAnd && q.Kind != AQOr
}

//Matches evaluates the predicate tree on the given atom of mol.
func (q *AtomQuery) Matches(mol *Mol, at *Atom) bool {
	var r bool
	switch q.Kind {
	case AQNull:
		r = true
	case AQAnd:
		r = true
		for _, k := range q.Kids {
			if !k.Matches(mol, at) {
				r = false
				break
			}
		}
	case AQOr:
		r = false
		for _, k := range q.Kids {
			if k.Matches(mol, at) {
				r = true
				break
			}
		}
	case AQUnsaturated:
		r = atomObservable(q.Kind, mol, at) == 1
	case AQRingBondCountLE:
		r = atomObservable(q.Kind, mol, at) <= q.Val
	default:
		r = atomObservable(q.Kind, mol, at) == q.Val
	}
	if q.Negate {
		return !r
	}
	return r
}

//Copy returns a deep copy of the tree.
func (q *AtomQuery) Copy() *AtomQuery {
	n := new(AtomQuery)
	*n = *q
	n.Kids = make([]*AtomQuery, 0, len(q.Kids))
	for _, k := range q.Kids {
		n.Kids = append(n.Kids, k.Copy())
	}
	return n
}

func atomNumEqualsQuery(n int) *AtomQuery {
	return &AtomQuery{Kind: AQAtomicNum, Val: n}
}

func atomFormalChargeQuery(c int) *AtomQuery {
	return &AtomQuery{Kind: AQFormalCharge, Val: c}
}

func atomMassQuery(m int) *AtomQuery {
	return &AtomQuery{Kind: AQMass, Val: m}
}

func atomExplicitDegreeQuery(d int) *AtomQuery {
	return &AtomQuery{Kind: AQExplicitDegree, Val: d}
}

func atomRingBondCountQuery(r int) *AtomQuery {
	return &AtomQuery{Kind: AQRingBondCount, Val: r}
}

func atomUnsaturatedQuery() *AtomQuery {
	return &AtomQuery{Kind: AQUnsaturated, Val: 1}
}

func atomHCountQuery(h int) *AtomQuery {
	return &AtomQuery{Kind: AQHCount, Val: h}
}

func atomNullQuery() *AtomQuery {
	return &AtomQuery{Kind: AQNull}
}

//ExpandQuery combines q into the existing query of the atom under the given
//combinator (AQAnd or AQOr), setting it directly if the atom had none. When
//the root of the existing tree already is the requested combinator, q is
//appended to its children.
func (A *Atom) ExpandQuery(q *AtomQuery, op AtomQueryKind) {
	if A.Query == nil {
		A.Query = q
		return
	}
	if A.Query.Kind == op && !A.Query.Negate {
		A.Query.Kids = append(A.Query.Kids, q)
		return
	}
	A.Query = &AtomQuery{Kind: op, Kids: []*AtomQuery{A.Query, q}}
}

//BondQueryKind selects the observable compared by a bond-query leaf, or
//marks the node as a combinator.
type BondQueryKind int

const (
	BQNull BondQueryKind = iota //matches anything
	BQOrder
	BQInRing
	BQAnd
	BQOr
)

//BondQuery is one node of a bond predicate tree.
type BondQuery struct {
	Kind   BondQueryKind
	Val    int
	Negate bool
	Kids   []*BondQuery
}

//Matches evaluates the predicate tree on the given bond of mol.
func (q *BondQuery) Matches(mol *Mol, b *Bond) bool {
	var r bool
	switch q.Kind {
	case BQNull:
		r = true
	case BQAnd:
		r = true
		for _, k := range q.Kids {
			if !k.Matches(mol, b) {
				r = false
				break
			}
		}
	case BQOr:
		r = false
		for _, k := range q.Kids {
			if k.Matches(mol, b) {
				r = true
				break
			}
		}
	case BQOrder:
		r = int(b.Order) == q.Val
	case BQInRing:
		r = mol.BondInRing(b.Index)
	}
	if q.Negate {
		return !r
	}
	return r
}

//Copy returns a deep copy of the tree.
func (q *BondQuery) Copy() *BondQuery {
	n := new(BondQuery)
	*n = *q
	n.Kids = make([]*BondQuery, 0, len(q.Kids))
	for _, k := range q.Kids {
		n.Kids = append(n.Kids, k.Copy())
	}
	return n
}

func bondOrderEqualsQuery(o BondOrder) *BondQuery {
	return &BondQuery{Kind: BQOrder, Val: int(o)}
}

func bondIsInRingQuery() *BondQuery {
	return &BondQuery{Kind: BQInRing}
}

func bondNullQuery() *BondQuery {
	return &BondQuery{Kind: BQNull}
}

//ExpandQuery combines q into the existing query of the bond under an AND
//combinator, setting it directly if the bond had none.
func (B *Bond) ExpandQuery(q *BondQuery) {
	if B.Query == nil {
		B.Query = q
		return
	}
	if B.Query.Kind == BQAnd && !B.Query.Negate {
		B.Query.Kids = append(B.Query.Kids, q)
		return
	}
	B.Query = &BondQuery{Kind: BQAnd, Kids: []*BondQuery{B.Query, q}}
}

//completeQueryAndChildren walks the tree depth-first replacing, in every
//leaf whose value is the magic sentinel, the sentinel with the observable
//computed on the owning atom of the now-complete graph.
func completeQueryAndChildren(q *AtomQuery, mol *Mol, tgt *Atom) {
	if q == nil {
		return
	}
	if q.isLeaf() && q.Val == magicVal {
		q.Val = atomObservable(q.Kind, mol, tgt)
	}
	for _, k := range q.Kids {
		completeQueryAndChildren(k, mol, tgt)
	}
}

//completeQueries resolves the deferred "as drawn" query leaves on every
//query atom of the molecule.
func (M *Mol) completeQueries() {
	for _, at := range M.Atoms {
		if at.HasQuery() {
			completeQueryAndChildren(at.Query, M, at)
		}
	}
}
