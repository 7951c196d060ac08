/*
 * sanitize.go, part of rdkit.
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
	"fmt"
	"math"
)

//The passes in this file run after parsing: valence bookkeeping, cleanup of
//common mis-drawn groups, hydrogen removal and stereochemistry perception.
//They are deliberately conservative; a molfile that parses but fails
//sanitization is returned as an error, never silently altered beyond what
//the individual passes document.

//Largest valence the checker accepts per element. Elements not listed are
//not checked.
var maxValences = map[int]int{
	1: 1, 5: 4, 6: 4, 7: 4, 8: 3, 9: 1,
	14: 6, 15: 6, 16: 6, 17: 7, 35: 7, 53: 7,
}

//calcExplicitValences fills the ExplicitValence field of every atom with
//the rounded sum of its bond-order contributions.
func (M *Mol) calcExplicitValences() {
	for _, at := range M.Atoms {
		var v float64
		for _, b := range at.Bonds {
			v += b.Order.Valence()
		}
		at.ExplicitValence = int(math.Round(v))
	}
}

//CleanUp fixes functional groups that are commonly drawn in a neutral,
//hypervalent form. Currently that is the nitro group -N(=O)=O, which
//becomes the charge-separated -[N+](=O)[O-]. Atom and bond counts never
//change.
func CleanUp(M *Mol) {
	for _, at := range M.Atoms {
		if at.AtomicNum != 7 || at.FormalCharge != 0 || at.HasQuery() {
			continue
		}
		var terminalOs []*Bond
		for _, b := range at.Bonds {
			o := M.Atom(b.Other(at.Index))
			if b.Order == Double && o.AtomicNum == 8 && o.Degree() == 1 && o.FormalCharge == 0 {
				terminalOs = append(terminalOs, b)
			}
		}
		if len(terminalOs) >= 2 {
			b := terminalOs[1]
			b.Order = Single
			M.Atom(b.Other(at.Index)).FormalCharge = -1
			at.FormalCharge = 1
		}
	}
}

//DetectAtomStereoChemistry assigns chiral tags to atoms at the narrow end
//of wedged single bonds, using the conformer for the in-plane geometry and
//the wedge direction for the out-of-plane sign when the conformer is flat.
//This must run before hydrogen removal: stripping an H can take the wedged
//bond with it.
func DetectAtomStereoChemistry(M *Mol, conf *Conformer) {
	for _, b := range M.Bonds {
		if b.Order != Single || (b.Dir != BeginWedge && b.Dir != BeginDash) {
			continue
		}
		center := M.Atom(b.Begin)
		if center.Chirality != ChiralNone || center.Degree() < 3 {
			continue
		}
		lift := 1.0
		if b.Dir == BeginDash {
			lift = -1.0
		}
		cx, cy, cz := conf.AtomPos(center.Index)
		//vectors from the center to its first three neighbors, with the
		//wedged neighbor pushed out of the plane for flat conformers
		var vs [3][3]float64
		n := 0
		for _, nb := range center.Bonds {
			if n == 3 {
				break
			}
			j := nb.Other(center.Index)
			x, y, z := conf.AtomPos(j)
			if !conf.Is3D() && nb == b {
				z += lift
			}
			vs[n] = [3]float64{x - cx, y - cy, z - cz}
			n++
		}
		if n < 3 {
			continue
		}
		det := vs[0][0]*(vs[1][1]*vs[2][2]-vs[1][2]*vs[2][1]) -
			vs[0][1]*(vs[1][0]*vs[2][2]-vs[1][2]*vs[2][0]) +
			vs[0][2]*(vs[1][0]*vs[2][1]-vs[1][1]*vs[2][0])
		if det > 0 {
			center.Chirality = ChiralCCW
		} else if det < 0 {
			center.Chirality = ChiralCW
		}
	}
}

//removableH tells whether at is a plain explicit hydrogen that RemoveHs may
//strip: uncharged, no radical, standard mass (so D and T stay), exactly one
//bond, to a heavy, non-query neighbor.
func (M *Mol) removableH(at *Atom) bool {
	if at.AtomicNum != 1 || at.HasQuery() || at.FormalCharge != 0 || at.RadicalElectrons != 0 {
		return false
	}
	if math.Abs(at.Mass-AtomicWeight(1)) > 0.1 {
		return false
	}
	if at.Degree() != 1 {
		return false
	}
	nb := M.Atom(at.Bonds[0].Other(at.Index))
	return nb.AtomicNum != 1 && !nb.HasQuery()
}

//RemoveHs strips the plain explicit hydrogens of the molecule in place,
//rebuilding the bond list, the adjacency and the conformer, and then runs
//SanitizeMol so the stripped hydrogens reappear as implicit ones.
func RemoveHs(M *Mol) error {
	keep := make([]int, len(M.Atoms)) //old index -> new index, -1 when dropped
	var kept []*Atom
	for i, at := range M.Atoms {
		if M.removableH(at) {
			keep[i] = -1
		} else {
			keep[i] = len(kept)
			kept = append(kept, at)
		}
	}
	if len(kept) == len(M.Atoms) {
		return errDecorate(SanitizeMol(M), "RemoveHs")
	}
	var bonds []*Bond
	for _, b := range M.Bonds {
		if keep[b.Begin] < 0 || keep[b.End] < 0 {
			continue
		}
		b.Begin = keep[b.Begin]
		b.End = keep[b.End]
		b.Index = len(bonds)
		bonds = append(bonds, b)
	}
	for i, at := range kept {
		at.Index = i
		at.Bonds = nil
	}
	if conf := M.Conformer(); conf != nil {
		nc := NewConformer(len(kept))
		nc.Set3D(conf.Is3D())
		for i := range M.Atoms {
			if keep[i] >= 0 {
				x, y, z := conf.AtomPos(i)
				nc.SetAtomPos(keep[i], x, y, z)
			}
		}
		M.AddConformer(nc)
	}
	M.Atoms = kept
	M.Bonds = nil
	M.rings = nil
	M.clearBookmarks()
	for _, b := range bonds {
		if _, err := M.AddBond(b); err != nil {
			return errDecorate(err, "RemoveHs")
		}
	}
	return errDecorate(SanitizeMol(M), "RemoveHs")
}

//chargeAdjustedValence returns the default valence of the element adjusted
//for its formal charge, following the usual organic-subset conventions.
func chargeAdjustedValence(z, dv, charge int) int {
	if z == 5 || z == 6 { //B and C lose capacity with either charge sign
		if charge < 0 {
			return dv + charge
		}
		return dv - charge
	}
	return dv + charge
}

//SanitizeMol recomputes explicit valences, checks them against the
//permitted maxima and fills the implicit hydrogen count of every atom.
//Aromatic bonds outside any ring are warned about, not rejected.
func SanitizeMol(M *Mol) error {
	M.calcExplicitValences()
	for _, at := range M.Atoms {
		if max, ok := maxValences[at.AtomicNum]; ok && at.ExplicitValence > max {
			return &CError{msg: fmt.Sprintf("Explicit valence for atom %d (%s) is %d, greater than permitted (%d)",
				at.Index, at.Symbol(), at.ExplicitValence, max), deco: []string{"SanitizeMol"}}
		}
		if at.NoImplicitH || at.HasQuery() {
			at.ImplicitHCount = 0
			continue
		}
		dv := defaultValence(at.AtomicNum)
		if dv < 0 {
			at.ImplicitHCount = 0
			continue
		}
		imp := chargeAdjustedValence(at.AtomicNum, dv, at.FormalCharge) - at.ExplicitValence - at.RadicalElectrons
		if imp < 0 {
			imp = 0
		}
		at.ImplicitHCount = imp
	}
	for _, b := range M.Bonds {
		if b.IsAromatic && !M.BondInRing(b.Index) {
			logger.Warn().Int("bond", b.Index).Msg("aromatic bond outside any ring")
		}
	}
	return nil
}

//ClearSingleBondDirFlags drops the wedging of single bonds. Once atom
//stereochemistry has been perceived the drawing hints carry no further
//information.
func ClearSingleBondDirFlags(M *Mol) {
	for _, b := range M.Bonds {
		if b.Order == Single && (b.Dir == BeginWedge || b.Dir == BeginDash || b.Dir == UnknownDir) {
			b.Dir = NoDir
		}
	}
}

//DetectBondStereoChemistry assigns Z/E tags to acyclic double bonds from
//the conformer geometry. Ring double bonds and bonds already tagged (e.g.
//crossed "either" bonds) are left alone.
func DetectBondStereoChemistry(M *Mol, conf *Conformer) {
	for _, b := range M.Bonds {
		if b.Order != Double || b.Stereo != StereoNone || b.Dir == EitherDouble {
			continue
		}
		if M.BondInRing(b.Index) {
			continue
		}
		ba := M.Atom(b.Begin)
		ea := M.Atom(b.End)
		if ba.Degree() < 2 || ea.Degree() < 2 {
			continue
		}
		r1 := referenceNeighbor(ba, b)
		r2 := referenceNeighbor(ea, b)
		if r1 < 0 || r2 < 0 {
			continue
		}
		bx, by, _ := conf.AtomPos(b.Begin)
		ex, ey, _ := conf.AtomPos(b.End)
		x1, y1, _ := conf.AtomPos(r1)
		x2, y2, _ := conf.AtomPos(r2)
		dx, dy := ex-bx, ey-by
		s1 := dx*(y1-by) - dy*(x1-bx)
		s2 := dx*(y2-ey) - dy*(x2-ex)
		if s1 == 0 || s2 == 0 {
			continue
		}
		if s1*s2 > 0 {
			b.Stereo = StereoZ
		} else {
			b.Stereo = StereoE
		}
	}
}

//referenceNeighbor picks the lowest-index neighbor of at that is not the
//other end of the double bond b, or -1 if there is none.
func referenceNeighbor(at *Atom, b *Bond) int {
	ref := -1
	for _, nb := range at.Bonds {
		if nb == b {
			continue
		}
		j := nb.Other(at.Index)
		if ref < 0 || j < ref {
			ref = j
		}
	}
	return ref
}

//AssignStereochemistry is the final stereo bookkeeping pass: it marks
//atoms whose chirality was perceived and records on the molecule that
//perception ran.
func AssignStereochemistry(M *Mol) {
	for _, at := range M.Atoms {
		if at.Chirality != ChiralNone {
			at.Props.Set("_ChiralityPossible", 1)
		}
	}
	M.Props.Set("_StereochemDone", 1)
}
