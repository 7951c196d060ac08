/*
 * molfile_test.go, part of rdkit.
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
	"bufio"
	"fmt"
	"strings"
	"testing"
)

const methaneBlock = "methane\n\n\n  1  0  0  0  0  0  0  0  0  0999 V2000\n    0.0000    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0\nM  END\n"

func TestMethane(Te *testing.T) {
	mol, err := MolFromBlock(methaneBlock, true, false)
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 1 || mol.NumBonds() != 0 {
		Te.Errorf("methane: got %d atoms, %d bonds", mol.Len(), mol.NumBonds())
	}
	at := mol.Atom(0)
	if at.AtomicNum != 6 {
		Te.Errorf("methane carbon has atomic number %d", at.AtomicNum)
	}
	if mol.Name() != "methane" {
		Te.Errorf("wrong name: %q", mol.Name())
	}
	x, y, z := mol.Conformer().AtomPos(0)
	if x != 0 || y != 0 || z != 0 {
		Te.Errorf("methane carbon not at the origin: %f %f %f", x, y, z)
	}
	if at.ExplicitValence != 0 {
		Te.Errorf("explicit valence not computed: %d", at.ExplicitValence)
	}
	if at.ImplicitHCount != 4 {
		Te.Errorf("methane carbon should carry 4 implicit Hs, has %d", at.ImplicitHCount)
	}
	fmt.Println("methane read!", mol.Formula())
}

func benzeneBlock() string {
	//a flat hexagon with alternating coordinates is good enough here; the
	//bonds are all wire type 4 (aromatic)
	s := "benzene\n\n\n  6  6  0  0  0  0  0  0  0  0999 V2000\n"
	coords := [][2]float64{{0, 1.4}, {1.2, 0.7}, {1.2, -0.7}, {0, -1.4}, {-1.2, -0.7}, {-1.2, 0.7}}
	for _, c := range coords {
		s += fmt.Sprintf("%10.4f%10.4f%10.4f C   0  0  0  0  0  0  0  0  0  0  0  0\n", c[0], c[1], 0.0)
	}
	for i := 1; i <= 6; i++ {
		j := i%6 + 1
		s += fmt.Sprintf("%3d%3d  4  0  0  0  0\n", i, j)
	}
	return s + "M  END\n"
}

func TestBenzene(Te *testing.T) {
	mol, err := MolFromBlock(benzeneBlock(), true, false)
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 6 || mol.NumBonds() != 6 {
		Te.Fatalf("benzene: got %d atoms, %d bonds", mol.Len(), mol.NumBonds())
	}
	for i := 0; i < mol.NumBonds(); i++ {
		b := mol.Bond(i)
		if b.Order != Aromatic || !b.IsAromatic {
			Te.Errorf("bond %d not aromatic", i)
		}
		if !mol.Atom(b.Begin).IsAromatic || !mol.Atom(b.End).IsAromatic {
			Te.Errorf("end atoms of bond %d not flagged aromatic", i)
		}
		if !mol.BondInRing(i) {
			Te.Errorf("benzene bond %d not perceived as a ring bond", i)
		}
	}
}

func nitroBlock() string {
	return "nitro\n\n\n  4  3  0  0  0  0  0  0  0  0999 V2000\n" +
		"    0.0000    0.0000    0.0000 N   0  0  0  0  0  0  0  0  0  0  0  0\n" +
		"    1.0000    0.0000    0.0000 O   0  0  0  0  0  0  0  0  0  0  0  0\n" +
		"   -1.0000    0.0000    0.0000 O   0  0  0  0  0  0  0  0  0  0  0  0\n" +
		"    0.0000    1.0000    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0\n" +
		"  1  2  1  0  0  0  0\n" +
		"  1  3  2  0  0  0  0\n" +
		"  1  4  1  0  0  0  0\n" +
		"M  CHG  2   1   1   2  -1\n" +
		"M  END\n"
}

func TestChargeRecord(Te *testing.T) {
	mol, err := MolFromBlock(nitroBlock(), true, false)
	if err != nil {
		Te.Fatal(err)
	}
	want := []int{1, -1, 0, 0}
	total := 0
	for i, w := range want {
		if got := mol.Atom(i).FormalCharge; got != w {
			Te.Errorf("atom %d: formal charge %d, want %d", i, got, w)
		}
		total += mol.Atom(i).FormalCharge
	}
	if total != 0 {
		Te.Errorf("net charge %d, want 0", total)
	}
}

//The first charge line resets every atom: a charge set on the atom line
//must not survive a later M  CHG that doesn't mention the atom.
func TestChargeLineResets(Te *testing.T) {
	block := "\n\n\n  2  1  0  0  0  0  0  0  0  0999 V2000\n" +
		"    0.0000    0.0000    0.0000 N   0  3  0  0  0  0  0  0  0  0  0  0\n" +
		"    1.0000    0.0000    0.0000 O   0  0  0  0  0  0  0  0  0  0  0  0\n" +
		"  1  2  1  0  0  0  0\n" +
		"M  CHG  1   2  -1\n" +
		"M  END\n"
	mol, err := MolFromBlock(block, false, false)
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Atom(0).FormalCharge != 0 {
		Te.Errorf("atom-line charge should have been reset, got %d", mol.Atom(0).FormalCharge)
	}
	if mol.Atom(1).FormalCharge != -1 {
		Te.Errorf("listed charge lost, got %d", mol.Atom(1).FormalCharge)
	}
}

//Charge codes on the atom line map as formal charge = 4 - code.
func TestAtomLineChargeCode(Te *testing.T) {
	block := "\n\n\n  1  0  0  0  0  0  0  0  0  0999 V2000\n" +
		"    0.0000    0.0000    0.0000 N   0  3  0  0  0  0  0  0  0  0  0  0\n" +
		"M  END\n"
	mol, err := MolFromBlock(block, false, false)
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Atom(0).FormalCharge != 1 {
		Te.Errorf("charge code 3 should mean +1, got %d", mol.Atom(0).FormalCharge)
	}
}

func TestRGroupLabel(Te *testing.T) {
	block := "\n\n\n  2  1  0  0  0  0  0  0  0  0999 V2000\n" +
		"    0.0000    0.0000    0.0000 R#  0  0  0  0  0  0  0  0  0  0  0  0\n" +
		"    1.0000    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0\n" +
		"  1  2  1  0  0  0  0\n" +
		"M  RGP  1   1   5\n" +
		"M  END\n"
	mol, err := MolFromBlock(block, false, false)
	if err != nil {
		Te.Fatal(err)
	}
	at := mol.Atom(0)
	if !at.HasQuery() || at.Query.Kind != AQNull {
		Te.Fatalf("R-group atom should carry a null query, has %+v", at.Query)
	}
	if lbl, _ := at.Props.Int("_MolFileRLabel"); lbl != 5 {
		Te.Errorf("R label %d, want 5", lbl)
	}
	if at.Mass != 5 {
		Te.Errorf("R-group mass %f, want 5", at.Mass)
	}
	if at.AtomicNum != 0 {
		Te.Errorf("R-group atomic number %d, want 0", at.AtomicNum)
	}
}

const v3000Water = "water\n\n\n  0  0  0  0  0  0  0  0  0  0999 V3000\n" +
	"M  V30 BEGIN CTAB\n" +
	"M  V30 COUNTS 3 2 0 0 0\n" +
	"M  V30 BEGIN ATOM\n" +
	"M  V30 1 O 0 0 0 0\n" +
	"M  V30 2 H 0 1 0 0\n" +
	"M  V30 3 H 1 0 0 0\n" +
	"M  V30 END ATOM\n" +
	"M  V30 BEGIN BOND\n" +
	"M  V30 1 1 1 2\n" +
	"M  V30 2 1 1 3\n" +
	"M  V30 END BOND\n" +
	"M  V30 END CTAB\n" +
	"M  END\n"

func TestV3000Water(Te *testing.T) {
	mol, err := MolFromBlock(v3000Water, true, false)
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 3 || mol.NumBonds() != 2 {
		Te.Fatalf("water: got %d atoms, %d bonds", mol.Len(), mol.NumBonds())
	}
	zs := []int{8, 1, 1}
	for i, z := range zs {
		if mol.Atom(i).AtomicNum != z {
			Te.Errorf("atom %d: atomic number %d, want %d", i, mol.Atom(i).AtomicNum, z)
		}
	}
	for i, want := range [][2]int{{0, 1}, {0, 2}} {
		b := mol.Bond(i)
		if b.Order != Single || b.Begin != want[0] || b.End != want[1] {
			Te.Errorf("bond %d: %d-%d order %v", i, b.Begin, b.End, b.Order)
		}
	}
	if mol.Conformer().Len() != 3 {
		Te.Errorf("conformer has %d positions", mol.Conformer().Len())
	}
}

//A logical V3000 line may be split across physical lines with a trailing
//dash.
func TestV3000Continuation(Te *testing.T) {
	block := "split\n\n\n  0  0  0  0  0  0  0  0  0  0999 V3000\n" +
		"M  V30 BEGIN CTAB\n" +
		"M  V30 COUNTS 1 0 -\n" +
		"M  V30 0 0 0\n" +
		"M  V30 BEGIN ATOM\n" +
		"M  V30 1 C 0 -\n" +
		"M  V30 0 0 0\n" +
		"M  V30 END ATOM\n" +
		"M  V30 END CTAB\n" +
		"M  END\n"
	mol, err := MolFromBlock(block, false, false)
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 1 || mol.Atom(0).AtomicNum != 6 {
		Te.Errorf("continuation line mangled the atom block")
	}
}

func TestV3000AtomList(Te *testing.T) {
	block := "list\n\n\n  0  0  0  0  0  0  0  0  0  0999 V3000\n" +
		"M  V30 BEGIN CTAB\n" +
		"M  V30 COUNTS 2 1 0 0 0\n" +
		"M  V30 BEGIN ATOM\n" +
		"M  V30 1 NOT [N,O] 0 0 0 0\n" +
		"M  V30 2 C 1 0 0 0 CHG=-1\n" +
		"M  V30 END ATOM\n" +
		"M  V30 BEGIN BOND\n" +
		"M  V30 1 1 1 2\n" +
		"M  V30 END BOND\n" +
		"M  V30 END CTAB\n" +
		"M  END\n"
	mol, err := MolFromBlock(block, false, false)
	if err != nil {
		Te.Fatal(err)
	}
	at := mol.Atom(0)
	if !at.HasQuery() || at.Query.Kind != AQOr || !at.Query.Negate || len(at.Query.Kids) != 2 {
		Te.Fatalf("bad atom-list query: %+v", at.Query)
	}
	if at.Query.Kids[0].Val != 7 || at.Query.Kids[1].Val != 8 {
		Te.Errorf("atom list elements wrong: %+v", at.Query.Kids)
	}
	if mol.Atom(1).FormalCharge != -1 {
		Te.Errorf("CHG option lost: %d", mol.Atom(1).FormalCharge)
	}
}

//V3000 bookmarks need not be dense; the bond block resolves them through
//the side table.
func TestV3000SparseBookmarks(Te *testing.T) {
	block := "sparse\n\n\n  0  0  0  0  0  0  0  0  0  0999 V3000\n" +
		"M  V30 BEGIN CTAB\n" +
		"M  V30 COUNTS 2 1 0 0 0\n" +
		"M  V30 BEGIN ATOM\n" +
		"M  V30 15 C 0 0 0 0\n" +
		"M  V30 42 O 1 0 0 0\n" +
		"M  V30 END ATOM\n" +
		"M  V30 BEGIN BOND\n" +
		"M  V30 7 1 15 42\n" +
		"M  V30 END BOND\n" +
		"M  V30 END CTAB\n" +
		"M  END\n"
	mol, err := MolFromBlock(block, false, false)
	if err != nil {
		Te.Fatal(err)
	}
	b := mol.Bond(0)
	if b.Begin != 0 || b.End != 1 {
		Te.Errorf("bookmarks resolved to %d-%d, want 0-1", b.Begin, b.End)
	}
}

func cyclohexaneRBC(count int) string {
	s := "cyclohexane\n\n\n  6  6  0  0  0  0  0  0  0  0999 V2000\n"
	for i := 0; i < 6; i++ {
		s += fmt.Sprintf("%10.4f%10.4f%10.4f C   0  0  0  0  0  0  0  0  0  0  0  0\n", float64(i), 0.0, 0.0)
	}
	for i := 1; i <= 6; i++ {
		s += fmt.Sprintf("%3d%3d  1  0  0  0  0\n", i, i%6+1)
	}
	s += fmt.Sprintf("M  RBC  1   1 %3d\nM  END\n", count)
	return s
}

func findAtomQueryLeaf(q *AtomQuery, kind AtomQueryKind) *AtomQuery {
	if q == nil {
		return nil
	}
	if q.Kind == kind {
		return q
	}
	for _, k := range q.Kids {
		if f := findAtomQueryLeaf(k, kind); f != nil {
			return f
		}
	}
	return nil
}

func queryHasMagic(q *AtomQuery) bool {
	if q == nil {
		return false
	}
	if q.isLeaf() && q.Val == magicVal {
		return true
	}
	for _, k := range q.Kids {
		if queryHasMagic(k) {
			return true
		}
	}
	return false
}

//"As drawn" ring-bond counts (count -2) are resolved after parsing from the
//finished graph: every atom of a plain cycle has two ring bonds.
func TestRingBondCountAsDrawn(Te *testing.T) {
	mol, err := MolFromBlock(cyclohexaneRBC(-2), false, false)
	if err != nil {
		Te.Fatal(err)
	}
	at := mol.Atom(0)
	if !at.HasQuery() {
		Te.Fatal("RBC did not promote the atom")
	}
	leaf := findAtomQueryLeaf(at.Query, AQRingBondCount)
	if leaf == nil {
		Te.Fatal("no ring-bond-count leaf in the query")
	}
	if leaf.Val != 2 {
		Te.Errorf("completed ring bond count %d, want 2", leaf.Val)
	}
	if queryHasMagic(at.Query) {
		Te.Error("magic sentinel survived the completion pass")
	}
	if mol.Props.Has("_NeedsQueryScan") {
		Te.Error("_NeedsQueryScan still set after parsing")
	}
}

func TestRingBondCountLE(Te *testing.T) {
	mol, err := MolFromBlock(cyclohexaneRBC(4), false, false)
	if err != nil {
		Te.Fatal(err)
	}
	leaf := findAtomQueryLeaf(mol.Atom(0).Query, AQRingBondCountLE)
	if leaf == nil || leaf.Val != 4 {
		Te.Fatalf("RBC 4 should yield a <=4 leaf, got %+v", leaf)
	}
	if !mol.Atom(0).Query.Matches(mol, mol.Atom(0)) {
		Te.Error("cyclohexane atom (2 ring bonds) should match ring-bond-count <= 4")
	}
}

func TestSubstitutionCount(Te *testing.T) {
	block := "\n\n\n  2  1  0  0  0  0  0  0  0  0999 V2000\n" +
		"    0.0000    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0\n" +
		"    1.0000    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0\n" +
		"  1  2  1  0  0  0  0\n" +
		"M  SUB  1   1  -2\n" +
		"M  END\n"
	mol, err := MolFromBlock(block, false, false)
	if err != nil {
		Te.Fatal(err)
	}
	leaf := findAtomQueryLeaf(mol.Atom(0).Query, AQExplicitDegree)
	if leaf == nil || leaf.Val != 1 {
		Te.Fatalf("SUB -2 should freeze the current degree (1), got %+v", leaf)
	}
}

func TestQueryAtomSymbols(Te *testing.T) {
	block := "\n\n\n  3  0  0  0  0  0  0  0  0  0999 V2000\n" +
		"    0.0000    0.0000    0.0000 *   0  0  0  0  0  0  0  0  0  0  0  0\n" +
		"    1.0000    0.0000    0.0000 Q   0  0  0  0  0  0  0  0  0  0  0  0\n" +
		"    2.0000    0.0000    0.0000 A   0  0  0  0  0  0  0  0  0  0  0  0\n" +
		"M  END\n"
	mol, err := MolFromBlock(block, false, false)
	if err != nil {
		Te.Fatal(err)
	}
	star, q, a := mol.Atom(0), mol.Atom(1), mol.Atom(2)
	if star.Query == nil || star.Query.Kind != AQNull {
		Te.Error("* should carry a null query")
	}
	if q.Query == nil || q.Query.Kind != AQOr || !q.Query.Negate || len(q.Query.Kids) != 2 {
		Te.Errorf("Q query wrong: %+v", q.Query)
	}
	if a.Query == nil || a.Query.Kind != AQAtomicNum || !a.Query.Negate || a.Query.Val != 1 {
		Te.Errorf("A query wrong: %+v", a.Query)
	}
	for i := 0; i < 3; i++ {
		if !mol.Atom(i).NoImplicitH {
			Te.Errorf("query atom %d should have no implicit Hs", i)
		}
	}
}

func TestDeuteriumTritium(Te *testing.T) {
	block := "\n\n\n  2  0  0  0  0  0  0  0  0  0999 V2000\n" +
		"    0.0000    0.0000    0.0000 D   0  0  0  0  0  0  0  0  0  0  0  0\n" +
		"    1.0000    0.0000    0.0000 T   0  0  0  0  0  0  0  0  0  0  0  0\n" +
		"M  END\n"
	mol, err := MolFromBlock(block, false, false)
	if err != nil {
		Te.Fatal(err)
	}
	d, t := mol.Atom(0), mol.Atom(1)
	if d.AtomicNum != 1 || d.Mass != 2.014 {
		Te.Errorf("D: z=%d mass=%f", d.AtomicNum, d.Mass)
	}
	if t.AtomicNum != 1 || t.Mass != 3.016 {
		Te.Errorf("T: z=%d mass=%f", t.AtomicNum, t.Mass)
	}
}

func TestQueryBondTypes(Te *testing.T) {
	block := "\n\n\n  3  2  0  0  0  0  0  0  0  0999 V2000\n" +
		"    0.0000    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0\n" +
		"    1.0000    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0\n" +
		"    2.0000    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0\n" +
		"  1  2  5  0  0  0  0\n" +
		"  2  3  8  0  0  0  0\n" +
		"M  END\n"
	mol, err := MolFromBlock(block, false, false)
	if err != nil {
		Te.Fatal(err)
	}
	b := mol.Bond(0)
	if !b.HasQuery() || b.Query.Kind != BQOr || len(b.Query.Kids) != 2 {
		Te.Fatalf("type 5 should be an or-query: %+v", b.Query)
	}
	if b.Query.Kids[0].Val != int(Single) || b.Query.Kids[1].Val != int(Double) {
		Te.Errorf("type 5 alternatives wrong: %+v", b.Query.Kids)
	}
	if b.Order != Unspecified {
		Te.Errorf("query bond order should stay unspecified, got %v", b.Order)
	}
	if nb := mol.Bond(1); !nb.HasQuery() || nb.Query.Kind != BQNull {
		Te.Errorf("type 8 should be an any-bond query: %+v", nb.Query)
	}
}

//A nonzero topology column turns a plain bond into a query bond that wraps
//the original order.
func TestBondTopologyUpgrade(Te *testing.T) {
	block := "\n\n\n  2  1  0  0  0  0  0  0  0  0999 V2000\n" +
		"    0.0000    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0\n" +
		"    1.0000    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0\n" +
		"  1  2  1  0  0  2  0\n" +
		"M  END\n"
	mol, err := MolFromBlock(block, false, false)
	if err != nil {
		Te.Fatal(err)
	}
	b := mol.Bond(0)
	if !b.HasQuery() || b.Query.Kind != BQAnd || len(b.Query.Kids) != 2 {
		Te.Fatalf("topology should wrap the order query: %+v", b.Query)
	}
	if b.Query.Kids[0].Kind != BQOrder || b.Query.Kids[0].Val != int(Single) {
		Te.Errorf("order part lost: %+v", b.Query.Kids[0])
	}
	ring := b.Query.Kids[1]
	if ring.Kind != BQInRing || !ring.Negate {
		Te.Errorf("not-in-ring part wrong: %+v", ring)
	}
	//the single acyclic bond is not in a ring, so "not in ring" matches
	if !b.Query.Matches(mol, b) {
		Te.Error("acyclic bond should match its own not-in-ring query")
	}
}

func TestIsotopeLine(Te *testing.T) {
	block := "\n\n\n  1  0  0  0  0  0  0  0  0  0999 V2000\n" +
		"    0.0000    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0\n" +
		"M  ISO  1   1  13\n" +
		"M  END\n"
	mol, err := MolFromBlock(block, false, false)
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Atom(0).Mass != 13 {
		Te.Errorf("isotope mass %f, want 13", mol.Atom(0).Mass)
	}
}

func TestAtomAliasAndValue(Te *testing.T) {
	block := "\n\n\n  1  0  0  0  0  0  0  0  0  0999 V2000\n" +
		"    0.0000    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0\n" +
		"A    1\n" +
		"Tol\n" +
		"V    1 interesting\n" +
		"M  END\n"
	mol, err := MolFromBlock(block, false, false)
	if err != nil {
		Te.Fatal(err)
	}
	if alias, _ := mol.Atom(0).Props.String("molFileAlias"); alias != "Tol" {
		Te.Errorf("alias %q, want Tol", alias)
	}
	if val, _ := mol.Atom(0).Props.String("molFileValue"); val != "interesting" {
		Te.Errorf("value %q", val)
	}
}

func TestNewAtomList(Te *testing.T) {
	block := "\n\n\n  1  0  0  0  0  0  0  0  0  0999 V2000\n" +
		"    0.0000    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0\n" +
		"M  ALS   1  2 F C   N   \n" +
		"M  END\n"
	mol, err := MolFromBlock(block, false, false)
	if err != nil {
		Te.Fatal(err)
	}
	at := mol.Atom(0)
	if !at.HasQuery() || at.Query.Kind != AQOr || at.Query.Negate || len(at.Query.Kids) != 2 {
		Te.Fatalf("ALS query wrong: %+v", at.Query)
	}
	if at.Query.Kids[0].Val != 6 || at.Query.Kids[1].Val != 7 {
		Te.Errorf("ALS elements wrong: %+v", at.Query.Kids)
	}
	if at.AtomicNum != 6 {
		Te.Errorf("ALS should set the atomic number to the first element, got %d", at.AtomicNum)
	}
}

func TestLegacyAtomList(Te *testing.T) {
	block := "\n\n\n  1  0  1  0  0  0  0  0  0  0999 V2000\n" +
		"    0.0000    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0\n" +
		"  1 F    2   6   7\n" +
		"M  END\n"
	mol, err := MolFromBlock(block, false, false)
	if err != nil {
		Te.Fatal(err)
	}
	at := mol.Atom(0)
	if !at.HasQuery() || at.Query.Kind != AQOr || len(at.Query.Kids) != 2 {
		Te.Fatalf("legacy atom list query wrong: %+v", at.Query)
	}
}

func TestRadicalLine(Te *testing.T) {
	block := "\n\n\n  1  0  0  0  0  0  0  0  0  0999 V2000\n" +
		"    0.0000    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0\n" +
		"M  RAD  1   1   2\n" +
		"M  END\n"
	mol, err := MolFromBlock(block, false, false)
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Atom(0).RadicalElectrons != 1 {
		Te.Errorf("RAD 2 should mean one radical electron, got %d", mol.Atom(0).RadicalElectrons)
	}
}

func TestEOFBeforeName(Te *testing.T) {
	mol, err := MolFromBlock("", false, false)
	if mol != nil || err != nil {
		Te.Errorf("empty input should give no molecule and no error, got %v %v", mol, err)
	}
}

func TestEOFMidBlock(Te *testing.T) {
	block := "\n\n\n  2  0  0  0  0  0  0  0  0  0999 V2000\n" +
		"    0.0000    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0\n"
	if _, err := MolFromBlock(block, false, false); err == nil {
		Te.Error("EOF inside the atom block should fail")
	}
}

func TestMissingMEnd(Te *testing.T) {
	block := "\n\n\n  1  0  0  0  0  0  0  0  0  0999 V2000\n" +
		"    0.0000    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0\n"
	if _, err := MolFromBlock(block, false, false); err == nil {
		Te.Error("a block that never reaches M  END should fail")
	}
}

func TestBadVersion(Te *testing.T) {
	block := "\n\n\n  1  0  0  0  0  0  0  0  0  0999 V4000\n"
	if _, err := MolFromBlock(block, false, false); err == nil {
		Te.Error("unsupported CTAB versions should fail")
	}
	_, err := MolFromBlock(block, false, false)
	if _, ok := err.(*ParseError); !ok {
		Te.Errorf("error should be a *ParseError, got %T", err)
	}
}

//Garbage in the optional tail of the counts line is ignored: some SD
//producers write fewer (or junk) fields there.
func TestCountsLineSilentTail(Te *testing.T) {
	block := "\n\n\n  1  0  0  0  x\n" +
		"    0.0000    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0\n" +
		"M  END\n"
	mol, err := MolFromBlock(block, false, false)
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 1 {
		Te.Errorf("got %d atoms", mol.Len())
	}
}

func TestV3000NonzeroCounts(Te *testing.T) {
	block := "\n\n\n  1  0  0  0  0  0  0  0  0  0999 V3000\n"
	if _, err := MolFromBlock(block, false, false); err == nil {
		Te.Error("V3000 blocks must show 0 0 on the classic counts line")
	}
}

func TestLineCounter(Te *testing.T) {
	line := 0
	_, err := MolFromStream(bufio.NewReader(strings.NewReader(methaneBlock)), &line, false, false)
	if err != nil {
		Te.Fatal(err)
	}
	if line != 6 {
		Te.Errorf("consumed %d lines, want 6", line)
	}
}

func molEqual(a, b *Mol) bool {
	if a.Len() != b.Len() || a.NumBonds() != b.NumBonds() {
		return false
	}
	for i := range a.Atoms {
		x, y := a.Atoms[i], b.Atoms[i]
		if x.AtomicNum != y.AtomicNum || x.FormalCharge != y.FormalCharge ||
			x.Mass != y.Mass || x.RadicalElectrons != y.RadicalElectrons ||
			x.NoImplicitH != y.NoImplicitH || x.IsAromatic != y.IsAromatic {
			return false
		}
	}
	for i := range a.Bonds {
		x, y := a.Bonds[i], b.Bonds[i]
		if x.Begin != y.Begin || x.End != y.End || x.Order != y.Order ||
			x.Dir != y.Dir || x.Stereo != y.Stereo {
			return false
		}
	}
	ca, cb := a.Conformer(), b.Conformer()
	for i := 0; i < a.Len(); i++ {
		x1, y1, z1 := ca.AtomPos(i)
		x2, y2, z2 := cb.AtomPos(i)
		if x1 != x2 || y1 != y2 || z1 != z2 {
			return false
		}
	}
	return true
}

//Parsing the same bytes twice from independent streams must give
//observationally equal molecules.
func TestRoundTripDeterminism(Te *testing.T) {
	for _, block := range []string{methaneBlock, benzeneBlock(), nitroBlock(), v3000Water} {
		m1, err := MolFromBlock(block, true, false)
		if err != nil {
			Te.Fatal(err)
		}
		m2, err := MolFromBlock(block, true, false)
		if err != nil {
			Te.Fatal(err)
		}
		if !molEqual(m1, m2) {
			Te.Errorf("parse of %q not deterministic", m1.Name())
		}
	}
}
