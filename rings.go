/*
 * rings.go, part of rdkit.
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
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

//RingInfo caches which bonds of a molecule are ring bonds and how many ring
//bonds each atom carries. A bond is a ring bond iff it is not a bridge of
//the molecular graph: removing it must leave its end atoms connected.
type RingInfo struct {
	bondInRing        []bool
	atomRingBondCount []int
}

//RingInfo computes (or returns the cached) ring membership information of
//the molecule. The cache is dropped whenever atoms or bonds are added.
func (M *Mol) RingInfo() *RingInfo {
	if M.rings != nil {
		return M.rings
	}
	ri := &RingInfo{
		bondInRing:        make([]bool, len(M.Bonds)),
		atomRingBondCount: make([]int, len(M.Atoms)),
	}
	g := simple.NewUndirectedGraph()
	for i := range M.Atoms {
		g.AddNode(simple.Node(i))
	}
	for _, b := range M.Bonds {
		g.SetEdge(simple.Edge{F: simple.Node(b.Begin), T: simple.Node(b.End)})
	}
	for i, b := range M.Bonds {
		g.RemoveEdge(int64(b.Begin), int64(b.End))
		if topo.PathExistsIn(g, simple.Node(b.Begin), simple.Node(b.End)) {
			ri.bondInRing[i] = true
			ri.atomRingBondCount[b.Begin]++
			ri.atomRingBondCount[b.End]++
		}
		g.SetEdge(simple.Edge{F: simple.Node(b.Begin), T: simple.Node(b.End)})
	}
	M.rings = ri
	return ri
}

//BondInRing tells whether the bond with the given index takes part in a
//ring.
func (M *Mol) BondInRing(bondIdx int) bool {
	return M.RingInfo().bondInRing[bondIdx]
}

//RingBondCount returns the number of ring bonds on the atom with the given
//index.
func (M *Mol) RingBondCount(atomIdx int) int {
	return M.RingInfo().atomRingBondCount[atomIdx]
}
