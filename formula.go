/*
 * formula.go, part of rdkit.
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
	"sort"
	"strings"
)

//Formula returns the Hill-order molecular formula of the molecule, counting
//the implicit hydrogens filled in by sanitization. Query atoms count under
//their scalar element.
func (M *Mol) Formula() string {
	counts := make(map[string]int)
	hs := 0
	for _, at := range M.Atoms {
		counts[at.Symbol()]++
		hs += at.ImplicitHCount
	}
	if hs > 0 {
		counts["H"] += hs
	}
	elems := make([]string, 0, len(counts))
	for e := range counts {
		if e != "C" && e != "H" {
			elems = append(elems, e)
		}
	}
	sort.Strings(elems)
	//Hill order: with carbon, C first, H second, the rest alphabetical;
	//without carbon, every element (H included) alphabetical
	if counts["C"] > 0 {
		elems = append([]string{"C", "H"}, elems...)
	} else if counts["H"] > 0 {
		elems = append(elems, "H")
		sort.Strings(elems)
	}
	var b strings.Builder
	for _, e := range elems {
		n := counts[e]
		if n == 0 {
			continue
		}
		if n == 1 {
			b.WriteString(e)
		} else {
			fmt.Fprintf(&b, "%s%d", e, n)
		}
	}
	return b.String()
}
