/*
 * doc.go, part of rdkit.
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

/*
Package chem reads MDL molfiles and SD files, both the classic fixed-column
V2000 connection tables and the token-oriented V3000 ones, into molecular
graphs: atoms, bonds, one conformer, query predicates and the property
records accumulated by thirty years of the format.

The usual entry points are MolFileRead and SDFFileRead for files (compressed
or not), MolFromBlock for molblocks held in strings, and MolFromStream when
the caller manages the stream itself:

	mol, err := chem.MolFileRead("caffeine.mol", true, false)
	if err != nil {
		...
	}
	fmt.Println(mol.Name(), mol.Formula(), mol.Len())

Parsing is a pure, single-threaded function of the input stream; molecules
from different parses share nothing, so concurrent parses need no
coordination.
*/
package chem
