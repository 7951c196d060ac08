/*
 * atomicdata.go, part of rdkit.
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

//The periodic table data. Indexed by atomic number, position 0 is the
//"null" element used for wildcards, R-groups and dummies.
var elementSymbols = []string{"*",
	"H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca",
	"Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr", "Rb", "Sr", "Y", "Zr",
	"Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn",
	"Sb", "Te", "I", "Xe", "Cs", "Ba", "La", "Ce", "Pr", "Nd",
	"Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb",
	"Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn", "Fr", "Ra", "Ac", "Th",
	"Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm",
	"Md", "No", "Lr",
}

//Standard atomic weights, indexed by atomic number.
var atomicWeights = []float64{0,
	1.008, 4.003, 6.941, 9.012, 10.811, 12.011, 14.007, 15.999, 18.998, 20.180,
	22.990, 24.305, 26.982, 28.086, 30.974, 32.066, 35.453, 39.948, 39.098, 40.078,
	44.956, 47.867, 50.942, 51.996, 54.938, 55.845, 58.933, 58.693, 63.546, 65.39,
	69.723, 72.61, 74.922, 78.96, 79.904, 83.80, 85.468, 87.62, 88.906, 91.224,
	92.906, 95.94, 98.0, 101.07, 102.906, 106.42, 107.868, 112.411, 114.818, 118.710,
	121.760, 127.60, 126.904, 131.29, 132.905, 137.327, 138.906, 140.116, 140.908, 144.24,
	145.0, 150.36, 151.964, 157.25, 158.925, 162.50, 164.930, 167.26, 168.934, 173.04,
	174.967, 178.49, 180.948, 183.84, 186.207, 190.23, 192.217, 195.078, 196.967, 200.59,
	204.383, 207.2, 208.980, 209.0, 210.0, 222.0, 223.0, 226.0, 227.0, 232.038,
	231.036, 238.029, 237.0, 244.0, 243.0, 247.0, 247.0, 251.0, 252.0, 257.0,
	258.0, 259.0, 262.0,
}

var symbolNumbers map[string]int

func init() {
	symbolNumbers = make(map[string]int, len(elementSymbols))
	for i, v := range elementSymbols {
		symbolNumbers[v] = i
	}
}

//Default valences used by the implicit-hydrogen model. Elements not in the
//map don't get implicit hydrogens.
var defaultValences = map[int]int{
	1: 1, 3: 1, 5: 3, 6: 4, 7: 3, 8: 2, 9: 1,
	11: 1, 13: 3, 14: 4, 15: 3, 16: 2, 17: 1,
	19: 1, 35: 1, 53: 1,
}

//AtomicNumber returns the atomic number for the element with the given
//symbol, or an error if the symbol is not in the periodic table.
func AtomicNumber(symbol string) (int, error) {
	n, ok := symbolNumbers[symbol]
	if !ok {
		return 0, &CError{msg: fmt.Sprintf("No element with symbol %q in the periodic table", symbol), deco: []string{"AtomicNumber"}}
	}
	return n, nil
}

//SymbolFromNumber returns the element symbol for the given atomic number.
//Atomic number 0 yields the wildcard symbol "*".
func SymbolFromNumber(z int) string {
	if z < 0 || z >= len(elementSymbols) {
		return ""
	}
	return elementSymbols[z]
}

//AtomicWeight returns the standard atomic weight for the element with the
//given atomic number, or 0 if the number is out of range.
func AtomicWeight(z int) float64 {
	if z < 0 || z >= len(atomicWeights) {
		return 0
	}
	return atomicWeights[z]
}

//defaultValence returns the default valence used to fill implicit
//hydrogens, or -1 if the element has no default.
func defaultValence(z int) int {
	v, ok := defaultValences[z]
	if !ok {
		return -1
	}
	return v
}
