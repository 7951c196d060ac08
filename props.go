/*
 * props.go, part of rdkit.
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

//Props is a bag of named properties attached to atoms, bonds and molecules.
//Molfile records that have no structural meaning (atom map numbers, reaction
//flags, aliases, SD data fields) end up here.
type Props map[string]interface{}

//Set stores v under key.
func (P Props) Set(key string, v interface{}) {
	P[key] = v
}

//Has tells whether key is present in the bag.
func (P Props) Has(key string) bool {
	_, ok := P[key]
	return ok
}

//Get returns the raw value stored under key, and whether it was present.
func (P Props) Get(key string) (interface{}, bool) {
	v, ok := P[key]
	return v, ok
}

//Int returns the value stored under key if it is an int.
func (P Props) Int(key string) (int, bool) {
	v, ok := P[key].(int)
	return v, ok
}

//String returns the value stored under key if it is a string.
func (P Props) String(key string) (string, bool) {
	v, ok := P[key].(string)
	return v, ok
}

//Clear removes key from the bag.
func (P Props) Clear(key string) {
	delete(P, key)
}
