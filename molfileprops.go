/*
 * molfileprops.go, part of rdkit.
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

//The V2000 property block: everything between the bond block and "M  END".
//Most records refine atoms that were already read, several of them by
//promoting a plain atom into a query atom in place.

package chem

import (
	"bufio"
	"math"
	"strings"
)

//molAtomFromRecord fetches the 1-based atom index aid of a property record,
//converting the out-of-range case into a ParseError.
func molAtomFromRecord(mol *Mol, aid, line int) (*Atom, error) {
	if aid < 1 || aid > mol.Len() {
		return nil, parseErrorf(line, "Atom index %d out of range (%d atoms)", aid, mol.Len())
	}
	return mol.Atom(aid - 1), nil
}

//replaceAtomWithQueryAtom promotes the atom at its slot to a query atom,
//seeding the query with the scalar state the atom already carries: its
//atomic number, a formal-charge term when the charge is nonzero and a mass
//term when an isotope query was requested on the atom line. The promotion
//preserves the atom index; callers must use the returned atom, as the old
//one is no longer in the molecule.
func replaceAtomWithQueryAtom(mol *Mol, at *Atom) *Atom {
	if at.HasQuery() {
		return at
	}
	qa := at.Copy()
	qa.Query = atomNumEqualsQuery(at.AtomicNum)
	if at.FormalCharge != 0 {
		qa.ExpandQuery(atomFormalChargeQuery(at.FormalCharge), AQAnd)
	}
	if at.Props.Has("_hasMassQuery") {
		qa.ExpandQuery(atomMassQuery(int(math.Round(at.Mass))), AQAnd)
	}
	mol.ReplaceAtom(at.Index, qa)
	return qa
}

//parseOldAtomList decodes the legacy atom-list line that pre-"M  ALS" files
//put right after the bond block.
func parseOldAtomList(mol *Mol, text string, line int) error {
	idx, err := toInt(substr(text, 0, 3), false)
	if err != nil {
		return parseErrorf(line, "%v", err)
	}
	at, err := molAtomFromRecord(mol, idx, line)
	if err != nil {
		return err
	}
	q := &AtomQuery{Kind: AQOr}
	if len(text) < 5 {
		return parseErrorf(line, "Atom list line too short: '%s'", text)
	}
	//the negation modifier lives in column 4 here, not 14 as in "M  ALS"
	switch text[4] {
	case 'T':
		q.Negate = true
	case 'F':
	default:
		return parseErrorf(line, "Unrecognized atom-list query modifier: %c", text[4])
	}
	nQueries, err := toInt(substr(text, 9, 1), false)
	if err != nil {
		return parseErrorf(line, "%v", err)
	}
	if nQueries < 0 || nQueries > 5 {
		return parseErrorf(line, "Bad atom-list length: %d", nQueries)
	}
	qa := at.Copy()
	for i := 0; i < nQueries; i++ {
		pos := 11 + i*4
		atNum, err := toInt(substr(text, pos, 3), false)
		if err != nil {
			return parseErrorf(line, "%v", err)
		}
		if atNum < 0 || atNum > 200 {
			return parseErrorf(line, "Atomic number %d out of range in atom list", atNum)
		}
		q.Kids = append(q.Kids, atomNumEqualsQuery(atNum))
		if i == 0 {
			qa.AtomicNum = atNum
		}
	}
	qa.Query = q
	mol.ReplaceAtom(at.Index, qa)
	return nil
}

//parseChargeLine decodes "M  CHG". The first charge or radical line of a
//block resets every atom's formal charge to zero: atoms it doesn't mention
//are explicitly neutral from then on.
func parseChargeLine(mol *Mol, text string, firstCall bool, line int) error {
	if firstCall {
		for _, at := range mol.Atoms {
			at.FormalCharge = 0
		}
	}
	nent, err := toInt(substr(text, 6, 3), false)
	if err != nil {
		return parseErrorf(line, "%v", err)
	}
	spos := 9
	for ie := 0; ie < nent; ie++ {
		aid, err := toInt(substr(text, spos, 4), false)
		if err != nil {
			return parseErrorf(line, "%v", err)
		}
		spos += 4
		chg, err := toInt(substr(text, spos, 4), false)
		if err != nil {
			return parseErrorf(line, "%v", err)
		}
		spos += 4
		at, err := molAtomFromRecord(mol, aid, line)
		if err != nil {
			return err
		}
		at.FormalCharge = chg
	}
	return nil
}

//parseRadicalLine decodes "M  RAD", sharing the reset-on-first-line rule
//with "M  CHG".
func parseRadicalLine(mol *Mol, text string, firstCall bool, line int) error {
	if firstCall {
		for _, at := range mol.Atoms {
			at.FormalCharge = 0
		}
	}
	nent, err := toInt(substr(text, 6, 3), false)
	if err != nil {
		return parseErrorf(line, "%v", err)
	}
	spos := 9
	for ie := 0; ie < nent; ie++ {
		aid, err := toInt(substr(text, spos, 4), false)
		if err != nil {
			return parseErrorf(line, "%v", err)
		}
		spos += 4
		rad, err := toInt(substr(text, spos, 4), false)
		if err != nil {
			return parseErrorf(line, "%v", err)
		}
		spos += 4
		at, err := molAtomFromRecord(mol, aid, line)
		if err != nil {
			return err
		}
		switch rad {
		case 1:
			at.RadicalElectrons = 2
		case 2:
			at.RadicalElectrons = 1
		case 3:
			at.RadicalElectrons = 2
		default:
			return parseErrorf(line, "Unrecognized radical value %d for atom %d", rad, aid-1)
		}
	}
	return nil
}

//parseIsotopeLine decodes "M  ISO". A blank mass field resets the atom to
//the standard atomic weight of its element.
func parseIsotopeLine(mol *Mol, text string, line int) error {
	nent, err := toInt(substr(text, 6, 3), false)
	if err != nil {
		return parseErrorf(line, "%v", err)
	}
	spos := 9
	for ie := 0; ie < nent; ie++ {
		aid, err := toInt(substr(text, spos, 4), false)
		if err != nil {
			return parseErrorf(line, "%v", err)
		}
		spos += 4
		at, err := molAtomFromRecord(mol, aid, line)
		if err != nil {
			return err
		}
		if len(text) >= spos+4 && text[spos:spos+4] != "    " {
			mass, err := toInt(text[spos:spos+4], false)
			if err != nil {
				return parseErrorf(line, "%v", err)
			}
			at.Mass = float64(mass)
		} else {
			at.Mass = AtomicWeight(at.AtomicNum)
		}
		if len(text) >= spos+4 {
			spos += 4
		}
	}
	return nil
}

//parseSubstitutionCountLine decodes "M  SUB", the substitution-count
//(explicit degree) query record.
func parseSubstitutionCountLine(mol *Mol, text string, line int) error {
	nent, err := toInt(substr(text, 6, 3), false)
	if err != nil {
		return parseErrorf(line, "%v", err)
	}
	spos := 9
	for ie := 0; ie < nent; ie++ {
		aid, err := toInt(substr(text, spos, 4), false)
		if err != nil {
			return parseErrorf(line, "%v", err)
		}
		spos += 4
		at, err := molAtomFromRecord(mol, aid, line)
		if err != nil {
			return err
		}
		if len(text) < spos+4 {
			continue
		}
		count, err := toInt(text[spos:spos+4], false)
		if err != nil {
			return parseErrorf(line, "%v", err)
		}
		spos += 4
		if count == 0 {
			continue
		}
		q := atomExplicitDegreeQuery(0)
		switch {
		case count == -1:
			q.Val = 0
		case count == -2:
			q.Val = at.Degree()
		case count >= 1 && count <= 5:
			q.Val = count
		case count == 6:
			logger.Warn().Int("line", line).Msg("atom degree query with value 6 found. This will not match degree >6. The MDL spec says it should.")
			q.Val = 6
		default:
			return parseErrorf(line, "Value %d is not supported as a degree query.", count)
		}
		at = replaceAtomWithQueryAtom(mol, at)
		at.ExpandQuery(q, AQAnd)
	}
	return nil
}

//parseUnsaturationLine decodes "M  UNS".
func parseUnsaturationLine(mol *Mol, text string, line int) error {
	nent, err := toInt(substr(text, 6, 3), false)
	if err != nil {
		return parseErrorf(line, "%v", err)
	}
	spos := 9
	for ie := 0; ie < nent; ie++ {
		aid, err := toInt(substr(text, spos, 4), false)
		if err != nil {
			return parseErrorf(line, "%v", err)
		}
		spos += 4
		at, err := molAtomFromRecord(mol, aid, line)
		if err != nil {
			return err
		}
		if len(text) < spos+4 {
			continue
		}
		count, err := toInt(text[spos:spos+4], false)
		if err != nil {
			return parseErrorf(line, "%v", err)
		}
		spos += 4
		switch count {
		case 0:
		case 1:
			at = replaceAtomWithQueryAtom(mol, at)
			at.ExpandQuery(atomUnsaturatedQuery(), AQAnd)
		default:
			return parseErrorf(line, "Value %d is not supported as an unsaturation query (only 0 and 1 are allowed).", count)
		}
	}
	return nil
}

//parseRingBondCountLine decodes "M  RBC". A count of -2 means "as drawn":
//the leaf gets the magic sentinel and the molecule is flagged for the
//query-completion pass, which fills in the ring bond count once the whole
//graph is known.
func parseRingBondCountLine(mol *Mol, text string, line int) error {
	nent, err := toInt(substr(text, 6, 3), false)
	if err != nil {
		return parseErrorf(line, "%v", err)
	}
	spos := 9
	for ie := 0; ie < nent; ie++ {
		aid, err := toInt(substr(text, spos, 4), false)
		if err != nil {
			return parseErrorf(line, "%v", err)
		}
		spos += 4
		at, err := molAtomFromRecord(mol, aid, line)
		if err != nil {
			return err
		}
		if len(text) < spos+4 {
			continue
		}
		count, err := toInt(text[spos:spos+4], false)
		if err != nil {
			return parseErrorf(line, "%v", err)
		}
		spos += 4
		if count == 0 {
			continue
		}
		q := atomRingBondCountQuery(0)
		switch {
		case count == -1:
			q.Val = 0
		case count == -2:
			q.Val = magicVal
			mol.Props.Set("_NeedsQueryScan", 1)
		case count >= 1 && count <= 3:
			q.Val = count
		case count == 4:
			q = &AtomQuery{Kind: AQRingBondCountLE, Val: 4}
		default:
			return parseErrorf(line, "Value %d is not supported as a ring-bond count query.", count)
		}
		at = replaceAtomWithQueryAtom(mol, at)
		at.ExpandQuery(q, AQAnd)
	}
	return nil
}

//parseNewAtomList decodes "M  ALS", the modern atom-list record. The atom
//is replaced by a query atom whose query is the OR of the listed elements,
//negated when the modifier is T.
func parseNewAtomList(mol *Mol, text string, line int) error {
	if len(text) < 15 {
		return parseErrorf(line, "Atom list line too short: '%s'", text)
	}
	idx, err := toInt(substr(text, 7, 3), false)
	if err != nil {
		return parseErrorf(line, "%v", err)
	}
	at, err := molAtomFromRecord(mol, idx, line)
	if err != nil {
		return err
	}
	nQueries, err := toInt(substr(text, 10, 3), false)
	if err != nil {
		return parseErrorf(line, "%v", err)
	}
	if nQueries <= 0 {
		return parseErrorf(line, "no queries provided")
	}
	qa := at.Copy()
	q := &AtomQuery{Kind: AQOr}
	for i := 0; i < nQueries; i++ {
		pos := 16 + i*4
		if len(text) < pos+4 {
			return parseErrorf(line, "Atom list line too short: '%s'", text)
		}
		atSymb := strings.TrimSpace(text[pos : pos+4])
		atNum, err := AtomicNumber(atSymb)
		if err != nil {
			return parseErrorf(line, "Unrecognized atom symbol in atom list: '%s'", atSymb)
		}
		q.Kids = append(q.Kids, atomNumEqualsQuery(atNum))
		if i == 0 {
			qa.AtomicNum = atNum
		}
	}
	switch text[14] {
	case 'T':
		q.Negate = true
	case 'F':
	default:
		return parseErrorf(line, "Unrecognized atom-list query modifier: %c", text[14])
	}
	qa.Query = q
	mol.ReplaceAtom(at.Index, qa)
	return nil
}

//parseRGroupLabels decodes "M  RGP". Labelled atoms become query atoms
//matching anything, with the label kept as a property and, for in-range
//labels, mirrored into the mass the way the old writers did.
func parseRGroupLabels(mol *Mol, text string, line int) error {
	nLabels, err := toInt(substr(text, 6, 3), false)
	if err != nil {
		return parseErrorf(line, "%v", err)
	}
	for i := 0; i < nLabels; i++ {
		pos := 10 + i*8
		atIdx, err := toInt(substr(text, pos, 3), false)
		if err != nil {
			return parseErrorf(line, "%v", err)
		}
		rLabel, err := toInt(substr(text, pos+4, 3), false)
		if err != nil {
			return parseErrorf(line, "%v", err)
		}
		at, err := molAtomFromRecord(mol, atIdx, line)
		if err != nil {
			return parseErrorf(line, "Attempt to set R group label on nonexistent atom %d", atIdx-1)
		}
		qa := at.Copy()
		qa.Props.Set("_MolFileRLabel", rLabel)
		//the CTFile spec (June 2005 version) technically only allows R
		//labels up to 32; with three digits on the wire any label from 1 to
		//998 is mirrored into the mass
		if rLabel > 0 && rLabel < 999 {
			qa.Mass = float64(rLabel)
		}
		qa.Query = atomNullQuery()
		mol.ReplaceAtom(at.Index, qa)
	}
	return nil
}

//parseAtomAlias decodes the two-line "A  xxx" record; the continuation line
//holds the alias text.
func parseAtomAlias(mol *Mol, text, nextLine string, line int) error {
	idx, err := toInt(substr(text, 3, 3), false)
	if err != nil {
		return parseErrorf(line, "%v", err)
	}
	at, err := molAtomFromRecord(mol, idx, line)
	if err != nil {
		return err
	}
	at.Props.Set("molFileAlias", nextLine)
	return nil
}

//parseAtomValue decodes the "V  xxx" record.
func parseAtomValue(mol *Mol, text string, line int) error {
	idx, err := toInt(substr(text, 3, 3), false)
	if err != nil {
		return parseErrorf(line, "%v", err)
	}
	at, err := molAtomFromRecord(mol, idx, line)
	if err != nil {
		return err
	}
	at.Props.Set("molFileValue", substr(text, 7, len(text)))
	return nil
}

//parseMolBlockProperties interprets the V2000 property block. It returns
//whether the block reached a proper terminator: "M  END", or the "$$$$" SD
//record separator, both of which end the molecule successfully. Plain EOF
//does not.
func parseMolBlockProperties(in *bufio.Reader, line *int, mol *Mol) (bool, error) {
	text, err := readLine(in, line)
	if err != nil {
		return false, nil
	}
	//older mol files can have an atom list block here
	if len(text) > 0 && text[0] != 'M' && text[0] != 'A' && text[0] != 'V' && text[0] != 'G' && text[0] != '$' {
		if err := parseOldAtomList(mol, text, *line); err != nil {
			return false, err
		}
	}
	firstChargeLine := true
	for {
		if strings.HasPrefix(text, "M  END") {
			return true, nil
		}
		if strings.HasPrefix(text, "$$$$") {
			//SD record boundary: the molecule ends here, without error
			return true, nil
		}
		lineBeg := substr(text, 0, 6)
		switch {
		case len(text) > 0 && text[0] == 'A':
			nextLine, err := readLine(in, line)
			if err != nil {
				return false, nil
			}
			if err := parseAtomAlias(mol, text, nextLine, *line); err != nil {
				return false, err
			}
		case len(text) > 0 && text[0] == 'G':
			logger.Warn().Int("line", *line).Msg("deprecated group abbreviation ignored")
		case len(text) > 0 && text[0] == 'V':
			if err := parseAtomValue(mol, text, *line); err != nil {
				return false, err
			}
		case lineBeg == "S  SKP":
			//nothing: obsolete skip record
		case lineBeg == "M  ALS":
			err = parseNewAtomList(mol, text, *line)
		case lineBeg == "M  ISO":
			err = parseIsotopeLine(mol, text, *line)
		case lineBeg == "M  RGP":
			err = parseRGroupLabels(mol, text, *line)
		case lineBeg == "M  RBC":
			err = parseRingBondCountLine(mol, text, *line)
		case lineBeg == "M  SUB":
			err = parseSubstitutionCountLine(mol, text, *line)
		case lineBeg == "M  UNS":
			err = parseUnsaturationLine(mol, text, *line)
		case lineBeg == "M  CHG":
			err = parseChargeLine(mol, text, firstChargeLine, *line)
			firstChargeLine = false
		case lineBeg == "M  RAD":
			err = parseRadicalLine(mol, text, firstChargeLine, *line)
			firstChargeLine = false
		default:
			//unrecognized records are skipped silently, as the
			//format keeps growing extension lines
		}
		if err != nil {
			return false, err
		}
		text, err = readLine(in, line)
		if err != nil {
			return false, nil
		}
	}
}
