/*
 * molfile.go, part of rdkit.
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

//Every effort has been made to adhere to MDL's standard for mol files.

package chem

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

//badField signals a fixed-width numeric field that could not be converted.
//Callers wrap it into a *ParseError carrying the line number.
type badField struct {
	field    string
	expected string
}

func (err *badField) Error() string {
	return fmt.Sprintf("Cannot convert %q to %s", err.field, err.expected)
}

//toInt parses a fixed-width decimal integer field. A field that is entirely
//whitespace yields 0 when acceptSpaces is true and fails otherwise; other
//fields are parsed after trimming.
func toInt(field string, acceptSpaces bool) (int, error) {
	t := strings.TrimSpace(field)
	if t == "" {
		if acceptSpaces {
			return 0, nil
		}
		return 0, &badField{field: field, expected: "int"}
	}
	n, err := strconv.Atoi(t)
	if err != nil {
		return 0, &badField{field: field, expected: "int"}
	}
	return n, nil
}

//toFloat is the floating-point analogue of toInt.
func toFloat(field string, acceptSpaces bool) (float64, error) {
	t := strings.TrimSpace(field)
	if t == "" {
		if acceptSpaces {
			return 0, nil
		}
		return 0, &badField{field: field, expected: "float"}
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, &badField{field: field, expected: "float"}
	}
	return f, nil
}

//substr returns the slice of s starting at start and spanning at most n
//bytes, clamped to the string like C++ substr so short optional tails don't
//panic.
func substr(s string, start, n int) string {
	if start >= len(s) {
		return ""
	}
	end := start + n
	if end > len(s) {
		end = len(s)
	}
	return s[start:end]
}

//readLine returns the next physical line of the stream without its line
//terminator, bumping *line. At end of input it returns io.EOF; a final line
//without a terminator is still returned (with a nil error).
func readLine(in *bufio.Reader, line *int) (string, error) {
	s, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || s == "") {
		return "", err
	}
	*line++
	s = strings.TrimRight(s, "\r\n")
	return s, nil
}

//countsLine is the decoded V2000/V3000 counts line of a molfile.
type countsLine struct {
	nAtoms, nBonds int
	nLists         int
	chiralFlag     int
	nsText         int
	nRxnComponents int
	nReactants     int
	nProducts      int
	nIntermediates int
	version        int //2000 or 3000
}

//parseCountsLine decodes the fourth line of a molfile. The optional fields
//past nBonds are best-effort: some SD producers omit them, so conversion
//failures there are deliberately swallowed.
func parseCountsLine(text string, line int) (*countsLine, error) {
	if len(text) < 6 {
		return nil, parseErrorf(line, "Counts line too short: '%s'", text)
	}
	c := &countsLine{version: 2000}
	var err error
	if c.nAtoms, err = toInt(text[0:3], false); err != nil {
		return nil, parseErrorf(line, "%v", err)
	}
	if c.nBonds, err = toInt(text[3:6], false); err != nil {
		return nil, parseErrorf(line, "%v", err)
	}
	//optional tail; first conversion failure stops the best-effort reads
	optional := []*int{&c.nLists, &c.chiralFlag, &c.nsText, &c.nRxnComponents, &c.nReactants, &c.nProducts, &c.nIntermediates}
	spos := 6
	for _, dst := range optional {
		if len(text) < spos+3 {
			break
		}
		v, err := toInt(text[spos:spos+3], false)
		if err != nil {
			break
		}
		*dst = v
		spos += 3
	}
	if len(text) > 35 {
		if len(text) < 39 || text[34] != 'V' {
			return nil, parseErrorf(line, "CTAB version string invalid")
		}
		switch text[34:39] {
		case "V2000":
			c.version = 2000
		case "V3000":
			c.version = 3000
		default:
			return nil, parseErrorf(line, "Unsupported CTAB version: '%s'", text[34:39])
		}
	}
	return c, nil
}

//parseAtomSymbol builds a fresh atom from a CTAB element symbol, handling
//the query shorthands A, Q and *, the R-group family, the D/T isotope
//shorthands and plain elements. v3000 restricts the R-group family to "R#",
//as the token-based blocks spell the others differently. massDiff gates the
//legacy R1..R9 mass assignment and is always 0 for V3000.
func parseAtomSymbol(symb string, v3000 bool, massDiff, line int) (*Atom, error) {
	rFamily := symb == "R#"
	if !v3000 {
		rFamily = rFamily || symb == "L" || symb == "LP" || symb == "R" ||
			(len(symb) == 2 && symb[0] == 'R' && symb[1] >= '0' && symb[1] <= '9')
	}
	switch {
	case symb == "A" || symb == "Q" || symb == "*":
		at := newEmptyAtom()
		switch symb {
		case "*":
			//according to the MDL spec, these match anything
			at.Query = atomNullQuery()
		case "Q":
			at.Query = &AtomQuery{Kind: AQOr, Negate: true,
				Kids: []*AtomQuery{atomNumEqualsQuery(6), atomNumEqualsQuery(1)}}
		case "A":
			q := atomNumEqualsQuery(1)
			q.Negate = true
			at.Query = q
		}
		//queries have no implicit Hs
		at.NoImplicitH = true
		return at, nil
	case rFamily:
		at := newEmptyAtom()
		if massDiff == 0 && symb[0] == 'R' && len(symb) == 2 && symb[1] >= '1' && symb[1] <= '9' {
			at.Mass = float64(symb[1] - '0')
		}
		return at, nil
	case symb == "D": //mol blocks support "D" and "T" as shorthand
		at := newEmptyAtom()
		at.AtomicNum = 1
		at.Mass = 2.014
		return at, nil
	case symb == "T":
		at := newEmptyAtom()
		at.AtomicNum = 1
		at.Mass = 3.016
		return at, nil
	default:
		z, err := AtomicNumber(symb)
		if err != nil {
			return nil, parseErrorf(line, "Unrecognized atom symbol: '%s'", symb)
		}
		at := newEmptyAtom()
		at.AtomicNum = z
		at.Mass = AtomicWeight(z)
		return at, nil
	}
}

//optional fixed-width atom fields past the mandatory 34 columns, stored as
//named properties when present and different from the all-zero placeholder.
var v2000AtomTail = []struct {
	start int
	prop  string
}{
	{39, "molParity"},
	{45, "molStereoCare"},
	{48, "molTotValence"},
	{60, "molAtomMapNumber"},
	{63, "molInversionFlag"},
	{66, "molExactChangeFlag"},
}

//parseAtomLine decodes one fixed-column V2000 atom line, returning the new
//atom and its 3D position.
func parseAtomLine(text string, line int) (*Atom, [3]float64, error) {
	var pos [3]float64
	if len(text) < 34 {
		return nil, pos, parseErrorf(line, "Atom line too short: '%s'", text)
	}
	var err error
	for i := 0; i < 3; i++ {
		if pos[i], err = toFloat(text[i*10:i*10+10], true); err != nil {
			return nil, pos, parseErrorf(line, "Cannot process coordinates.")
		}
	}
	symb := substr(text, 31, 3)
	if i := strings.IndexByte(symb, ' '); i >= 0 {
		symb = symb[:i]
	}
	massDiff := 0
	if len(text) >= 36 && text[34:36] != " 0" {
		if massDiff, err = toInt(text[34:36], true); err != nil {
			return nil, pos, parseErrorf(line, "%v", err)
		}
	}
	chg := 0
	if len(text) >= 39 && text[36:39] != "  0" {
		if chg, err = toInt(text[36:39], true); err != nil {
			return nil, pos, parseErrorf(line, "%v", err)
		}
	}
	hCount := 0
	if len(text) >= 45 && text[42:45] != "  0" {
		if hCount, err = toInt(text[42:45], true); err != nil {
			return nil, pos, parseErrorf(line, "%v", err)
		}
	}
	at, err := parseAtomSymbol(symb, false, massDiff, line)
	if err != nil {
		return nil, pos, err
	}
	if chg != 0 {
		at.FormalCharge = 4 - chg
	}
	//FIX: this does not appear to be correct, but it is what the format
	//has always been read as.
	if hCount == 1 {
		at.NoImplicitH = true
	}
	if massDiff != 0 {
		//the difference should really be taken against the most abundant
		//isotope, not the standard weight
		at.Mass += float64(massDiff)
		at.Props.Set("_hasMassQuery", true)
	}
	for _, f := range v2000AtomTail {
		if len(text) < f.start+3 || text[f.start:f.start+3] == "  0" {
			continue
		}
		v, err := toInt(text[f.start:f.start+3], true)
		if err != nil {
			return nil, pos, parseErrorf(line, "%v", err)
		}
		at.Props.Set(f.prop, v)
	}
	return at, pos, nil
}

//queryBondForType returns the query tree for the query bond type codes of
//the CTAB formats (5..8), warning and matching anything for codes outside
//the documented set.
func queryBondForType(bType, line int) *BondQuery {
	switch bType {
	case 5: //single or double
		return &BondQuery{Kind: BQOr, Kids: []*BondQuery{bondOrderEqualsQuery(Single), bondOrderEqualsQuery(Double)}}
	case 6: //single or aromatic
		return &BondQuery{Kind: BQOr, Kids: []*BondQuery{bondOrderEqualsQuery(Single), bondOrderEqualsQuery(Aromatic)}}
	case 7: //double or aromatic
		return &BondQuery{Kind: BQOr, Kids: []*BondQuery{bondOrderEqualsQuery(Double), bondOrderEqualsQuery(Aromatic)}}
	case 8:
		return bondNullQuery()
	default:
		logger.Warn().Int("line", line).Int("type", bType).Msg("unrecognized query bond type, using an \"any\" query")
		return bondNullQuery()
	}
}

//newBondForType builds a fresh bond (possibly a query bond) for a CTAB
//bond type code.
func newBondForType(bType, line int) *Bond {
	switch bType {
	case 1:
		return NewBond(Single)
	case 2:
		return NewBond(Double)
	case 3:
		return NewBond(Triple)
	case 4:
		return NewBond(Aromatic)
	case 0:
		logger.Warn().Int("line", line).Msg("bond with order 0 found. This is not part of the MDL specification.")
		return NewBond(Unspecified)
	default:
		b := NewBond(Unspecified)
		b.Query = queryBondForType(bType, line)
		return b
	}
}

//parseBondLine decodes one fixed-column V2000 bond line. The returned bond
//carries 0-based end point indices.
func parseBondLine(text string, line int) (*Bond, error) {
	if len(text) < 9 {
		return nil, parseErrorf(line, "Bond line too short: '%s'", text)
	}
	idx1, err := toInt(text[0:3], false)
	if err != nil {
		return nil, parseErrorf(line, "%v", err)
	}
	idx2, err := toInt(text[3:6], false)
	if err != nil {
		return nil, parseErrorf(line, "%v", err)
	}
	bType, err := toInt(text[6:9], false)
	if err != nil {
		return nil, parseErrorf(line, "%v", err)
	}
	b := newBondForType(bType, line)
	//adjust the numbering
	b.Begin = idx1 - 1
	b.End = idx2 - 1

	if len(text) >= 12 && text[9:12] != "  0" {
		//conversion failures on the tail fields are swallowed, as the
		//original readers have always done
		if stereo, err := toInt(text[9:12], false); err == nil {
			switch stereo {
			case 0:
				b.Dir = NoDir
			case 1:
				b.Dir = BeginWedge
			case 6:
				b.Dir = BeginDash
			case 3: //"either" double bond
				b.Dir = EitherDouble
				b.Stereo = StereoAny
			case 4: //"either" single bond
				b.Dir = UnknownDir
			}
		}
	}
	if len(text) >= 18 && text[15:18] != "  0" {
		if topology, err := toInt(text[15:18], false); err == nil {
			q := bondIsInRingQuery()
			switch topology {
			case 1:
			case 2:
				q.Negate = true
			default:
				return nil, parseErrorf(line, "Unrecognized bond topology specifier: %d", topology)
			}
			if !b.HasQuery() {
				b.Query = bondOrderEqualsQuery(b.Order)
			}
			b.ExpandQuery(q)
		}
	}
	if len(text) >= 21 && text[18:21] != "  0" {
		if reactStatus, err := toInt(text[18:21], false); err == nil {
			b.Props.Set("molReactStatus", reactStatus)
		}
	}
	return b, nil
}

//parseMolBlockAtoms reads the nAtoms fixed-column atom lines of a V2000
//block into mol and conf.
func parseMolBlockAtoms(in *bufio.Reader, line *int, nAtoms int, mol *Mol, conf *Conformer) error {
	for i := 0; i < nAtoms; i++ {
		text, err := readLine(in, line)
		if err != nil {
			return parseErrorf(*line, "EOF hit while reading atoms")
		}
		at, pos, err := parseAtomLine(text, *line)
		if err != nil {
			return err
		}
		aid := mol.AddAtom(at)
		conf.SetAtomPos(aid, pos[0], pos[1], pos[2])
	}
	return nil
}

//parseMolBlockBonds reads the nBonds fixed-column bond lines of a V2000
//block into mol. It reports through chiralityPossible whether any bond
//carried wedging that stereo perception should look at.
func parseMolBlockBonds(in *bufio.Reader, line *int, nBonds int, mol *Mol, chiralityPossible *bool) error {
	for i := 0; i < nBonds; i++ {
		text, err := readLine(in, line)
		if err != nil {
			return parseErrorf(*line, "EOF hit while reading bonds")
		}
		b, err := parseBondLine(text, *line)
		if err != nil {
			return err
		}
		//aromatic wire bonds flag the bond and both end atoms
		if b.Order == Aromatic {
			b.IsAromatic = true
		}
		if b.Dir != NoDir && b.Dir != UnknownDir {
			*chiralityPossible = true
		}
		if _, err := mol.AddBond(b); err != nil {
			return parseErrorf(*line, "%v", err)
		}
		if b.IsAromatic {
			mol.Atom(b.Begin).IsAromatic = true
			mol.Atom(b.End).IsAromatic = true
		}
	}
	return nil
}

//applyDimensionality moves the _2DConf/_3DConf hints read from the header
//info line onto the conformer, consuming them.
func applyDimensionality(mol *Mol, conf *Conformer) {
	if mol.Props.Has("_2DConf") {
		conf.Set3D(false)
		mol.Props.Clear("_2DConf")
	} else if mol.Props.Has("_3DConf") {
		conf.Set3D(true)
		mol.Props.Clear("_3DConf")
	}
}

//MolFromStream reads one molfile (V2000 or V3000) from in and returns the
//molecule it describes. line is updated with the number of lines consumed
//even on error, for diagnostics. With sanitize, the post-parse passes
//(cleanup, stereochemistry perception, valence model) run on the result;
//removeHs additionally strips plain explicit hydrogens and only has an
//effect together with sanitize.
//
//At end of input before the name line, MolFromStream returns (nil, nil): no
//molecule, no error. EOF anywhere later is a *ParseError.
func MolFromStream(in *bufio.Reader, line *int, sanitize, removeHs bool) (*Mol, error) {
	chiralityPossible := false

	//three header lines: name, info, comments
	name, err := readLine(in, line)
	if err != nil {
		return nil, nil
	}
	mol := NewMol()
	mol.Props.Set("_Name", name)

	info, err := readLine(in, line)
	if err != nil {
		return nil, parseErrorf(*line, "EOF hit while reading the header")
	}
	mol.Props.Set("_MolFileInfo", info)
	if len(info) >= 22 {
		switch info[20:22] {
		case "2d", "2D":
			mol.Props.Set("_2DConf", 1)
		case "3d", "3D":
			mol.Props.Set("_3DConf", 1)
		}
	}
	comments, err := readLine(in, line)
	if err != nil {
		return nil, parseErrorf(*line, "EOF hit while reading the header")
	}
	mol.Props.Set("_MolFileComments", comments)

	text, err := readLine(in, line)
	if err != nil {
		return nil, parseErrorf(*line, "EOF hit while reading the counts line")
	}
	counts, err := parseCountsLine(text, *line)
	if err != nil {
		return nil, err
	}

	fileComplete := false
	if counts.version == 2000 {
		if counts.nAtoms <= 0 {
			return nil, parseErrorf(*line, "molecule has no atoms")
		}
		conf := NewConformer(counts.nAtoms)
		if err := parseMolBlockAtoms(in, line, counts.nAtoms, mol, conf); err != nil {
			return nil, err
		}
		applyDimensionality(mol, conf)
		mol.AddConformer(conf)
		if err := parseMolBlockBonds(in, line, counts.nBonds, mol, &chiralityPossible); err != nil {
			return nil, err
		}
		if fileComplete, err = parseMolBlockProperties(in, line, mol); err != nil {
			return nil, err
		}
	} else {
		if counts.nAtoms != 0 || counts.nBonds != 0 {
			return nil, parseErrorf(*line, "V3000 mol blocks should have 0s in the initial counts line.")
		}
		if fileComplete, err = parseV3000MolBlock(in, line, mol, &chiralityPossible); err != nil {
			return nil, err
		}
	}
	if !fileComplete {
		return nil, parseErrorf(*line, "Problems encountered parsing Mol data, M  END missing")
	}
	mol.clearBookmarks()

	//calculate explicit valence on each atom
	mol.calcExplicitValences()

	if sanitize {
		//stereochemistry is perceived before the hydrogens go away:
		//removing an H can remove the wedged bond with it, wiping out the
		//only sign that chirality ever existed. Mis-drawn groups are
		//cleaned first so the valence arithmetic inside the perception
		//doesn't trip on them.
		if chiralityPossible {
			CleanUp(mol)
			DetectAtomStereoChemistry(mol, mol.Conformer())
		}
		if removeHs {
			if err := RemoveHs(mol); err != nil {
				return nil, errDecorate(err, "MolFromStream")
			}
		} else {
			if err := SanitizeMol(mol); err != nil {
				return nil, errDecorate(err, "MolFromStream")
			}
		}
		//the wedging did its job during atom-stereo perception
		ClearSingleBondDirFlags(mol)
		//bond stereo needs the ring information, so it runs after the
		//valence model settles
		DetectBondStereoChemistry(mol, mol.Conformer())
		AssignStereochemistry(mol)
	}

	if mol.Props.Has("_NeedsQueryScan") {
		mol.Props.Clear("_NeedsQueryScan")
		mol.completeQueries()
	}
	return mol, nil
}

//MolFromBlock parses a molfile held in a string. See MolFromStream.
func MolFromBlock(block string, sanitize, removeHs bool) (*Mol, error) {
	line := 0
	return MolFromStream(bufio.NewReader(strings.NewReader(block)), &line, sanitize, removeHs)
}
