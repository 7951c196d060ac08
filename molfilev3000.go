/*
 * molfilev3000.go, part of rdkit.
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

//The V3000 ("extended") connection table: token-oriented lines wrapped in
//"M  V30 " prefixes, bracketed by BEGIN/END blocks, with logical lines
//continued by a trailing dash.

package chem

import (
	"bufio"
	"strings"
)

const v3000Prefix = "M  V30 "

//getV3000Line reads one logical V3000 line: the payloads of consecutive
//physical lines are joined while they end in "-". Every physical line must
//carry the "M  V30 " prefix.
func getV3000Line(in *bufio.Reader, line *int) (string, error) {
	var res strings.Builder
	for {
		text, err := readLine(in, line)
		if err != nil {
			return "", parseErrorf(*line, "EOF hit while reading a V3000 block")
		}
		if !strings.HasPrefix(text, v3000Prefix) {
			return "", parseErrorf(*line, "Line does not start with '%s'", v3000Prefix)
		}
		payload := text[len(v3000Prefix):]
		if strings.HasSuffix(payload, "-") {
			res.WriteString(payload[:len(payload)-1])
			continue
		}
		res.WriteString(payload)
		return res.String(), nil
	}
}

//tokenizeV3000 splits a logical line into whitespace-separated tokens,
//honoring single and double quotes so symbols and values can embed spaces.
func tokenizeV3000(s string) []string {
	var tokens []string
	var cur strings.Builder
	var quote byte
	inTok := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			} else {
				cur.WriteByte(c)
			}
		case c == '\'' || c == '"':
			quote = c
			inTok = true
		case c == ' ' || c == '\t':
			if inTok {
				tokens = append(tokens, cur.String())
				cur.Reset()
				inTok = false
			}
		default:
			cur.WriteByte(c)
			inTok = true
		}
	}
	if inTok {
		tokens = append(tokens, cur.String())
	}
	return tokens
}

//splitAssignToken takes apart a KEY=VAL option token. Keys are
//case-insensitive on the wire.
func splitAssignToken(token string) (prop, val string, ok bool) {
	parts := strings.SplitN(token, "=", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.ToUpper(parts[0]), parts[1], true
}

//parseV3000AtomSymbol builds an atom from a V3000 symbol token. A token in
//brackets is an atom list, optionally negated by a preceding NOT token;
//anything else gets the standard CTAB symbol treatment.
func parseV3000AtomSymbol(token string, negate bool, line int) (*Atom, error) {
	if len(token) > 0 && token[0] == '[' {
		if token[len(token)-1] != ']' {
			return nil, parseErrorf(line, "Bad atom token '%s'", token)
		}
		var at *Atom
		q := &AtomQuery{Kind: AQOr, Negate: negate}
		for _, part := range strings.Split(token[1:len(token)-1], ",") {
			atSymb := strings.TrimSpace(part)
			if atSymb == "" {
				continue
			}
			atNum, err := AtomicNumber(atSymb)
			if err != nil {
				return nil, parseErrorf(line, "Unrecognized atom symbol in atom list: '%s'", atSymb)
			}
			if at == nil {
				at = newEmptyAtom()
				at.AtomicNum = atNum
			}
			q.Kids = append(q.Kids, atomNumEqualsQuery(atNum))
		}
		if at == nil {
			return nil, parseErrorf(line, "Empty atom list: '%s'", token)
		}
		at.Query = q
		return at, nil
	}
	if negate {
		return nil, parseErrorf(line, "NOT tokens only supported for atom lists")
	}
	return parseAtomSymbol(token, true, 0, line)
}

//parseV3000AtomProps applies the KEY=VAL options of an atom line. The
//HCOUNT, UNSAT and RBCNT options promote the atom to a query atom, so the
//possibly-replaced atom is returned and must be used from then on.
func parseV3000AtomProps(mol *Mol, at *Atom, tokens []string, line int) (*Atom, error) {
	for _, token := range tokens {
		prop, val, ok := splitAssignToken(token)
		if !ok {
			return nil, parseErrorf(line, "Invalid atom property: %s for atom %d", token, at.Index+1)
		}
		switch prop {
		case "CHG":
			charge, err := toInt(val, false)
			if err != nil {
				return nil, parseErrorf(line, "%v", err)
			}
			if !at.HasQuery() {
				at.FormalCharge = charge
			} else {
				at.ExpandQuery(atomFormalChargeQuery(charge), AQAnd)
			}
		case "RAD":
			rad, err := toInt(val, false)
			if err != nil {
				return nil, parseErrorf(line, "%v", err)
			}
			switch rad {
			case 0:
			case 1:
				at.RadicalElectrons = 2
			case 2:
				at.RadicalElectrons = 1
			case 3:
				at.RadicalElectrons = 2
			default:
				return nil, parseErrorf(line, "Unrecognized RAD value %s for atom %d", val, at.Index+1)
			}
		case "MASS":
			v, err := toFloat(val, false)
			if err != nil || v <= 0 {
				return nil, parseErrorf(line, "Bad value for MASS: %s for atom %d", val, at.Index+1)
			}
			if !at.HasQuery() {
				at.Mass = v
			} else {
				at.ExpandQuery(atomMassQuery(int(v)), AQAnd)
			}
		case "CFG":
			cfg, err := toInt(val, false)
			if err != nil {
				return nil, parseErrorf(line, "%v", err)
			}
			switch cfg {
			case 0:
			case 1, 2, 3:
				at.Props.Set("molParity", cfg)
			default:
				return nil, parseErrorf(line, "Unrecognized CFG value: %s for atom %d", val, at.Index+1)
			}
		case "HCOUNT":
			if val != "0" {
				hcount, err := toInt(val, false)
				if err != nil {
					return nil, parseErrorf(line, "%v", err)
				}
				at = replaceAtomWithQueryAtom(mol, at)
				if hcount == -1 {
					hcount = 0
				}
				at.ExpandQuery(atomHCountQuery(hcount), AQAnd)
			}
		case "UNSAT":
			if val == "1" {
				at = replaceAtomWithQueryAtom(mol, at)
				at.ExpandQuery(atomUnsaturatedQuery(), AQAnd)
			}
		case "RBCNT":
			if val != "0" {
				rbcount, err := toInt(val, false)
				if err != nil {
					return nil, parseErrorf(line, "%v", err)
				}
				at = replaceAtomWithQueryAtom(mol, at)
				if rbcount == -1 {
					rbcount = 0
				}
				at.ExpandQuery(atomRingBondCountQuery(rbcount), AQAnd)
			}
		case "AAMAP":
			if val != "0" {
				mapno, err := toInt(val, false)
				if err != nil {
					return nil, parseErrorf(line, "%v", err)
				}
				at.Props.Set("molAtomMapNumber", mapno)
			}
		}
	}
	return at, nil
}

//parseV3000AtomBlock reads the BEGIN ATOM / END ATOM block: one logical
//line per atom, `molIdx symbol x y z mapNum [KEY=VAL]...`. molIdx becomes
//the atom's bookmark for the bond block.
func parseV3000AtomBlock(in *bufio.Reader, line *int, nAtoms int, mol *Mol, conf *Conformer) error {
	text, err := getV3000Line(in, line)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(text, "BEGIN ATOM") {
		return parseErrorf(*line, "BEGIN ATOM line not found")
	}
	for i := 0; i < nAtoms; i++ {
		text, err = getV3000Line(in, line)
		if err != nil {
			return err
		}
		tokens := tokenizeV3000(strings.TrimSpace(text))
		if len(tokens) < 6 {
			return parseErrorf(*line, "Bad atom line: '%s'", text)
		}
		molIdx, err := toInt(tokens[0], false)
		if err != nil {
			return parseErrorf(*line, "%v", err)
		}
		tokens = tokens[1:]
		negate := false
		if tokens[0] == "NOT" {
			negate = true
			tokens = tokens[1:]
			if len(tokens) < 5 {
				return parseErrorf(*line, "Bad atom line: '%s'", text)
			}
		}
		at, err := parseV3000AtomSymbol(tokens[0], negate, *line)
		if err != nil {
			return err
		}
		var pos [3]float64
		for j := 0; j < 3; j++ {
			if pos[j], err = toFloat(tokens[1+j], true); err != nil {
				return parseErrorf(*line, "Bad atom line: '%s'", text)
			}
		}
		mapNum, err := toInt(tokens[4], true)
		if err != nil {
			return parseErrorf(*line, "Bad atom line: '%s'", text)
		}
		at.Props.Set("molAtomMapNumber", mapNum)

		aid := mol.AddAtom(at)
		//the options may promote the atom, replacing it in the molecule
		if at, err = parseV3000AtomProps(mol, at, tokens[5:], *line); err != nil {
			return err
		}
		mol.SetAtomBookmark(molIdx, at.Index)
		conf.SetAtomPos(aid, pos[0], pos[1], pos[2])
	}
	text, err = getV3000Line(in, line)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(text, "END ATOM") {
		return parseErrorf(*line, "END ATOM line not found")
	}
	applyDimensionality(mol, conf)
	return nil
}

//parseV3000BondBlock reads the BEGIN BOND / END BOND block: one logical
//line per bond, `bondIdx type atom1 atom2 [KEY=VAL]...`, with the atoms
//referenced through the bookmarks laid down by the atom block.
func parseV3000BondBlock(in *bufio.Reader, line *int, nBonds int, mol *Mol, chiralityPossible *bool) error {
	text, err := getV3000Line(in, line)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(text, "BEGIN BOND") {
		return parseErrorf(*line, "BEGIN BOND line not found")
	}
	for i := 0; i < nBonds; i++ {
		text, err = getV3000Line(in, line)
		if err != nil {
			return err
		}
		fields := strings.Fields(strings.TrimSpace(text))
		if len(fields) < 4 {
			return parseErrorf(*line, "bond line is too short: '%s'", text)
		}
		var nums [4]int
		for j := 0; j < 4; j++ {
			if nums[j], err = toInt(fields[j], false); err != nil {
				return parseErrorf(*line, "%v", err)
			}
		}
		bondIdx, bType := nums[0], nums[1]
		bond := newBondForType(bType, *line)
		if bond.Order == Aromatic {
			bond.IsAromatic = true
		}
		for _, token := range fields[4:] {
			prop, val, ok := splitAssignToken(token)
			if !ok {
				return parseErrorf(*line, "bad bond property '%s'", token)
			}
			switch prop {
			case "CFG":
				cfg, err := toInt(val, false)
				if err != nil {
					return parseErrorf(*line, "bad bond CFG '%s'", val)
				}
				switch cfg {
				case 0:
				case 1:
					bond.Dir = BeginWedge
					*chiralityPossible = true
				case 2:
					if bType == 1 {
						bond.Dir = UnknownDir
					} else if bType == 2 {
						bond.Dir = EitherDouble
						bond.Stereo = StereoAny
					}
				case 3:
					bond.Dir = BeginDash
					*chiralityPossible = true
				default:
					return parseErrorf(*line, "bad bond CFG '%s'", val)
				}
			case "TOPO":
				if val != "0" {
					if !bond.HasQuery() {
						bond.Query = bondOrderEqualsQuery(bond.Order)
					}
					q := bondIsInRingQuery()
					switch val {
					case "1":
					case "2":
						q.Negate = true
					default:
						return parseErrorf(*line, "bad bond TOPO '%s'", val)
					}
					bond.ExpandQuery(q)
				}
			case "RXCTR":
				reactStatus, err := toInt(val, false)
				if err != nil {
					return parseErrorf(*line, "%v", err)
				}
				bond.Props.Set("molReactStatus", reactStatus)
			case "STBOX":
				//recognized but carries nothing we keep
			}
		}
		a1, err := mol.AtomWithBookmark(nums[2])
		if err != nil {
			return parseErrorf(*line, "%v", err)
		}
		a2, err := mol.AtomWithBookmark(nums[3])
		if err != nil {
			return parseErrorf(*line, "%v", err)
		}
		bond.Begin = a1.Index
		bond.End = a2.Index
		idx, err := mol.AddBond(bond)
		if err != nil {
			return parseErrorf(*line, "%v", err)
		}
		if bond.IsAromatic {
			mol.Atom(bond.Begin).IsAromatic = true
			mol.Atom(bond.End).IsAromatic = true
		}
		mol.SetBondBookmark(bondIdx, idx)
	}
	text, err = getV3000Line(in, line)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(text, "END BOND") {
		return parseErrorf(*line, "END BOND line not found")
	}
	return nil
}

//skipV3000Block consumes logical lines until one starting with terminator
//has been consumed.
func skipV3000Block(in *bufio.Reader, line *int, terminator string) error {
	for {
		text, err := getV3000Line(in, line)
		if err != nil {
			return err
		}
		if strings.HasPrefix(text, terminator) {
			return nil
		}
	}
}

//parseV3000MolBlock drives a whole BEGIN CTAB ... END CTAB block. Sgroup,
//3D-constraint and unknown blocks are warned about and skipped; linknode
//lines are skipped without a warning.
//Like the classic readers, it stops at END CTAB and leaves the final
//"M  END" of the record to the surrounding layer.
func parseV3000MolBlock(in *bufio.Reader, line *int, mol *Mol, chiralityPossible *bool) (bool, error) {
	text, err := getV3000Line(in, line)
	if err != nil {
		return false, err
	}
	if !strings.HasPrefix(text, "BEGIN CTAB") {
		return false, parseErrorf(*line, "BEGIN CTAB line not found")
	}
	text, err = getV3000Line(in, line)
	if err != nil {
		return false, err
	}
	if !strings.HasPrefix(text, "COUNTS ") {
		return false, parseErrorf(*line, "Bad counts line: '%s'", text)
	}
	fields := strings.Fields(strings.TrimSpace(text[7:]))
	if len(fields) < 2 {
		return false, parseErrorf(*line, "Bad counts line: '%s'", text)
	}
	nAtoms, err := toInt(fields[0], false)
	if err != nil {
		return false, parseErrorf(*line, "%v", err)
	}
	nBonds, err := toInt(fields[1], false)
	if err != nil {
		return false, parseErrorf(*line, "%v", err)
	}
	if nAtoms <= 0 {
		return false, parseErrorf(*line, "molecule has no atoms")
	}
	var nSgroups, n3DConstraints int
	if len(fields) > 2 {
		nSgroups, _ = toInt(fields[2], true)
	}
	if len(fields) > 3 {
		n3DConstraints, _ = toInt(fields[3], true)
	}

	conf := NewConformer(nAtoms)
	if err := parseV3000AtomBlock(in, line, nAtoms, mol, conf); err != nil {
		return false, err
	}
	if nBonds > 0 {
		if err := parseV3000BondBlock(in, line, nBonds, mol, chiralityPossible); err != nil {
			return false, err
		}
	}

	if nSgroups > 0 {
		logger.Warn().Int("line", *line).Msg("S group information in mol block ignored")
		text, err = getV3000Line(in, line)
		if err != nil {
			return false, err
		}
		if !strings.HasPrefix(text, "BEGIN SGROUP") {
			return false, parseErrorf(*line, "BEGIN SGROUP line not found")
		}
		if err := skipV3000Block(in, line, "END SGROUP"); err != nil {
			return false, err
		}
	}
	if n3DConstraints > 0 {
		logger.Warn().Int("line", *line).Msg("3d constraint information in mol block ignored")
		text, err = getV3000Line(in, line)
		if err != nil {
			return false, err
		}
		if !strings.HasPrefix(text, "BEGIN OBJ3D") {
			return false, parseErrorf(*line, "BEGIN OBJ3D line not found")
		}
		for i := 0; i < n3DConstraints; i++ {
			if _, err = getV3000Line(in, line); err != nil {
				return false, err
			}
		}
		text, err = getV3000Line(in, line)
		if err != nil {
			return false, err
		}
		if !strings.HasPrefix(text, "END OBJ3D") {
			return false, parseErrorf(*line, "END OBJ3D line not found")
		}
	}

	text, err = getV3000Line(in, line)
	if err != nil {
		return false, err
	}
	//link nodes are carried on single lines; nothing of them is kept
	for strings.HasPrefix(text, "LINKNODE") {
		if text, err = getV3000Line(in, line); err != nil {
			return false, err
		}
	}
	//blocks we don't know how to read are skipped whole
	for strings.HasPrefix(text, "BEGIN") {
		logger.Warn().Int("line", *line).Str("block", text).Msg("skipping unknown block")
		if err := skipV3000Block(in, line, "END"); err != nil {
			return false, err
		}
		if text, err = getV3000Line(in, line); err != nil {
			return false, err
		}
	}
	if !strings.HasPrefix(text, "END CTAB") {
		return false, parseErrorf(*line, "END CTAB line not found")
	}
	mol.AddConformer(conf)
	return true, nil
}
