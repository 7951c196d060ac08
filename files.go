/*
 * files.go, part of rdkit.
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

//File-level entry points: single molfiles, SD files, and the compressed
//variants of both.

package chem

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//openMaybeCompressed opens name and stacks a decompressor on top of it for
//the .gz and .zst suffixes. The returned closer releases both layers.
func openMaybeCompressed(name string) (io.Reader, func(), error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("openMaybeCompressed: %w", err)
	}
	switch {
	case strings.HasSuffix(name, ".gz"):
		g, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, fmt.Errorf("openMaybeCompressed: %w", err)
		}
		return g, func() { g.Close(); f.Close() }, nil
	case strings.HasSuffix(name, ".zst"):
		z, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, nil, fmt.Errorf("openMaybeCompressed: %w", err)
		}
		return z, func() { z.Close(); f.Close() }, nil
	}
	return f, func() { f.Close() }, nil
}

//MolFileRead reads one molecule from the given mol/sdf file, which may be
//gzip- or zstd-compressed. See MolFromStream for the sanitize and removeHs
//flags.
func MolFileRead(name string, sanitize, removeHs bool) (*Mol, error) {
	r, closer, err := openMaybeCompressed(name)
	if err != nil {
		return nil, err
	}
	defer closer()
	line := 0
	mol, err := MolFromStream(bufio.NewReader(r), &line, sanitize, removeHs)
	return mol, errDecorate(err, "MolFileRead")
}

//readSDFDataFields consumes the data-field section of one SD record, up to
//and including the "$$$$" separator, storing every "> <tag>" field in the
//props bag. It reports whether the separator (as opposed to EOF) was seen.
func readSDFDataFields(in *bufio.Reader, line *int, props Props) bool {
	var tag string
	var value []string
	flush := func() {
		if tag != "" {
			props.Set(tag, strings.Join(value, "\n"))
		}
		tag = ""
		value = nil
	}
	for {
		text, err := readLine(in, line)
		if err != nil {
			flush()
			return false
		}
		switch {
		case strings.HasPrefix(text, "$$$$"):
			flush()
			return true
		case strings.HasPrefix(text, ">"):
			flush()
			if open := strings.Index(text, "<"); open >= 0 {
				if close := strings.Index(text[open:], ">"); close > 0 {
					tag = text[open+1 : open+close]
				}
			}
		case strings.HasPrefix(text, "M  END"):
			//V3000 records leave this for us
		case text == "" && tag != "":
			flush()
		case tag != "":
			value = append(value, text)
		}
	}
}

//SDFRead reads every record of an SD stream. Records that fail to parse
//abort the read; the molecules of the records already read are returned
//along with the error. The SD data fields of each record land in the
//molecule's Props.
func SDFRead(r io.Reader, sanitize, removeHs bool) ([]*Mol, error) {
	in := bufio.NewReader(r)
	line := 0
	var mols []*Mol
	for {
		mol, err := MolFromStream(in, &line, sanitize, removeHs)
		if err != nil {
			return mols, errDecorate(err, "SDFRead")
		}
		if mol == nil {
			return mols, nil
		}
		if !readSDFDataFields(in, &line, mol.Props) {
			return append(mols, mol), nil
		}
		mols = append(mols, mol)
	}
}

//SDFFileRead reads every record of the given SD file, which may be gzip- or
//zstd-compressed.
func SDFFileRead(name string, sanitize, removeHs bool) ([]*Mol, error) {
	r, closer, err := openMaybeCompressed(name)
	if err != nil {
		return nil, err
	}
	defer closer()
	return SDFRead(r, sanitize, removeHs)
}
