/*
 * main.go, part of rdkit.
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

//molinfo reads mol and SD files (plain, .gz or .zst) and prints a summary
//of every record: name, formula, counts, charges and query atoms. It can
//also emit a quick 2D depiction of a record.
package main

import (
	"fmt"
	"os"
	"strings"

	chem "github.com/clarablanes/rdkit"
	"github.com/clarablanes/rdkit/chemplot"
	"github.com/spf13/cobra"
)

var (
	noSanitize bool
	removeHs   bool
	depict     string
)

func summarize(mol *chem.Mol, ordinal int) {
	name := mol.Name()
	if name == "" {
		name = fmt.Sprintf("record %d", ordinal)
	}
	queries := 0
	charge := 0
	for _, at := range mol.Atoms {
		if at.HasQuery() {
			queries++
		}
		charge += at.FormalCharge
	}
	fmt.Printf("%s: %s, %d atoms, %d bonds", name, mol.Formula(), mol.Len(), mol.NumBonds())
	if charge != 0 {
		fmt.Printf(", net charge %+d", charge)
	}
	if queries > 0 {
		fmt.Printf(", %d query atoms", queries)
	}
	if conf := mol.Conformer(); conf != nil && conf.Is3D() {
		fmt.Printf(", 3D")
	}
	fmt.Println()
}

func isSDF(name string) bool {
	n := strings.TrimSuffix(strings.TrimSuffix(name, ".zst"), ".gz")
	return strings.HasSuffix(n, ".sdf") || strings.HasSuffix(n, ".sd")
}

func run(cmd *cobra.Command, args []string) error {
	for _, name := range args {
		var mols []*chem.Mol
		var err error
		if isSDF(name) {
			mols, err = chem.SDFFileRead(name, !noSanitize, removeHs)
		} else {
			var mol *chem.Mol
			mol, err = chem.MolFileRead(name, !noSanitize, removeHs)
			if mol != nil {
				mols = []*chem.Mol{mol}
			}
		}
		for i, mol := range mols {
			summarize(mol, i+1)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if depict != "" && len(mols) > 0 {
			if err := chemplot.Depiction(mols[0], depict, mols[0].Name()); err != nil {
				return err
			}
		}
	}
	return nil
}

func main() {
	root := &cobra.Command{
		Use:   "molinfo file.mol [file.sdf ...]",
		Short: "Summarize MDL mol and SD files",
		Args:  cobra.MinimumNArgs(1),
		RunE:  run,
	}
	root.Flags().BoolVar(&noSanitize, "no-sanitize", false, "skip sanitization and stereo perception")
	root.Flags().BoolVar(&removeHs, "remove-hs", false, "strip plain explicit hydrogens")
	root.Flags().StringVar(&depict, "depict", "", "write a 2D depiction of the first record to this file")
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
