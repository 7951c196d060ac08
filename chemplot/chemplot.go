/*
 * chemplot.go, part of rdkit.
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

//Package chemplot draws simple 2D depictions of parsed molecules: the
//conformer's x/y coordinates become the drawing plane, bonds become line
//segments and atoms element-symbol labels. It is meant for quick visual
//checks of what a molfile contained, not for publication graphics.
package chemplot

import (
	"fmt"
	"image/color"

	chem "github.com/clarablanes/rdkit"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//bond line styles by order; double/triple bonds just get thicker strokes.
func bondWidth(o chem.BondOrder) vg.Length {
	switch o {
	case chem.Double:
		return vg.Points(2)
	case chem.Triple:
		return vg.Points(3)
	}
	return vg.Points(1)
}

//Depiction renders the molecule's conformer to the given file. The format
//is taken from the file extension, anything gonum/plot writes (png, svg,
//pdf...). Molecules without a conformer can't be drawn.
func Depiction(mol *chem.Mol, filename, title string) error {
	conf := mol.Conformer()
	if conf == nil {
		return fmt.Errorf("Depiction: molecule has no conformer")
	}
	p := plot.New()
	p.Title.Text = title
	p.HideAxes()

	for i := 0; i < mol.NumBonds(); i++ {
		b := mol.Bond(i)
		x1, y1, _ := conf.AtomPos(b.Begin)
		x2, y2, _ := conf.AtomPos(b.End)
		l, err := plotter.NewLine(plotter.XYs{{X: x1, Y: y1}, {X: x2, Y: y2}})
		if err != nil {
			return err
		}
		l.LineStyle.Width = bondWidth(b.Order)
		if b.IsAromatic {
			l.LineStyle.Color = color.RGBA{R: 128, G: 64, B: 0, A: 255}
		}
		p.Add(l)
	}

	labels := plotter.XYLabels{}
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		x, y, _ := conf.AtomPos(i)
		labels.XYs = append(labels.XYs, plotter.XY{X: x, Y: y})
		s := at.Symbol()
		if at.HasQuery() {
			s = "?" + s
		}
		if at.FormalCharge > 0 {
			s += "+"
		} else if at.FormalCharge < 0 {
			s += "-"
		}
		labels.Labels = append(labels.Labels, s)
	}
	lb, err := plotter.NewLabels(labels)
	if err != nil {
		return err
	}
	p.Add(lb)

	return p.Save(10*vg.Centimeter, 10*vg.Centimeter, filename)
}
