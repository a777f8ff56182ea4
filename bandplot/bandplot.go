/*
 * bandplot.go, part of govasp
 *
 * Copyright 2023 Raul Mera <rmera{at}usachDOTcl>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

//Package bandplot draws the eigenvalue spectrum of an ingested VASP
//directory: every band energy against its k-point index, one color per spin
//channel, with the Fermi level marked when one is available.
package bandplot

import (
	"fmt"
	"image/color"

	vasp "github.com/rmera/govasp"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicBandPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "k-point index"
	p.Y.Label.Text = "Energy (eV)"
	p.Add(plotter.NewGrid())
	return p
}

var spinColors = []color.RGBA{
	{R: 255, A: 255},
	{B: 255, A: 255},
}

// BandPlot plots the band energies of data and saves them as plotname.png.
// Eigenvalues come from EIGENVAL when it was read, from LOCPROJ otherwise.
func BandPlot(data *vasp.Data, title, plotname string) error {
	var eigs []*mat.Dense
	if data.Eigenval != nil {
		eigs = data.Eigenval.Eigs
	} else if data.Plocar != nil {
		eigs = data.Plocar.Eigs
	}
	if eigs == nil {
		return fmt.Errorf("bandplot: no eigenvalues in the given data")
	}
	p := basicBandPlot(title)
	for is, e := range eigs {
		nk, nband := e.Dims()
		pts := make(plotter.XYs, 0, nk*nband)
		for ik := 0; ik < nk; ik++ {
			for ib := 0; ib < nband; ib++ {
				pts = append(pts, plotter.XY{X: float64(ik), Y: e.At(ik, ib)})
			}
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = spinColors[is%len(spinColors)]
		p.Add(s)
	}
	if efermi, ok := data.EFermi(); ok {
		nk, _ := eigs[0].Dims()
		l, err := plotter.NewLine(plotter.XYs{{X: 0, Y: efermi}, {X: float64(nk - 1), Y: efermi}})
		if err != nil {
			return err
		}
		l.LineStyle.Color = color.RGBA{G: 180, A: 255}
		p.Add(l)
		p.Legend.Add("E_Fermi", l)
	}
	return p.Save(14*vg.Centimeter, 10*vg.Centimeter, fmt.Sprintf("%s.png", plotname))
}
