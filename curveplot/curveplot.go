// Package curveplot draws the membership curves of linguistic variables.
package curveplot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	fuzzy "github.com/nguyenthanhtrungbkhn/go-fuzzy-logic"
	"github.com/nguyenthanhtrungbkhn/go-fuzzy-logic/internal/utils"
)

// Size of a rendered figure
var (
	Width  = 10 * vg.Inch
	Height = 3 * vg.Inch
)

// NewPlot draws one line per term of v.
func NewPlot(v *fuzzy.Variable) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = v.Name()
	p.X.Label.Text = "Scale"
	p.Y.Label.Text = "Membership"
	p.X.Min = v.Universe().Min()
	p.X.Max = v.Universe().Max()
	p.Y.Min = 0
	p.Y.Max = 1.05
	p.Add(plotter.NewGrid())

	for i, name := range v.TermNames() {
		curve, err := v.Curve(name)
		if err != nil {
			return nil, err
		}
		xys := make(plotter.XYs, len(curve))
		for j, pt := range curve {
			xys[j].X = pt.X
			xys[j].Y = pt.Degree
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("curveplot: %s[%s]: %w", v.Name(), name, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add(name, line)
	}
	p.Legend.Top = true
	return p, nil
}

// Write renders v in the given format (png, svg, pdf, ...).
func Write(w io.Writer, v *fuzzy.Variable, format string) error {
	p, err := NewPlot(v)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(Width, Height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// SaveModel writes one file per variable of m into dir and returns their paths.
func SaveModel(m *fuzzy.Model, dir, format string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	variables := append(m.Inputs(), m.Output())
	paths := make([]string, 0, len(variables))
	for _, v := range variables {
		path := filepath.Join(dir, v.Name()+"."+format)
		if err := save(path, v, format); err != nil {
			return nil, err
		}
		utils.Debugf("Wrote membership curves of %s to %s", v.Name(), path)
		paths = append(paths, path)
	}
	return paths, nil
}

func save(path string, v *fuzzy.Variable, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, v, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
