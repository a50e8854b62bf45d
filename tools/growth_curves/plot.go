package growth_curves

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// IntegerTicks labels every whole time step (used for short horizons)
type IntegerTicks struct{}

func (IntegerTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for i := int(math.Ceil(min)); i <= int(math.Floor(max)); i++ {
		ticks = append(ticks, plot.Tick{Value: float64(i), Label: fmt.Sprintf("%d", i)})
	}
	return ticks
}

// NewCurvePlot draws the curves listed in ids (all curves when ids is empty)
func NewCurvePlot(ds Dataset, ids []int) (*plot.Plot, error) {
	all, groups := ds.groups()
	if len(ids) == 0 {
		ids = all
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("dataset has no curves to plot")
	}

	p := plot.New()
	p.Title.Text = "Logistic Growth Curves"
	p.X.Label.Text = "Time"
	p.Y.Label.Text = "Population Size"
	p.Y.Min = 0
	p.Add(plotter.NewGrid())
	if ds.Horizon > 0 && ds.Horizon <= 20 {
		p.X.Tick.Marker = IntegerTicks{}
	}

	for i, id := range ids {
		rows := groups[id]
		if len(rows) == 0 {
			return nil, fmt.Errorf("curve %d not in dataset", id)
		}
		pts := make(plotter.XYs, len(rows))
		for j, r := range rows {
			pts[j].X = float64(r.Time)
			pts[j].Y = r.Value
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		line.LineStyle.Color = plotutil.Color(i)
		line.LineStyle.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("Population %d", id+1), line)
	}
	p.Legend.Top = true
	p.Legend.Left = true
	return p, nil
}

// WritePlot renders to w in format ("svg", "png", "pdf", ...)
func WritePlot(w io.Writer, ds Dataset, ids []int, format string) error {
	p, err := NewCurvePlot(ds, ids)
	if err != nil {
		return err
	}
	writer, err := p.WriterTo(10*vg.Inch, 5*vg.Inch, format)
	if err != nil {
		return err
	}
	_, err = writer.WriteTo(w)
	return err
}

// SavePlot picks the format from path's extension
func SavePlot(path string, ds Dataset, ids []int) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format == "" {
		return fmt.Errorf("plot path %q needs an extension such as .svg or .png", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePlot(f, ds, ids, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
