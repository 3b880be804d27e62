package report

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/drakos74/linreg-bench/internal/model"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// NoSamplesErr is returned when there is nothing to plot.
var NoSamplesErr = errors.New("no samples")

const (
	chartWidth  = 12 * vg.Inch
	chartHeight = 10 * vg.Inch
	// chartDPI makes the png 1200x1000 pixels
	chartDPI = 100
)

var (
	blue    = color.RGBA{B: 255, A: 255}
	red     = color.RGBA{R: 255, A: 255}
	green   = color.RGBA{G: 160, A: 255}
	magenta = color.RGBA{R: 255, B: 255, A: 255}
	orange  = color.RGBA{R: 255, G: 165, A: 255}
)

// Chart renders the diagnostic plots of the result into a png file at the given path.
func Chart(result model.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create chart file '%s': %w", path, err)
	}
	defer f.Close()
	return Render(result, f)
}

// Render draws the 2x2 grid of plots as png into the writer.
// loss per epoch | parameters per epoch
// memory per time | loss per weight
func Render(result model.Result, w io.Writer) error {
	if result.Len() == 0 {
		return fmt.Errorf("could not render chart: %w", NoSamplesErr)
	}

	plots, err := grid(result)
	if err != nil {
		return fmt.Errorf("could not create plots: %w", err)
	}

	img := vgimg.NewWith(vgimg.UseWH(chartWidth, chartHeight), vgimg.UseDPI(chartDPI))
	dc := draw.New(img)

	t := draw.Tiles{
		Rows:      2,
		Cols:      2,
		PadX:      vg.Millimeter * 5,
		PadY:      vg.Millimeter * 5,
		PadTop:    vg.Millimeter * 3,
		PadBottom: vg.Millimeter * 3,
		PadLeft:   vg.Millimeter * 3,
		PadRight:  vg.Millimeter * 3,
	}

	canvases := plot.Align(plots, t, dc)
	for j := 0; j < t.Rows; j++ {
		for i := 0; i < t.Cols; i++ {
			plots[j][i].Draw(canvases[j][i])
		}
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("could not write png: %w", err)
	}
	return nil
}

func grid(result model.Result) ([][]*plot.Plot, error) {
	epochs := result.EpochAxis()

	loss, err := newPlot("Loss (MSE)", "Epoch", "MSE",
		series{xy: xys(epochs, result.Losses), color: blue})
	if err != nil {
		return nil, err
	}

	params, err := newPlot("Parameters", "Epoch", "Value",
		series{name: "w", xy: xys(epochs, result.Weights), color: red},
		series{name: "b", xy: xys(epochs, result.Biases), color: green})
	if err != nil {
		return nil, err
	}

	memory, err := newPlot("Memory usage", "Time (s)", "Memory (KB)",
		series{xy: xys(result.Timestamps, result.MemoryKB), color: magenta})
	if err != nil {
		return nil, err
	}

	convergence, err := newPlot("Convergence", "w", "MSE",
		series{xy: xys(result.Weights, result.Losses), color: orange, points: true})
	if err != nil {
		return nil, err
	}

	return [][]*plot.Plot{
		{loss, params},
		{memory, convergence},
	}, nil
}

type series struct {
	name   string
	xy     plotter.XYs
	color  color.Color
	points bool
}

func newPlot(title, x, y string, ss ...series) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = x
	p.Y.Label.Text = y
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	for _, s := range ss {
		line, err := plotter.NewLine(s.xy)
		if err != nil {
			return nil, fmt.Errorf("could not plot '%s': %w", title, err)
		}
		line.Color = s.color
		line.Width = vg.Points(2)
		p.Add(line)
		if s.points {
			scatter, err := plotter.NewScatter(s.xy)
			if err != nil {
				return nil, fmt.Errorf("could not plot points '%s': %w", title, err)
			}
			scatter.Color = s.color
			scatter.Radius = vg.Points(3)
			p.Add(scatter)
		}
		if s.name != "" {
			p.Legend.Add(s.name, line)
		}
	}
	return p, nil
}

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range pts {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}
