package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/drakos74/linreg-bench/internal/buffer"
	"github.com/drakos74/linreg-bench/internal/emoji"
	linmath "github.com/drakos74/linreg-bench/internal/math"
	"github.com/drakos74/linreg-bench/internal/model"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
)

const (
	// recentSamples is the number of trailing samples listed in the summary
	recentSamples = 5
	// trendThreshold is the relative loss change below which the trend counts as slight
	trendThreshold = 0.01
	// PredictAt is the input the summary predicts for.
	PredictAt = 7.0

	na = "n/a"
)

// Summary writes a textual report of the training run.
func Summary(w io.Writer, ds model.Dataset, result model.Result) error {
	if _, err := fmt.Fprintf(w, "run %s : %d epochs, %d samples\n", result.ID, result.Epochs, result.Len()); err != nil {
		return fmt.Errorf("could not write summary: %w", err)
	}

	overview := tablewriter.NewWriter(w)
	overview.SetHeader([]string{"metric", "value"})
	overview.AppendBulk(overviewRows(ds, result))
	overview.Render()

	if result.Len() == 0 {
		return nil
	}

	recent := tablewriter.NewWriter(w)
	recent.SetHeader([]string{"epoch", "mse", "w", "b", "memory (KB)", "elapsed (s)", "trend"})
	recent.AppendBulk(recentRows(result))
	recent.Render()
	return nil
}

func overviewRows(ds model.Dataset, result model.Result) [][]string {
	rows := [][]string{
		{"w", linmath.FormatP(result.Weight, 6)},
		{"b", linmath.FormatP(result.Bias, 6)},
		{"execution time (s)", linmath.FormatP(result.ExecutionTime, 6)},
		{"mse", linmath.FormatP(linmath.MSE(ds.X, ds.Y, result.Weight, result.Bias), 6)},
		{fmt.Sprintf("y(%v)", PredictAt), linmath.Format(result.Predict(PredictAt))},
	}

	if line, err := linmath.Reference(ds.X, ds.Y); err == nil {
		dw, db := line.Gap(result.Weight, result.Bias)
		rows = append(rows,
			[]string{"w (least squares)", linmath.FormatP(line.Weight, 6)},
			[]string{"b (least squares)", linmath.FormatP(line.Bias, 6)},
			[]string{"gap w | b", fmt.Sprintf("%s %s | %s %s",
				linmath.FormatP(dw, 6), emoji.MapToSentiment(result.Weight-line.Weight),
				linmath.FormatP(db, 6), emoji.MapToSentiment(result.Bias-line.Bias))},
			[]string{"r2", linmath.Format(line.R2)},
		)
	} else {
		rows = append(rows, []string{"least squares", na})
	}

	if result.Len() > 0 {
		loss := buffer.Of(result.Losses...)
		memory := buffer.Of(result.MemoryKB...)
		rows = append(rows,
			[]string{"samples", strconv.Itoa(loss.Count())},
			[]string{"mse first | last", fmt.Sprintf("%s | %s", linmath.Format(loss.First()), linmath.Format(loss.Last()))},
			[]string{"mse min | stdev", fmt.Sprintf("%s | %s", linmath.Format(loss.Min()), linmath.Format(loss.StDev()))},
			[]string{"memory min | avg | max (KB)", fmt.Sprintf("%s | %s | %s",
				linmath.FormatP(memory.Min(), 2), linmath.FormatP(memory.Avg(), 2), linmath.FormatP(memory.Max(), 2))},
			[]string{"converging", emoji.MapBool(loss.Diff() < 0)},
		)
	}
	return rows
}

func recentRows(result model.Result) [][]string {
	ring := buffer.NewRing(recentSamples + 1)
	for _, sample := range result.Samples() {
		ring.Push(sample)
	}
	samples := ring.Get()

	rows := make([][]string, 0, recentSamples)
	for i, s := range samples {
		if i == 0 && len(samples) > recentSamples {
			// only there to compute the trend of the next one
			continue
		}
		trend := emoji.Zero
		if i > 0 {
			trend = emoji.MapTrend(samples[i-1].Loss, s.Loss, trendThreshold)
		}
		rows = append(rows, []string{
			strconv.Itoa(s.Epoch),
			linmath.FormatP(s.Loss, 6),
			linmath.FormatP(s.Weight, 6),
			linmath.FormatP(s.Bias, 6),
			linmath.FormatP(s.MemoryKB, 2),
			linmath.FormatP(s.Elapsed, 6),
			trend,
		})
	}
	return rows
}

// LossCurve renders the sampled losses as an ascii graph.
func LossCurve(result model.Result) string {
	losses := make([]float64, 0, result.Len())
	for _, l := range result.Losses {
		if math.IsNaN(l) || math.IsInf(l, 0) {
			continue
		}
		losses = append(losses, l)
	}
	if len(losses) == 0 {
		return ""
	}
	min, max := linmath.Range(losses)
	if min == max {
		// a flat line gives the graph a zero range
		return fmt.Sprintf("MSE constant at %s", linmath.Format(min))
	}
	return asciigraph.Plot(losses,
		asciigraph.Height(10),
		asciigraph.Caption(fmt.Sprintf("MSE every %d epochs", result.SampleEvery)))
}
