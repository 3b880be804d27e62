package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/drakos74/linreg-bench/infra/config"
	"github.com/drakos74/linreg-bench/internal/algo/descent"
	"github.com/drakos74/linreg-bench/internal/metrics"
	"github.com/drakos74/linreg-bench/internal/model"
	"github.com/drakos74/linreg-bench/internal/report"
	"github.com/drakos74/linreg-bench/internal/storage"
	"github.com/drakos74/linreg-bench/internal/storage/file/json"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type trainOptions struct {
	config      string
	preset      string
	rate        float64
	epochs      int
	sampleEvery int
	reportEvery int
	x           []float64
	y           []float64
	chart       string
	export      string
	metrics     string
	curve       bool
}

func newTrainCmd() *cobra.Command {
	opts := new(trainOptions)
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train the model and report the metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := opts.run(cmd)
			if err != nil {
				return err
			}
			return train(cmd.OutOrStdout(), run, opts.curve)
		},
	}

	defaults := config.Default()
	flags := cmd.Flags()
	flags.StringVarP(&opts.config, "config", "c", "", "run config file (json or yaml)")
	flags.StringVarP(&opts.preset, "preset", "p", "", "bundled run config, e.g. linreg or offset")
	flags.Float64Var(&opts.rate, "rate", defaults.Training.LearningRate, "learning rate")
	flags.IntVar(&opts.epochs, "epochs", defaults.Training.Epochs, "number of epochs")
	flags.IntVar(&opts.sampleEvery, "sample-every", defaults.Training.SampleEvery, "epochs between metric samples")
	flags.IntVar(&opts.reportEvery, "report-every", defaults.Training.ReportEvery, "epochs between progress lines")
	flags.Float64SliceVar(&opts.x, "x", defaults.Dataset.X, "input values")
	flags.Float64SliceVar(&opts.y, "y", defaults.Dataset.Y, "target values")
	flags.StringVar(&opts.chart, "chart", defaults.Output.Chart, "png file for the charts, empty to skip")
	flags.StringVar(&opts.export, "export", defaults.Output.Export, "json file or directory for the run metrics, empty to skip")
	flags.Lookup("export").NoOptDefVal = storage.ExportDir
	flags.StringVar(&opts.metrics, "metrics", defaults.Output.Metrics, "prometheus textfile for the run metrics, empty to skip")
	flags.BoolVar(&opts.curve, "curve", true, "print the loss curve")
	return cmd
}

// run resolves the run config, flags set explicitly override the config file.
func (opts *trainOptions) run(cmd *cobra.Command) (config.Run, error) {
	run := config.Default()
	var err error
	switch {
	case opts.config != "" && opts.preset != "":
		return run, fmt.Errorf("only one of --config and --preset can be set")
	case opts.config != "":
		run, err = config.Load(opts.config)
	case opts.preset != "":
		run, err = config.Preset(opts.preset)
	}
	if err != nil {
		return run, err
	}

	flags := cmd.Flags()
	if flags.Changed("rate") {
		run.Training.LearningRate = opts.rate
	}
	if flags.Changed("epochs") {
		run.Training.Epochs = opts.epochs
	}
	if flags.Changed("sample-every") {
		run.Training.SampleEvery = opts.sampleEvery
	}
	if flags.Changed("report-every") {
		run.Training.ReportEvery = opts.reportEvery
	}
	if flags.Changed("x") {
		run.Dataset.X = opts.x
	}
	if flags.Changed("y") {
		run.Dataset.Y = opts.y
	}
	if flags.Changed("chart") {
		run.Output.Chart = opts.chart
	}
	if flags.Changed("export") {
		run.Output.Export = opts.export
	}
	if flags.Changed("metrics") {
		run.Output.Metrics = opts.metrics
	}
	return run, run.Validate()
}

func train(out io.Writer, run config.Run, curve bool) error {
	fmt.Fprintln(out, "=== LINEAR REGRESSION (GO) ===")

	trainer := descent.New(descent.WithSink(descent.Chain(
		func(progress model.Progress) {
			fmt.Fprintln(out, report.FormatProgress(progress))
		},
		metrics.Observer.Progress,
	)))

	result, err := trainer.Train(run.Dataset, run.Training)
	if err != nil {
		return fmt.Errorf("could not train: %w", err)
	}
	metrics.Observer.Result(result)

	log.Info().
		Str("run", result.ID).
		Float64("weight", result.Weight).
		Float64("bias", result.Bias).
		Float64("duration", result.ExecutionTime).
		Msg("training complete")

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Results:")
	fmt.Fprintln(out, report.FormatResult(result))
	fmt.Fprintln(out, report.FormatDuration(result))

	if err := report.Summary(out, run.Dataset, result); err != nil {
		return err
	}
	if curve {
		if c := report.LossCurve(result); c != "" {
			fmt.Fprintln(out, c)
		}
	}

	if run.Output.Chart != "" {
		if err := report.Chart(result, run.Output.Chart); err != nil {
			return fmt.Errorf("could not save chart: %w", err)
		}
		fmt.Fprintf(out, "Charts saved as '%s'\n", run.Output.Chart)
	}
	if run.Output.Export != "" {
		path := exportPath(run.Output.Export, result.ID)
		if err := json.Export(path, result); err != nil {
			return fmt.Errorf("could not export run: %w", err)
		}
		log.Info().Str("run", result.ID).Str("path", path).Msg("exported metrics")
	}
	if run.Output.Metrics != "" {
		if err := metrics.Observer.WriteTextfile(run.Output.Metrics); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, report.FormatPrediction(result, report.PredictAt))
	return nil
}

// exportPath names the export file after the run when the target has no extension.
func exportPath(target, id string) string {
	if filepath.Ext(target) != "" {
		return target
	}
	return filepath.Join(target, id+".json")
}
