package descent

import (
	"time"

	"github.com/drakos74/go-ex-machina/xmath"
	"github.com/drakos74/linreg-bench/internal/model"
	"github.com/drakos74/linreg-bench/internal/process"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Probe reads the current memory usage in KiB.
type Probe func() float64

// Sink consumes the training progress.
type Sink func(progress model.Progress)

// Clock is the time source of the trainer.
type Clock func() time.Time

// Chain combines the given sinks into one.
func Chain(sinks ...Sink) Sink {
	return func(progress model.Progress) {
		for _, sink := range sinks {
			if sink != nil {
				sink(progress)
			}
		}
	}
}

// Trainer fits a line to a dataset with batch gradient descent.
type Trainer struct {
	probe Probe
	sink  Sink
	clock Clock
}

// Option configures the trainer.
type Option func(t *Trainer)

// WithProbe sets the memory probe.
func WithProbe(probe Probe) Option {
	return func(t *Trainer) {
		t.probe = probe
	}
}

// WithSink sets the progress sink.
func WithSink(sink Sink) Option {
	return func(t *Trainer) {
		t.sink = sink
	}
}

// WithClock sets the time source.
func WithClock(clock Clock) Option {
	return func(t *Trainer) {
		t.clock = clock
	}
}

// New creates a new trainer.
func New(options ...Option) *Trainer {
	t := &Trainer{
		probe: process.MemoryKB,
		sink:  func(progress model.Progress) {},
		clock: time.Now,
	}
	for _, option := range options {
		option(t)
	}
	return t
}

// Train runs the configured number of epochs over the dataset.
// It returns an error wrapping model.InvalidInputErr if the input cannot be trained on,
// in which case no iteration takes place.
func (t *Trainer) Train(ds model.Dataset, cfg model.Config) (model.Result, error) {
	if err := ds.Validate(); err != nil {
		return model.Result{}, err
	}
	if err := cfg.Validate(); err != nil {
		return model.Result{}, err
	}
	cfg = cfg.Normalize()

	n := ds.Size()
	m := float64(n)
	x := xmath.Vec(n).With(ds.X...)
	residual := xmath.Vec(n)

	result := model.NewResult(uuid.New().String(), cfg)

	log.Debug().
		Str("run", result.ID).
		Int("size", n).
		Float64("rate", cfg.LearningRate).
		Int("epochs", cfg.Epochs).
		Msg("start training")

	var w, b float64
	start := t.clock()
	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		for i := 0; i < n; i++ {
			residual[i] = (w*x[i] + b) - ds.Y[i]
		}

		// both gradients come from the parameters before the update
		dw := (2 / m) * residual.Dot(x)
		db := (2 / m) * residual.Sum()
		w -= cfg.LearningRate * dw
		b -= cfg.LearningRate * db

		mse := residual.Dot(residual) / m
		memory := t.probe()
		elapsed := t.clock().Sub(start).Seconds()

		if epoch%cfg.SampleEvery == 0 {
			result.Add(model.Sample{
				Epoch:    epoch,
				Loss:     mse,
				Weight:   w,
				Bias:     b,
				MemoryKB: memory,
				Elapsed:  elapsed,
			})
		}

		if (epoch+1)%cfg.ReportEvery == 0 {
			t.sink(model.Progress{
				Epoch:  epoch + 1,
				Loss:   mse,
				Weight: w,
				Bias:   b,
			})
		}
	}

	result.Weight = w
	result.Bias = b
	result.ExecutionTime = t.clock().Sub(start).Seconds()

	log.Debug().
		Str("run", result.ID).
		Float64("weight", w).
		Float64("bias", b).
		Float64("duration", result.ExecutionTime).
		Int("samples", result.Len()).
		Msg("finished training")

	return result, nil
}
