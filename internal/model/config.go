package model

import "fmt"

const (
	// DefaultSampleEvery is the epoch cadence for recording a metric sample.
	DefaultSampleEvery = 50
	// DefaultReportEvery is the epoch cadence for emitting progress.
	DefaultReportEvery = 200
)

// Config defines the training parameters for a single run.
type Config struct {
	LearningRate float64 `json:"learning_rate" yaml:"learning_rate"`
	Epochs       int     `json:"epochs" yaml:"epochs"`
	// SampleEvery defines every how many epochs a metric sample is recorded.
	// Zero falls back to DefaultSampleEvery.
	SampleEvery int `json:"sample_every" yaml:"sample_every"`
	// ReportEvery defines every how many epochs the progress is emitted.
	// Zero falls back to DefaultReportEvery.
	ReportEvery int `json:"report_every" yaml:"report_every"`
}

// NewConfig creates a new config with the default cadences.
func NewConfig(rate float64, epochs int) Config {
	return Config{
		LearningRate: rate,
		Epochs:       epochs,
		SampleEvery:  DefaultSampleEvery,
		ReportEvery:  DefaultReportEvery,
	}
}

// SampleAt sets the sampling cadence.
func (c Config) SampleAt(every int) Config {
	c.SampleEvery = every
	return c
}

// ReportAt sets the progress cadence.
func (c Config) ReportAt(every int) Config {
	c.ReportEvery = every
	return c
}

// Validate checks the config values.
func (c Config) Validate() error {
	// NOTE : written this way so that NaN is rejected as well
	if !(c.LearningRate > 0) {
		return fmt.Errorf("learning rate must be positive '%v': %w", c.LearningRate, InvalidInputErr)
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("epochs must be positive '%d': %w", c.Epochs, InvalidInputErr)
	}
	if c.SampleEvery < 0 {
		return fmt.Errorf("sample cadence cannot be negative '%d': %w", c.SampleEvery, InvalidInputErr)
	}
	if c.ReportEvery < 0 {
		return fmt.Errorf("report cadence cannot be negative '%d': %w", c.ReportEvery, InvalidInputErr)
	}
	return nil
}

// Normalize fills in the default cadences for unset values.
func (c Config) Normalize() Config {
	if c.SampleEvery == 0 {
		c.SampleEvery = DefaultSampleEvery
	}
	if c.ReportEvery == 0 {
		c.ReportEvery = DefaultReportEvery
	}
	return c
}

// Samples returns the number of samples a run with this config records.
func (c Config) Samples() int {
	c = c.Normalize()
	if c.Epochs <= 0 {
		return 0
	}
	return (c.Epochs + c.SampleEvery - 1) / c.SampleEvery
}
