package model

import (
	"errors"
	"fmt"
)

// InvalidInputErr signals a precondition violation before training starts.
var InvalidInputErr = errors.New("invalid input")

// Dataset holds the observations of a single feature regression.
type Dataset struct {
	X []float64 `json:"x" yaml:"x"`
	Y []float64 `json:"y" yaml:"y"`
}

// NewDataset creates a new dataset out of the given inputs and targets.
func NewDataset(x, y []float64) Dataset {
	return Dataset{
		X: x,
		Y: y,
	}
}

// Size returns the number of observations.
func (ds Dataset) Size() int {
	return len(ds.X)
}

// Validate checks that the dataset can be trained on.
func (ds Dataset) Validate() error {
	if len(ds.X) != len(ds.Y) {
		return fmt.Errorf("inconsistent dataset dimensions x:%d vs y:%d: %w", len(ds.X), len(ds.Y), InvalidInputErr)
	}
	if len(ds.X) == 0 {
		return fmt.Errorf("empty dataset: %w", InvalidInputErr)
	}
	return nil
}
