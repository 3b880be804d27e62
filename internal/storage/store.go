package storage

import (
	"errors"
)

const (
	// ExportDir is the default directory for run exports.
	ExportDir = "runs"
)

var (
	NotFoundErr     = errors.New("not found")
	CouldNotLoadErr = errors.New("could not load")
)
