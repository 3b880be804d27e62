package config

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/drakos74/linreg-bench/internal/model"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed *.json *.yaml
var presets embed.FS

// Run is the configuration of a training run.
type Run struct {
	Dataset  model.Dataset `json:"dataset" yaml:"dataset"`
	Training model.Config  `json:"training" yaml:"training"`
	Output   Output        `json:"output" yaml:"output"`
}

// Output defines where the run artifacts go. Empty values disable the artifact.
type Output struct {
	Chart   string `json:"chart" yaml:"chart"`
	Export  string `json:"export" yaml:"export"`
	Metrics string `json:"metrics" yaml:"metrics"`
}

// Default returns the reference run, fitting y = 2x.
func Default() Run {
	return Run{
		Dataset: model.NewDataset(
			[]float64{1, 2, 3, 4, 5},
			[]float64{2, 4, 6, 8, 10},
		),
		Training: model.NewConfig(0.01, 1000),
		Output: Output{
			Chart: "go_metrics.png",
		},
	}
}

// Validate checks that the run can be executed.
func (r Run) Validate() error {
	if err := r.Dataset.Validate(); err != nil {
		return err
	}
	return r.Training.Validate()
}

// Load loads the run config from the given json or yaml file.
// Values missing from the file keep their defaults.
func Load(file string) (Run, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return Default(), fmt.Errorf("could not load config '%s': %w", file, err)
	}
	return decode(file, b)
}

// Preset loads one of the run configs bundled with the binary.
func Preset(key string) (Run, error) {
	for _, ext := range []string{".json", ".yaml"} {
		b, err := presets.ReadFile(key + ext)
		if err == nil {
			return decode(key+ext, b)
		}
	}
	return Default(), fmt.Errorf("unknown preset '%s'", key)
}

func decode(file string, b []byte) (Run, error) {
	run := Default()

	var err error
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".json":
		err = json.Unmarshal(b, &run)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &run)
	default:
		return run, fmt.Errorf("unsupported config format '%s'", ext)
	}
	if err != nil {
		return run, fmt.Errorf("could not unmarshal the config for %s: %w", file, err)
	}

	run.Training = run.Training.Normalize()

	log.Info().Str("config", file).Msg("loaded config")

	return run, nil
}
