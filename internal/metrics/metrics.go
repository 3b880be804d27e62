package metrics

import (
	"fmt"
	"sync"

	"github.com/drakos74/linreg-bench/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

// Observer is the process wide training metrics.
var Observer = New()

// Metrics tracks the training runs.
type Metrics struct {
	mutex      *sync.RWMutex
	registry   *prometheus.Registry
	prometheus Prometheus
	epoch      int
}

// New creates a new metrics instance on its own registry.
func New() *Metrics {
	m := &Metrics{
		mutex:      new(sync.RWMutex),
		registry:   prometheus.NewRegistry(),
		prometheus: NewPrometheusMetrics(),
	}
	m.registry.MustRegister(m.prometheus.collectors()...)
	return m
}

// Registry returns the registry the collectors are registered to.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Progress records the intermediate training state.
// It can be used directly as a training sink.
func (m *Metrics) Progress(progress model.Progress) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if progress.Epoch > m.epoch {
		m.prometheus.Epochs.Add(float64(progress.Epoch - m.epoch))
		m.epoch = progress.Epoch
	}
	m.prometheus.Loss.Set(progress.Loss)
	m.prometheus.Weight.Set(progress.Weight)
	m.prometheus.Bias.Set(progress.Bias)
}

// Result records the final state of a training run.
func (m *Metrics) Result(result model.Result) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	reported := m.epoch > 0
	if result.Epochs > m.epoch {
		m.prometheus.Epochs.Add(float64(result.Epochs - m.epoch))
	}
	// next run starts counting from zero again
	m.epoch = 0
	m.prometheus.Runs.Inc()
	m.prometheus.Weight.Set(result.Weight)
	m.prometheus.Bias.Set(result.Bias)
	m.prometheus.Duration.Set(result.ExecutionTime)
	if n := result.Len(); n > 0 {
		m.prometheus.Memory.Set(result.MemoryKB[n-1])
		// without any progress the last sample is the best loss we know of
		if !reported {
			m.prometheus.Loss.Set(result.Losses[n-1])
		}
	}
}

// WriteTextfile dumps the current metrics in the textfile collector format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("could not write metrics to '%s': %w", path, err)
	}
	log.Debug().Str("path", path).Msg("metrics written")
	return nil
}
