package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "linreg"

// Prometheus holds the collectors for the training runs.
type Prometheus struct {
	Runs     prometheus.Counter
	Epochs   prometheus.Counter
	Loss     prometheus.Gauge
	Weight   prometheus.Gauge
	Bias     prometheus.Gauge
	Memory   prometheus.Gauge
	Duration prometheus.Gauge
}

// NewPrometheusMetrics creates the training collectors.
func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Number of completed training runs.",
		}),
		Epochs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "epochs_total",
			Help:      "Number of executed epochs.",
		}),
		Loss: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "loss",
			Help:      "Mean squared error of the last reported epoch.",
		}),
		Weight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "weight",
			Help:      "Current weight of the line.",
		}),
		Bias: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "bias",
			Help:      "Current bias of the line.",
		}),
		Memory: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "memory_kb",
			Help:      "Resident memory of the last sample in KiB.",
		}),
		Duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "execution_seconds",
			Help:      "Execution time of the last training run.",
		}),
	}
}

func (p Prometheus) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		p.Runs,
		p.Epochs,
		p.Loss,
		p.Weight,
		p.Bias,
		p.Memory,
		p.Duration,
	}
}
