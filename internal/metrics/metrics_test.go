package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/drakos74/linreg-bench/internal/algo/descent"
	"github.com/drakos74/linreg-bench/internal/model"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func train(t *testing.T, m *Metrics, epochs int) model.Result {
	ds := model.NewDataset([]float64{1, 2, 3, 4, 5}, []float64{2, 4, 6, 8, 10})
	trainer := descent.New(
		descent.WithProbe(func() float64 { return 42 }),
		descent.WithSink(m.Progress),
	)
	result, err := trainer.Train(ds, model.NewConfig(0.01, epochs))
	assert.NoError(t, err)
	m.Result(result)
	return result
}

func TestMetrics_Progress(t *testing.T) {

	m := New()
	m.Progress(model.Progress{Epoch: 200, Loss: 1.5, Weight: 1.9, Bias: 0.2})
	assert.Equal(t, 200.0, testutil.ToFloat64(m.prometheus.Epochs))
	assert.Equal(t, 1.5, testutil.ToFloat64(m.prometheus.Loss))
	assert.Equal(t, 1.9, testutil.ToFloat64(m.prometheus.Weight))
	assert.Equal(t, 0.2, testutil.ToFloat64(m.prometheus.Bias))

	m.Progress(model.Progress{Epoch: 400, Loss: 0.5})
	assert.Equal(t, 400.0, testutil.ToFloat64(m.prometheus.Epochs))
	assert.Equal(t, 0.5, testutil.ToFloat64(m.prometheus.Loss))
}

func TestMetrics_Result(t *testing.T) {

	m := New()

	result := train(t, m, 1000)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.prometheus.Runs))
	assert.Equal(t, 1000.0, testutil.ToFloat64(m.prometheus.Epochs))
	assert.Equal(t, result.Weight, testutil.ToFloat64(m.prometheus.Weight))
	assert.Equal(t, result.Bias, testutil.ToFloat64(m.prometheus.Bias))
	assert.Equal(t, 42.0, testutil.ToFloat64(m.prometheus.Memory))
	assert.Equal(t, result.ExecutionTime, testutil.ToFloat64(m.prometheus.Duration))

	// a run that never reports progress still counts all its epochs
	result = train(t, m, 150)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.prometheus.Runs))
	assert.Equal(t, 1150.0, testutil.ToFloat64(m.prometheus.Epochs))
	assert.Equal(t, result.Losses[result.Len()-1], testutil.ToFloat64(m.prometheus.Loss))
}

func TestMetrics_WriteTextfile(t *testing.T) {

	m := New()
	train(t, m, 400)

	path := filepath.Join(t.TempDir(), "linreg.prom")
	err := m.WriteTextfile(path)
	assert.NoError(t, err)

	b, err := os.ReadFile(path)
	assert.NoError(t, err)
	content := string(b)
	for _, name := range []string{
		"linreg_runs_total 1",
		"linreg_epochs_total 400",
		"linreg_memory_kb 42",
		"linreg_weight",
		"linreg_bias",
		"linreg_loss",
		"linreg_execution_seconds",
	} {
		assert.True(t, strings.Contains(content, name), name)
	}

	err = m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "linreg.prom"))
	assert.Error(t, err)
}

func TestObserver(t *testing.T) {
	assert.NotNil(t, Observer.Registry())
	mfs, err := Observer.Registry().Gather()
	assert.NoError(t, err)
	assert.Equal(t, 7, len(mfs))
}
