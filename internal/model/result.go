package model

// Progress is the intermediate state emitted during training.
type Progress struct {
	Epoch  int
	Loss   float64
	Weight float64
	Bias   float64
}

// Sample is a snapshot of the training metrics at a given epoch.
// NOTE : Loss is computed from the residuals before the epoch update,
// while Weight and Bias are the values after it.
type Sample struct {
	Epoch    int     `json:"epoch"`
	Loss     float64 `json:"loss"`
	Weight   float64 `json:"weight"`
	Bias     float64 `json:"bias"`
	MemoryKB float64 `json:"memory_kb"`
	Elapsed  float64 `json:"elapsed"`
}

// Result is the outcome of a training run.
// All metric sequences have the same length.
type Result struct {
	ID            string    `json:"id"`
	Weight        float64   `json:"weight"`
	Bias          float64   `json:"bias"`
	ExecutionTime float64   `json:"execution_time"`
	Epochs        int       `json:"epochs"`
	SampleEvery   int       `json:"sample_every"`
	Losses        []float64 `json:"losses"`
	Weights       []float64 `json:"weights"`
	Biases        []float64 `json:"biases"`
	MemoryKB      []float64 `json:"memory_kb"`
	Timestamps    []float64 `json:"timestamps"`
}

// NewResult creates an empty result with capacity for the samples of the given config.
func NewResult(id string, cfg Config) Result {
	n := cfg.Samples()
	return Result{
		ID:          id,
		Epochs:      cfg.Epochs,
		SampleEvery: cfg.Normalize().SampleEvery,
		Losses:      make([]float64, 0, n),
		Weights:     make([]float64, 0, n),
		Biases:      make([]float64, 0, n),
		MemoryKB:    make([]float64, 0, n),
		Timestamps:  make([]float64, 0, n),
	}
}

// Add appends the sample to the metric sequences.
func (r *Result) Add(s Sample) {
	r.Losses = append(r.Losses, s.Loss)
	r.Weights = append(r.Weights, s.Weight)
	r.Biases = append(r.Biases, s.Bias)
	r.MemoryKB = append(r.MemoryKB, s.MemoryKB)
	r.Timestamps = append(r.Timestamps, s.Elapsed)
}

// Len returns the number of recorded samples.
func (r Result) Len() int {
	return len(r.Losses)
}

// Samples zips the metric sequences back into samples.
func (r Result) Samples() []Sample {
	samples := make([]Sample, r.Len())
	for i := range samples {
		samples[i] = Sample{
			Epoch:    i * r.SampleEvery,
			Loss:     r.Losses[i],
			Weight:   r.Weights[i],
			Bias:     r.Biases[i],
			MemoryKB: r.MemoryKB[i],
			Elapsed:  r.Timestamps[i],
		}
	}
	return samples
}

// EpochAxis returns the epoch index of each sample.
func (r Result) EpochAxis() []float64 {
	epochs := make([]float64, r.Len())
	for i := range epochs {
		epochs[i] = float64(i * r.SampleEvery)
	}
	return epochs
}

// Predict evaluates the trained line at x.
func (r Result) Predict(x float64) float64 {
	return r.Weight*x + r.Bias
}
