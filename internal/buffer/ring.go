package buffer

import (
	"github.com/drakos74/linreg-bench/internal/model"
)

// Ring is a ring buffer keeping the last x samples
type Ring struct {
	index  int
	count  int
	values []model.Sample
}

// NewRing creates a new ring with the given buffer size.
func NewRing(size int) *Ring {
	if size < 1 {
		size = 1
	}
	return &Ring{
		values: make([]model.Sample, size),
	}
}

// Size returns the number of elements within the ring.
func (r *Ring) Size() int {
	if r.count < len(r.values) {
		return r.count
	}
	return len(r.values)
}

// Push adds an element to the ring.
func (r *Ring) Push(v model.Sample) {
	r.values[r.index] = v
	r.index = r.next(r.index)
	r.count++
}

func (r *Ring) next(index int) int {
	return (index + 1) % len(r.values)
}

// Get returns the ring elements, oldest first.
func (r *Ring) Get() []model.Sample {
	l := r.Size()
	v := make([]model.Sample, l)
	start := 0
	if r.count > len(r.values) {
		start = r.index
	}
	for i := 0; i < l; i++ {
		v[i] = r.values[(start+i)%len(r.values)]
	}
	return v
}
