package process

import (
	"github.com/prometheus/procfs"
)

const kib = 1024.0

// MemoryKB returns the resident memory of the current process in KiB.
// It returns 0 if the measurement is not available.
func MemoryKB() float64 {
	fs, err := procfs.NewDefaultFS()
	if err != nil {
		return 0
	}
	return Probe(fs)()
}

// Probe creates a memory probe reading the current process stats from the given proc filesystem.
func Probe(fs procfs.FS) func() float64 {
	return func() (kb float64) {
		defer func() {
			if r := recover(); r != nil {
				kb = 0
			}
		}()
		proc, err := fs.Self()
		if err != nil {
			return 0
		}
		stat, err := proc.Stat()
		if err != nil {
			return 0
		}
		return float64(stat.ResidentMemory()) / kib
	}
}
