// benchmark.go
// A reusable benchmarking module for Bio Toolkit
// Measures execution time and memory usage for any wrapped function

package benchmark

import (
	"os"
	"runtime"
	"time"

	"bio_toolkit_go/logger"
)

// Report is a snapshot of the resources a wrapped function consumed
type Report struct {
	Label           string
	Started         time.Time
	Hostname        string
	Elapsed         time.Duration
	MemoryUsedMB    float64 // change in live heap
	TotalAllocMB    float64 // everything allocated during the run
	HeapMB          float64 // live heap after the run
	SysMB           float64 // memory obtained from the OS
	GCCycles        uint32
	CPUCores        int
	GoroutinesStart int
	GoroutinesEnd   int
}

// Measure runs f once and returns what it cost
func Measure(label string, f func()) Report {
	r := Report{Label: label, Started: time.Now(), CPUCores: runtime.NumCPU()}
	if host, err := os.Hostname(); err == nil {
		r.Hostname = host
	}

	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	r.GoroutinesStart = runtime.NumGoroutine()
	start := time.Now()

	f()

	r.Elapsed = time.Since(start)
	runtime.ReadMemStats(&memEnd)
	r.GoroutinesEnd = runtime.NumGoroutine()

	r.MemoryUsedMB = toMB(int64(memEnd.Alloc) - int64(memStart.Alloc))
	r.TotalAllocMB = toMB(int64(memEnd.TotalAlloc - memStart.TotalAlloc))
	r.HeapMB = toMB(int64(memEnd.HeapAlloc))
	r.SysMB = toMB(int64(memEnd.Sys))
	r.GCCycles = memEnd.NumGC - memStart.NumGC
	return r
}

// Run wraps f, then logs the report with host and runtime details for repeatability.
func Run(label string, f func()) {
	log := logger.Named("benchmark")
	log.Info().Str("label", label).Msg("running")

	r := Measure(label, f)

	log.Info().
		Str("label", r.Label).
		Time("started", r.Started).
		Str("hostname", r.Hostname).
		Str("go_version", runtime.Version()).
		Str("os_arch", runtime.GOOS+"/"+runtime.GOARCH).
		Dur("elapsed", r.Elapsed).
		Float64("memory_used_mb", r.MemoryUsedMB).
		Float64("total_alloc_mb", r.TotalAllocMB).
		Float64("heap_mb", r.HeapMB).
		Float64("sys_mb", r.SysMB).
		Uint32("gc_cycles", r.GCCycles).
		Int("cpu_cores", r.CPUCores).
		Int("goroutines_start", r.GoroutinesStart).
		Int("goroutines_end", r.GoroutinesEnd).
		Msg("benchmark complete")
}

func toMB(b int64) float64 {
	return float64(b) / 1024.0 / 1024.0
}
