package benchmark

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMeasure(t *testing.T) {
	ran := false
	var sink [][]byte
	r := Measure("alloc", func() {
		ran = true
		for i := 0; i < 64; i++ {
			sink = append(sink, make([]byte, 16*1024))
		}
		time.Sleep(2 * time.Millisecond)
	})

	assert.True(t, ran)
	assert.Len(t, sink, 64)
	assert.Equal(t, "alloc", r.Label)
	assert.GreaterOrEqual(t, r.Elapsed, 2*time.Millisecond)
	assert.Greater(t, r.TotalAllocMB, 0.0)
	assert.Positive(t, r.CPUCores)
	assert.False(t, r.Started.IsZero())
}

func TestRun_CallsFunction(t *testing.T) {
	calls := 0
	Run("noop", func() { calls++ })
	assert.Equal(t, 1, calls)
}

func TestToMB(t *testing.T) {
	assert.Equal(t, 1.0, toMB(1024*1024))
	assert.Equal(t, -0.5, toMB(-512*1024))
}
