package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordTiming(t *testing.T) {
	c := NewCollector()

	c.RecordTiming(OpVectorMatch, 10*time.Millisecond)
	c.RecordTiming(OpVectorMatch, 30*time.Millisecond)
	c.RecordTiming(OpVectorMatch, 20*time.Millisecond)

	snap := c.Snapshot()
	op, ok := snap.Operations[OpVectorMatch]
	require.True(t, ok)

	assert.Equal(t, int64(3), op.Count)
	assert.Equal(t, int64(60), op.TotalTimeMs)
	assert.Equal(t, 20.0, op.AvgTimeMs)
	assert.Equal(t, int64(10), op.MinTimeMs)
	assert.Equal(t, int64(30), op.MaxTimeMs)
}

func TestRecordMethodAndAction(t *testing.T) {
	c := NewCollector()

	c.RecordMethod("semantic")
	c.RecordMethod("semantic")
	c.RecordMethod("fallback")
	c.RecordAction("added")

	snap := c.Snapshot()
	assert.Equal(t, int64(2), snap.Methods["semantic"])
	assert.Equal(t, int64(1), snap.Methods["fallback"])
	assert.Equal(t, int64(1), snap.Actions["added"])
}

func TestSnapshotEmpty(t *testing.T) {
	c := NewCollector()

	snap := c.Snapshot()
	assert.Empty(t, snap.Operations)
	assert.Empty(t, snap.Methods)
	assert.GreaterOrEqual(t, snap.UptimeSeconds, 0.0)
}

func TestCollectorConcurrentAccess(t *testing.T) {
	c := NewCollector()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.RecordTiming(OpExecute, time.Millisecond)
				c.RecordMethod("llm")
				_ = c.Snapshot()
			}
		}()
	}
	wg.Wait()

	snap := c.Snapshot()
	assert.Equal(t, int64(800), snap.Operations[OpExecute].Count)
	assert.Equal(t, int64(800), snap.Methods["llm"])
}
