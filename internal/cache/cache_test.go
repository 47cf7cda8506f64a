package cache_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lc2k/internal/cache"
)

func TestScenario6_HitThenMiss(t *testing.T) {
	mem := make([]int32, 8)
	var buf bytes.Buffer
	c, err := cache.New(2, 1, 1, mem, cache.NewTracer(&buf))
	require.NoError(t, err)

	c.Load(0)
	c.Load(1)
	c.Load(0)
	c.Load(2)

	want := []string{
		"@@@ transferring word [0-1] from the memory to the cache",
		"@@@ transferring word [0-0] from the cache to the processor",
		"@@@ transferring word [1-1] from the cache to the processor",
		"@@@ transferring word [0-0] from the cache to the processor",
		"@@@ transferring word [0-1] from the cache to the nowhere",
		"@@@ transferring word [2-3] from the memory to the cache",
		"@@@ transferring word [2-2] from the cache to the processor",
	}
	got := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, want, got)
}

func TestWriteMarksDirtyAndFlushesOnEviction(t *testing.T) {
	mem := make([]int32, 8)
	var buf bytes.Buffer
	c, err := cache.New(2, 1, 1, mem, cache.NewTracer(&buf))
	require.NoError(t, err)

	c.Store(0, 99)
	c.Load(2) // same set, evicts the dirty block at [0-1], writing it back.

	assert.EqualValues(t, 99, mem[0])
	assert.Contains(t, buf.String(), "from the cache to the memory")
}

func TestRejectsNonPowerOfTwoGeometry(t *testing.T) {
	mem := make([]int32, 8)
	_, err := cache.New(3, 1, 1, mem, cache.NewTracer(&bytes.Buffer{}))
	assert.Error(t, err)
}

func TestFlushWritesBackDirtyBlocks(t *testing.T) {
	mem := make([]int32, 4)
	c, err := cache.New(2, 1, 1, mem, cache.NewTracer(&bytes.Buffer{}))
	require.NoError(t, err)

	c.Store(1, 7)
	c.Flush()
	assert.EqualValues(t, 7, mem[1])
}
