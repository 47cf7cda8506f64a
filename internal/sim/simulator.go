// Package sim implements the LC-2K fetch-decode-execute loop, routing every
// memory reference through internal/cache.
package sim

import (
	"io"

	"lc2k/internal/cache"
)

const numMemory = 65536

const (
	opAdd = iota
	opNor
	opLw
	opSw
	opBeq
	opJalr
	opHalt
	opNoop
)

// Simulator holds the processor state and the cache servicing its memory
// references. Memory itself is a flat array owned by the Simulator and
// shared by reference with the cache — there is exactly one memory array.
type Simulator struct {
	PC    int
	Reg   [8]int32
	Mem   []int32
	cache *cache.Cache
}

// New loads image into a fresh 65536-word memory starting at address 0 and
// attaches a cache with the given geometry, tracing every cache action to
// trace.
func New(image []int32, blockSize, numSets, blocksPerSet int, trace io.Writer) (*Simulator, error) {
	mem := make([]int32, numMemory)
	copy(mem, image)

	c, err := cache.New(blockSize, numSets, blocksPerSet, mem, cache.NewTracer(trace))
	if err != nil {
		return nil, err
	}

	return &Simulator{Mem: mem, cache: c}, nil
}

// Flush writes every dirty cache block back to Mem without emitting trace
// lines. Used to check cache/memory coherence after a run.
func (s *Simulator) Flush() {
	s.cache.Flush()
}

// Run executes instructions until halt, returning nil on a successful halt.
func (s *Simulator) Run() error {
	for {
		halted, err := s.step()
		if err != nil {
			return err
		}
		if halted {
			return nil
		}
	}
}
