// Package cache implements the write-back, write-allocate set-associative
// cache that sits between the simulator and flat memory.
package cache

import "fmt"

// line is one cache block. valid marks an unused line rather than relying
// on a sentinel tag value to mean "empty".
type line struct {
	valid     bool
	tag       int32
	dirty     bool
	lru       int64
	blockHead int
	data      []int32
}

// Cache is a numSets x blocksPerSet array of lines, each blockSize words
// wide. It reads and writes directly into mem, the simulator's own
// word-addressed memory array — the cache never owns a copy of memory, only
// of its resident blocks.
type Cache struct {
	blockSize    int
	numSets      int
	blocksPerSet int
	offsetBits   uint
	setBits      uint
	sets         [][]line
	clock        int64
	mem          []int32
	tracer       *Tracer
}

// New validates geometry (blockSize and numSets must be powers of two,
// since address decomposition uses bitmasks) and builds an all-invalid
// cache backed by mem.
func New(blockSize, numSets, blocksPerSet int, mem []int32, tracer *Tracer) (*Cache, error) {
	if blockSize <= 0 || numSets <= 0 || blocksPerSet <= 0 {
		return nil, fmt.Errorf("cache: blockSize, numSets and blocksPerSet must be positive")
	}
	if !isPowerOfTwo(blockSize) || !isPowerOfTwo(numSets) {
		return nil, fmt.Errorf("cache: blockSize and numSets must be powers of two")
	}

	c := &Cache{
		blockSize:    blockSize,
		numSets:      numSets,
		blocksPerSet: blocksPerSet,
		offsetBits:   log2(blockSize),
		setBits:      log2(numSets),
		sets:         make([][]line, numSets),
		mem:          mem,
		tracer:       tracer,
	}
	for s := range c.sets {
		c.sets[s] = make([]line, blocksPerSet)
	}
	return c, nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func log2(n int) uint {
	var bits uint
	for n > 1 {
		n >>= 1
		bits++
	}
	return bits
}

func (c *Cache) decompose(addr int) (blockOffset, setIndex int, tag int32) {
	blockOffset = addr & (c.blockSize - 1)
	setIndex = (addr >> c.offsetBits) & (c.numSets - 1)
	tag = int32(addr >> (c.offsetBits + c.setBits))
	return
}

func (c *Cache) blockHeadOf(addr int) int {
	return addr &^ (c.blockSize - 1)
}

// Load reads the word at addr, servicing through the cache.
func (c *Cache) Load(addr int) int32 {
	ln := c.resident(addr)
	c.bump(ln)
	c.tracer.word(CacheToProcessor, addr)
	blockOffset, _, _ := c.decompose(addr)
	return ln.data[blockOffset]
}

// Store writes value at addr, servicing through the cache and marking the
// line dirty.
func (c *Cache) Store(addr int, value int32) {
	ln := c.resident(addr)
	c.bump(ln)
	c.tracer.word(ProcessorToCache, addr)
	blockOffset, _, _ := c.decompose(addr)
	ln.data[blockOffset] = value
	ln.dirty = true
}

// resident returns the line holding addr's block, installing it (possibly
// evicting another line in the same set) if it isn't already cached.
func (c *Cache) resident(addr int) *line {
	_, setIndex, tag := c.decompose(addr)
	set := c.sets[setIndex]

	for i := range set {
		if set[i].valid && set[i].tag == tag {
			return &set[i]
		}
	}

	idx := c.findUnused(set)
	if idx == -1 {
		idx = c.evict(set)
	}
	c.install(&set[idx], addr, tag)
	return &set[idx]
}

func (c *Cache) findUnused(set []line) int {
	for i := range set {
		if !set[i].valid {
			return i
		}
	}
	return -1
}

// evict picks the line in set with the smallest LRU timestamp, writes it
// back if dirty (else emits cacheToNowhere), and marks it unused.
func (c *Cache) evict(set []line) int {
	victim := 0
	for i := 1; i < len(set); i++ {
		if set[i].lru < set[victim].lru {
			victim = i
		}
	}
	v := &set[victim]
	if v.dirty {
		copy(c.mem[v.blockHead:v.blockHead+c.blockSize], v.data)
		c.tracer.block(CacheToMemory, v.blockHead, c.blockSize)
	} else {
		c.tracer.block(CacheToNowhere, v.blockHead, c.blockSize)
	}
	v.valid = false
	return victim
}

func (c *Cache) install(ln *line, addr int, tag int32) {
	head := c.blockHeadOf(addr)
	ln.data = append(make([]int32, 0, c.blockSize), c.mem[head:head+c.blockSize]...)
	ln.tag = tag
	ln.blockHead = head
	ln.valid = true
	ln.dirty = false
	c.tracer.block(MemoryToCache, head, c.blockSize)
}

func (c *Cache) bump(ln *line) {
	c.clock++
	ln.lru = c.clock
}

// Flush writes every dirty block back to its recorded memory location,
// without emitting trace lines — used to check cache/memory coherence
// after a run completes.
func (c *Cache) Flush() {
	for _, set := range c.sets {
		for i := range set {
			if set[i].valid && set[i].dirty {
				copy(c.mem[set[i].blockHead:set[i].blockHead+c.blockSize], set[i].data)
				set[i].dirty = false
			}
		}
	}
}
