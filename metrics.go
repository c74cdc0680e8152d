package pool

// NumBlocks returns the number of blocks allocated in the current generation.
func (p *Pool[T]) NumBlocks() int {
	return len(p.blocks)
}

// Capacity returns the total number of slots reserved across all blocks,
// vended or not.
func (p *Pool[T]) Capacity() int {
	sum := 0
	for _, b := range p.blocks {
		sum += b.layout.Count
	}
	return sum
}

// Allocated returns the number of slots vended in the current generation.
func (p *Pool[T]) Allocated() int {
	return p.vended
}

// BytesReserved returns the total size in bytes of all blocks.
func (p *Pool[T]) BytesReserved() int {
	sum := 0
	for _, b := range p.blocks {
		n, _ := b.layout.Bytes()
		sum += n
	}
	return sum
}

// BlockCapacities returns the capacity of each block in allocation order.
func (p *Pool[T]) BlockCapacities() []int {
	caps := make([]int, len(p.blocks))
	for i, b := range p.blocks {
		caps[i] = b.layout.Count
	}
	return caps
}

// Utilization returns the ratio of vended slots to reserved slots (0.0 to 1.0).
// Returns 0.0 if the pool has no blocks.
func (p *Pool[T]) Utilization() float64 {
	capacity := p.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(p.vended) / float64(capacity)
}

// InitialCapacity returns the capacity the pool was created with.
func (p *Pool[T]) InitialCapacity() int {
	return p.initCap
}

// Backing returns the pool's block backing.
func (p *Pool[T]) Backing() Backing {
	return p.backing
}

// Metrics returns a snapshot of pool statistics.
func (p *Pool[T]) Metrics() PoolMetrics {
	return PoolMetrics{
		NumBlocks:       p.NumBlocks(),
		Capacity:        p.Capacity(),
		Allocated:       p.Allocated(),
		BytesReserved:   p.BytesReserved(),
		InitialCapacity: p.InitialCapacity(),
		Utilization:     p.Utilization(),
	}
}

// PoolMetrics contains statistical information about a pool.
type PoolMetrics struct {
	NumBlocks       int     // Blocks in the current generation
	Capacity        int     // Reserved slots
	Allocated       int     // Vended slots
	BytesReserved   int     // Total block size in bytes
	InitialCapacity int     // Configured initial capacity
	Utilization     float64 // Ratio of vended to reserved slots (0.0-1.0)
}

// Add returns the element-wise sum of m and o. Utilization is recomputed.
func (m PoolMetrics) Add(o PoolMetrics) PoolMetrics {
	sum := PoolMetrics{
		NumBlocks:       m.NumBlocks + o.NumBlocks,
		Capacity:        m.Capacity + o.Capacity,
		Allocated:       m.Allocated + o.Allocated,
		BytesReserved:   m.BytesReserved + o.BytesReserved,
		InitialCapacity: m.InitialCapacity,
	}
	if sum.Capacity > 0 {
		sum.Utilization = float64(sum.Allocated) / float64(sum.Capacity)
	}
	return sum
}

// Thread-safe metrics for SafePool

// NumBlocks thread-safely returns the number of blocks.
func (s *SafePool[T]) NumBlocks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.NumBlocks()
}

// Allocated thread-safely returns the number of vended slots.
func (s *SafePool[T]) Allocated() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Allocated()
}

// Capacity thread-safely returns the number of reserved slots.
func (s *SafePool[T]) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Capacity()
}

// BytesReserved thread-safely returns the total size in bytes of all blocks.
func (s *SafePool[T]) BytesReserved() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.BytesReserved()
}

// BlockCapacities thread-safely returns the capacity of each block.
func (s *SafePool[T]) BlockCapacities() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.BlockCapacities()
}

// Utilization thread-safely returns the ratio of vended to reserved slots.
func (s *SafePool[T]) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Utilization()
}

// InitialCapacity returns the capacity the pool was created with.
func (s *SafePool[T]) InitialCapacity() int {
	return s.p.InitialCapacity()
}

// Backing returns the pool's block backing.
func (s *SafePool[T]) Backing() Backing {
	return s.p.Backing()
}

// Metrics thread-safely returns a snapshot of pool statistics.
func (s *SafePool[T]) Metrics() PoolMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Metrics()
}
