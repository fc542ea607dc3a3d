package arena

// SizeInUse returns the total number of bytes handed out across every
// block, including alignment padding. Returns 0 after Release.
func (a *Arena) SizeInUse() int {
	sum := 0
	for i := range a.blocks {
		sum += a.blocks[i].used
	}
	return sum
}

// Capacity returns the total reserved capacity, in bytes, across every
// block. Returns 0 after Release.
func (a *Arena) Capacity() int {
	sum := 0
	for i := range a.blocks {
		sum += len(a.blocks[i].buf)
	}
	return sum
}

// NumBlocks returns the number of blocks in the chain. Returns 0 after
// Release.
func (a *Arena) NumBlocks() int {
	return len(a.blocks)
}

// Utilization returns the ratio of bytes in use to total capacity
// (0.0 to 1.0). Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// Alignment returns the configured alignment boundary.
func (a *Arena) Alignment() int {
	return a.align
}

// InitialCapacity returns the head block's capacity, the reference value
// for the chain-growth doubling policy.
func (a *Arena) InitialCapacity() int {
	return a.headCap
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() Metrics {
	return Metrics{
		SizeInUse:       a.SizeInUse(),
		Capacity:        a.Capacity(),
		NumBlocks:       a.NumBlocks(),
		InitialCapacity: a.InitialCapacity(),
		Alignment:       a.Alignment(),
		Utilization:     a.Utilization(),
	}
}

// Metrics contains statistical information about an arena.
type Metrics struct {
	SizeInUse       int     // bytes currently handed out
	Capacity        int     // total reserved bytes
	NumBlocks       int     // blocks in the chain
	InitialCapacity int     // head block capacity
	Alignment       int     // configured alignment boundary
	Utilization     float64 // SizeInUse / Capacity (0.0-1.0)
}
