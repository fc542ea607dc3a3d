package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenakit/arena"
)

func TestCapacityDefaults(t *testing.T) {
	cases := []struct {
		capacity int
		expected int
	}{
		{0, arena.DefaultInitialCapacity},
		{-1, arena.DefaultInitialCapacity},
		{-1000, arena.DefaultInitialCapacity},
		{1, 1},
		{1 << 20, 1 << 20},
	}

	for _, tc := range cases {
		a := arena.New(tc.capacity)
		assert.Equalf(t, tc.expected, a.InitialCapacity(), "New(%d)", tc.capacity)
		assert.Equalf(t, tc.expected, a.Capacity(), "New(%d)", tc.capacity)
		a.Release()
	}
}

func TestOversizedAllocations(t *testing.T) {
	a := arena.New(1024)
	defer a.Release()

	large := a.AllocBytes(2048)
	require.Len(t, large, 2048)

	veryLarge := a.AllocBytes(1 << 20)
	require.Len(t, veryLarge, 1<<20)

	// Both regions must be fully writable.
	large[0], large[2047] = 1, 2
	veryLarge[0], veryLarge[1<<20-1] = 3, 4
	assert.Equal(t, byte(1), large[0])
	assert.Equal(t, byte(4), veryLarge[1<<20-1])
}

func TestTinyHeadBlock(t *testing.T) {
	a := arena.New(1)
	defer a.Release()

	// Even a 1-byte head block must serve aligned requests by growing.
	b := a.AllocBytes(1)
	require.Len(t, b, 1)
	assert.GreaterOrEqual(t, a.NumBlocks(), 2)
}

func TestManyResetCycles(t *testing.T) {
	a := arena.New(512)
	defer a.Release()

	for cycle := 0; cycle < 100; cycle++ {
		for i := 0; i < 20; i++ {
			b := a.AllocBytes(16)
			require.Len(t, b, 16)
		}
		blocks := a.NumBlocks()
		a.Reset()
		require.Equal(t, 0, a.SizeInUse())
		require.Equal(t, blocks, a.NumBlocks())
	}
	// 20*16 = 320 bytes per cycle fit the head block; the chain must
	// never have grown.
	assert.Equal(t, 1, a.NumBlocks())
}

func TestChainGrowthIsAppendOnly(t *testing.T) {
	a := arena.New(64)
	defer a.Release()

	prev := 0
	for i := 0; i < 10; i++ {
		a.AllocBytes(128)
		require.GreaterOrEqual(t, a.NumBlocks(), prev)
		prev = a.NumBlocks()
	}
}

func TestCustomReserveFuncIsUsed(t *testing.T) {
	var reserved []int
	a := arena.New(64, arena.WithReserveFunc(func(n int) []byte {
		reserved = append(reserved, n)
		return make([]byte, n)
	}))
	defer a.Release()

	require.Len(t, reserved, 1, "head block reserved at New")
	a.AllocBytes(100) // forces one growth
	require.Len(t, reserved, 2)
	// Reservations are padded by alignment-1 bytes for base alignment.
	assert.Equal(t, 64+7, reserved[0])
	assert.Equal(t, 208+7, reserved[1]) // max(64, 104)*2 + 7
}

func TestReleaseIsIdempotentOnAccounting(t *testing.T) {
	a := arena.New(128)
	a.AllocBytes(64)
	a.Release()
	a.Release() // dropping an empty chain is harmless

	assert.Equal(t, 0, a.Capacity())
	assert.Equal(t, 0, a.SizeInUse())
}
