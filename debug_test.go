package arena_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenakit/arena"
)

func TestDump(t *testing.T) {
	a := arena.New(128)
	defer a.Release()

	a.AllocBytes(18)
	a.AllocBytes(1000) // second block

	var sb strings.Builder
	a.Dump(&sb)
	out := sb.String()

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3, "two block lines plus the summary")

	assert.Contains(t, lines[0], "block 0: cap=128 used=24")
	assert.Contains(t, lines[0], "addr=0x")
	assert.Contains(t, lines[1], "block 1: cap=2000 used=1000")
	assert.Contains(t, lines[2], "blocks: 2")
	assert.Contains(t, lines[2], "capacity: 2.1 KiB")
	assert.Contains(t, lines[2], "used: 1.0 KiB")
}

func TestDumpDoesNotMutate(t *testing.T) {
	a := arena.New(256)
	defer a.Release()

	a.AllocBytes(50)
	before := a.Metrics()
	_ = a.DebugString()
	assert.Equal(t, before, a.Metrics())
}

func TestDumpAfterRelease(t *testing.T) {
	a := arena.New(128)
	a.AllocBytes(8)
	a.Release()

	assert.Equal(t, "blocks: 0, capacity: 0 B, used: 0 B\n", a.DebugString())
}
