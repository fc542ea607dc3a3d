package arena

import (
	"fmt"
	"io"
	"strings"
	"unsafe"

	"github.com/dustin/go-humanize"
)

// Dump writes a human-readable description of the chain to w: one line
// per block with its index, capacity, bump offset and storage address,
// then a summary line with the block count and the accounting totals.
// Pure observer; the arena is unchanged. Valid in every state, including
// after Release.
func (a *Arena) Dump(w io.Writer) {
	for i := range a.blocks {
		b := &a.blocks[i]
		fmt.Fprintf(w, "block %d: cap=%d used=%d addr=%p\n",
			i, len(b.buf), b.used, unsafe.SliceData(b.buf))
	}
	fmt.Fprintf(w, "blocks: %d, capacity: %s, used: %s\n",
		a.NumBlocks(),
		humanize.IBytes(uint64(a.Capacity())),
		humanize.IBytes(uint64(a.SizeInUse())))
}

// DebugString returns Dump's output as a string.
func (a *Arena) DebugString() string {
	var sb strings.Builder
	a.Dump(&sb)
	return sb.String()
}
