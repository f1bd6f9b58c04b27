package iblt

import (
	"container/heap"
	"fmt"
	"math/bits"
)

// Encoder owns a set of fixed-width items and produces, via Iter, a
// potentially infinite stream of coded symbols summarising them.
// Encoder itself does not iterate; call Iter to freeze it into an
// EncoderIter once no more items will be added.
type Encoder struct {
	width   int
	entries [][]byte
}

// NewEncoder returns an empty encoder for items of the given byte width.
func NewEncoder(width int) *Encoder {
	return &Encoder{width: width}
}

// Extend appends items to the encoder's owned set. It does not
// deduplicate: the caller must supply a set, since this implementation
// does not apply a pre-dedup policy. Every item must match the encoder's
// configured width.
func (e *Encoder) Extend(items [][]byte) error {
	for _, item := range items {
		if len(item) != e.width {
			return fmt.Errorf("iblt: item of length %d, want %d: %w", len(item), e.width, ErrItemWidthMismatch)
		}
	}
	e.entries = append(e.entries, items...)
	return nil
}

// Iter consumes the encoder, seeding each item's IndexGenerator from its
// checksum and returning an infinite EncoderIter.
func (e *Encoder) Iter() *EncoderIter {
	it := &EncoderIter{
		width:     e.width,
		entries:   append([][]byte(nil), e.entries...),
		threshold: scanThreshold(len(e.entries)),
	}
	it.scan = make([]cursor, len(it.entries))
	for idx, item := range it.entries {
		cs := checksum128(item)
		it.scan[idx] = cursor{entryIndex: idx, checksum: cs, gen: newIndexGenerator(cs)}
	}
	return it
}

// cursor tracks one item's position in the output stream: which entry it
// refers to, its checksum (reused on every emission and on recovery), and
// the generator producing its future cell indices.
type cursor struct {
	entryIndex int
	checksum   [checksumSize]byte
	gen        indexGenerator
}

// cursorHeap is a min-heap of cursor pointers ordered by their generator's
// next target index, used once the per-step active cursor count is small
// enough that heap extraction beats a full linear scan.
type cursorHeap []*cursor

func (h cursorHeap) Len() int            { return len(h) }
func (h cursorHeap) Less(i, j int) bool  { return h[i].gen.current() < h[j].gen.current() }
func (h cursorHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *cursorHeap) Push(x any)         { *h = append(*h, x.(*cursor)) }
func (h *cursorHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// scanThreshold is the step index at which EncoderIter switches from
// linear scan to heap extraction: 2*floor(log2(n)), or 0 for n < 2. At
// n < 2 only step 0 is scanned; the heap is built right after it.
func scanThreshold(n int) uint64 {
	if n < 2 {
		return 0
	}
	return uint64(2 * (bits.Len(uint(n)) - 1))
}

// EncoderIter is the frozen, iterating form of an Encoder: an infinite
// producer of Symbol values, one per increasing output index.
type EncoderIter struct {
	width     int
	entries   [][]byte
	i         uint64
	threshold uint64

	scan     []cursor
	heap     cursorHeap
	heapMode bool
}

// Next emits the symbol for the current output index and advances to the
// next one. EncoderIter never terminates.
func (it *EncoderIter) Next() Symbol {
	s := zeroSymbol(it.width)

	if !it.heapMode {
		for idx := range it.scan {
			c := &it.scan[idx]
			if c.gen.current() == it.i {
				s.addItem(it.entries[c.entryIndex], c.checksum)
				c.gen.advance()
			}
		}
		if it.i == it.threshold {
			it.buildHeap()
		}
	} else {
		for it.heap.Len() > 0 && it.heap[0].gen.current() == it.i {
			c := it.heap[0]
			s.addItem(it.entries[c.entryIndex], c.checksum)
			c.gen.advance()
			heap.Fix(&it.heap, 0)
		}
	}

	it.i++
	return s
}

// buildHeap rebuilds the cursor set as a min-heap in O(n), switching the
// iterator from scan mode to heap mode at the configured threshold step.
func (it *EncoderIter) buildHeap() {
	it.heap = make(cursorHeap, len(it.scan))
	for idx := range it.scan {
		c := it.scan[idx]
		it.heap[idx] = &c
	}
	heap.Init(&it.heap)
	it.scan = nil
	it.heapMode = true
}

// pushRecovered appends a recovered item with an already-advanced index
// generator, bypassing the initial-seed path. Used by Decoder's two ghost
// encoders to re-inject peeled items so they self-cancel from future
// cells.
func (it *EncoderIter) pushRecovered(item []byte, checksum [checksumSize]byte, gen indexGenerator) {
	idx := len(it.entries)
	it.entries = append(it.entries, item)
	c := cursor{entryIndex: idx, checksum: checksum, gen: gen}
	if it.heapMode {
		heap.Push(&it.heap, &c)
	} else {
		it.scan = append(it.scan, c)
	}
}

// items returns the entries this iterator currently owns, in the order
// they were added (original extension order, then recovered order).
func (it *EncoderIter) items() [][]byte {
	return it.entries
}
