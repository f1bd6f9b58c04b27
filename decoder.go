package iblt

import "container/heap"

// Decoder consumes paired (remote, local) symbol streams one step at a
// time and peels out the symmetric set difference. It owns two internal
// "ghost" EncoderIters tracking items already recovered
// for each side; their output is subtracted from every future incoming
// cell so a recovered item stops contaminating cells it would otherwise
// still hit.
type Decoder struct {
	width int

	remote *EncoderIter
	local  *EncoderIter

	symbols []Symbol
	pure    pureHeap
}

// NewDecoder returns an empty decoder for items of the given byte width.
// Both peers must agree on width, hash, PRNG and gap formula; none of
// that is negotiated here.
func NewDecoder(width int) *Decoder {
	return &Decoder{
		width:  width,
		remote: NewEncoder(width).Iter(),
		local:  NewEncoder(width).Iter(),
	}
}

// pureHeap is a min-heap of cell indices believed pure, ordered so the
// smallest index peels first — required for cell-0 termination detection
// and to keep peeling work bounded.
type pureHeap []int

func (h pureHeap) Len() int            { return len(h) }
func (h pureHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h pureHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *pureHeap) Push(x any)         { *h = append(*h, x.(int)) }
func (h *pureHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// IsComplete reports whether decoding has finished: at least one step has
// been pushed and cell 0 has collapsed to the empty symbol.
func (d *Decoder) IsComplete() bool {
	return len(d.symbols) > 0 && d.symbols[0].IsEmpty()
}

// Consume returns the items recovered for each side: items the remote
// peer has that the local side lacks, and vice versa.
func (d *Decoder) Consume() (remoteOnly, localOnly [][]byte) {
	return d.remote.items(), d.local.items()
}

// Push advances decoding by one step, consuming the symbol each peer's
// encoder emitted at this index. remote and local must be the k-th
// symbol from each peer's stream, for the k-th call to Push; skipping
// or reordering is a protocol violation.
func (d *Decoder) Push(remote, local Symbol) {
	gr := d.remote.Next()
	gl := d.local.Next()

	cell := remote.Sub(local).Sub(gr).Add(gl)

	idx := len(d.symbols)
	d.symbols = append(d.symbols, cell)
	if cell.IsPure() {
		heap.Push(&d.pure, idx)
	}

	d.peel()
}

// peel runs the peeling loop: while any cell is pure, it removes that
// item's contribution from every other cell its IndexGenerator touches
// and attributes the item to the appropriate ghost encoder.
func (d *Decoder) peel() {
	for d.pure.Len() > 0 {
		j := heap.Pop(&d.pure).(int)
		s := d.symbols[j]
		if !s.IsPure() {
			// Invalidated by a later subtraction; skip.
			continue
		}

		gen := newIndexGenerator(s.Checksum)
		for {
			g := gen.current()
			if g >= uint64(len(d.symbols)) {
				break
			}
			gi := int(g)
			d.symbols[gi] = d.symbols[gi].Sub(s)
			if d.symbols[gi].IsPure() {
				heap.Push(&d.pure, gi)
			}
			gen.advance()
		}

		item, checksum, sign := s.recoveredItem()
		switch sign {
		case 1:
			d.remote.pushRecovered(item, checksum, gen)
		case -1:
			d.local.pushRecovered(item, checksum, gen)
		default:
			panic("iblt: pure cell with count outside {-1, +1}")
		}
	}
}
