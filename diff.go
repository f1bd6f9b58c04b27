package iblt

// SymbolSource pulls the next symbol from one peer's stream. It returns
// ok=false once the stream is exhausted (e.g. the underlying transport
// closed) before the decoder reached completion; an EncoderIter never
// exhausts, but a transport-backed source generally can.
type SymbolSource func() (Symbol, bool)

// Source adapts an EncoderIter into a SymbolSource that never reports
// exhaustion, for use with SetDifference.
func (it *EncoderIter) Source() SymbolSource {
	return func() (Symbol, bool) { return it.Next(), true }
}

// SetDifference is a convenience driver: it pulls paired symbols from
// remote and local until the decoder completes or either source is
// exhausted. On exhaustion it returns ok=false, since it has no way to
// signal "decode further, more symbols are coming."
func SetDifference(width int, remote, local SymbolSource) (remoteOnly, localOnly [][]byte, ok bool) {
	d := NewDecoder(width)
	for {
		r, rok := remote()
		if !rok {
			return nil, nil, false
		}
		l, lok := local()
		if !lok {
			return nil, nil, false
		}

		d.Push(r, l)
		if d.IsComplete() {
			remoteOnly, localOnly = d.Consume()
			return remoteOnly, localOnly, true
		}
	}
}
