package iblt

import "encoding/binary"

// MarshalBinary serializes a Symbol to its wire layout: the sum bytes,
// then the 16-byte checksum, then the count as a little-endian signed
// int64. There is no framing or length prefix — symbols are fixed-width
// and streamed back-to-back; the transport layer is responsible for
// delivery and ordering.
func (s Symbol) MarshalBinary() ([]byte, error) {
	out := make([]byte, len(s.Sum)+checksumSize+8)
	n := copy(out, s.Sum)
	n += copy(out[n:], s.Checksum[:])
	binary.LittleEndian.PutUint64(out[n:], uint64(s.Count))
	return out, nil
}

// UnmarshalSymbol decodes a Symbol of the given width from its wire
// layout. Both peers must agree on width, hash and PRNG out of band;
// a buffer whose length does not fit width is reported as
// ErrShortBuffer or ErrSymbolWidthMismatch, never as a panic.
func UnmarshalSymbol(width int, data []byte) (Symbol, error) {
	want := width + checksumSize + 8
	if len(data) != want {
		if len(data) < want {
			return Symbol{}, ErrShortBuffer
		}
		return Symbol{}, ErrSymbolWidthMismatch
	}

	s := Symbol{Sum: make([]byte, width)}
	n := copy(s.Sum, data[:width])
	copy(s.Checksum[:], data[n:n+checksumSize])
	s.Count = int64(binary.LittleEndian.Uint64(data[n+checksumSize:]))
	return s, nil
}
