package iblt

// Symbol is the coded cell exchanged between peers: the algebraic sum of
// every item currently assigned to this cell index. Symbol forms
// an abelian group under componentwise XOR (Sum, Checksum) and wrapping
// addition (Count); the identity is the all-zero symbol, and a symbol is
// its own additive inverse on the XOR fields since XOR is self-inverse.
type Symbol struct {
	// Sum is the XOR of the byte representation of every contributing
	// item. Its width is fixed by the Encoder/Decoder that produced it
	// and must match across both peers.
	Sum []byte
	// Checksum is the XOR of the 128-bit checksum of every contributing
	// item.
	Checksum [checksumSize]byte
	// Count is the number of items added minus the number subtracted,
	// wrapping on overflow (two's complement, as with any Go signed
	// integer add/sub).
	Count int64
}

// zeroSymbol returns the identity element for items of the given width.
func zeroSymbol(width int) Symbol {
	return Symbol{Sum: make([]byte, width)}
}

// addItem folds one item's contribution into the symbol in place.
func (s *Symbol) addItem(item []byte, checksum [checksumSize]byte) {
	xorInto(s.Sum, item)
	xorInto(s.Checksum[:], checksum[:])
	s.Count++
}

// Add returns s + other: the symbol that would result from observing both
// sets of contributions. Both operands must share the same Sum width.
func (s Symbol) Add(other Symbol) Symbol {
	return s.combine(other, 1)
}

// Sub returns s - other, the inverse of Add: (a.Add(b)).Sub(b) == a for
// any symbols a, b of matching width.
func (s Symbol) Sub(other Symbol) Symbol {
	return s.combine(other, -1)
}

// combine implements both Add (sign=1) and Sub (sign=-1): XOR is its own
// inverse regardless of sign, only Count's wrapping add/sub differs.
func (s Symbol) combine(other Symbol, sign int64) Symbol {
	width := len(s.Sum)
	if width == 0 {
		width = len(other.Sum)
	}
	if len(s.Sum) != 0 && len(other.Sum) != 0 && len(s.Sum) != len(other.Sum) {
		panic("iblt: symbol width mismatch")
	}
	out := Symbol{Sum: make([]byte, width)}
	copy(out.Sum, s.Sum)
	xorInto(out.Sum, other.Sum)
	out.Checksum = s.Checksum
	xorInto(out.Checksum[:], other.Checksum[:])
	out.Count = s.Count + sign*other.Count
	return out
}

// IsEmpty reports whether the symbol carries no unresolved contribution:
// count is zero and the checksum XOR has cancelled out entirely.
func (s Symbol) IsEmpty() bool {
	if s.Count != 0 {
		return false
	}
	for _, b := range s.Checksum {
		if b != 0 {
			return false
		}
	}
	return true
}

// IsPure reports whether the symbol contains the contribution of exactly
// one item (with sign ±1), verifiable by recomputing the checksum of the
// accumulated sum. False positives occur only on a checksum collision,
// probability ~2^-128.
func (s Symbol) IsPure() bool {
	if s.Count != 1 && s.Count != -1 {
		return false
	}
	return checksum128(s.Sum) == s.Checksum
}

// recoveredItem extracts the single item a pure cell contains, along with
// its checksum and the sign it was contributed with: +1 means the item
// belongs to the remote-only side, -1 to the local-only side. Callers
// must check IsPure first.
func (s Symbol) recoveredItem() (item []byte, checksum [checksumSize]byte, sign int64) {
	item = make([]byte, len(s.Sum))
	copy(item, s.Sum)
	return item, s.Checksum, s.Count
}

// xorInto XORs src into dst in place. dst must be at least as long as src;
// bytes beyond len(src) are left untouched (src treated as zero-padded).
func xorInto(dst, src []byte) {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		dst[i] ^= src[i]
	}
}
