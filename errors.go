package iblt

import "errors"

// ErrItemWidthMismatch is returned by Encoder.Extend when an item's byte
// length does not match the encoder's configured item width; all items
// are fixed-width byte strings chosen by the caller.
var ErrItemWidthMismatch = errors.New("iblt: item width mismatch")

// ErrSymbolWidthMismatch is returned by UnmarshalSymbol when the input is
// longer than a wire-format symbol of the width the caller asked for, as
// when its sum field is wider. A mismatched symbol layout between peers
// is a protocol mismatch, observable here only at the wire boundary.
var ErrSymbolWidthMismatch = errors.New("iblt: symbol width mismatch")

// ErrShortBuffer is returned by UnmarshalSymbol when the input is
// too short to contain a full wire-format symbol.
var ErrShortBuffer = errors.New("iblt: buffer too short for symbol")
