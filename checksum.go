package iblt

import "lukechampine.com/blake3"

// checksumSize is the width in bytes of an item checksum: a 128-bit
// digest with good short-input avalanche, seeding both the pure-cell
// test and the per-item IndexGenerator.
const checksumSize = 16

// checksum128 returns the first 16 bytes of the item's BLAKE3 digest.
// Both peers in a reconciliation must use the same hash; this is a
// protocol parameter agreed out of band, not a local choice.
func checksum128(item []byte) [checksumSize]byte {
	h := blake3.New(checksumSize, nil)
	h.Write(item)
	var sum [checksumSize]byte
	copy(sum[:], h.Sum(nil))
	return sum
}
