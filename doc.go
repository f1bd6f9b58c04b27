// Package iblt implements a rateless invertible Bloom lookup table for
// set reconciliation over a one-way stream.
//
// # Overview
//
// Two parties, conventionally Alice and Bob, each hold a multiset of
// fixed-width items. Alice streams out an indefinite sequence of
// algebraic coded symbols summarising her set; Bob consumes his own
// matching sequence plus Alice's, cell by cell, until he can decode the
// symmetric set difference — items Alice has that Bob lacks, and vice
// versa. Neither party needs to know the other's set size in advance,
// and Alice never learns anything: the protocol is single-direction.
// The number of symbols consumed is rate-adaptive: it grows linearly
// with the size of the symmetric difference, independent of the set
// sizes.
//
// # When to Use This Codec
//
// This codec suits:
//   - Reconciling two replicas of a set (cache warmers, gossip peers,
//     mempools) without shipping either side's full contents
//   - Situations where the size of the difference is small relative to
//     the sets themselves, so a handful of symbols resolves it
//   - A transport-agnostic core: callers own the socket, the framing,
//     and the retry policy; this package only owns the algebra
//
// # When NOT to Use This Codec
//
// This codec is not suitable for:
//   - Multisets with repeated elements (items are assumed unique per
//     party after local deduplication)
//   - Variable-width items — items are fixed-width byte strings chosen
//     by the caller
//   - Authenticated or encrypted reconciliation (bring your own
//     transport security)
//   - Bounded-time completion guarantees: a decoder given the wrong
//     hash, PRNG, or gap formula on one side simply never completes
//
// # Basic Usage
//
//	// Alice and Bob each build an encoder over their own items.
//	alice := iblt.NewEncoder(8)
//	alice.Extend(aliceItems)
//	aliceStream := alice.Iter()
//
//	bob := iblt.NewEncoder(8)
//	bob.Extend(bobItems)
//	bobStream := bob.Iter()
//
//	// Bob drives a decoder with one symbol from each side per step.
//	decoder := iblt.NewDecoder(8)
//	for !decoder.IsComplete() {
//	    decoder.Push(aliceStream.Next(), bobStream.Next())
//	}
//	aliceOnly, bobOnly := decoder.Consume()
//
// Or, with two symbol sources (see SymbolSource):
//
//	aliceOnly, bobOnly, ok := iblt.SetDifference(8, aliceStream.Source(), bobStream.Source())
//
// # Performance Characteristics
//
// Encoding: amortised O(1) per symbol once past the scan/heap switch,
// with at most O(log n) work per active cursor.
// Decoding: the number of steps needed to reach completion is, on
// average, a small constant multiple of the symmetric difference size
// d — independent of the size of either party's full set.
package iblt
