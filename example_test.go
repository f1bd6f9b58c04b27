package iblt

import (
	"bytes"
	"fmt"
	"sort"
)

func itemOf(b byte) []byte { return bytes.Repeat([]byte{b}, 8) }

func Example() {
	alice := NewEncoder(8)
	alice.Extend([][]byte{itemOf('a'), itemOf('b'), itemOf('c'), itemOf('d')})

	bob := NewEncoder(8)
	bob.Extend([][]byte{itemOf('a'), itemOf('b'), itemOf('c'), itemOf('e')})

	aliceStream, bobStream := alice.Iter(), bob.Iter()

	decoder := NewDecoder(8)
	for !decoder.IsComplete() {
		decoder.Push(aliceStream.Next(), bobStream.Next())
	}

	aliceOnly, bobOnly := decoder.Consume()
	sort.Slice(aliceOnly, func(i, j int) bool { return bytes.Compare(aliceOnly[i], aliceOnly[j]) < 0 })
	sort.Slice(bobOnly, func(i, j int) bool { return bytes.Compare(bobOnly[i], bobOnly[j]) < 0 })

	fmt.Println(string(aliceOnly[0]))
	fmt.Println(string(bobOnly[0]))
	// Output:
	// dddddddd
	// eeeeeeee
}
