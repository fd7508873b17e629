package matching_test

import (
	"fmt"

	"github.com/katalvlaran/graphkit/matching"
)

// ExampleMaximum matches the Petersen graph perfectly.
func ExampleMaximum() {
	m, err := matching.Maximum(petersen())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m.Size())
	// Output: 5
}
