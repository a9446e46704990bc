package avl_test

import (
	"fmt"

	"github.com/katalvlaran/lvroute/avl"
)

// ExampleTree shows first-write-wins insertion and ordered traversal.
func ExampleTree() {
	idx := avl.New[string, string]()
	idx.Insert("SCL", "Santiago")
	idx.Insert("BOG", "Bogotá")
	idx.Insert("LIM", "Lima")
	idx.Insert("BOG", "ignored")

	for code, city := range idx.All() {
		fmt.Println(code, city)
	}
	fmt.Println("height:", idx.Height())
	// Output:
	// BOG Bogotá
	// LIM Lima
	// SCL Santiago
	// height: 2
}
