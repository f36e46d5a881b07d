package topology_test

import (
	"fmt"

	"github.com/zumanm1/ospf-netplan/topology"
)

func ExampleSquare() {
	snap, err := topology.Square()
	if err != nil {
		panic(err)
	}
	fmt.Println(snap.RouterCount())
	fmt.Println(len(snap.OutEdges("A")))
	// Output:
	// 4
	// 2
}
