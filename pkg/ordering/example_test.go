package ordering_test

import (
	"fmt"

	"github.com/matzehuels/numberlink/pkg/grid"
	"github.com/matzehuels/numberlink/pkg/ordering"
)

func ExampleDiagonal() {
	b := grid.MustNew(3, 3, []grid.Pair{{From: grid.Point{X: 0, Y: 0}, To: grid.Point{X: 2, Y: 2}}})

	order, err := ordering.New(b, ordering.Diagonal{})
	if err != nil {
		fmt.Println(err)
		return
	}
	for pos := 0; pos < 4; pos++ {
		fmt.Println(b.Edge(order.EdgeAt(pos)))
	}
	fmt.Println("Max width:", ordering.MaxWidth(order))
	// Output:
	// (0,0)-(0,1)
	// (0,0)-(1,0)
	// (1,0)-(2,0)
	// (1,0)-(1,1)
	// Max width: 4
}
