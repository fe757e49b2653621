package phi_test

import (
	"fmt"

	"github.com/katalvlaran/ldpc/phi"
)

func ExamplePhi() {
	fmt.Printf("%.4f\n", phi.Phi(0.37))
	fmt.Printf("%.4f\n", phi.Phi(phi.Phi(0.37)))
	// Output:
	// 1.6987
	// 0.3700
}
