// Command hardcore converts between planet mass, radius and core radius
// fraction from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/hardcore/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
