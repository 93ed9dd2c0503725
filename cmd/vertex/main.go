// Command vertex prints a z-vertex (cm) inside a 1–3 cm lD2 cryotarget.
//
//	vertex <variation 1-3> <fraction>
package main

import (
	"os"

	"github.com/katalvlaran/zvertex/internal/cli"
	"github.com/katalvlaran/zvertex/vertex"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr, vertex.SingleTarget()))
}
