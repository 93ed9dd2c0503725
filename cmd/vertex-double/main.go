// Command vertex-double prints a z-vertex for the double-target setup.
// For target D2 the position inside a 1–5 cm lD2 cell is printed in cm;
// any other target prints 8.0.
//
//	vertex-double <variation 1-5> <fraction> <target>
package main

import (
	"os"

	"github.com/katalvlaran/zvertex/internal/cli"
	"github.com/katalvlaran/zvertex/vertex"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr, vertex.DoubleTarget()))
}
