// Command rdfwrite lists the RDF writer settings and re-serializes
// N-Triples and N-Quads documents with them.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
