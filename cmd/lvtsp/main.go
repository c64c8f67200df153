// Command lvtsp loads graphs from CSV datasets and solves the Travelling
// Salesman Problem on them, exactly or approximately.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
