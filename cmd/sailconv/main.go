// sailconv is a sailing unit converter in the shape of a watch face.
//
// Usage:
//
//	sailconv [--config file] [--verbose] [--quiet] [--mute]
//	sailconv convert speed kn km/h 12
//	sailconv units
//	sailconv script demo.txt
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
