// Command jigsaw reassembles a scrambled tile picture and counts the rough
// water left once every sea monster has been found.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "jigsaw:", err)
		os.Exit(1)
	}
}
