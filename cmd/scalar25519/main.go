// Command scalar25519 exposes the scalar arithmetic of package
// [github.com/AlexanderYastrebov/scalar25519] on the command line.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
