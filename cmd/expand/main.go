package main

import (
	"fmt"
	"os"

	"github.com/nlink/numberlink"
)

func main() {
	if err := numberlink.Expand(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
