package main

import (
	"fmt"
	"os"

	"github.com/nlink/numberlink"
)

func main() {
	if err := numberlink.Compact(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
