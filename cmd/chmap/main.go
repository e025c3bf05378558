package main

import (
	"fmt"
	"os"

	"github.com/graph-guard/chmap/cli"
)

func main() {
	w := os.Stdout
	switch c := cli.Parse(w, os.Args).(type) {
	case cli.CommandLoad:
		load(w, c)
	case cli.CommandServe:
		serve(w, c)
	default:
		if c != nil {
			panic(fmt.Errorf("unexpected command: %#v", c))
		}
	}
}
