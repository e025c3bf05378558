package main

import (
	"fmt"
	"io"

	"github.com/graph-guard/chmap/cli"
	"github.com/graph-guard/chmap/demo"
)

// load reads the dataset and prints the resulting slot layout.
func load(w io.Writer, c cli.CommandLoad) {
	d := readDataset(w, c.DatasetPath)
	if d == nil {
		return
	}
	if c.Fill > 0 {
		d.Fill(c.Fill)
	}

	m, err := d.Load(nil)
	if err != nil {
		fmt.Fprintf(w, "loading dataset: %v\n", err)
		return
	}
	defer m.Destroy()

	if err := demo.Fprint(w, m); err != nil {
		fmt.Fprintf(w, "printing table: %v\n", err)
	}
}

func readDataset(w io.Writer, path string) *demo.Dataset {
	d, err := demo.ReadDatasetFile(path)
	if err != nil {
		fmt.Fprintf(w, "reading dataset %q: %v\n", path, err)
		return nil
	}
	return d
}
