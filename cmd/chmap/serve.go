package main

import (
	"fmt"
	"io"
	"time"

	"github.com/graph-guard/chmap/cli"
	"github.com/graph-guard/chmap/demo"

	"github.com/phuslu/log"
)

// serve loads the dataset and serves it over HTTP
// until the process is terminated.
func serve(w io.Writer, c cli.CommandServe) {
	d := readDataset(w, c.DatasetPath)
	if d == nil {
		return
	}

	m, err := d.Load(nil)
	if err != nil {
		fmt.Fprintf(w, "loading dataset: %v\n", err)
		return
	}

	l := log.Logger{
		Level:  log.InfoLevel,
		Writer: &log.IOWriter{Writer: w},
	}
	if c.Debug {
		l.Level = log.DebugLevel
	}

	s := demo.NewServer(m, "chmap", c.ListenAddress, 10*time.Second, l)
	s.Serve()
}
