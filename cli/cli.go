// Package cli implements the command line interface of the chmap
// demonstration tool.
package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
)

// Command can be any of:
//
//	CommandLoad
//	CommandServe
type Command any

// CommandLoad loads a dataset and prints the resulting slot layout.
type CommandLoad struct {
	DatasetPath string
	Fill        int
}

// CommandServe loads a dataset and serves it over HTTP.
type CommandServe struct {
	DatasetPath   string
	ListenAddress string
	Debug         bool
}

func Parse(w io.Writer, args []string) (cmd Command) {
	fm := fmt.Sprintf

	executableName := "chmap"
	if len(args) > 0 {
		executableName = filepath.Base(args[0])
	}

	flags := flag.NewFlagSet("chmap", flag.ContinueOnError)
	flags.SetOutput(w)
	flags.Usage = func() {
		writeLines(w,
			fm("usage: %s <command> [flags]", executableName),
			"",
			"commands available:",
			" load - loads a dataset and prints the table layout",
			" serve - loads a dataset and serves it over HTTP",
		)
	}

	parseFlags := func() (ok bool) {
		err := flags.Parse(args[2:])
		// flags will automatically call .Usage()
		return err == nil
	}

	if len(args) < 2 {
		flags.Usage()
		return nil
	}

	switch args[1] {
	case "load":
		c := CommandLoad{}

		flags.Usage = func() {
			writeLines(w,
				"",
				fm("usage: %s load [-dataset <path>] [-fill <n>]",
					executableName),
				"",
				"flags:",
				"-dataset <path>: defines the dataset file path "+
					"(default: ./dataset.yaml)",
				"-fill <n>: adds n synthetic entries with random keys "+
					"(default: 0)",
			)
		}

		flags.StringVar(&c.DatasetPath, "dataset", "./dataset.yaml", "")
		flags.IntVar(&c.Fill, "fill", 0, "")
		if !parseFlags() {
			return nil
		}

		if c.Fill < 0 {
			writeLines(w, "-fill must not be negative.")
			flags.Usage()
			return nil
		}

		cmd = c

	case "serve":
		c := CommandServe{}

		flags.Usage = func() {
			writeLines(w,
				"",
				fm("usage: %s serve [-dataset <path>] "+
					"[-listen <address>] [-debug]", executableName),
				"",
				"flags:",
				"-dataset <path>: defines the dataset file path "+
					"(default: ./dataset.yaml)",
				"-listen <address>: defines the listen address "+
					"(default: :8000)",
				"-debug: enables debug log level",
			)
		}

		flags.StringVar(&c.DatasetPath, "dataset", "./dataset.yaml", "")
		flags.StringVar(&c.ListenAddress, "listen", ":8000", "")
		flags.BoolVar(&c.Debug, "debug", false, "")
		if !parseFlags() {
			return nil
		}

		cmd = c

	case "help":
		PrintHelp(w)
		return

	default:
		flags.Usage()
		return nil
	}
	return cmd
}

func PrintHelp(w io.Writer) {
	writeLines(w,
		"chmap - a fixed-capacity chained hash map demonstration tool",
		"",
		"usage: chmap <command> [flags]",
		"",
		"commands available:",
		" load - loads a dataset and prints the table layout",
		" serve - loads a dataset and serves it over HTTP",
		" help - prints this help message",
	)
}

func writeLines(w io.Writer, lines ...string) {
	for i := range lines {
		_, _ = w.Write([]byte(lines[i]))
		_, _ = w.Write([]byte("\n"))
	}
}
