package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bjaus/h5walk"
	"github.com/bjaus/h5walk/gridfile"
	"github.com/bjaus/h5walk/internal/config"
	"github.com/bjaus/h5walk/internal/tui"
)

const version = "0.1.0"

func main() {
	var (
		showVersion = flag.Bool("version", false, "print version and exit")
		exportPath  = flag.String("export", "", "node path to export non-interactively")
		out         = flag.String("out", "", "destination for -export (file or directory)")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println("h5walk", version)
		return
	}

	if *exportPath != "" {
		if flag.NArg() != 1 || *out == "" {
			flag.Usage()
			os.Exit(2)
		}
		if err := runExport(flag.Arg(0), *exportPath, *out); err != nil {
			fmt.Fprintln(os.Stderr, "h5walk:", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "h5walk:", err)
		os.Exit(1)
	}

	var (
		tree *h5walk.Tree
		file string
	)
	if flag.NArg() > 0 {
		file = flag.Arg(0)
		f, err := gridfile.Open(file)
		if err != nil {
			fmt.Fprintln(os.Stderr, "h5walk:", err)
			os.Exit(1)
		}
		tree = h5walk.NewTree(f)
	}

	p := tea.NewProgram(tui.New(cfg, tree, file), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "h5walk:", err)
		os.Exit(1)
	}
}

func runExport(file, nodePath, dest string) error {
	f, err := gridfile.Open(file)
	if err != nil {
		return err
	}
	tree := h5walk.NewTree(f)
	defer tree.Close()

	n, err := tree.Lookup(nodePath)
	if err != nil {
		return err
	}

	rep := h5walk.NewExporter(tree).ExportCSV(n, dest)
	for _, r := range rep.Results {
		if r.Failed() {
			fmt.Fprintf(os.Stderr, "failed: %s: %v\n", r.Source, r.Err)
			continue
		}
		fmt.Printf("wrote %s (%d rows, %d bytes)\n", r.Path, r.Rows, r.Bytes)
	}
	fmt.Println(rep.Summary())
	if rep.HasFailures() {
		return fmt.Errorf("export completed with failures")
	}
	return nil
}
