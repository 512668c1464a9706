package main

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/midbel/cli"
	"github.com/midbel/elfit/arscan"
	"golang.org/x/sync/errgroup"
)

func init() {
	log.SetOutput(os.Stderr)
	log.SetFlags(0)
}

func runScan(cmd *cli.Command, args []string) error {
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	var (
		files   = cmd.Flag.Args()
		results = make([][]arscan.Entry, len(files))
		group   errgroup.Group
	)
	for i, file := range files {
		i, file := i, file
		group.Go(func() error {
			es, err := arscan.ScanFile(file)
			if err != nil {
				return err
			}
			results[i] = es
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 12, 2, 2, ' ', 0)
	defer w.Flush()
	for i, es := range results {
		fmt.Fprintf(w, "%s:\n", files[i])
		for _, e := range es {
			if e.Err != nil {
				log.Printf("%s: %s: %s", files[i], e.Name, e.Err)
				continue
			}
			if !e.IsELF() {
				fmt.Fprintf(w, "  %s\t%d\t-\n", e.Name, e.Size)
				continue
			}
			hdr := e.Image.Header()
			fmt.Fprintf(w, "  %s\t%d\t%s %s %s\n", e.Name, e.Size, hdr.Ident.Class, hdr.Type, hdr.Machine)
		}
	}
	return nil
}
