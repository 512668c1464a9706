package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"text/template"

	"github.com/midbel/cli"
	"github.com/midbel/elfit"
	"github.com/midbel/elfit/text"
	"github.com/midbel/textwrap"
)

const meta = `{{.File}}
- class                : {{.Header.Ident.Class}}
- data                 : {{.Header.Ident.Order}}
- version              : {{.Header.Ident.Version}}
- os/abi               : {{.Header.Ident.ABI}}
- abi version          : {{.Header.Ident.ABIVersion}}
- type                 : {{.Header.Type}}
- machine              : {{.Header.Machine}}
- entry point          : {{entry .Header}}
- program headers      : {{.Header.PhCount}} x {{.Header.PhSize}} bytes at {{printf "%#x" .Header.PhOffset}}
- section headers      : {{.Header.ShCount}} x {{.Header.ShSize}} bytes at {{printf "%#x" .Header.ShOffset}}
- flags                : {{printf "%#x" .Header.Flags}}
- names section index  : {{.Header.NamesIndex}}
`

func runShow(cmd *cli.Command, args []string) error {
	long := cmd.Flag.Bool("l", false, "show full file description")
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	fs := template.FuncMap{
		"entry": func(h elfit.FileHeader) string {
			e, ok := h.EntryAddress()
			if !ok {
				return "-"
			}
			return fmt.Sprintf("%#x", e)
		},
	}
	tpl, err := template.New("show").Funcs(fs).Parse(meta)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 12, 2, 2, ' ', 0)
	defer w.Flush()

	for _, file := range cmd.Flag.Args() {
		img, err := elfit.Open(file)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		ctx := struct {
			File   string
			Header elfit.FileHeader
		}{
			File:   file,
			Header: img.Header(),
		}
		if err := text.Execute(tpl, w, ctx); err != nil {
			return err
		}
		if *long {
			fmt.Fprintln(w, textwrap.Wrap(describe(file, img)))
		}
		fmt.Fprintln(w)
	}
	return nil
}

func describe(file string, img *elfit.Image) string {
	var (
		hdr  = img.Header()
		verb = "has no entry point"
	)
	if e, ok := hdr.EntryAddress(); ok {
		verb = fmt.Sprintf("enters at address %#x", e)
	}
	return fmt.Sprintf("%s is a %s %s %s for the %s architecture; it %s and declares %d segment(s) and %d section(s).",
		file, hdr.Ident.Class, hdr.Ident.Order, hdr.Type, hdr.Machine, verb,
		len(img.Programs()), len(img.Sections()))
}
