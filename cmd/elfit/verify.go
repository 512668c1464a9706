package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/midbel/cli"
	"github.com/midbel/elfit"
	"github.com/midbel/toml"
)

var (
	passLabel = color.New(color.FgGreen).Sprint("ok")
	failLabel = color.New(color.FgRed).Sprint("fail")
)

type expectation struct {
	Class   string `toml:"class"`
	Endian  string `toml:"endian"`
	Type    string `toml:"type"`
	Machine string `toml:"machine"`
	Entry   bool   `toml:"entry"`
}

func (e expectation) check(hdr elfit.FileHeader) error {
	if e.Class != "" && e.Class != hdr.Ident.Class.String() {
		return fmt.Errorf("class is %s, want %s", hdr.Ident.Class, e.Class)
	}
	if e.Endian != "" && e.Endian != hdr.Ident.Order.String() {
		return fmt.Errorf("data is %s, want %s", hdr.Ident.Order, e.Endian)
	}
	if e.Type != "" && e.Type != hdr.Type.String() {
		return fmt.Errorf("type is %s, want %s", hdr.Type, e.Type)
	}
	if e.Machine != "" && e.Machine != hdr.Machine.String() {
		return fmt.Errorf("machine is %s, want %s", hdr.Machine, e.Machine)
	}
	if _, ok := hdr.EntryAddress(); e.Entry && !ok {
		return fmt.Errorf("no entry point")
	}
	return nil
}

func runVerify(cmd *cli.Command, args []string) error {
	config := cmd.Flag.String("c", "", "expectations file")
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	var want expectation
	if *config != "" {
		r, err := os.Open(*config)
		if err != nil {
			return err
		}
		err = toml.Decode(r, &want)
		r.Close()
		if err != nil {
			return err
		}
	}
	var failed int
	for _, file := range cmd.Flag.Args() {
		img, err := elfit.Open(file)
		if err == nil {
			err = want.check(img.Header())
		}
		if err != nil {
			failed++
			fmt.Fprintf(os.Stdout, "%s %s: %s\n", failLabel, file, err)
			continue
		}
		fmt.Fprintf(os.Stdout, "%s %s\n", passLabel, file)
	}
	if failed > 0 {
		return fmt.Errorf("%d file(s) failed verification", failed)
	}
	return nil
}
