package main

import (
	"github.com/midbel/cli"
)

var commands = []*cli.Command{
	{
		Usage:   "show [-l] <file...>",
		Short:   "show the file header of ELF files",
		Alias:   []string{"info"},
		Run:     runShow,
		Default: true,
	},
	{
		Usage: "segments <file>",
		Short: "list the program header table of an ELF file",
		Alias: []string{"phdr"},
		Run:   runSegments,
	},
	{
		Usage: "sections <file>",
		Short: "list the section header table of an ELF file",
		Alias: []string{"shdr"},
		Run:   runSections,
	},
	{
		Usage: "scan <archive...>",
		Short: "scan ar archives for ELF objects",
		Run:   runScan,
	},
	{
		Usage: "verify [-c <expect.toml>] <file...>",
		Short: "check ELF files against expected header values",
		Alias: []string{"check"},
		Run:   runVerify,
	},
}

func main() {
	cli.RunAndExit(commands, func() {})
}
