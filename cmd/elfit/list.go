package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/midbel/cli"
	"github.com/midbel/elfit"
	"github.com/olekukonko/tablewriter"
)

var execFlag = color.New(color.FgRed, color.Bold)

func runSegments(cmd *cli.Command, args []string) error {
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	img, err := elfit.Open(cmd.Flag.Arg(0))
	if err != nil {
		return err
	}
	table := newTable("Type", "Offset", "VirtAddr", "PhysAddr", "FileSize", "MemSize", "Align", "Flags")
	for _, ph := range img.Programs() {
		flags := ph.Flags.String()
		if ph.Flags.Has(elfit.SegmentExecutable) {
			flags = execFlag.Sprint(flags)
		}
		table.Append([]string{
			ph.Type.String(),
			fmt.Sprintf("%#x", ph.Offset),
			fmt.Sprintf("%#x", ph.VirtualAddr),
			fmt.Sprintf("%#x", ph.PhysicalAddr),
			fmt.Sprintf("%d", ph.FileSize),
			fmt.Sprintf("%d", ph.MemSize),
			fmt.Sprintf("%#x", ph.Alignment),
			flags,
		})
	}
	table.Render()
	return nil
}

func runSections(cmd *cli.Command, args []string) error {
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	img, err := elfit.Open(cmd.Flag.Arg(0))
	if err != nil {
		return err
	}
	table := newTable("Nr", "Name", "Type", "Addr", "Offset", "Size", "Link", "Info", "Align", "EntSize", "Flags")
	for i, sh := range img.Sections() {
		table.Append([]string{
			fmt.Sprintf("%d", i),
			img.SectionName(i),
			sh.Type.String(),
			fmt.Sprintf("%#x", sh.Addr),
			fmt.Sprintf("%#x", sh.Offset),
			fmt.Sprintf("%d", sh.Size),
			fmt.Sprintf("%d", sh.Link),
			fmt.Sprintf("%d", sh.Info),
			fmt.Sprintf("%#x", sh.AddrAlign),
			fmt.Sprintf("%d", sh.EntSize),
			sh.Flags.String(),
		})
	}
	table.Render()
	return nil
}

func newTable(headers ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(headers)
	table.SetBorder(false)
	table.SetAutoWrapText(false)

	colors := make([]tablewriter.Colors, len(headers))
	for i := range colors {
		colors[i] = tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor}
	}
	table.SetHeaderColor(colors...)
	return table
}
