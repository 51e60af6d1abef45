package reporting

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/hokaccha/go-prettyjson"
	"github.com/inhies/go-bytesize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Options controls which sections Print renders.
type Options struct {
	ShowFrequency bool
	ShowCache     bool
	ShowFeatures  bool
	NoLogo        bool
	NoColor       bool
}

func kb2bytes(kb uint32) string {
	return bytesize.New(float64(kb) * 1024).String()
}

func mhz(value *float64) string {
	if value == nil {
		return "Unknown"
	}
	return fmt.Sprintf("%.2f MHz", *value)
}

func (report *Report) Print(options Options) {
	if !options.NoLogo {
		fmt.Println(Logo(report.Vendor, options.NoColor))
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetAllowedRowLength(120)
	t.SetTitle("CPU")
	t.AppendRow(table.Row{"Vendor", report.Vendor})
	t.AppendRow(table.Row{"Model", report.Model})
	t.AppendRow(table.Row{"Physical cores", fmt.Sprintf("%v", report.Cores.Physical)})
	t.AppendRow(table.Row{"Logical cores", fmt.Sprintf("%v", report.Cores.Logical)})
	if options.ShowFeatures {
		t.AppendRow(table.Row{"Features", text.WrapSoft(strings.Join(report.Features, ", "), 80)})
	}
	if !options.NoColor {
		t.SetStyle(table.StyleColoredMagentaWhiteOnBlack)
	}
	t.Render()

	if options.ShowCache {
		report.printCache(options.NoColor)
	}
	if options.ShowFrequency {
		report.printFrequency(options.NoColor)
	}
}

func (report *Report) printCache(noColor bool) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetAllowedRowLength(120)
	t.SetTitle("Cache")
	rows := []struct {
		name string
		size *uint32
	}{
		{"L1 Instruction", report.Cache.L1I},
		{"L1 Data", report.Cache.L1D},
		{"L2", report.Cache.L2},
		{"L3", report.Cache.L3},
	}
	for _, row := range rows {
		if row.size == nil {
			continue
		}
		t.AppendRow(table.Row{row.name, kb2bytes(*row.size)})
	}
	if !noColor {
		t.SetStyle(table.StyleColoredMagentaWhiteOnBlack)
	}
	t.Render()
}

func (report *Report) printFrequency(noColor bool) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetAllowedRowLength(120)
	t.SetTitle("Frequency")
	t.AppendRow(table.Row{"Base", mhz(report.Frequency.Base)})
	t.AppendRow(table.Row{"Current", mhz(report.Frequency.Current)})
	t.AppendRow(table.Row{"Max", mhz(report.Frequency.Max)})
	if !noColor {
		t.SetStyle(table.StyleColoredMagentaWhiteOnBlack)
	}
	t.Render()
}

func (report *Report) PrintJson(noColor bool) error {
	var result []byte
	var err error
	if !noColor {
		result, err = prettyjson.Marshal(report)
	} else {
		result, err = json.Marshal(report)
	}
	if err != nil {
		return err
	}
	fmt.Println(string(result))
	return nil
}
