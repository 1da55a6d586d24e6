package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/dpknap/minknap/core"
	"github.com/dpknap/minknap/minknap"
)

// renderSummary prints a compact instance/result table for --verbose: a
// rounded-style table.Writer with right-aligned numeric columns.
func renderSummary(w io.Writer, path, algorithm string, ins *core.Instance, res minknap.Result) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(path)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})

	tw.AppendHeader(table.Row{"field", "value"})
	tw.AppendRow(table.Row{"algorithm", algorithm})
	tw.AppendRow(table.Row{"items", ins.TotalItemNumber()})
	tw.AppendRow(table.Row{"capacity", ins.TotalCapacity()})
	tw.AppendSeparator()
	tw.AppendRow(table.Row{"selected weight", res.Solution.Weight()})
	tw.AppendRow(table.Row{"selected profit", res.Solution.Profit()})
	tw.AppendRow(table.Row{"items selected", len(res.Solution.Items())})
	tw.AppendRow(table.Row{"proven optimal", res.ProvenOptimal})
	tw.Render()

	fmt.Fprintln(w)
}
