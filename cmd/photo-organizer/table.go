package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/maartenor/photo-organizer/internal/sweep"
)

func renderSummary(s sweep.Summary) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Disposition", "Files"})

	rows := []struct {
		label string
		count int
	}{
		{"Organized", s.Organized},
		{"Resorted from filename", s.Resorted},
		{"Held in to_sort", s.Remaining},
		{"Unprocessable", s.Unprocessable},
		{"Failed to move", s.Failed},
	}
	for _, row := range rows {
		tw.AppendRow(table.Row{row.label, strconv.Itoa(row.count)})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
