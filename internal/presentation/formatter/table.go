package formatter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/penwyp/go-timesheet/internal/util"
)

type TableFormatter struct {
	w       io.Writer
	headers []string
}

func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		w:       w,
		headers: []string{"Date", "Project", "Start", "End", "Duration"},
	}
}

func (f *TableFormatter) Format(data []DayData) error {
	var b strings.Builder
	widths := f.calculateColumnWidths(data)

	f.printBorder(&b, widths, "top")
	f.printRow(&b, f.headers, widths)
	f.printBorder(&b, widths, "middle")

	var total time.Duration
	for i, day := range data {
		for j, row := range day.Sessions {
			date := ""
			if j == 0 {
				date = day.Date
			}
			f.printRow(&b, []string{date, row.Project, row.Start, row.End, util.FormatDuration(row.Duration)}, widths)
		}
		f.printRow(&b, []string{"", "└ Subtotal", "", "", util.FormatDuration(day.Total)}, widths)
		if i < len(data)-1 {
			f.printBorder(&b, widths, "middle")
		}
		total += day.Total
	}

	f.printBorder(&b, widths, "middle")
	f.printRow(&b, []string{"Total", "", "", "", util.FormatDuration(total)}, widths)
	f.printBorder(&b, widths, "bottom")

	_, err := io.WriteString(f.w, b.String())
	return err
}

// calculateColumnWidths determines optimal width for each column based on content
func (f *TableFormatter) calculateColumnWidths(data []DayData) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = util.GetDisplayWidth(header)
	}

	grow := func(values ...string) {
		for i, value := range values {
			if w := util.GetDisplayWidth(value); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var total time.Duration
	for _, day := range data {
		for _, row := range day.Sessions {
			grow(day.Date, row.Project, row.Start, row.End, util.FormatDuration(row.Duration))
		}
		grow("", "└ Subtotal", "", "", util.FormatDuration(day.Total))
		total += day.Total
	}
	grow("Total", "", "", "", util.FormatDuration(total))

	for i := range widths {
		if widths[i] < 5 {
			widths[i] = 5
		}
	}
	return widths
}

// printBorder prints table borders (top, middle, bottom)
func (f *TableFormatter) printBorder(b *strings.Builder, widths []int, borderType string) {
	var left, middle, right string
	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	b.WriteString(left)
	for i, width := range widths {
		b.WriteString(strings.Repeat("─", width+2))
		if i < len(widths)-1 {
			b.WriteString(middle)
		}
	}
	b.WriteString(right)
	b.WriteString("\n")
}

// printRow prints a row; the duration column is right-aligned
func (f *TableFormatter) printRow(b *strings.Builder, values []string, widths []int) {
	b.WriteString("│")
	for i, value := range values {
		leftAlign := i < len(values)-1
		fmt.Fprintf(b, " %s │", util.PadString(value, widths[i], leftAlign))
	}
	b.WriteString("\n")
}
