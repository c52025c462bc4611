package formatter

import (
	"encoding/csv"
	"io"

	"github.com/penwyp/go-timesheet/internal/util"
)

type CSVFormatter struct {
	w io.Writer
}

func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{w: w}
}

func (f *CSVFormatter) Format(data []DayData) error {
	w := csv.NewWriter(f.w)

	headers := []string{"Date", "Project", "Color", "Start", "End", "Hours"}
	if err := w.Write(headers); err != nil {
		return err
	}

	for _, day := range data {
		for _, row := range day.Sessions {
			record := []string{
				row.Date,
				row.Project,
				row.Color,
				row.Start,
				row.End,
				util.FormatHours(row.Duration),
			}
			if err := w.Write(record); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}
