package formatter

import (
	"io"

	"github.com/bytedance/sonic"
)

type JSONFormatter struct {
	w io.Writer
}

func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{w: w}
}

func (f *JSONFormatter) Format(data []DayData) error {
	if data == nil {
		data = []DayData{}
	}
	out, err := sonic.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')
	_, err = f.w.Write(out)
	return err
}
