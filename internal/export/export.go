// Package export writes a trace in machine and human readable forms.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/san-kum/carryviz/internal/trace"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

var ErrUnknownFormat = errors.New("export: unknown format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatCSV:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

type Data struct {
	First     []int        `json:"first"`
	Second    []int        `json:"second"`
	Result    []int        `json:"result"`
	Steps     int          `json:"steps"`
	Snapshots []trace.Step `json:"snapshots"`
}

func NewData(tr *trace.Trace) Data {
	return Data{
		First:     nonNil(tr.First()),
		Second:    nonNil(tr.Second()),
		Result:    nonNil(tr.Result()),
		Steps:     tr.Len(),
		Snapshots: tr.Steps(),
	}
}

func Write(w io.Writer, f Format, tr *trace.Trace) error {
	switch f {
	case FormatText:
		return Text(w, tr)
	case FormatJSON:
		return JSON(w, tr)
	case FormatCSV:
		return CSV(w, tr)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// WriteFile writes to path, or to stdout when path is empty or "-".
func WriteFile(path string, f Format, tr *trace.Trace) error {
	if path == "" || path == "-" {
		return Write(os.Stdout, f, tr)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(file, f, tr); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func JSON(w io.Writer, tr *trace.Trace) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewData(tr))
}

var csvHeader = []string{"step", "line", "carry", "l1", "l2", "p", "result", "description"}

func CSV(w io.Writer, tr *trace.Trace) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, s := range tr.Steps() {
		row := []string{
			strconv.Itoa(s.Number),
			strconv.Itoa(int(s.Line)),
			strconv.Itoa(s.Carry),
			strconv.Itoa(s.Pointers.First),
			strconv.Itoa(s.Pointers.Second),
			strconv.Itoa(s.Pointers.Result),
			Digits(s.Result.Values),
			s.Description,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func Text(w io.Writer, tr *trace.Trace) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STEP\tLINE\tCARRY\tL1\tL2\tP\tRESULT\tDESCRIPTION")
	for _, s := range tr.Steps() {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t%s\t%s\t[%s]\t%s\n",
			s.Number, s.Line, s.Carry,
			offset(s.Pointers.First), offset(s.Pointers.Second), offset(s.Pointers.Result),
			Digits(s.Result.Values), s.Description)
	}
	return tw.Flush()
}

// Digits renders digits as "7 0 8".
func Digits(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

func offset(n int) string {
	if n < 0 {
		return "null"
	}
	return strconv.Itoa(n)
}

func nonNil(vals []int) []int {
	if vals == nil {
		return []int{}
	}
	return vals
}
