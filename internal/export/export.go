// Package export writes the events of a page to disk.
package export

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"spaceevents/internal/model"
)

// ErrNothing is returned when there are no events to write, e.g. on a boundary screen.
var ErrNothing = errors.New("no events to export")

// Write dispatches on format ("csv" or "json").
func Write(format, path string, events []model.Event) error {
	switch format {
	case "csv":
		return ToCSV(path, events)
	case "json":
		return ToNDJSON(path, events)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

func ToCSV(path string, events []model.Event) error {
	if len(events) == 0 {
		return ErrNothing
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	cols := columns()
	if err := w.Write(cols); err != nil {
		return err
	}
	for _, e := range events {
		fields := e.Fields()
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = cell(fields[c])
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func ToNDJSON(path string, events []model.Event) error {
	if len(events) == 0 {
		return ErrNothing
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	for _, e := range events {
		b, err := json.Marshal(e)
		if err != nil {
			return err
		}
		if _, err := bw.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return f.Close()
}

func columns() []string {
	return append([]string{"id"}, model.Columns...)
}

func cell(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}
