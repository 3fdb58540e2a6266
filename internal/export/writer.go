package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	exportdomain "github.com/linskybing/forms-go/internal/domain/export"
	"github.com/xuri/excelize/v2"
)

// rowWriter appends rows to an export file. Close flushes and persists.
type rowWriter interface {
	WriteRows(rows [][]string) error
	Close() error
}

// createWriter truncates path and writes the header row.
func createWriter(path, format string, delimiter rune, header []string) (rowWriter, error) {
	if format == exportdomain.FormatXLSX {
		f := excelize.NewFile()
		w := &xlsxWriter{file: f, path: path, sheet: f.GetSheetName(0), next: 1}
		if err := w.WriteRows([][]string{header}); err != nil {
			_ = f.Close()
			return nil, err
		}
		return w, nil
	}

	fh, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create export file: %w", err)
	}
	w := newCSVWriter(fh, delimiter)
	if err := w.WriteRows([][]string{header}); err != nil {
		_ = fh.Close()
		return nil, err
	}
	return w, nil
}

// appendWriter opens an existing export file for more rows.
func appendWriter(path, format string, delimiter rune) (rowWriter, error) {
	if format == exportdomain.FormatXLSX {
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("open export file: %w", err)
		}
		w := &xlsxWriter{file: f, path: path, sheet: f.GetSheetName(0)}
		if err := w.seek(); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("read export file: %w", err)
		}
		return w, nil
	}

	fh, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open export file: %w", err)
	}
	return newCSVWriter(fh, delimiter), nil
}

type csvWriter struct {
	file *os.File
	w    *csv.Writer
}

func newCSVWriter(fh *os.File, delimiter rune) *csvWriter {
	w := csv.NewWriter(fh)
	w.Comma = delimiter
	return &csvWriter{file: fh, w: w}
}

func (c *csvWriter) WriteRows(rows [][]string) error {
	for _, r := range rows {
		if err := c.w.Write(r); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	return nil
}

func (c *csvWriter) Close() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		_ = c.file.Close()
		return fmt.Errorf("flush csv: %w", err)
	}
	return c.file.Close()
}

// xlsxWriter keeps the used range in the sheet dimension. Excelize drops
// rows without values on save, so a trailing blank row is only visible there.
type xlsxWriter struct {
	file  *excelize.File
	path  string
	sheet string
	next  int
	cols  int
}

// seek places the cursor after the last used row.
func (x *xlsxWriter) seek() error {
	rows, err := x.file.GetRows(x.sheet)
	if err != nil {
		return err
	}
	last := len(rows)
	for _, r := range rows {
		x.cols = max(x.cols, len(r))
	}

	ref, err := x.file.GetSheetDimension(x.sheet)
	if err != nil {
		return err
	}
	if ref != "" {
		_, end, found := strings.Cut(ref, ":")
		if !found {
			end = ref
		}
		col, row, err := excelize.CellNameToCoordinates(end)
		if err != nil {
			return err
		}
		last = max(last, row)
		x.cols = max(x.cols, col)
	}
	x.next = last + 1
	return nil
}

func (x *xlsxWriter) WriteRows(rows [][]string) error {
	for _, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, x.next)
		if err != nil {
			return err
		}
		row := r
		if err := x.file.SetSheetRow(x.sheet, cell, &row); err != nil {
			return fmt.Errorf("write xlsx row: %w", err)
		}
		x.cols = max(x.cols, len(r))
		x.next++
	}
	return nil
}

func (x *xlsxWriter) Close() error {
	defer x.file.Close()
	if x.next > 1 {
		end, err := excelize.CoordinatesToCellName(max(x.cols, 1), x.next-1)
		if err != nil {
			return err
		}
		if err := x.file.SetSheetDimension(x.sheet, "A1:"+end); err != nil {
			return fmt.Errorf("set xlsx dimension: %w", err)
		}
	}
	if err := x.file.SaveAs(x.path); err != nil {
		return fmt.Errorf("save xlsx: %w", err)
	}
	return nil
}
