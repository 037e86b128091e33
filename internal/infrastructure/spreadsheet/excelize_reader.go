// Package spreadsheet implements the sheet reader port on top of
// excelize. Only the first worksheet of a file is ever read, and
// date-styled cells come back canonicalized to ISO-8601 regardless of
// their display format.
package spreadsheet

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Serial numbers in this range are treated as date cells when the cell
// carries a number format. 20000 is 1954-10-03 and 80000 is 2119-01-12;
// anything outside stays a plain number.
const (
	minDateSerial = 20000
	maxDateSerial = 80000
)

// ExcelReader reads xlsx files in-process. Parsing a workbook is a
// blocking operation with no natural cancellation point, so every read
// runs in its own goroutine and the caller's context bounds the wait.
type ExcelReader struct{}

func NewExcelReader() *ExcelReader {
	return &ExcelReader{}
}

// ReadRows returns every row of the first sheet as positional cell
// values, header included.
func (r *ExcelReader) ReadRows(ctx context.Context, path string) ([][]string, error) {
	return await(ctx, func() ([][]string, error) {
		return readSheet(path)
	})
}

// ReadObjects returns one map per data row, keyed by the trimmed header
// cells of the first row. Cells under a blank header are ignored, and
// rows whose every value is blank are dropped.
func (r *ExcelReader) ReadObjects(ctx context.Context, path string) ([]map[string]string, error) {
	return await(ctx, func() ([]map[string]string, error) {
		rows, err := readSheet(path)
		if err != nil {
			return nil, err
		}
		return rowsToObjects(rows), nil
	})
}

// await runs fn in a goroutine and returns its result, or the context
// error if the context expires first. A timed-out parse finishes in the
// background and its result is discarded via the buffered channel.
func await[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	type result struct {
		value T
		err   error
	}
	ch := make(chan result, 1)
	go func() {
		v, err := fn()
		ch <- result{value: v, err: err}
	}()

	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case res := <-ch:
		return res.value, res.err
	}
}

func readSheet(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook %s has no worksheet", path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}

	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	for i := range rows {
		for j := range rows[i] {
			if i < len(raw) && j < len(raw[i]) {
				rows[i][j] = canonicalCell(raw[i][j], rows[i][j])
			}
		}
	}
	return rows, nil
}

// canonicalCell rewrites date-styled cells to ISO-8601. Excel stores a
// date as a serial number and the formatted value depends on the cell's
// number format and the workbook's locale; the serial is the stable
// representation. A cell whose formatted text differs from its raw value
// and whose raw value is a serial in the date range is a date cell.
// Everything else keeps its formatted text.
func canonicalCell(raw, formatted string) string {
	if raw == formatted {
		return formatted
	}
	serial, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || serial < minDateSerial || serial > maxDateSerial {
		return formatted
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return formatted
	}
	return t.Format("2006-01-02T15:04:05")
}

func rowsToObjects(rows [][]string) []map[string]string {
	if len(rows) == 0 {
		return nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	objects := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		obj := make(map[string]string, len(headers))
		empty := true
		for i, header := range headers {
			if header == "" {
				continue
			}
			value := ""
			if i < len(row) {
				value = row[i]
			}
			obj[header] = value
			if strings.TrimSpace(value) != "" {
				empty = false
			}
		}
		if !empty {
			objects = append(objects, obj)
		}
	}
	return objects
}
