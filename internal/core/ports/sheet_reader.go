package ports

import "context"

// SheetReader reads the first worksheet of a spreadsheet file. It mirrors
// the two shapes the loader consumes: keyed records for sheets with a
// header row, raw rows for positional sheets. Date-formatted cells are
// returned canonicalized to ISO-8601 strings.
type SheetReader interface {
	// ReadObjects returns one map per data row, keyed by the trimmed
	// header cells of the first row. Rows whose values are all blank are
	// dropped.
	ReadObjects(ctx context.Context, path string) ([]map[string]string, error)

	// ReadRows returns every row as a positional slice of cell values,
	// header included.
	ReadRows(ctx context.Context, path string) ([][]string, error)
}
