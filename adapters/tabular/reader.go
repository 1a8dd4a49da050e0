package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// RawRow is one parsed data row keyed by header name. Cell values stay
// strings; numeric coercion happens during validation.
type RawRow map[string]string

// Table holds a parsed tabular upload.
type Table struct {
	Headers []string
	Rows    []RawRow
}

// Reader parses CSV and XLSX uploads into raw rows.
type Reader struct {
	format string
}

// NewReader picks the parse format from the uploaded file name. Anything
// that is not .xlsx is treated as CSV.
func NewReader(filename string) *Reader {
	format := "csv"
	if strings.ToLower(filepath.Ext(filename)) == ".xlsx" {
		format = "xlsx"
	}
	return &Reader{format: format}
}

// Read parses the upload. It fails only when the input cannot be parsed
// into rows at all (unreadable file, missing header row); cell-level
// problems are left for per-row validation.
func (r *Reader) Read(src io.Reader) (*Table, error) {
	var rows [][]string
	var err error

	switch r.format {
	case "xlsx":
		rows, err = readExcelRows(src)
	default:
		rows, err = readCSVRows(src)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("file has no header row")
	}

	table := buildTable(rows)
	log.Printf("[TabularReader] %s upload parsed (%d columns, %d rows)",
		strings.ToUpper(r.format), len(table.Headers), len(table.Rows))
	return table, nil
}

func readCSVRows(src io.Reader) ([][]string, error) {
	reader := csv.NewReader(src)
	// Tolerate ragged rows; short rows fail validation per field instead.
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

func readExcelRows(src io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("Excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}

func buildTable(rows [][]string) *Table {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	dataRows := make([]RawRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rowData := make(RawRow, len(headers))
		for j, cell := range row {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}
		dataRows = append(dataRows, rowData)
	}

	return &Table{Headers: headers, Rows: dataRows}
}

// MissingColumns returns the required columns absent from the header, in
// the order given.
func (t *Table) MissingColumns(required []string) []string {
	present := make(map[string]bool, len(t.Headers))
	for _, h := range t.Headers {
		present[h] = true
	}

	var missing []string
	for _, col := range required {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing
}

// Records converts rows to raw records for validation. Cells absent from
// a short row are omitted rather than filled with empty strings, so they
// report as missing fields.
func (t *Table) Records() []map[string]interface{} {
	records := make([]map[string]interface{}, len(t.Rows))
	for i, row := range t.Rows {
		record := make(map[string]interface{}, len(row))
		for k, v := range row {
			record[k] = v
		}
		records[i] = record
	}
	return records
}
