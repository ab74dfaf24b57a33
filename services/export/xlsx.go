// Package exportsvc writes rendered collection sheets to spreadsheet files.
package exportsvc

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/trezcool/masomo/core/collection"
)

const (
	defaultSheet = "Sheet1"
	maxSheetName = 31

	// ContentType is the MIME type of the files written by WriteXLSX.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var sheetNameReplacer = strings.NewReplacer(":", " ", "\\", " ", "/", " ", "?", " ", "*", " ", "[", "(", "]", ")")

// WriteXLSX writes one worksheet per sheet, with a bold header row. Unset values are already rendered as N/A.
func WriteXLSX(w io.Writer, sheets ...collection.Sheet) (err error) {
	if len(sheets) == 0 {
		return errors.New("no sheet to export")
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "closing workbook")
		}
	}()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "creating header style")
	}

	used := make(map[string]int, len(sheets))
	for i, sheet := range sheets {
		name := sheetName(sheet.Title, used)
		if i == 0 {
			if err = f.SetSheetName(defaultSheet, name); err != nil {
				return errors.Wrapf(err, "naming sheet %q", name)
			}
		} else if _, err = f.NewSheet(name); err != nil {
			return errors.Wrapf(err, "adding sheet %q", name)
		}
		if err = writeSheet(f, name, sheet, bold); err != nil {
			return err
		}
	}

	if err = f.Write(w); err != nil {
		return errors.Wrap(err, "writing workbook")
	}
	return nil
}

func writeSheet(f *excelize.File, name string, sheet collection.Sheet, headerStyle int) error {
	header := make([]interface{}, len(sheet.Header))
	for i, h := range sheet.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return errors.Wrapf(err, "writing %q header", name)
	}
	if err := f.SetRowStyle(name, 1, 1, headerStyle); err != nil {
		return errors.Wrapf(err, "styling %q header", name)
	}

	for i, row := range sheet.Rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = collection.Cell(v)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrapf(err, "locating %q row %d", name, i+1)
		}
		if err = f.SetSheetRow(name, cell, &cells); err != nil {
			return errors.Wrapf(err, "writing %q row %d", name, i+1)
		}
	}
	return nil
}

// sheetName makes title a valid, unique worksheet name.
func sheetName(title string, used map[string]int) string {
	name := strings.TrimSpace(sheetNameReplacer.Replace(title))
	if name == "" {
		name = "Export"
	}
	// excelize counts the name limit in characters
	if runes := []rune(name); len(runes) > maxSheetName {
		name = string(runes[:maxSheetName])
	}
	used[name]++
	if n := used[name]; n > 1 {
		suffix := " (" + strconv.Itoa(n) + ")"
		if runes := []rune(name); len(runes)+len(suffix) > maxSheetName {
			name = string(runes[:maxSheetName-len(suffix)])
		}
		name += suffix
	}
	return name
}
