package gridmap

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// CellValueFunc supplies the value stored at a physical coordinate.
type CellValueFunc func(physicalRow, physicalCol int) any

// WriteView writes the translator's visual projection as an xlsx workbook:
// one sheet holding the visible rows and columns in visual order, with
// values pulled from the supplier by physical coordinates. Skipped indexes
// produce no cells, so the output is gap-free the way a rendered grid is.
func WriteView(t *RecordTranslator, sheet string, values CellValueFunc, w io.Writer) error {
	if sheet == "" {
		sheet = "Sheet1"
	}
	f := excelize.NewFile()
	defer f.Close()
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return fmt.Errorf("rename sheet to %q: %w", sheet, err)
		}
	}

	for visRow := 0; visRow < t.Rows().VisibleLen(); visRow++ {
		physRow := t.Rows().GetPhysicalIndex(visRow)
		for visCol := 0; visCol < t.Cols().VisibleLen(); visCol++ {
			physCol := t.Cols().GetPhysicalIndex(visCol)
			value := values(physRow, physCol)
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(visCol+1, visRow+1)
			if err != nil {
				return fmt.Errorf("cell name for (%d, %d): %w", visRow, visCol, err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
