// Package export renders expenses as spreadsheets.
package export

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/models"
)

// SheetName is the worksheet holding the exported expenses.
const SheetName = "Expenses"

var header = []interface{}{"ID", "Date", "Reason", "Amount"}

// WriteExpensesXLSX writes one row per expense, in the given order, followed
// by a total row.
func WriteExpensesXLSX(w io.Writer, expenses []models.Expense) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	total := decimal.Zero
	for i, e := range expenses {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		amount, _ := e.Amount.Float64()
		row := []interface{}{e.ID, e.Date.Format("2006-01-02"), string(e.Reason), amount}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write expense %d: %w", e.ID, err)
		}
		total = total.Add(e.Amount)
	}

	cell, err := excelize.CoordinatesToCellName(3, len(expenses)+2)
	if err != nil {
		return err
	}
	grand, _ := total.Float64()
	if err := f.SetSheetRow(SheetName, cell, &[]interface{}{"Total", grand}); err != nil {
		return fmt.Errorf("write total: %w", err)
	}

	if err := f.SetColWidth(SheetName, "B", "C", 14); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}
