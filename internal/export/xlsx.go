// Package export writes ledger data to spreadsheet files for backup delivery.
package export

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	portssvc "github.com/yalejo-dev/gyie_backend/internal/core/ports/services"
	"github.com/yalejo-dev/gyie_backend/internal/dto"
)

const (
	transactionSheet = "Transacciones"
	clientSheet      = "Clientes"
)

var transactionHeader = []string{
	"ID", "Fecha", "Tipo", "Subtipo", "Monto",
	"Cliente", "Empleado", "Descripcion", "Estado",
}

var clientHeader = []string{
	"ID", "Nombre", "Telefono", "Notas", "Empleado", "Creado",
}

// XlsxExporter writes backup rows to an .xlsx workbook.
type XlsxExporter struct{}

// NewXlsxExporter creates the spreadsheet exporter.
func NewXlsxExporter() portssvc.SpreadsheetExporter {
	return &XlsxExporter{}
}

var _ portssvc.SpreadsheetExporter = (*XlsxExporter)(nil)

// ExportTransactions writes the rows to a timestamped workbook under dir and
// returns the full path of the created file.
func (e *XlsxExporter) ExportTransactions(ctx context.Context, dir string, rows []dto.BackupRow) (string, error) {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		values[i] = []interface{}{
			row.TransactionID,
			row.CreatedAt.Format("2006-01-02 15:04:05"),
			row.Kind,
			row.Subtype,
			row.Amount.String(),
			row.ClientName,
			row.EmployeeName,
			row.Description,
			row.DebtStatus,
		}
	}
	return writeWorkbook(ctx, dir, "gyie_transacciones", transactionSheet, transactionHeader, values)
}

// ExportClients writes the client roster to a timestamped workbook under dir
// and returns the full path of the created file.
func (e *XlsxExporter) ExportClients(ctx context.Context, dir string, clients []dto.ClientResponse) (string, error) {
	values := make([][]interface{}, len(clients))
	for i, client := range clients {
		employee := "No"
		if client.IsEmployee {
			employee = "Si"
		}
		values[i] = []interface{}{
			client.ClientID,
			client.Name,
			client.Phone,
			client.Notes,
			employee,
			client.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}
	return writeWorkbook(ctx, dir, "gyie_clientes", clientSheet, clientHeader, values)
}

func writeWorkbook(ctx context.Context, dir, prefix, sheet string, header []string, rows [][]interface{}) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", fmt.Errorf("failed to drop default sheet: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return "", fmt.Errorf("failed to write header row: %w", err)
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return "", fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	path := filepath.Join(dir, fmt.Sprintf("%s_%s.xlsx", prefix, time.Now().Format("20060102_150405")))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}
	return path, nil
}
