package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Harman090807/Hotel-management-app/models"
)

// ExportService builds the XLSX report downloads. Workbooks are assembled
// in memory and streamed by the export controller; nothing touches disk.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// GuestsWorkbook renders the current guests, one row per occupied room.
func (s *ExportService) GuestsWorkbook(guests []models.Guest) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Current Guests"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Room", "Booking ID", "Guest", "Phone", "Address", "From", "To", "Advance Paid"}
	if err := writeHeaderRow(f, sheet, headers); err != nil {
		return nil, err
	}

	for i, g := range guests {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), g.RoomNumber)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), g.Customer.BookingID)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), g.Customer.Name)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), g.Customer.Phone)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), g.Customer.Address)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), g.Customer.FromDate)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), g.Customer.ToDate)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), g.Customer.PaymentAdvance)
	}

	f.SetColWidth(sheet, "A", "B", 12)
	f.SetColWidth(sheet, "C", "C", 24)
	f.SetColWidth(sheet, "D", "E", 20)
	f.SetColWidth(sheet, "F", "G", 14)
	f.SetColWidth(sheet, "H", "H", 14)
	return f, nil
}

// HistoryWorkbook renders the stay ledger with a totals row at the bottom.
func (s *ExportService) HistoryWorkbook(stays []models.StayRecord) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Stay History"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Reference", "Room", "Booking ID", "Guest", "From", "To", "Days", "Bill", "Advance", "Payable", "Checked Out"}
	if err := writeHeaderRow(f, sheet, headers); err != nil {
		return nil, err
	}

	totalBill := 0
	totalPayable := 0.0
	for i, stay := range stays {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), stay.ReferenceCode)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), stay.RoomNumber)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), stay.BookingID)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), stay.GuestName)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), stay.FromDate)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), stay.ToDate)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), stay.Days)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), stay.Bill)
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), stay.Advance)
		f.SetCellValue(sheet, fmt.Sprintf("J%d", row), stay.Payable)
		f.SetCellValue(sheet, fmt.Sprintf("K%d", row), stay.CheckedOutAt.Format("2006-01-02 15:04:05"))

		totalBill += stay.Bill
		totalPayable += stay.Payable
	}

	summaryRow := len(stays) + 3
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("H%d", summaryRow), totalBill)
	f.SetCellValue(sheet, fmt.Sprintf("J%d", summaryRow), totalPayable)

	f.SetColWidth(sheet, "A", "A", 38)
	f.SetColWidth(sheet, "B", "C", 12)
	f.SetColWidth(sheet, "D", "D", 24)
	f.SetColWidth(sheet, "E", "F", 14)
	f.SetColWidth(sheet, "G", "J", 10)
	f.SetColWidth(sheet, "K", "K", 20)
	return f, nil
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string) error {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, style)
	}
	return nil
}
