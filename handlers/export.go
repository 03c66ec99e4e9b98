package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"p9e.in/zameen/config"
	"p9e.in/zameen/middleware"
	"p9e.in/zameen/models"
)

// ExportPaymentsToExcel downloads the owner's payment ledger as a styled
// .xlsx: one row per payment with land, farmer and the derived pending
// balance, plus a totals block.
func ExportPaymentsToExcel(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	var payments []models.Payment
	if err := config.DB.
		Where("user_id = ?", userID).
		Preload("Agreement").
		Preload("Agreement.Land").
		Preload("Agreement.Farmer").
		Order("created_at desc").
		Find(&payments).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	headers := []string{"Land", "Farmer", "Expected (₹)", "Received (₹)", "Pending (₹)", "Payment Date", "Status"}
	rows := make([][]interface{}, 0, len(payments))
	var totalExpected, totalReceived float64
	for _, p := range payments {
		landCode, farmerName := "N/A", "N/A"
		if p.Agreement != nil {
			if p.Agreement.Land != nil {
				landCode = p.Agreement.Land.LandIDCode
			}
			if p.Agreement.Farmer != nil {
				farmerName = p.Agreement.Farmer.Name
			}
		}
		paymentDate := ""
		if p.PaymentDate != nil {
			paymentDate = p.PaymentDate.Time().Format("2006-01-02")
		}
		rows = append(rows, []interface{}{
			landCode, farmerName, p.ExpectedAmount, p.ReceivedAmount, p.PendingBalance(), paymentDate, p.Status,
		})
		totalExpected += p.ExpectedAmount
		totalReceived += p.ReceivedAmount
	}

	summary := [][]interface{}{
		{"Total Expected", totalExpected},
		{"Total Received", totalReceived},
		{"Total Pending", totalExpected - totalReceived},
	}

	writeExcelDownload(w, "Payment Ledger", "payments", headers, rows, summary)
}

// ExportParchisToExcel downloads the owner's parchi register as .xlsx.
func ExportParchisToExcel(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	var parchis []models.Parchi
	if err := config.DB.
		Where("user_id = ?", userID).
		Preload("Land").
		Order("parchi_date desc").
		Find(&parchis).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	headers := []string{"Land", "Season", "Crop", "Type", "Date", "Amount (₹)", "Qty/Weight", "File"}
	rows := make([][]interface{}, 0, len(parchis))
	var totalAmount float64
	for _, p := range parchis {
		landCode := "N/A"
		if p.Land != nil {
			landCode = p.Land.LandIDCode
		}
		amount, qty := 0.0, 0.0
		if p.Amount != nil {
			amount = *p.Amount
			totalAmount += amount
		}
		if p.QuantityWeight != nil {
			qty = *p.QuantityWeight
		}
		fileURL := ""
		if p.FileURL != nil {
			fileURL = *p.FileURL
		}
		rows = append(rows, []interface{}{
			landCode, p.Season, p.CropName, p.ParchiType, p.ParchiDate.Time().Format("2006-01-02"), amount, qty, fileURL,
		})
	}

	summary := [][]interface{}{
		{"Total Amount", totalAmount},
	}

	writeExcelDownload(w, "Parchi Register", "parchis", headers, rows, summary)
}

// writeExcelDownload builds the workbook and streams it as an attachment.
func writeExcelDownload(w http.ResponseWriter, title, baseName string, headers []string, rows [][]interface{}, summary [][]interface{}) {
	f, err := buildExcelFile(title, headers, rows, summary)
	if err != nil {
		http.Error(w, "failed to generate Excel file", http.StatusInternalServerError)
		return
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		http.Error(w, "failed to write Excel file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("%s_%s.xlsx", baseName, time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))

	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

func buildExcelFile(title string, headers []string, rows [][]interface{}, summary [][]interface{}) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Sheet1"

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 14,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
		},
	})
	f.SetCellValue(sheet, "A1", title)
	f.SetCellStyle(sheet, "A1", "A1", titleStyle)
	f.SetCellValue(sheet, "A2", "Generated: "+time.Now().Format("2006-01-02 15:04"))

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "FFFFFF",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"4472C4"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	for colIdx, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 4)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+5)
			f.SetCellValue(sheet, cell, value)
		}
	}

	if len(summary) > 0 {
		summaryStyle, _ := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{
				Bold: true,
			},
		})
		summaryRow := len(rows) + 6
		for _, entry := range summary {
			keyCell, _ := excelize.CoordinatesToCellName(1, summaryRow)
			valueCell, _ := excelize.CoordinatesToCellName(2, summaryRow)
			f.SetCellValue(sheet, keyCell, entry[0])
			f.SetCellValue(sheet, valueCell, entry[1])
			f.SetCellStyle(sheet, keyCell, keyCell, summaryStyle)
			summaryRow++
		}
	}

	return f, nil
}
