package handlers

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"p9e.in/zameen/config"
	"p9e.in/zameen/models"
)

func TestExportPayments(t *testing.T) {
	router := setupTestRouter(t)
	user, token := createTestUser(t, "owner@example.com")
	agreement := createTestAgreement(t, user.ID)

	payment := models.Payment{
		UserID:         user.ID,
		AgreementID:    agreement.ID,
		ExpectedAmount: 1000,
		ReceivedAmount: 400,
		Status:         "partial",
	}
	require.NoError(t, config.DB.Create(&payment).Error)

	rec := doJSON(t, router, "GET", "/api/v1/export/payments", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment; filename=payments_")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Sheet1", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Payment Ledger", title)

	landCode, err := f.GetCellValue("Sheet1", "A5")
	require.NoError(t, err)
	assert.Equal(t, "LAND-001", landCode)

	pending, err := f.GetCellValue("Sheet1", "E5")
	require.NoError(t, err)
	assert.Equal(t, "600", pending)
}

func TestExportParchis(t *testing.T) {
	router := setupTestRouter(t)
	user, token := createTestUser(t, "owner@example.com")

	land := models.Land{UserID: user.ID, LandIDCode: "LAND-001", KhasraNo: "1/1"}
	require.NoError(t, config.DB.Create(&land).Error)

	var d models.DateOnly
	require.NoError(t, d.UnmarshalJSON([]byte(`"2026-03-15"`)))
	amount := 9800.0
	parchi := models.Parchi{
		UserID:     user.ID,
		LandID:     land.ID,
		Season:     "rabi",
		CropName:   "Wheat",
		ParchiType: "mandi_sale",
		ParchiDate: d,
		Amount:     &amount,
	}
	require.NoError(t, config.DB.Create(&parchi).Error)

	rec := doJSON(t, router, "GET", "/api/v1/export/parchis", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Disposition"), "attachment; filename=parchis_"))

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	crop, err := f.GetCellValue("Sheet1", "C5")
	require.NoError(t, err)
	assert.Equal(t, "Wheat", crop)

	date, err := f.GetCellValue("Sheet1", "E5")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", date)
}
