package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"p9e.in/zameen/config"
	"p9e.in/zameen/models"
)

func TestAgreementRoundTrip(t *testing.T) {
	router := setupTestRouter(t)
	user, token := createTestUser(t, "owner@example.com")

	land := models.Land{UserID: user.ID, LandIDCode: "LAND-001", KhasraNo: "1/1"}
	require.NoError(t, config.DB.Create(&land).Error)
	farmer := models.Farmer{UserID: user.ID, Name: "Ramesh"}
	require.NoError(t, config.DB.Create(&farmer).Error)

	rec := doJSON(t, router, "POST", "/api/v1/agreements", token, map[string]interface{}{
		"landId":         land.ID,
		"farmerId":       farmer.ID,
		"startDate":      "2026-04-01",
		"endDate":        "2027-03-31",
		"paymentType":    "fixed",
		"expectedAmount": 60000,
		"status":         "active",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var created models.Agreement
	decodeBody(t, rec, &created)
	require.NotEmpty(t, created.ID)

	rec = doJSON(t, router, "GET", "/api/v1/agreements", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var agreements []models.Agreement
	decodeBody(t, rec, &agreements)
	require.Len(t, agreements, 1)
	assert.Equal(t, "2026-04-01", agreements[0].StartDate.Time().Format("2006-01-02"))
	assert.Equal(t, "2027-03-31", agreements[0].EndDate.Time().Format("2006-01-02"))
	assert.Equal(t, float64(60000), agreements[0].ExpectedAmount)
	require.NotNil(t, agreements[0].Land)
	assert.Equal(t, "LAND-001", agreements[0].Land.LandIDCode)
	require.NotNil(t, agreements[0].Farmer)
	assert.Equal(t, "Ramesh", agreements[0].Farmer.Name)
}

func TestAgreementRequiredFields(t *testing.T) {
	router := setupTestRouter(t)
	user, token := createTestUser(t, "owner@example.com")

	land := models.Land{UserID: user.ID, LandIDCode: "LAND-001", KhasraNo: "1/1"}
	require.NoError(t, config.DB.Create(&land).Error)

	// missing farmer
	rec := doJSON(t, router, "POST", "/api/v1/agreements", token, map[string]interface{}{
		"landId":         land.ID,
		"startDate":      "2026-04-01",
		"endDate":        "2027-03-31",
		"expectedAmount": 60000,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// missing land
	rec = doJSON(t, router, "POST", "/api/v1/agreements", token, map[string]interface{}{
		"farmerId":       land.ID,
		"startDate":      "2026-04-01",
		"endDate":        "2027-03-31",
		"expectedAmount": 60000,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCropRoundTrip(t *testing.T) {
	router := setupTestRouter(t)
	user, token := createTestUser(t, "owner@example.com")

	land := models.Land{UserID: user.ID, LandIDCode: "LAND-001", KhasraNo: "1/1"}
	require.NoError(t, config.DB.Create(&land).Error)

	rec := doJSON(t, router, "POST", "/api/v1/crops", token, map[string]interface{}{
		"landId":       land.ID,
		"season":       "kharif",
		"cropName":     "Paddy",
		"sowingMonth":  "June",
		"harvestMonth": "October",
		"year":         2026,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, "GET", "/api/v1/crops", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var crops []models.Crop
	decodeBody(t, rec, &crops)
	require.Len(t, crops, 1)
	assert.Equal(t, "Paddy", crops[0].CropName)
	assert.Equal(t, "kharif", crops[0].Season)
	assert.Equal(t, 2026, crops[0].Year)
	require.NotNil(t, crops[0].SowingMonth)
	assert.Equal(t, "June", *crops[0].SowingMonth)
	require.NotNil(t, crops[0].Land)
	assert.Equal(t, "LAND-001", crops[0].Land.LandIDCode)
}

func TestCropRequiredFields(t *testing.T) {
	router := setupTestRouter(t)
	_, token := createTestUser(t, "owner@example.com")

	rec := doJSON(t, router, "POST", "/api/v1/crops", token, map[string]interface{}{
		"season": "rabi",
		"year":   2026,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
