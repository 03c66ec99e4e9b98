package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"p9e.in/zameen/config"
	"p9e.in/zameen/models"
)

func TestLandRoundTrip(t *testing.T) {
	router := setupTestRouter(t)
	_, token := createTestUser(t, "owner@example.com")

	rec := doJSON(t, router, "POST", "/api/v1/lands", token, map[string]interface{}{
		"landIdCode": "LAND-001",
		"village":    "Rampur",
		"khasraNo":   "123/4",
		"areaAcres":  2.5,
		"areaBigha":  4.0,
		"status":     "active",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var created models.Land
	decodeBody(t, rec, &created)
	require.NotEmpty(t, created.ID)

	// listing shows exactly the created row, fields intact
	rec = doJSON(t, router, "GET", "/api/v1/lands", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var lands []models.Land
	decodeBody(t, rec, &lands)
	require.Len(t, lands, 1)
	assert.Equal(t, "LAND-001", lands[0].LandIDCode)
	assert.Equal(t, "123/4", lands[0].KhasraNo)
	require.NotNil(t, lands[0].Village)
	assert.Equal(t, "Rampur", *lands[0].Village)
	require.NotNil(t, lands[0].AreaAcres)
	assert.Equal(t, 2.5, *lands[0].AreaAcres)
	assert.Equal(t, "active", lands[0].Status)

	// editing must not duplicate the row
	rec = doJSON(t, router, "PUT", "/api/v1/lands/"+created.ID.String(), token, map[string]interface{}{
		"landIdCode": "LAND-001",
		"khasraNo":   "123/4",
		"status":     "leased",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, "GET", "/api/v1/lands", token, nil)
	decodeBody(t, rec, &lands)
	require.Len(t, lands, 1)
	assert.Equal(t, "leased", lands[0].Status)

	// delete removes the row from the list
	rec = doJSON(t, router, "DELETE", "/api/v1/lands/"+created.ID.String(), token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, "GET", "/api/v1/lands", token, nil)
	decodeBody(t, rec, &lands)
	assert.Len(t, lands, 0)

	// a failed delete leaves nothing else changed and reports the failure
	rec = doJSON(t, router, "DELETE", "/api/v1/lands/"+created.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLandRequiredFields(t *testing.T) {
	router := setupTestRouter(t)
	_, token := createTestUser(t, "owner@example.com")

	rec := doJSON(t, router, "POST", "/api/v1/lands", token, map[string]interface{}{
		"village": "Rampur",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLandOwnerScoping(t *testing.T) {
	router := setupTestRouter(t)
	_, ownerToken := createTestUser(t, "owner@example.com")
	_, otherToken := createTestUser(t, "other@example.com")

	rec := doJSON(t, router, "POST", "/api/v1/lands", ownerToken, map[string]interface{}{
		"landIdCode": "LAND-001",
		"khasraNo":   "123/4",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var created models.Land
	decodeBody(t, rec, &created)

	// another account sees nothing
	rec = doJSON(t, router, "GET", "/api/v1/lands", otherToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var lands []models.Land
	decodeBody(t, rec, &lands)
	assert.Len(t, lands, 0)

	// and cannot fetch, update or delete by id either
	rec = doJSON(t, router, "GET", "/api/v1/lands/"+created.ID.String(), otherToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, "DELETE", "/api/v1/lands/"+created.ID.String(), otherToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// the owner still has the row
	rec = doJSON(t, router, "GET", "/api/v1/lands", ownerToken, nil)
	decodeBody(t, rec, &lands)
	assert.Len(t, lands, 1)
}

func TestLandUpdateIgnoresBodyID(t *testing.T) {
	router := setupTestRouter(t)
	victim, _ := createTestUser(t, "victim@example.com")
	attacker, attackerToken := createTestUser(t, "attacker@example.com")

	victimLand := models.Land{UserID: victim.ID, LandIDCode: "LAND-V", KhasraNo: "9/9"}
	require.NoError(t, config.DB.Create(&victimLand).Error)
	attackerLand := models.Land{UserID: attacker.ID, LandIDCode: "LAND-A", KhasraNo: "1/1"}
	require.NoError(t, config.DB.Create(&attackerLand).Error)

	// a body carrying someone else's primary key must not redirect the write
	rec := doJSON(t, router, "PUT", "/api/v1/lands/"+attackerLand.ID.String(), attackerToken, map[string]interface{}{
		"id":         victimLand.ID,
		"landIdCode": "STOLEN",
		"khasraNo":   "1/1",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Land
	decodeBody(t, rec, &updated)
	assert.Equal(t, attackerLand.ID, updated.ID)

	var victimAfter models.Land
	require.NoError(t, config.DB.First(&victimAfter, "id = ?", victimLand.ID).Error)
	assert.Equal(t, victim.ID, victimAfter.UserID)
	assert.Equal(t, "LAND-V", victimAfter.LandIDCode)

	var attackerAfter models.Land
	require.NoError(t, config.DB.First(&attackerAfter, "id = ?", attackerLand.ID).Error)
	assert.Equal(t, "STOLEN", attackerAfter.LandIDCode)
}

func TestLandPreloadsFarmer(t *testing.T) {
	router := setupTestRouter(t)
	_, token := createTestUser(t, "owner@example.com")

	rec := doJSON(t, router, "POST", "/api/v1/farmers", token, map[string]interface{}{
		"name":    "Ramesh Kumar",
		"village": "Rampur",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var farmer models.Farmer
	decodeBody(t, rec, &farmer)

	rec = doJSON(t, router, "POST", "/api/v1/lands", token, map[string]interface{}{
		"landIdCode": "LAND-001",
		"khasraNo":   "123/4",
		"farmerId":   farmer.ID,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, "GET", "/api/v1/lands", token, nil)
	var lands []models.Land
	decodeBody(t, rec, &lands)
	require.Len(t, lands, 1)
	require.NotNil(t, lands[0].Farmer)
	assert.Equal(t, "Ramesh Kumar", lands[0].Farmer.Name)
}
