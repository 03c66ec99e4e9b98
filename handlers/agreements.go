package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"p9e.in/zameen/config"
	"p9e.in/zameen/middleware"
	"p9e.in/zameen/models"
)

// GetAllAgreements preloads land and farmer so clients can show the
// "LAND-001 - Ramesh" display string and pre-fill the expected amount
// when recording a payment.
func GetAllAgreements(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	var items []models.Agreement
	if err := config.DB.
		Where("user_id = ?", userID).
		Preload("Land").
		Preload("Farmer").
		Order("created_at desc").
		Find(&items).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

func CreateAgreement(w http.ResponseWriter, r *http.Request) {
	var item models.Agreement
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if item.LandID == uuid.Nil || item.FarmerID == uuid.Nil {
		http.Error(w, "land and farmer are required", http.StatusBadRequest)
		return
	}

	item.UserID = middleware.GetUserID(r)

	if err := config.DB.Create(&item).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func GetAgreement(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id := params["id"]
	userID := middleware.GetUserID(r)

	var item models.Agreement
	result := config.DB.Where("id = ? AND user_id = ?", id, userID).
		Preload("Land").
		Preload("Farmer").
		First(&item)
	if result.Error != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func UpdateAgreement(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id := params["id"]
	userID := middleware.GetUserID(r)

	var item models.Agreement
	result := config.DB.Where("id = ? AND user_id = ?", id, userID).First(&item)
	if result.Error != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	loadedID := item.ID
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	// Row identity and owner tag cannot be changed by the body
	item.ID = loadedID
	item.UserID = userID
	if err := config.DB.Save(&item).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func DeleteAgreement(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id := params["id"]
	userID := middleware.GetUserID(r)

	result := config.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Agreement{})
	if result.Error != nil {
		http.Error(w, "failed to delete record", http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
