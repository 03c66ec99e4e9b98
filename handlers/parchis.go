package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"p9e.in/zameen/config"
	"p9e.in/zameen/middleware"
	"p9e.in/zameen/models"
)

// GetAllParchis lists the owner's documents newest-first by document date,
// not creation time, matching how the register is read on paper.
func GetAllParchis(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	var items []models.Parchi
	if err := config.DB.
		Where("user_id = ?", userID).
		Preload("Land").
		Order("parchi_date desc").
		Find(&items).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

// CreateParchi accepts a multipart form: the row fields plus an optional
// "file" part. When a file is present it is stored first, under a generated
// collision-resistant name; if storage fails the row is never inserted.
func CreateParchi(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	var item models.Parchi

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
			return
		}
		parsed, err := parchiFromForm(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		item = parsed

		if file, header, err := r.FormFile("file"); err == nil {
			defer file.Close()
			url, objectPath, uploadErr := StoreParchiFile(r.Context(), file, header.Filename)
			if uploadErr != nil {
				http.Error(w, "file upload failed: "+uploadErr.Error(), http.StatusInternalServerError)
				return
			}
			item.FileURL = &url
			item.FilePath = &objectPath
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	if item.LandID == uuid.Nil || item.CropName == "" {
		http.Error(w, "land and crop name are required", http.StatusBadRequest)
		return
	}

	item.UserID = userID

	if err := config.DB.Create(&item).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

// parchiFromForm maps multipart fields onto a Parchi. Blank optional
// numeric fields become NULL, not zero.
func parchiFromForm(r *http.Request) (models.Parchi, error) {
	var item models.Parchi

	if v := r.FormValue("land_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return item, err
		}
		item.LandID = id
	}
	item.Season = r.FormValue("season")
	if item.Season == "" {
		item.Season = "rabi"
	}
	item.CropName = r.FormValue("crop_name")
	item.ParchiType = r.FormValue("parchi_type")
	if item.ParchiType == "" {
		item.ParchiType = "mandi_sale"
	}
	if v := r.FormValue("parchi_date"); v != "" {
		var d models.DateOnly
		if err := d.UnmarshalJSON([]byte(strconv.Quote(v))); err != nil {
			return item, err
		}
		item.ParchiDate = d
	}
	if v := r.FormValue("amount"); v != "" {
		amount, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return item, err
		}
		item.Amount = &amount
	}
	if v := r.FormValue("quantity_weight"); v != "" {
		qty, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return item, err
		}
		item.QuantityWeight = &qty
	}
	return item, nil
}

func GetParchi(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id := params["id"]
	userID := middleware.GetUserID(r)

	var item models.Parchi
	result := config.DB.Where("id = ? AND user_id = ?", id, userID).Preload("Land").First(&item)
	if result.Error != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

type parchiPreview struct {
	Mode string `json:"mode"` // image or document
	URL  string `json:"url"`
}

// GetParchiPreview tells the client which preview branch to take for the
// attached file: inline image, or download for pdfs and everything else.
func GetParchiPreview(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id := params["id"]
	userID := middleware.GetUserID(r)

	var item models.Parchi
	result := config.DB.Where("id = ? AND user_id = ?", id, userID).First(&item)
	if result.Error != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	if item.FileURL == nil {
		http.Error(w, "parchi has no file attached", http.StatusNotFound)
		return
	}

	preview := parchiPreview{Mode: "document", URL: *item.FileURL}
	if item.HasImageFile() {
		preview.Mode = "image"
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(preview)
}

func UpdateParchi(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id := params["id"]
	userID := middleware.GetUserID(r)

	var item models.Parchi
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

func DeleteParchi(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id := params["id"]
	userID := middleware.GetUserID(r)

	result := config.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Parchi{})
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
