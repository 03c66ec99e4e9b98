package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"p9e.in/zameen/config"
	"p9e.in/zameen/middleware"
	"p9e.in/zameen/models"
)

// setupTestRouter swaps config.DB for an in-memory sqlite database and
// returns a router with the same shape the routes package registers.
func setupTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps every query on the same in-memory database
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Farmer{}, &models.Land{},
		&models.Agreement{}, &models.Crop{}, &models.Parchi{}, &models.Payment{}))

	oldDB := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = oldDB })

	r := mux.NewRouter()
	r.HandleFunc("/register", Register).Methods("POST")
	r.HandleFunc("/login", Login).Methods("POST")

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.JWTMiddleware)
	api.HandleFunc("/me", GetCurrentUser).Methods("GET")
	api.HandleFunc("/change-password", ChangePassword).Methods("POST")
	api.HandleFunc("/dashboard/summary", GetDashboardSummary).Methods("GET")
	api.HandleFunc("/parchis/{id}/preview", GetParchiPreview).Methods("GET")
	api.HandleFunc("/export/payments", ExportPaymentsToExcel).Methods("GET")
	api.HandleFunc("/export/parchis", ExportParchisToExcel).Methods("GET")

	for path, h := range map[string][5]func(http.ResponseWriter, *http.Request){
		"/lands":      {GetAllLands, CreateLand, GetLand, UpdateLand, DeleteLand},
		"/farmers":    {GetAllFarmers, CreateFarmer, GetFarmer, UpdateFarmer, DeleteFarmer},
		"/agreements": {GetAllAgreements, CreateAgreement, GetAgreement, UpdateAgreement, DeleteAgreement},
		"/crops":      {GetAllCrops, CreateCrop, GetCrop, UpdateCrop, DeleteCrop},
		"/parchis":    {GetAllParchis, CreateParchi, GetParchi, UpdateParchi, DeleteParchi},
		"/payments":   {GetAllPayments, CreatePayment, GetPayment, UpdatePayment, DeletePayment},
	} {
		api.HandleFunc(path, h[0]).Methods("GET")
		api.HandleFunc(path, h[1]).Methods("POST")
		api.HandleFunc(path+"/{id}", h[2]).Methods("GET")
		api.HandleFunc(path+"/{id}", h[3]).Methods("PUT")
		api.HandleFunc(path+"/{id}", h[4]).Methods("DELETE")
	}

	return r
}

// createTestUser inserts an account directly and mints a token for it.
func createTestUser(t *testing.T, email string) (models.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Name:         "Test Owner",
		Email:        email,
		PasswordHash: string(hash),
	}
	require.NoError(t, config.DB.Create(&user).Error)

	token, err := middleware.GenerateToken(user.ID.String(), user.Name, user.Email)
	require.NoError(t, err)

	return user, token
}

// doJSON performs a request against the router, marshaling body when present.
func doJSON(t *testing.T, router *mux.Router, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
