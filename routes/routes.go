package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"p9e.in/zameen/handlers"
	"p9e.in/zameen/middleware"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes() http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger)

	// =====================================================
	// Public Routes (no authentication)
	// =====================================================
	r.HandleFunc("/register", handlers.Register).Methods("POST")
	r.HandleFunc("/login", handlers.Login).Methods("POST")
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir("./uploads"))),
	)

	// =====================================================
	// Protected API Routes (require JWT authentication)
	// =====================================================
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.JWTMiddleware)

	// Session check / current account
	api.HandleFunc("/me", handlers.GetCurrentUser).Methods("GET")
	api.HandleFunc("/change-password", handlers.ChangePassword).Methods("POST")

	registerRecordRoutes(api)

	// Dashboard overview
	api.HandleFunc("/dashboard/summary", handlers.GetDashboardSummary).Methods("GET")

	// Ledger exports
	api.HandleFunc("/export/payments", handlers.ExportPaymentsToExcel).Methods("GET")
	api.HandleFunc("/export/parchis", handlers.ExportParchisToExcel).Methods("GET")

	return r
}

// crudHandlers holds handlers for a CRUD resource
type crudHandlers struct {
	getAll func(http.ResponseWriter, *http.Request)
	create func(http.ResponseWriter, *http.Request)
	getOne func(http.ResponseWriter, *http.Request)
	update func(http.ResponseWriter, *http.Request)
	delete func(http.ResponseWriter, *http.Request)
}

// registerRecordRoutes registers CRUD routes for every record type
func registerRecordRoutes(api *mux.Router) {
	registerCRUDRoutes(api, "/lands", crudHandlers{
		getAll: handlers.GetAllLands,
		create: handlers.CreateLand,
		getOne: handlers.GetLand,
		update: handlers.UpdateLand,
		delete: handlers.DeleteLand,
	})

	registerCRUDRoutes(api, "/farmers", crudHandlers{
		getAll: handlers.GetAllFarmers,
		create: handlers.CreateFarmer,
		getOne: handlers.GetFarmer,
		update: handlers.UpdateFarmer,
		delete: handlers.DeleteFarmer,
	})

	registerCRUDRoutes(api, "/agreements", crudHandlers{
		getAll: handlers.GetAllAgreements,
		create: handlers.CreateAgreement,
		getOne: handlers.GetAgreement,
		update: handlers.UpdateAgreement,
		delete: handlers.DeleteAgreement,
	})

	registerCRUDRoutes(api, "/crops", crudHandlers{
		getAll: handlers.GetAllCrops,
		create: handlers.CreateCrop,
		getOne: handlers.GetCrop,
		update: handlers.UpdateCrop,
		delete: handlers.DeleteCrop,
	})

	registerCRUDRoutes(api, "/parchis", crudHandlers{
		getAll: handlers.GetAllParchis,
		create: handlers.CreateParchi,
		getOne: handlers.GetParchi,
		update: handlers.UpdateParchi,
		delete: handlers.DeleteParchi,
	})
	api.HandleFunc("/parchis/{id}/preview", handlers.GetParchiPreview).Methods("GET")

	registerCRUDRoutes(api, "/payments", crudHandlers{
		getAll: handlers.GetAllPayments,
		create: handlers.CreatePayment,
		getOne: handlers.GetPayment,
		update: handlers.UpdatePayment,
		delete: handlers.DeletePayment,
	})
}

// registerCRUDRoutes registers standard CRUD routes for a resource
func registerCRUDRoutes(router *mux.Router, path string, h crudHandlers) {
	router.HandleFunc(path, h.getAll).Methods("GET")
	router.HandleFunc(path, h.create).Methods("POST")
	router.HandleFunc(path+"/{id}", h.getOne).Methods("GET")
	router.HandleFunc(path+"/{id}", h.update).Methods("PUT")
	router.HandleFunc(path+"/{id}", h.delete).Methods("DELETE")
}
