package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"p9e.in/zameen/config"
	"p9e.in/zameen/middleware"
	"p9e.in/zameen/models"
)

type dashboardSummary struct {
	TotalLands          int64             `json:"totalLands"`
	ActiveAgreements    int64             `json:"activeAgreements"`
	TotalExpectedIncome float64           `json:"totalExpectedIncome"`
	TotalReceivedIncome float64           `json:"totalReceivedIncome"`
	PendingIncome       float64           `json:"pendingIncome"`
	RecentParchis       []recentParchi    `json:"recentParchis"`
	UpcomingRenewals    []upcomingRenewal `json:"upcomingRenewals"`
}

type recentParchi struct {
	ID         uuid.UUID       `json:"id"`
	LandIDCode string          `json:"landIdCode"`
	ParchiType string          `json:"parchiType"`
	Amount     *float64        `json:"amount,omitempty"`
	ParchiDate models.DateOnly `json:"parchiDate"`
}

type upcomingRenewal struct {
	ID         uuid.UUID       `json:"id"`
	LandIDCode string          `json:"landIdCode"`
	FarmerName string          `json:"farmerName"`
	EndDate    models.DateOnly `json:"endDate"`
}

// GetDashboardSummary reduces five independent owner-scoped queries into the
// overview figures: land count, active agreements, income totals, the five
// most recent parchis, and agreements expiring inside the next 90 days.
// Pending income is expected minus received, left unclamped.
func GetDashboardSummary(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == uuid.Nil {
		http.Error(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	var summary dashboardSummary

	if err := config.DB.Model(&models.Land{}).
		Where("user_id = ?", userID).
		Count(&summary.TotalLands).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if err := config.DB.Model(&models.Agreement{}).
		Where("user_id = ? AND status = ?", userID, "active").
		Count(&summary.ActiveAgreements).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var totals struct {
		Expected float64
		Received float64
	}
	if err := config.DB.Model(&models.Payment{}).
		Select("COALESCE(SUM(expected_amount), 0) AS expected, COALESCE(SUM(received_amount), 0) AS received").
		Where("user_id = ?", userID).
		Scan(&totals).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	summary.TotalExpectedIncome = totals.Expected
	summary.TotalReceivedIncome = totals.Received
	summary.PendingIncome = totals.Expected - totals.Received

	var parchis []models.Parchi
	if err := config.DB.
		Where("user_id = ?", userID).
		Preload("Land").
		Order("parchi_date desc").
		Limit(5).
		Find(&parchis).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	summary.RecentParchis = make([]recentParchi, 0, len(parchis))
	for _, p := range parchis {
		row := recentParchi{
			ID:         p.ID,
			LandIDCode: "N/A",
			ParchiType: p.ParchiType,
			Amount:     p.Amount,
			ParchiDate: p.ParchiDate,
		}
		if p.Land != nil {
			row.LandIDCode = p.Land.LandIDCode
		}
		summary.RecentParchis = append(summary.RecentParchis, row)
	}

	// Window bounds are strict: an agreement ending today or exactly 90 days
	// out is not listed.
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	windowEnd := today.AddDate(0, 0, 90)

	var renewals []models.Agreement
	if err := config.DB.
		Where("user_id = ? AND status = ? AND end_date > ? AND end_date < ?", userID, "active", today, windowEnd).
		Preload("Land").
		Preload("Farmer").
		Order("end_date asc").
		Limit(5).
		Find(&renewals).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	summary.UpcomingRenewals = make([]upcomingRenewal, 0, len(renewals))
	for _, a := range renewals {
		row := upcomingRenewal{
			ID:         a.ID,
			LandIDCode: "N/A",
			FarmerName: "N/A",
			EndDate:    a.EndDate,
		}
		if a.Land != nil {
			row.LandIDCode = a.Land.LandIDCode
		}
		if a.Farmer != nil {
			row.FarmerName = a.Farmer.Name
		}
		summary.UpcomingRenewals = append(summary.UpcomingRenewals, row)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}
