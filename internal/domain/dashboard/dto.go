package dashboard

import "github.com/shopspring/decimal"

// Stats is the landing page snapshot for an account.
type Stats struct {
	TotalEmployees  int             `json:"total_employees"`
	ActiveEmployees int             `json:"active_employees"`
	PresentToday    int             `json:"present_today"`
	TotalPaid       decimal.Decimal `json:"total_paid"`
	ActiveSites     int             `json:"active_sites"`
}
