// models/revenue.go
package models

// RevenueDetail is the per-collaborator revenue aggregate. It is fetched
// independently for each collaborator and merged into a list keyed by
// CollaboratorID.
type RevenueDetail struct {
	CollaboratorID             string  `json:"collaboratorId"`
	CollaboratorName           string  `json:"collaboratorName"`
	TotalRevenue               float64 `json:"totalRevenue"`
	TotalCommission            float64 `json:"totalCommission"`
	TotalRevenueWithCommission float64 `json:"totalRevenueWithCommission"`
	CommissionRate             float64 `json:"commissionRate"`
}
