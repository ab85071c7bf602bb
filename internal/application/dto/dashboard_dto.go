package dto

// DashboardStatisticsDTO agregados del panel administrativo.
type DashboardStatisticsDTO struct {
	TotalEnquiries   int64            `json:"total_enquiries"`
	PendingEnquiries int64            `json:"pending_enquiries"`
	TotalFranchises  int64            `json:"total_franchises"`
	ActiveFranchises int64            `json:"active_franchises"` // contrato aceptado
	TotalUsers       int64            `json:"total_users"`
	StatusBreakdown  map[string]int64 `json:"status_breakdown"` // solicitudes por estado
}
