// Package analytics contiene el caso de uso del dashboard administrativo:
// agregados del embudo de solicitudes y del parque de franquicias.
package analytics

import (
	"context"

	"github.com/upl-snipe/partner-api/internal/application/dto"
	"github.com/upl-snipe/partner-api/internal/domain/entity"
	"github.com/upl-snipe/partner-api/internal/domain/repository"
)

// DashboardUseCase genera las estadísticas del panel (admin / operational_head).
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetStatistics construye el DashboardStatisticsDTO.
//
// Las cuatro consultas independientes corren en goroutines y se recogen por
// canal; el desglose por estado (que ya incluye el conteo de pendientes) corre
// en la goroutine principal.
func (uc *DashboardUseCase) GetStatistics(ctx context.Context) (*dto.DashboardStatisticsDTO, error) {
	type countResult struct {
		n   int64
		err error
	}

	totalEnqCh := make(chan countResult, 1)
	franchCh := make(chan countResult, 1)
	activeCh := make(chan countResult, 1)
	usersCh := make(chan countResult, 1)

	go func() {
		n, err := uc.analyticsRepo.CountEnquiries(ctx)
		totalEnqCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountFranchises(ctx)
		franchCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountActiveFranchises(ctx)
		activeCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountUsers(ctx)
		usersCh <- countResult{n, err}
	}()

	breakdown, err := uc.analyticsRepo.CountEnquiriesByStatus(ctx)
	if err != nil {
		return nil, err
	}

	totalEnq := <-totalEnqCh
	franch := <-franchCh
	active := <-activeCh
	users := <-usersCh
	for _, r := range []countResult{totalEnq, franch, active, users} {
		if r.err != nil {
			return nil, r.err
		}
	}

	return &dto.DashboardStatisticsDTO{
		TotalEnquiries:   totalEnq.n,
		PendingEnquiries: breakdown[entity.EnquiryStatusPending],
		TotalFranchises:  franch.n,
		ActiveFranchises: active.n,
		TotalUsers:       users.n,
		StatusBreakdown:  breakdown,
	}, nil
}
