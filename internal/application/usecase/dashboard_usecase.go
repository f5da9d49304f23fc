package usecase

import (
	"context"
	"fmt"

	"github.com/talentoplus/talento-api/internal/application/dto"
	"github.com/talentoplus/talento-api/internal/domain/repository"
)

// DashboardUseCase genera los contadores agregados de empleados.
// Delegado por completo al repositorio de consultas read-only; el resultado
// es un objeto tipado por petición, sin contadores globales mutables.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// GetSummary devuelve los contadores por estado.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummary, error) {
	counts, err := uc.repo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: contar empleados: %w", err)
	}
	return &dto.DashboardSummary{
		TotalEmployees: counts.Total,
		ActiveCount:    counts.Active,
		InactiveCount:  counts.Inactive,
		VacationCount:  counts.Vacation,
	}, nil
}
