package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talentoplus/talento-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas de solo lectura para el dashboard.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador de agregados.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// CountByStatus cuenta empleados por estado en una sola pasada.
// Los importes históricos dejaron estados en español; cada contador suma
// el valor en inglés y su sinónimo en español.
func (r *DashboardRepo) CountByStatus(ctx context.Context) (repository.StatusCounts, error) {
	const query = `
	SELECT
	    COUNT(*)                                                           AS total,
	    COUNT(*) FILTER (WHERE status IN ('Active',   'Activo'))           AS active,
	    COUNT(*) FILTER (WHERE status IN ('Inactive', 'Inactivo'))         AS inactive,
	    COUNT(*) FILTER (WHERE status IN ('Vacation', 'Vacaciones'))       AS vacation
	FROM employees`

	var c repository.StatusCounts
	err := r.pool.QueryRow(ctx, query).Scan(&c.Total, &c.Active, &c.Inactive, &c.Vacation)
	if err != nil {
		return repository.StatusCounts{}, fmt.Errorf("dashboard.CountByStatus: %w", err)
	}
	return c, nil
}
