package repository

import "context"

// StatusCounts agregados de empleados por estado para el dashboard.
type StatusCounts struct {
	Total    int64
	Active   int64
	Inactive int64
	Vacation int64
}

// DashboardRepository consultas agregadas de solo lectura.
type DashboardRepository interface {
	// CountByStatus cuenta empleados por estado. Los sinónimos en español
	// (Activo, Inactivo, Vacaciones) se suman a su equivalente en inglés.
	CountByStatus(ctx context.Context) (StatusCounts, error)
}
