package repository

import (
	"context"

	"github.com/talentoplus/talento-api/internal/domain/entity"
)

// DepartmentRepository define el puerto de persistencia para Department.
type DepartmentRepository interface {
	Create(ctx context.Context, department *entity.Department) error
	GetByID(ctx context.Context, id int64) (*entity.Department, error)
	// GetByName busca por igualdad exacta de nombre (sensible a mayúsculas).
	// Devuelve nil, nil si no existe.
	GetByName(ctx context.Context, name string) (*entity.Department, error)
	GetAll(ctx context.Context) ([]*entity.Department, error)
	// Delete devuelve domain.ErrDepartmentInUse si hay empleados que lo referencian.
	Delete(ctx context.Context, id int64) error
}
