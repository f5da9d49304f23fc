package repository

import (
	"context"

	"github.com/talentoplus/talento-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
// Todas las operaciones son pass-throughs sin caché ni control de concurrencia
// optimista: un Update con datos viejos sobrescribe (last-write-wins).
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id int64) (*entity.Employee, error)
	GetByEmail(ctx context.Context, email string) (*entity.Employee, error)
	GetAll(ctx context.Context) ([]*entity.Employee, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, employee *entity.Employee) error
	Delete(ctx context.Context, id int64) error
}
