package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talentoplus/talento-api/internal/domain"
	"github.com/talentoplus/talento-api/internal/domain/entity"
	"github.com/talentoplus/talento-api/internal/domain/repository"
)

var _ repository.DepartmentRepository = (*DepartmentRepo)(nil)

// DepartmentRepo implementación del puerto DepartmentRepository sobre PostgreSQL.
type DepartmentRepo struct {
	pool *pgxpool.Pool
}

// NewDepartmentRepository construye el adaptador de persistencia para departamentos.
func NewDepartmentRepository(pool *pgxpool.Pool) *DepartmentRepo {
	return &DepartmentRepo{pool: pool}
}

// Create inserta un nuevo departamento y asigna el id generado.
func (r *DepartmentRepo) Create(ctx context.Context, d *entity.Department) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO departments (name) VALUES ($1) RETURNING id`, d.Name,
	).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("insert department: %w", err)
	}
	return nil
}

// GetByID obtiene un departamento por id. Devuelve nil, nil si no existe.
func (r *DepartmentRepo) GetByID(ctx context.Context, id int64) (*entity.Department, error) {
	var d entity.Department
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM departments WHERE id = $1`, id).
		Scan(&d.ID, &d.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get department by id: %w", err)
	}
	return &d, nil
}

// GetByName busca por igualdad exacta de nombre. La comparación es la del
// collation por defecto (sensible a mayúsculas y espacios): "ventas" y
// "Ventas " son departamentos distintos para la importación.
func (r *DepartmentRepo) GetByName(ctx context.Context, name string) (*entity.Department, error) {
	var d entity.Department
	err := r.pool.QueryRow(ctx,
		`SELECT id, name FROM departments WHERE name = $1 ORDER BY id LIMIT 1`, name,
	).Scan(&d.ID, &d.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get department by name: %w", err)
	}
	return &d, nil
}

// GetAll lista todos los departamentos ordenados por id.
func (r *DepartmentRepo) GetAll(ctx context.Context) ([]*entity.Department, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM departments ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Department
	for rows.Next() {
		var d entity.Department
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Delete elimina un departamento. La FK de employees tiene ON DELETE RESTRICT:
// la violación 23503 se convierte en domain.ErrDepartmentInUse para que el
// handler responda 409 en lugar de un fallo sin estructura.
func (r *DepartmentRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrDepartmentInUse
		}
		return fmt.Errorf("delete department: %w", err)
	}
	return nil
}
