package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talentoplus/talento-api/internal/domain/entity"
	"github.com/talentoplus/talento-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

const employeeColumns = `id, first_name, last_name, email, document_number, position, salary,
	join_date, status, education_level, professional_profile, contact_phone, department_id, user_id`

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepo {
	return &EmployeeRepo{pool: pool}
}

// Create inserta un nuevo empleado y asigna el id generado.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO employees (first_name, last_name, email, document_number, position, salary,
			join_date, status, education_level, professional_profile, contact_phone, department_id, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`
	err := r.pool.QueryRow(ctx, query,
		e.FirstName, e.LastName, e.Email, e.DocumentNumber, e.Position, e.Salary,
		e.JoinDate, e.Status, e.EducationLevel, e.ProfessionalProfile, e.ContactPhone,
		e.DepartmentID, e.UserID,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por id. Devuelve nil, nil si no existe.
func (r *EmployeeRepo) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id), "get employee by id")
}

// GetByEmail obtiene el primer empleado con ese email (el email no es único
// en la base; la reconciliación lo trata como clave de negocio).
func (r *EmployeeRepo) GetByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1 ORDER BY id LIMIT 1`
	return r.scanOne(r.pool.QueryRow(ctx, query, email), "get employee by email")
}

// GetAll lista todos los empleados ordenados por id.
func (r *EmployeeRepo) GetAll(ctx context.Context) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := scanEmployee(rows, &e); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Exists verifica si un empleado existe por id.
func (r *EmployeeRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists employee: %w", err)
	}
	return exists, nil
}

// Update sobrescribe todos los campos mutables (last-write-wins).
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	query := `
		UPDATE employees SET first_name = $2, last_name = $3, email = $4, document_number = $5,
			position = $6, salary = $7, join_date = $8, status = $9, education_level = $10,
			professional_profile = $11, contact_phone = $12, department_id = $13, user_id = $14
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		e.ID, e.FirstName, e.LastName, e.Email, e.DocumentNumber, e.Position, e.Salary,
		e.JoinDate, e.Status, e.EducationLevel, e.ProfessionalProfile, e.ContactPhone,
		e.DepartmentID, e.UserID,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// Delete elimina un empleado por id.
func (r *EmployeeRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner, e *entity.Employee) error {
	return row.Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.DocumentNumber, &e.Position, &e.Salary,
		&e.JoinDate, &e.Status, &e.EducationLevel, &e.ProfessionalProfile, &e.ContactPhone,
		&e.DepartmentID, &e.UserID,
	)
}

func (r *EmployeeRepo) scanOne(row pgx.Row, op string) (*entity.Employee, error) {
	var e entity.Employee
	if err := scanEmployee(row, &e); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &e, nil
}
