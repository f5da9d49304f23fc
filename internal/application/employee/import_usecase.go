// Package employee contiene la reconciliación de importes masivos de
// empleados desde Excel: resolver-o-crear departamento por nombre y
// upsert de empleado por email.
package employee

import (
	"context"
	"fmt"
	"io"

	"github.com/talentoplus/talento-api/internal/application/dto"
	"github.com/talentoplus/talento-api/internal/application/ports"
	"github.com/talentoplus/talento-api/internal/domain/entity"
	"github.com/talentoplus/talento-api/internal/domain/repository"
)

// ImportUseCase reconcilia las filas parseadas contra la base:
//
//  1. Departamento: búsqueda por nombre con igualdad exacta (sensible a
//     mayúsculas y espacios; las variantes crean departamentos duplicados,
//     comportamiento documentado). Si no existe se crea y persiste de
//     inmediato, de modo que las filas siguientes del mismo lote lo reusan.
//  2. Empleado: si ya existe uno con el mismo email se sobrescriben todos
//     los campos mutables en sitio (el email nunca cambia por esta vía);
//     si no, se inserta con el id de departamento resuelto.
//
// Las filas se procesan estrictamente en orden y cada una se persiste de
// forma independiente: no hay transacción de lote y el fallo de una fila
// no aborta las demás.
type ImportUseCase struct {
	parser         ports.SpreadsheetParser
	employeeRepo   repository.EmployeeRepository
	departmentRepo repository.DepartmentRepository
}

// NewImportUseCase construye el caso de uso de importación.
func NewImportUseCase(
	parser ports.SpreadsheetParser,
	employeeRepo repository.EmployeeRepository,
	departmentRepo repository.DepartmentRepository,
) *ImportUseCase {
	return &ImportUseCase{
		parser:         parser,
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
	}
}

// ImportFromSpreadsheet parsea el archivo y reconcilia cada fila.
// Solo retorna error si el archivo mismo no se puede parsear; los fallos
// por fila quedan en el resumen.
func (uc *ImportUseCase) ImportFromSpreadsheet(ctx context.Context, r io.Reader) (*dto.ImportSummary, error) {
	candidates, err := uc.parser.ParseEmployees(r)
	if err != nil {
		return nil, fmt.Errorf("parsear archivo: %w", err)
	}
	return uc.Reconcile(ctx, candidates), nil
}

// Reconcile procesa los candidatos en orden de entrada.
func (uc *ImportUseCase) Reconcile(ctx context.Context, candidates []ports.EmployeeCandidate) *dto.ImportSummary {
	summary := &dto.ImportSummary{}

	for i, cand := range candidates {
		if err := uc.reconcileOne(ctx, cand, summary); err != nil {
			summary.Failed++
			summary.Errors = append(summary.Errors, fmt.Sprintf("fila %d (%s): %v", i+2, cand.Employee.Email, err))
		}
	}
	return summary
}

func (uc *ImportUseCase) reconcileOne(ctx context.Context, cand ports.EmployeeCandidate, summary *dto.ImportSummary) error {
	deptName := cand.DepartmentName
	if deptName == "" {
		deptName = entity.DefaultDepartmentName
	}

	deptID, err := uc.resolveDepartment(ctx, deptName)
	if err != nil {
		return err
	}

	emp := cand.Employee
	emp.DepartmentID = deptID

	existing, err := uc.employeeRepo.GetByEmail(ctx, emp.Email)
	if err != nil {
		return fmt.Errorf("buscar empleado por email: %w", err)
	}

	if existing != nil {
		// Sobrescritura completa de campos mutables; el email se conserva.
		existing.FirstName = emp.FirstName
		existing.LastName = emp.LastName
		existing.DocumentNumber = emp.DocumentNumber
		existing.ContactPhone = emp.ContactPhone
		existing.Position = emp.Position
		existing.Salary = emp.Salary
		existing.JoinDate = emp.JoinDate
		existing.Status = emp.Status
		existing.EducationLevel = emp.EducationLevel
		existing.ProfessionalProfile = emp.ProfessionalProfile
		existing.DepartmentID = emp.DepartmentID
		if err := uc.employeeRepo.Update(ctx, existing); err != nil {
			return fmt.Errorf("actualizar empleado: %w", err)
		}
		summary.Updated++
		return nil
	}

	if err := uc.employeeRepo.Create(ctx, &emp); err != nil {
		return fmt.Errorf("crear empleado: %w", err)
	}
	summary.Created++
	return nil
}

// resolveDepartment busca el departamento por nombre exacto; si no existe
// lo crea y lo persiste de inmediato para que las filas siguientes lo
// encuentren. Dos importes concurrentes pueden crear duplicados del mismo
// nombre nuevo: carrera conocida y aceptada, no mitigada.
func (uc *ImportUseCase) resolveDepartment(ctx context.Context, name string) (int64, error) {
	dept, err := uc.departmentRepo.GetByName(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("buscar departamento: %w", err)
	}
	if dept != nil {
		return dept.ID, nil
	}
	created := &entity.Department{Name: name}
	if err := uc.departmentRepo.Create(ctx, created); err != nil {
		return 0, fmt.Errorf("crear departamento: %w", err)
	}
	return created.ID, nil
}
