package usecase

import (
	"context"
	"time"

	"github.com/talentoplus/talento-api/internal/application/dto"
	"github.com/talentoplus/talento-api/internal/application/ports"
	"github.com/talentoplus/talento-api/internal/domain"
	"github.com/talentoplus/talento-api/internal/domain/entity"
	"github.com/talentoplus/talento-api/internal/domain/repository"
)

// EmployeeUseCase CRUD de empleados y generación de su hoja de vida.
// Pass-throughs al repositorio sin caché ni detección de conflictos:
// un update con objeto viejo sobrescribe lo escrito en paralelo.
type EmployeeUseCase struct {
	repo     repository.EmployeeRepository
	deptRepo repository.DepartmentRepository
	cv       ports.CVGenerator
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(
	repo repository.EmployeeRepository,
	deptRepo repository.DepartmentRepository,
	cv ports.CVGenerator,
) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, deptRepo: deptRepo, cv: cv}
}

// Create crea un empleado. El departamento debe existir (FK en la base).
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	emp := &entity.Employee{
		FirstName:           in.FirstName,
		LastName:            in.LastName,
		Email:               in.Email,
		DocumentNumber:      in.DocumentNumber,
		Position:            in.Position,
		Salary:              in.Salary,
		JoinDate:            defaultJoinDate(in.JoinDate),
		Status:              defaultStatus(in.Status),
		EducationLevel:      in.EducationLevel,
		ProfessionalProfile: in.ProfessionalProfile,
		ContactPhone:        in.ContactPhone,
		DepartmentID:        in.DepartmentID,
	}
	if err := uc.repo.Create(ctx, emp); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, emp), nil
}

// GetByID obtiene un empleado por id. Devuelve nil, nil si no existe.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id int64) (*dto.EmployeeResponse, error) {
	emp, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, nil
	}
	return uc.toResponse(ctx, emp), nil
}

// GetByEmail obtiene un empleado por email (usado por /me).
func (uc *EmployeeUseCase) GetByEmail(ctx context.Context, email string) (*dto.EmployeeResponse, error) {
	emp, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, nil
	}
	return uc.toResponse(ctx, emp), nil
}

// GetAll lista todos los empleados.
func (uc *EmployeeUseCase) GetAll(ctx context.Context) ([]dto.EmployeeResponse, error) {
	list, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	// Resolver nombres de departamento con un solo lookup de la lista
	names := map[int64]string{}
	depts, err := uc.deptRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range depts {
		names[d.ID] = d.Name
	}
	out := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		r := toEmployeeResponse(e)
		r.DepartmentName = names[e.DepartmentID]
		out = append(out, r)
	}
	return out, nil
}

// Update sobrescribe todos los campos del empleado con el cuerpo recibido,
// incluido el email (solo la reconciliación de importe lo preserva).
func (uc *EmployeeUseCase) Update(ctx context.Context, id int64, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	emp, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	emp.FirstName = in.FirstName
	emp.LastName = in.LastName
	emp.Email = in.Email
	emp.DocumentNumber = in.DocumentNumber
	emp.Position = in.Position
	emp.Salary = in.Salary
	emp.JoinDate = defaultJoinDate(in.JoinDate)
	emp.Status = defaultStatus(in.Status)
	emp.EducationLevel = in.EducationLevel
	emp.ProfessionalProfile = in.ProfessionalProfile
	emp.ContactPhone = in.ContactPhone
	emp.DepartmentID = in.DepartmentID
	if err := uc.repo.Update(ctx, emp); err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, emp), nil
}

// Delete elimina un empleado por id.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id int64) error {
	exists, err := uc.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// GenerateCV genera la hoja de vida en PDF del empleado indicado.
func (uc *EmployeeUseCase) GenerateCV(ctx context.Context, id int64) ([]byte, *entity.Employee, error) {
	emp, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if emp == nil {
		return nil, nil, domain.ErrNotFound
	}
	deptName := uc.departmentName(ctx, emp.DepartmentID)
	pdf, err := uc.cv.GenerateEmployeeCV(emp, deptName)
	if err != nil {
		return nil, nil, err
	}
	return pdf, emp, nil
}

// GenerateCVByEmail variante de GenerateCV para /me/cv.
func (uc *EmployeeUseCase) GenerateCVByEmail(ctx context.Context, email string) ([]byte, *entity.Employee, error) {
	emp, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if emp == nil {
		return nil, nil, domain.ErrNotFound
	}
	deptName := uc.departmentName(ctx, emp.DepartmentID)
	pdf, err := uc.cv.GenerateEmployeeCV(emp, deptName)
	if err != nil {
		return nil, nil, err
	}
	return pdf, emp, nil
}

func (uc *EmployeeUseCase) departmentName(ctx context.Context, id int64) string {
	dept, err := uc.deptRepo.GetByID(ctx, id)
	if err != nil || dept == nil {
		return "N/A"
	}
	return dept.Name
}

func (uc *EmployeeUseCase) toResponse(ctx context.Context, e *entity.Employee) *dto.EmployeeResponse {
	r := toEmployeeResponse(e)
	r.DepartmentName = uc.departmentName(ctx, e.DepartmentID)
	return &r
}

func toEmployeeResponse(e *entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:                  e.ID,
		FirstName:           e.FirstName,
		LastName:            e.LastName,
		Email:               e.Email,
		DocumentNumber:      e.DocumentNumber,
		Position:            e.Position,
		Salary:              e.Salary,
		JoinDate:            e.JoinDate,
		Status:              e.Status,
		EducationLevel:      e.EducationLevel,
		ProfessionalProfile: e.ProfessionalProfile,
		ContactPhone:        e.ContactPhone,
		DepartmentID:        e.DepartmentID,
	}
}

func defaultStatus(s string) string {
	if s == "" {
		return entity.StatusActive
	}
	return s
}

func defaultJoinDate(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}
