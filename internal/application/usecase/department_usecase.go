package usecase

import (
	"context"
	"strings"

	"github.com/talentoplus/talento-api/internal/application/dto"
	"github.com/talentoplus/talento-api/internal/domain"
	"github.com/talentoplus/talento-api/internal/domain/entity"
	"github.com/talentoplus/talento-api/internal/domain/repository"
)

const maxDepartmentName = 100

// DepartmentUseCase CRUD de departamentos.
type DepartmentUseCase struct {
	repo repository.DepartmentRepository
}

// NewDepartmentUseCase construye el caso de uso.
func NewDepartmentUseCase(repo repository.DepartmentRepository) *DepartmentUseCase {
	return &DepartmentUseCase{repo: repo}
}

// GetAll lista todos los departamentos.
func (uc *DepartmentUseCase) GetAll(ctx context.Context) ([]dto.DepartmentResponse, error) {
	list, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DepartmentResponse, 0, len(list))
	for _, d := range list {
		out = append(out, dto.DepartmentResponse{ID: d.ID, Name: d.Name})
	}
	return out, nil
}

// Create crea un departamento. El nombre es requerido y de máximo 100
// caracteres; NO se deduplica contra existentes (el nombre no es único).
func (uc *DepartmentUseCase) Create(ctx context.Context, in dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	name := in.Name
	if strings.TrimSpace(name) == "" || len(name) > maxDepartmentName {
		return nil, domain.ErrInvalidInput
	}
	dept := &entity.Department{Name: name}
	if err := uc.repo.Create(ctx, dept); err != nil {
		return nil, err
	}
	return &dto.DepartmentResponse{ID: dept.ID, Name: dept.Name}, nil
}

// Delete elimina un departamento. Devuelve domain.ErrDepartmentInUse si
// algún empleado lo referencia (FK restrict convertida en conflicto).
func (uc *DepartmentUseCase) Delete(ctx context.Context, id int64) error {
	dept, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if dept == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}
