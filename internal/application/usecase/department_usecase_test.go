package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentoplus/talento-api/internal/application/dto"
	"github.com/talentoplus/talento-api/internal/application/usecase"
	"github.com/talentoplus/talento-api/internal/domain"
)

func TestDepartmentCreate_Valido(t *testing.T) {
	uc := usecase.NewDepartmentUseCase(newMemDepartmentRepo())

	out, err := uc.Create(context.Background(), dto.CreateDepartmentRequest{Name: "Technology"})
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
	assert.Equal(t, "Technology", out.Name)
}

func TestDepartmentCreate_NombreVacio(t *testing.T) {
	uc := usecase.NewDepartmentUseCase(newMemDepartmentRepo())

	for _, name := range []string{"", "   "} {
		_, err := uc.Create(context.Background(), dto.CreateDepartmentRequest{Name: name})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestDepartmentCreate_NombreDemasiadoLargo(t *testing.T) {
	uc := usecase.NewDepartmentUseCase(newMemDepartmentRepo())

	_, err := uc.Create(context.Background(), dto.CreateDepartmentRequest{Name: strings.Repeat("a", 101)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El nombre NO se deduplica: dos Create con el mismo nombre crean dos filas.
func TestDepartmentCreate_NoDeduplica(t *testing.T) {
	repo := newMemDepartmentRepo()
	uc := usecase.NewDepartmentUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateDepartmentRequest{Name: "Ventas"})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), dto.CreateDepartmentRequest{Name: "Ventas"})
	require.NoError(t, err)

	list, err := uc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestDepartmentDelete_NoEncontrado(t *testing.T) {
	uc := usecase.NewDepartmentUseCase(newMemDepartmentRepo())
	err := uc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Departamento referenciado por empleados → ErrDepartmentInUse (el handler
// lo convierte en 409, nunca en borrado en cascada).
func TestDepartmentDelete_ConEmpleadosAsignados(t *testing.T) {
	employees := newMemEmployeeRepo()
	depts := newMemDepartmentRepo("Technology")
	depts.employees = employees
	empUC := usecase.NewEmployeeUseCase(employees, depts, &fakeCVGenerator{})
	deptUC := usecase.NewDepartmentUseCase(depts)

	_, err := empUC.Create(context.Background(), createRequest("ana@x.com", 1))
	require.NoError(t, err)

	err = deptUC.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrDepartmentInUse)

	// Sin empleados, el borrado procede.
	list, _ := empUC.GetAll(context.Background())
	require.NoError(t, empUC.Delete(context.Background(), list[0].ID))
	assert.NoError(t, deptUC.Delete(context.Background(), 1))
}
