package employee_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appemployee "github.com/talentoplus/talento-api/internal/application/employee"
	"github.com/talentoplus/talento-api/internal/application/ports"
	"github.com/talentoplus/talento-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeEmployeeRepo struct {
	nextID    int64
	byID      map[int64]*entity.Employee
	failEmail string // Create/Update con este email falla
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{nextID: 1, byID: map[int64]*entity.Employee{}}
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	if e.Email == f.failEmail {
		return fmt.Errorf("fallo simulado de insert")
	}
	e.ID = f.nextID
	f.nextID++
	copied := *e
	f.byID[e.ID] = &copied
	return nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (*entity.Employee, error) {
	e, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *e
	return &copied, nil
}

// GetByEmail imita al adaptador real: primer match por id.
func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (*entity.Employee, error) {
	var found *entity.Employee
	for _, e := range f.byID {
		if e.Email == email && (found == nil || e.ID < found.ID) {
			found = e
		}
	}
	if found == nil {
		return nil, nil
	}
	copied := *found
	return &copied, nil
}

func (f *fakeEmployeeRepo) GetAll(_ context.Context) ([]*entity.Employee, error) {
	var list []*entity.Employee
	for _, e := range f.byID {
		copied := *e
		list = append(list, &copied)
	}
	return list, nil
}

func (f *fakeEmployeeRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, e *entity.Employee) error {
	if e.Email == f.failEmail {
		return fmt.Errorf("fallo simulado de update")
	}
	copied := *e
	f.byID[e.ID] = &copied
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id int64) error {
	delete(f.byID, id)
	return nil
}

type fakeDepartmentRepo struct {
	nextID  int64
	byID    map[int64]*entity.Department
	creates int // número de Create invocados
}

func newFakeDepartmentRepo(names ...string) *fakeDepartmentRepo {
	f := &fakeDepartmentRepo{nextID: 1, byID: map[int64]*entity.Department{}}
	for _, n := range names {
		_ = f.Create(context.Background(), &entity.Department{Name: n})
	}
	f.creates = 0
	return f
}

func (f *fakeDepartmentRepo) Create(_ context.Context, d *entity.Department) error {
	d.ID = f.nextID
	f.nextID++
	copied := *d
	f.byID[d.ID] = &copied
	f.creates++
	return nil
}

func (f *fakeDepartmentRepo) GetByID(_ context.Context, id int64) (*entity.Department, error) {
	d, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *d
	return &copied, nil
}

// GetByName igualdad exacta, como el adaptador real.
func (f *fakeDepartmentRepo) GetByName(_ context.Context, name string) (*entity.Department, error) {
	for _, d := range f.byID {
		if d.Name == name {
			copied := *d
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeDepartmentRepo) GetAll(_ context.Context) ([]*entity.Department, error) {
	var list []*entity.Department
	for _, d := range f.byID {
		copied := *d
		list = append(list, &copied)
	}
	return list, nil
}

func (f *fakeDepartmentRepo) Delete(_ context.Context, id int64) error {
	delete(f.byID, id)
	return nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func candidate(email, firstName, dept string) ports.EmployeeCandidate {
	return ports.EmployeeCandidate{
		Employee: entity.Employee{
			FirstName:      firstName,
			LastName:       "Test",
			Email:          email,
			DocumentNumber: "123",
			Position:       "Dev",
			Salary:         decimal.NewFromInt(1000),
			JoinDate:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Status:         entity.StatusActive,
		},
		DepartmentName: dept,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de reconciliación
// ──────────────────────────────────────────────────────────────────────────────

// Filas nuevas con departamento existente → solo creaciones de empleado.
func TestReconcile_CreaEmpleadosNuevos(t *testing.T) {
	empRepo := newFakeEmployeeRepo()
	deptRepo := newFakeDepartmentRepo("Technology")
	uc := appemployee.NewImportUseCase(nil, empRepo, deptRepo)

	summary := uc.Reconcile(context.Background(), []ports.EmployeeCandidate{
		candidate("a@x.com", "Ana", "Technology"),
		candidate("b@x.com", "Beto", "Technology"),
	})

	assert.Equal(t, 2, summary.Created)
	assert.Equal(t, 0, summary.Updated)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, 0, deptRepo.creates, "no debe crear departamentos que ya existen")
}

// Empleado existente por email → se sobrescriben los campos, no se duplica.
func TestReconcile_ActualizaPorEmail(t *testing.T) {
	empRepo := newFakeEmployeeRepo()
	deptRepo := newFakeDepartmentRepo("Technology", "Sales")
	uc := appemployee.NewImportUseCase(nil, empRepo, deptRepo)

	first := candidate("ana@x.com", "Ana", "Technology")
	uc.Reconcile(context.Background(), []ports.EmployeeCandidate{first})

	second := candidate("ana@x.com", "Ana María", "Sales")
	second.Employee.Salary = decimal.NewFromInt(2000)
	summary := uc.Reconcile(context.Background(), []ports.EmployeeCandidate{second})

	assert.Equal(t, 0, summary.Created)
	assert.Equal(t, 1, summary.Updated)

	stored, err := empRepo.GetByEmail(context.Background(), "ana@x.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Ana María", stored.FirstName)
	assert.True(t, decimal.NewFromInt(2000).Equal(stored.Salary))
	assert.Len(t, empRepo.byID, 1, "el reimporte no debe duplicar empleados")
}

// Reimportar el mismo archivo dos veces: misma cantidad final de filas.
func TestReconcile_ReimporteIdempotente(t *testing.T) {
	empRepo := newFakeEmployeeRepo()
	deptRepo := newFakeDepartmentRepo()
	uc := appemployee.NewImportUseCase(nil, empRepo, deptRepo)

	batch := []ports.EmployeeCandidate{
		candidate("a@x.com", "Ana", "Technology"),
		candidate("b@x.com", "Beto", "Technology"),
	}

	s1 := uc.Reconcile(context.Background(), batch)
	s2 := uc.Reconcile(context.Background(), batch)

	assert.Equal(t, 2, s1.Created)
	assert.Equal(t, 2, s2.Updated)
	assert.Len(t, empRepo.byID, 2)
	assert.Len(t, deptRepo.byID, 1, "el departamento nuevo se crea una sola vez")
}

// Departamento nuevo en la fila 1 debe ser visible para la fila 3 del mismo
// lote: la creación se persiste de inmediato, no al final.
func TestReconcile_DepartamentoNuevoReusadoEnElMismoLote(t *testing.T) {
	empRepo := newFakeEmployeeRepo()
	deptRepo := newFakeDepartmentRepo()
	uc := appemployee.NewImportUseCase(nil, empRepo, deptRepo)

	summary := uc.Reconcile(context.Background(), []ports.EmployeeCandidate{
		candidate("a@x.com", "Ana", "Innovation"),
		candidate("b@x.com", "Beto", "Sales"),
		candidate("c@x.com", "Carla", "Innovation"),
	})

	assert.Equal(t, 3, summary.Created)
	assert.Len(t, deptRepo.byID, 2, "Innovation debe crearse una sola vez")

	a, _ := empRepo.GetByEmail(context.Background(), "a@x.com")
	c, _ := empRepo.GetByEmail(context.Background(), "c@x.com")
	assert.Equal(t, a.DepartmentID, c.DepartmentID, "ambas filas deben apuntar al mismo departamento")
}

// El match de departamento es por igualdad exacta: variantes de mayúsculas
// o espacios crean departamentos distintos.
func TestReconcile_NombreDeDepartamentoEsSensibleAMayusculas(t *testing.T) {
	empRepo := newFakeEmployeeRepo()
	deptRepo := newFakeDepartmentRepo("Ventas")
	uc := appemployee.NewImportUseCase(nil, empRepo, deptRepo)

	uc.Reconcile(context.Background(), []ports.EmployeeCandidate{
		candidate("a@x.com", "Ana", "ventas"),
		candidate("b@x.com", "Beto", "VENTAS"),
	})

	assert.Len(t, deptRepo.byID, 3, "cada variante de nombre crea su propio departamento")
}

// Un espacio al final basta para duplicar: "Ventas " NO matchea con "Ventas".
// Comportamiento documentado de la importación, no se normaliza.
func TestReconcile_WhitespaceEnElNombreDuplicaDepartamento(t *testing.T) {
	empRepo := newFakeEmployeeRepo()
	deptRepo := newFakeDepartmentRepo("Ventas")
	uc := appemployee.NewImportUseCase(nil, empRepo, deptRepo)

	summary := uc.Reconcile(context.Background(), []ports.EmployeeCandidate{
		candidate("a@x.com", "Ana", "Ventas "),
	})

	assert.Equal(t, 1, summary.Created)
	assert.Len(t, deptRepo.byID, 2, `"Ventas " y "Ventas" son departamentos distintos`)

	exact, err := deptRepo.GetByName(context.Background(), "Ventas ")
	require.NoError(t, err)
	require.NotNil(t, exact, "la variante con espacio debe quedar persistida tal cual")

	emp, _ := empRepo.GetByEmail(context.Background(), "a@x.com")
	require.NotNil(t, emp)
	assert.Equal(t, exact.ID, emp.DepartmentID)
}

// Departamento vacío → "General".
func TestReconcile_DepartamentoVacioUsaGeneral(t *testing.T) {
	empRepo := newFakeEmployeeRepo()
	deptRepo := newFakeDepartmentRepo()
	uc := appemployee.NewImportUseCase(nil, empRepo, deptRepo)

	summary := uc.Reconcile(context.Background(), []ports.EmployeeCandidate{
		candidate("a@x.com", "Ana", ""),
	})

	assert.Equal(t, 1, summary.Created)
	dept, err := deptRepo.GetByName(context.Background(), entity.DefaultDepartmentName)
	require.NoError(t, err)
	require.NotNil(t, dept, "debe existir el departamento General")
}

// Una fila que falla no aborta las demás; queda en el resumen con su número
// de fila del archivo (datos empiezan en la fila 2).
func TestReconcile_FilaFallidaNoAbortaElLote(t *testing.T) {
	empRepo := newFakeEmployeeRepo()
	empRepo.failEmail = "malo@x.com"
	deptRepo := newFakeDepartmentRepo("Technology")
	uc := appemployee.NewImportUseCase(nil, empRepo, deptRepo)

	summary := uc.Reconcile(context.Background(), []ports.EmployeeCandidate{
		candidate("a@x.com", "Ana", "Technology"),
		candidate("malo@x.com", "Mal", "Technology"),
		candidate("c@x.com", "Carla", "Technology"),
	})

	assert.Equal(t, 2, summary.Created)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Errors, 1)
	assert.Contains(t, summary.Errors[0], "fila 3", "la fila 2 del slice es la fila 3 del archivo")
	assert.Contains(t, summary.Errors[0], "malo@x.com")
}

// El email nunca cambia vía importación: el upsert lo usa como clave.
func TestReconcile_EmailSeConservaEnUpdate(t *testing.T) {
	empRepo := newFakeEmployeeRepo()
	deptRepo := newFakeDepartmentRepo("Technology")
	uc := appemployee.NewImportUseCase(nil, empRepo, deptRepo)

	uc.Reconcile(context.Background(), []ports.EmployeeCandidate{candidate("ana@x.com", "Ana", "Technology")})
	uc.Reconcile(context.Background(), []ports.EmployeeCandidate{candidate("ana@x.com", "Otra", "Technology")})

	stored, _ := empRepo.GetByEmail(context.Background(), "ana@x.com")
	require.NotNil(t, stored)
	assert.Equal(t, "ana@x.com", stored.Email)
	assert.Equal(t, "Otra", stored.FirstName)
}
