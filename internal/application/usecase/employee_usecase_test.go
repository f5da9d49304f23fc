package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentoplus/talento-api/internal/application/dto"
	"github.com/talentoplus/talento-api/internal/application/usecase"
	"github.com/talentoplus/talento-api/internal/domain"
	"github.com/talentoplus/talento-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memEmployeeRepo struct {
	nextID int64
	byID   map[int64]*entity.Employee
}

func newMemEmployeeRepo() *memEmployeeRepo {
	return &memEmployeeRepo{nextID: 1, byID: map[int64]*entity.Employee{}}
}

func (m *memEmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	e.ID = m.nextID
	m.nextID++
	copied := *e
	m.byID[e.ID] = &copied
	return nil
}

func (m *memEmployeeRepo) GetByID(_ context.Context, id int64) (*entity.Employee, error) {
	e, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *e
	return &copied, nil
}

func (m *memEmployeeRepo) GetByEmail(_ context.Context, email string) (*entity.Employee, error) {
	var found *entity.Employee
	for _, e := range m.byID {
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

func (m *memEmployeeRepo) GetAll(_ context.Context) ([]*entity.Employee, error) {
	var list []*entity.Employee
	for _, e := range m.byID {
		copied := *e
		list = append(list, &copied)
	}
	return list, nil
}

func (m *memEmployeeRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := m.byID[id]
	return ok, nil
}

func (m *memEmployeeRepo) Update(_ context.Context, e *entity.Employee) error {
	copied := *e
	m.byID[e.ID] = &copied
	return nil
}

func (m *memEmployeeRepo) Delete(_ context.Context, id int64) error {
	delete(m.byID, id)
	return nil
}

type memDepartmentRepo struct {
	nextID    int64
	byID      map[int64]*entity.Department
	employees *memEmployeeRepo // para simular la FK en Delete
}

func newMemDepartmentRepo(names ...string) *memDepartmentRepo {
	m := &memDepartmentRepo{nextID: 1, byID: map[int64]*entity.Department{}}
	for _, n := range names {
		_ = m.Create(context.Background(), &entity.Department{Name: n})
	}
	return m
}

func (m *memDepartmentRepo) Create(_ context.Context, d *entity.Department) error {
	d.ID = m.nextID
	m.nextID++
	copied := *d
	m.byID[d.ID] = &copied
	return nil
}

func (m *memDepartmentRepo) GetByID(_ context.Context, id int64) (*entity.Department, error) {
	d, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *d
	return &copied, nil
}

func (m *memDepartmentRepo) GetByName(_ context.Context, name string) (*entity.Department, error) {
	for _, d := range m.byID {
		if d.Name == name {
			copied := *d
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memDepartmentRepo) GetAll(_ context.Context) ([]*entity.Department, error) {
	var list []*entity.Department
	for _, d := range m.byID {
		copied := *d
		list = append(list, &copied)
	}
	return list, nil
}

// Delete imita al adaptador real: FK restrict → ErrDepartmentInUse.
func (m *memDepartmentRepo) Delete(_ context.Context, id int64) error {
	if m.employees != nil {
		for _, e := range m.employees.byID {
			if e.DepartmentID == id {
				return domain.ErrDepartmentInUse
			}
		}
	}
	delete(m.byID, id)
	return nil
}

type fakeCVGenerator struct {
	lastDept string
	err      error
}

func (f *fakeCVGenerator) GenerateEmployeeCV(_ *entity.Employee, departmentName string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastDept = departmentName
	return []byte("%PDF-fake"), nil
}

func createRequest(email string, deptID int64) dto.CreateEmployeeRequest {
	return dto.CreateEmployeeRequest{
		FirstName:      "Ana",
		LastName:       "García",
		Email:          email,
		DocumentNumber: "1001",
		Position:       "Developer",
		Salary:         decimal.NewFromInt(3000),
		JoinDate:       time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC),
		Status:         entity.StatusActive,
		DepartmentID:   deptID,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests EmployeeUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestEmployeeCreate_ResuelveNombreDeDepartamento(t *testing.T) {
	repo := newMemEmployeeRepo()
	depts := newMemDepartmentRepo("Technology")
	uc := usecase.NewEmployeeUseCase(repo, depts, &fakeCVGenerator{})

	out, err := uc.Create(context.Background(), createRequest("ana@x.com", 1))
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
	assert.Equal(t, "Technology", out.DepartmentName)
}

// Estado vacío → Active; fecha cero → ahora UTC.
func TestEmployeeCreate_AplicaDefaults(t *testing.T) {
	repo := newMemEmployeeRepo()
	depts := newMemDepartmentRepo("Technology")
	uc := usecase.NewEmployeeUseCase(repo, depts, &fakeCVGenerator{})

	in := createRequest("ana@x.com", 1)
	in.Status = ""
	in.JoinDate = time.Time{}
	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, entity.StatusActive, out.Status)
	assert.False(t, out.JoinDate.IsZero())
}

func TestEmployeeGetAll_IncluyeNombresDeDepartamento(t *testing.T) {
	repo := newMemEmployeeRepo()
	depts := newMemDepartmentRepo("Technology", "Sales")
	uc := usecase.NewEmployeeUseCase(repo, depts, &fakeCVGenerator{})

	_, err := uc.Create(context.Background(), createRequest("a@x.com", 1))
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), createRequest("b@x.com", 2))
	require.NoError(t, err)

	list, err := uc.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	byEmail := map[string]string{}
	for _, r := range list {
		byEmail[r.Email] = r.DepartmentName
	}
	assert.Equal(t, "Technology", byEmail["a@x.com"])
	assert.Equal(t, "Sales", byEmail["b@x.com"])
}

// El PUT del admin sobrescribe TODO, incluido el email: solo la importación
// preserva el email.
func TestEmployeeUpdate_SobrescribeTodoInclusoEmail(t *testing.T) {
	repo := newMemEmployeeRepo()
	depts := newMemDepartmentRepo("Technology")
	uc := usecase.NewEmployeeUseCase(repo, depts, &fakeCVGenerator{})

	created, err := uc.Create(context.Background(), createRequest("vieja@x.com", 1))
	require.NoError(t, err)

	in := createRequest("nueva@x.com", 1)
	in.FirstName = "Renombrada"
	out, err := uc.Update(context.Background(), created.ID, in)
	require.NoError(t, err)

	assert.Equal(t, "nueva@x.com", out.Email)
	assert.Equal(t, "Renombrada", out.FirstName)
}

func TestEmployeeUpdate_NoEncontrado(t *testing.T) {
	uc := usecase.NewEmployeeUseCase(newMemEmployeeRepo(), newMemDepartmentRepo(), &fakeCVGenerator{})
	_, err := uc.Update(context.Background(), 99, createRequest("x@x.com", 1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEmployeeDelete_NoEncontrado(t *testing.T) {
	uc := usecase.NewEmployeeUseCase(newMemEmployeeRepo(), newMemDepartmentRepo(), &fakeCVGenerator{})
	err := uc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEmployeeGenerateCV_PasaNombreDeDepartamento(t *testing.T) {
	repo := newMemEmployeeRepo()
	depts := newMemDepartmentRepo("Technology")
	cv := &fakeCVGenerator{}
	uc := usecase.NewEmployeeUseCase(repo, depts, cv)

	created, err := uc.Create(context.Background(), createRequest("ana@x.com", 1))
	require.NoError(t, err)

	pdf, emp, err := uc.GenerateCV(context.Background(), created.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "ana@x.com", emp.Email)
	assert.Equal(t, "Technology", cv.lastDept)
}

// Departamento inexistente en el CV → "N/A", sin error.
func TestEmployeeGenerateCV_DepartamentoHuerfano(t *testing.T) {
	repo := newMemEmployeeRepo()
	depts := newMemDepartmentRepo()
	cv := &fakeCVGenerator{}
	uc := usecase.NewEmployeeUseCase(repo, depts, cv)

	emp := &entity.Employee{Email: "sin@x.com", DepartmentID: 42, JoinDate: time.Now()}
	require.NoError(t, repo.Create(context.Background(), emp))

	_, _, err := uc.GenerateCV(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.Equal(t, "N/A", cv.lastDept)
}

func TestEmployeeGenerateCVByEmail_NoEncontrado(t *testing.T) {
	uc := usecase.NewEmployeeUseCase(newMemEmployeeRepo(), newMemDepartmentRepo(), &fakeCVGenerator{})
	_, _, err := uc.GenerateCVByEmail(context.Background(), "nadie@x.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
