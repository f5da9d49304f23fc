package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeResponse representación pública de un empleado.
// DepartmentName se resuelve con un lookup por id, nunca materializando
// grafos de objetos cíclicos.
type EmployeeResponse struct {
	ID                  int64           `json:"id"`
	FirstName           string          `json:"firstName"`
	LastName            string          `json:"lastName"`
	Email               string          `json:"email"`
	DocumentNumber      string          `json:"documentNumber"`
	Position            string          `json:"position"`
	Salary              decimal.Decimal `json:"salary"`
	JoinDate            time.Time       `json:"joinDate"`
	Status              string          `json:"status"`
	EducationLevel      string          `json:"educationLevel"`
	ProfessionalProfile string          `json:"professionalProfile"`
	ContactPhone        string          `json:"contactPhone"`
	DepartmentID        int64           `json:"departmentId"`
	DepartmentName      string          `json:"departmentName,omitempty"`
}

// CreateEmployeeRequest datos para crear o actualizar un empleado (admin).
// El PUT sobrescribe todos los campos con este mismo cuerpo (last-write-wins).
type CreateEmployeeRequest struct {
	FirstName           string          `json:"firstName"`
	LastName            string          `json:"lastName"`
	Email               string          `json:"email"`
	DocumentNumber      string          `json:"documentNumber"`
	Position            string          `json:"position"`
	Salary              decimal.Decimal `json:"salary"`
	JoinDate            time.Time       `json:"joinDate"`
	Status              string          `json:"status"`
	EducationLevel      string          `json:"educationLevel"`
	ProfessionalProfile string          `json:"professionalProfile"`
	ContactPhone        string          `json:"contactPhone"`
	DepartmentID        int64           `json:"departmentId"`
}

// ImportSummary resultado de una importación de Excel.
// Las filas fallidas no abortan el lote; se reportan aquí.
type ImportSummary struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}

// DepartmentResponse representación pública de un departamento.
type DepartmentResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateDepartmentRequest datos para crear un departamento.
type CreateDepartmentRequest struct {
	Name string `json:"name"`
}
