package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados conocidos de un empleado. El campo Status es un string abierto:
// los importes pueden traer sinónimos en español (Activo, Inactivo, Vacaciones)
// y el dashboard los cuenta junto a los valores en inglés.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
	StatusVacation = "Vacation"
)

// Employee representa un empleado. DepartmentID es obligatorio (FK con
// ON DELETE RESTRICT); UserID enlaza opcionalmente con la cuenta de acceso.
// El email es la clave de negocio usada por la reconciliación de importes,
// pero no está declarado UNIQUE en la base.
type Employee struct {
	ID                  int64
	FirstName           string
	LastName            string
	Email               string
	DocumentNumber      string
	Position            string
	Salary              decimal.Decimal // NUMERIC(18,2)
	JoinDate            time.Time       // UTC
	Status              string
	EducationLevel      string
	ProfessionalProfile string
	ContactPhone        string
	DepartmentID        int64
	UserID              *string // FK opcional a users.id
}

// FullName devuelve "FirstName LastName".
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
