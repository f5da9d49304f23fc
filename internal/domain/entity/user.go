package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// User representa una cuenta de acceso (credenciales + rol).
// Se enlaza con Employee vía Employee.UserID.
type User struct {
	ID             string // uuid
	Email          string // usado como login
	PasswordHash   string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName      string
	LastName       string
	Role           string // admin, employee
	EmailConfirmed bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
