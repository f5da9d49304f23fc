package dto

// RegisterRequest autoregistro de empleado vía API.
// No lleva password: el registro asigna una contraseña fija por defecto
// (comportamiento heredado, ver auth.DefaultPassword).
type RegisterRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	DocumentNumber string `json:"documentNumber"`
	ContactPhone   string `json:"contactPhone"`
	Position       string `json:"position"`
	EducationLevel string `json:"educationLevel"`
	DepartmentID   int64  `json:"departmentId"`
}

// RegisterResponse resultado del registro.
type RegisterResponse struct {
	Message    string `json:"message"`
	UserID     string `json:"userId"`
	EmployeeID int64  `json:"employeeId"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token emitido tras un login exitoso.
type LoginResponse struct {
	Token string `json:"token"`
}
