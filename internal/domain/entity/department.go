package entity

// DefaultDepartmentName es el departamento asignado cuando una fila importada
// no trae nombre de departamento.
const DefaultDepartmentName = "General"

// Department representa un departamento. Name no es único en la base:
// la importación lo usa como clave de deduplicación con igualdad exacta
// (sensible a mayúsculas y espacios).
type Department struct {
	ID   int64
	Name string // requerido, máx 100 caracteres
}
