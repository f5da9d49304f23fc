// Package ports define los puertos de salida de la capa de aplicación.
// Cualquier adaptador (Gemini, excelize, maroto, gomail, mock de test)
// debe implementar estas interfaces; la aplicación solo conoce el contrato.
package ports

import (
	"context"
	"io"

	"github.com/talentoplus/talento-api/internal/domain/entity"
)

// CompletionService es el puerto hacia el servicio externo de completado de
// texto. Recibe un prompt y devuelve el texto crudo del primer candidato,
// sin interpretar. El contexto debe llevar timeout: la llamada es síncrona
// y se intenta exactamente una vez.
type CompletionService interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// SpreadsheetParser convierte un archivo tabular en candidatos de empleado.
// Cada candidato trae el NOMBRE del departamento (no su id); la resolución
// a id la hace la reconciliación de importe.
type SpreadsheetParser interface {
	ParseEmployees(r io.Reader) ([]EmployeeCandidate, error)
}

// EmployeeCandidate es una fila parseada del archivo de importe.
// Los defaults (salario 0, fecha actual, estado Active, departamento General)
// ya vienen aplicados por el parser.
type EmployeeCandidate struct {
	Employee       entity.Employee
	DepartmentName string
}

// CVGenerator genera la hoja de vida de un empleado en PDF.
type CVGenerator interface {
	GenerateEmployeeCV(employee *entity.Employee, departmentName string) ([]byte, error)
}

// Mailer envía un correo. Un solo intento por invocación, sin reintentos.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// RawQueryExecutor ejecuta un SQL arbitrario sobre una conexión dedicada,
// abierta y cerrada alrededor de la ejecución, y devuelve la primera columna
// de la primera fila. found es false si el result set viene vacío.
//
// El puente de consultas le pasa texto generado externamente TAL CUAL:
// no hay allow-list de tipos de sentencia. La restricción de permisos debe
// vivir en el rol de base de datos, no aquí.
type RawQueryExecutor interface {
	QueryFirstValue(ctx context.Context, sql string) (value any, found bool, err error)
}
