// Package excel parsea el archivo de importación masiva de empleados.
//
// El contrato es POSICIONAL, nunca por nombre de cabecera: primera hoja,
// primera fila ignorada, columnas fijas 1–14:
//
//	1 documento | 2 nombre | 3 apellido | 4 fecha nacimiento (no usada)
//	5 dirección (no usada) | 6 teléfono | 7 email | 8 cargo | 9 salario
//	10 fecha ingreso | 11 estado | 12 nivel educativo | 13 perfil | 14 departamento
package excel

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/talentoplus/talento-api/internal/application/ports"
	"github.com/talentoplus/talento-api/internal/domain/entity"
)

var _ ports.SpreadsheetParser = (*Parser)(nil)

// Parser implementa SpreadsheetParser con excelize (XLSX).
type Parser struct{}

// NewParser construye el parser.
func NewParser() *Parser { return &Parser{} }

// ParseEmployees lee la primera hoja y devuelve un candidato por fila de
// datos, con los defaults ya aplicados: salario inválido → 0, fecha de
// ingreso inválida → ahora en UTC, estado vacío → Active, departamento
// vacío → "General". Las celdas se toman tal cual, sin trim: las variantes
// de whitespace o mayúsculas en el nombre de departamento producen
// departamentos distintos aguas abajo.
func (p *Parser) ParseEmployees(r io.Reader) ([]ports.EmployeeCandidate, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("el archivo no tiene hojas")
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("la hoja está vacía")
	}

	candidates := make([]ports.EmployeeCandidate, 0, len(rows)-1)
	for _, row := range rows[1:] { // fila 1 = cabecera, se ignora
		deptName := cell(row, 14)
		if deptName == "" {
			deptName = entity.DefaultDepartmentName
		}
		candidates = append(candidates, ports.EmployeeCandidate{
			Employee: entity.Employee{
				DocumentNumber: cell(row, 1),
				FirstName:      cell(row, 2),
				LastName:       cell(row, 3),
				// columnas 4 (fecha nacimiento) y 5 (dirección) no mapean a la entidad
				ContactPhone:        cell(row, 6),
				Email:               cell(row, 7),
				Position:            cell(row, 8),
				Salary:              parseSalary(cell(row, 9)),
				JoinDate:            parseJoinDate(cell(row, 10)),
				Status:              defaultIfEmpty(cell(row, 11), entity.StatusActive),
				EducationLevel:      cell(row, 12),
				ProfessionalProfile: cell(row, 13),
			},
			DepartmentName: deptName,
		})
	}

	return candidates, nil
}

// cell devuelve el valor CRUDO de la columna col (base 1), vacío si la fila
// es corta. Sin trim ni normalización: "Ventas " y "Ventas" son valores
// distintos, y la reconciliación los trata como departamentos distintos.
func cell(row []string, col int) string {
	idx := col - 1
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func defaultIfEmpty(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// parseSalary convierte el texto a decimal; inválido o vacío → 0.
func parseSalary(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// joinDateFormats formatos aceptados para la fecha de ingreso.
var joinDateFormats = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"2006/01/02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// parseJoinDate convierte el texto a instante UTC; también acepta el serial
// numérico de fecha de Excel. Inválido o vacío → ahora en UTC.
func parseJoinDate(s string) time.Time {
	if s == "" {
		return time.Now().UTC()
	}
	// Serial de fecha Excel (exportaciones XLSX con celda tipo fecha)
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		if parsed, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return parsed.UTC()
		}
	}
	for _, format := range joinDateFormats {
		if parsed, err := time.Parse(format, s); err == nil {
			return parsed.UTC()
		}
	}
	return time.Now().UTC()
}
