// Package pdf genera la hoja de vida (CV) de un empleado.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────┐
//	│  Curriculum Vitae - <Nombre> <Apellido>      │
//	│  ─────────────────────────────────────────  │
//	│  Position / Department / Email / Phone       │
//	│  Education / Profile / Join Date / Status    │
//	│                                              │
//	│                 Page <n>                     │
//	└─────────────────────────────────────────────┘
//
// El orden de los campos es un contrato fijo; no se reordena.
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/talentoplus/talento-api/internal/application/ports"
	"github.com/talentoplus/talento-api/internal/domain/entity"
)

var _ ports.CVGenerator = (*MarotoCVGenerator)(nil)

var (
	colorTitle = &props.Color{Red: 33, Green: 97, Blue: 191}
	colorGray  = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoCVGenerator implementa CVGenerator usando Maroto v2.
type MarotoCVGenerator struct{}

// NewMarotoCVGenerator construye el generador.
func NewMarotoCVGenerator() *MarotoCVGenerator { return &MarotoCVGenerator{} }

// GenerateEmployeeCV genera el PDF y devuelve sus bytes.
func (g *MarotoCVGenerator) GenerateEmployeeCV(employee *entity.Employee, departmentName string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(20).WithRightMargin(20).
		WithTopMargin(20).WithBottomMargin(20).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 12}).
		WithPageNumber(props.PageNumber{Pattern: "Page {current}", Place: props.Bottom}).
		WithTitle("Curriculum Vitae", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(employee))
	m.AddRows(line.NewRow(4, props.Line{Color: colorTitle, Thickness: 0.5}))

	if departmentName == "" {
		departmentName = "N/A"
	}
	fields := []struct{ label, value string }{
		{"Position", employee.Position},
		{"Department", departmentName},
		{"Email", employee.Email},
		{"Phone", employee.ContactPhone},
		{"Education", employee.EducationLevel},
		{"Profile", employee.ProfessionalProfile},
		{"Join Date", employee.JoinDate.Format("2006-01-02")},
		{"Status", employee.Status},
	}
	for _, f := range fields {
		m.AddRows(fieldRow(f.label, f.value))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título con el nombre completo del empleado.
func headerRow(employee *entity.Employee) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("Curriculum Vitae - "+employee.FullName(), props.Text{
				Style: fontstyle.Bold, Size: 20, Color: colorTitle, Top: 2,
			}),
		),
	)
}

// fieldRow: una línea "Label: valor".
func fieldRow(label, value string) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("%s: %s", label, value), props.Text{
				Size: 12, Top: 2, Color: colorGray,
			}),
		),
	)
}
