// Package pdf implementa la renderización del contrato de franquicia.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: FRANCHISE AGREEMENT + código + fecha                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PARTIES: Compañía y Franquicia (titular + dirección)        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TERMS AND CONDITIONS: cláusulas numeradas                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FIRMAS: representante + titular + fecha de aceptación       │
//	│  FOOTER: leyenda de documento generado                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/upl-snipe/partner-api/internal/application/agreement"
	"github.com/upl-snipe/partner-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Cláusulas del contrato. El texto legal va en inglés tal como lo firma el socio.
var agreementTerms = []string{
	"1. The Franchise agrees to operate the business in accordance with the standards set by the Company.",
	"2. The Franchise shall maintain confidentiality of all proprietary information.",
	"3. The Franchise agrees to pay all applicable fees and royalties as per the schedule.",
	"4. The Company reserves the right to terminate this agreement in case of breach of terms.",
	"5. The Franchise shall comply with all local, state, and federal laws and regulations.",
	"6. This agreement shall be valid for a period as specified in the master agreement.",
	"7. Any disputes arising from this agreement shall be subject to jurisdiction of the courts.",
	"8. The Franchise acknowledges that they have read and understood all terms and conditions.",
	"9. The Franchise agrees to participate in training programs as required by the Company.",
	"10. Both parties agree to act in good faith and maintain professional conduct.",
}

// ── Generator ─────────────────────────────────────────────────────────────────

var _ agreement.PDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa agreement.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateAgreementPDF genera el contrato y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateAgreementPDF(
	_ context.Context,
	franchise *entity.Franchise,
	companyName string,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Franchise Agreement "+franchise.FranchiseCode, true).
		WithAuthor(companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRows(franchise)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRows(franchise, companyName)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(termsRows()...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(signatureRows(franchise)...)
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar contrato: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRows: título centrado + código de franquicia + fecha de emisión.
func headerRows(f *entity.Franchise) []core.Row {
	return []core.Row{
		row.New(12).Add(col.New(12).Add(
			text.New("FRANCHISE AGREEMENT", props.Text{
				Style: fontstyle.Bold, Size: 18, Align: align.Center,
				Color: colorPrimary, Top: 2,
			}),
		)),
		row.New(10).Add(
			col.New(6).Add(text.New("Franchise Code: "+f.FranchiseCode, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 2,
			})),
			col.New(6).Add(text.New("Date: "+f.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 10, Align: align.Right, Top: 2, Color: colorGray,
			})),
		),
	}
}

// partiesRows: identificación de las dos partes del contrato.
func partiesRows(f *entity.Franchise, companyName string) []core.Row {
	address := strings.TrimPrefix(fmt.Sprintf("%s, %s, %s - %s",
		f.Address.Street, f.Address.City, f.Address.State, f.Address.Pincode), ", ")

	return []core.Row{
		sectionTitle("PARTIES"),
		textRow(6, "This Agreement is entered into between:", props.Text{Size: 10, Top: 1}),
		textRow(6, fmt.Sprintf("1. %s (Hereinafter referred to as \"Company\")", companyName),
			props.Text{Size: 10, Top: 1, Left: 3}),
		textRow(6, fmt.Sprintf("2. %s (Hereinafter referred to as \"Franchise\")", f.BusinessName),
			props.Text{Size: 10, Top: 1, Left: 3}),
		textRow(5, "Owner: "+f.OwnerName, props.Text{Size: 9, Top: 1, Left: 6, Color: colorGray}),
		textRow(5, "Address: "+address, props.Text{Size: 9, Top: 1, Left: 6, Color: colorGray}),
	}
}

// termsRows: cláusulas numeradas del contrato.
func termsRows() []core.Row {
	rows := []core.Row{sectionTitle("TERMS AND CONDITIONS")}
	for _, term := range agreementTerms {
		rows = append(rows, textRow(7, term, props.Text{Size: 9, Top: 1}))
	}
	return rows
}

// signatureRows: bloque de firmas y fecha de aceptación.
func signatureRows(f *entity.Franchise) []core.Row {
	acceptedAt := "N/A"
	if f.AgreementAcceptedAt != nil {
		acceptedAt = f.AgreementAcceptedAt.Format("02/01/2006")
	}

	return []core.Row{
		textRow(8, "Accepted and Agreed:", props.Text{Style: fontstyle.Bold, Size: 10, Top: 2}),
		row.New(16).Add(
			col.New(6).Add(
				text.New("_________________________", props.Text{Size: 10, Top: 6}),
				text.New("Company Representative", props.Text{Size: 9, Top: 12, Color: colorGray}),
			),
			col.New(6).Add(
				text.New("_________________________", props.Text{Size: 10, Top: 6}),
				text.New(f.OwnerName+" (Franchise Owner)", props.Text{Size: 9, Top: 12, Color: colorGray}),
			),
		),
		textRow(7, "Date of Acceptance: "+acceptedAt, props.Text{Size: 9, Top: 2, Color: colorGray}),
	}
}

// footerRow: leyenda de documento generado.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"This is a computer-generated document. Original signed copy is maintained in company records.",
			props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 3},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func sectionTitle(label string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2,
		}),
	))
}

func textRow(height float64, content string, p props.Text) core.Row {
	return row.New(height).Add(col.New(12).Add(text.New(content, p)))
}
