package infra

// Solicitud form generation using go-pdf/fpdf.
// Renders the standard subsidy request form for one expediente:
//   - Agency header
//   - Case code / sheet and filing date
//   - Claimant block (DNI, name, address, municipality)
//   - Meter block (holder, policy number)
//   - Line item table (orden, materia, cantidad, cuatrimestre, vigencia)
//   - Technician report section when present
//
// The output file is saved to storagePath/solicitud_{codigo}_{hoja}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"aguanueva/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateSolicitudPDF writes the solicitud form for exp and returns the
// absolute path of the generated file. storagePath is created if needed.
func GenerateSolicitudPDF(exp *model.Expediente, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("solicitud_%s_%d.pdf", exp.Codigo, exp.Hoja)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Cabildo de Fuerteventura", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Solicitud de subvencion al agua de riego agricola", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Case info ────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW/2, 6, fmt.Sprintf("Expediente: %s", exp.Codigo), "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 6, fmt.Sprintf("Hoja: %d", exp.Hoja), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Fecha de solicitud: %s", exp.Fecha.Format("02/01/2006")), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	// ── Claimant block ───────────────────────────────────────────────────────
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW, 5, "Datos del solicitante", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)

	nombre := exp.Titular.Apellidos
	if exp.Titular.Nombre != nil {
		nombre = *exp.Titular.Nombre + " " + nombre
	}
	pdf.CellFormat(contentW, 5, fmt.Sprintf("DNI: %s    Nombre: %s", exp.Titular.DNI, nombre), "", 1, "L", false, 0, "")
	if exp.Titular.Direccion != nil {
		pdf.CellFormat(contentW, 5, fmt.Sprintf("Direccion: %s", *exp.Titular.Direccion), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Municipio: %s", exp.Municipio.Nombre), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// ── Meter block ──────────────────────────────────────────────────────────
	if exp.TitularContador != nil || exp.PolizaContador != nil {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(contentW, 5, "Contador de agua", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		if exp.TitularContador != nil {
			pdf.CellFormat(contentW, 5, fmt.Sprintf("Titular: %s", *exp.TitularContador), "", 1, "L", false, 0, "")
		}
		if exp.PolizaContador != nil {
			pdf.CellFormat(contentW, 5, fmt.Sprintf("Poliza: %s", *exp.PolizaContador), "", 1, "L", false, 0, "")
		}
		pdf.Ln(2)
	}

	// ── Line items ───────────────────────────────────────────────────────────
	col1 := contentW * 0.08 // orden
	col2 := contentW * 0.40 // materia
	col3 := contentW * 0.16 // cantidad
	col4 := contentW * 0.12 // cuatri
	col5 := contentW * 0.24 // vigencia

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(col1, 5, "N.", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Materia", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 5, "Cantidad", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 5, "Cuatri.", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col5, 5, "Vigencia", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, d := range exp.Datos {
		materia := "-"
		if d.Materia != nil {
			materia = d.Materia.Descripcion
		}
		vigencia := fmt.Sprintf("%s - %s", d.FechaInicio.Format("02/01/06"), d.FechaFin.Format("02/01/06"))
		pdf.CellFormat(col1, 5, fmt.Sprintf("%d", d.Orden), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, materia, "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 5, d.Cantidad.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 5, fmt.Sprintf("%d", d.Cuatrimestre), "", 0, "C", false, 0, "")
		pdf.CellFormat(col5, 5, vigencia, "", 1, "R", false, 0, "")
	}
	pdf.Ln(3)

	// ── Technician report ────────────────────────────────────────────────────
	if exp.Informe != nil && *exp.Informe != "" {
		pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(contentW, 5, "Informe tecnico", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		if exp.Tecnico != nil {
			pdf.CellFormat(contentW, 5, fmt.Sprintf("Tecnico: %s", *exp.Tecnico), "", 1, "L", false, 0, "")
		}
		if exp.FechaInforme != nil {
			pdf.CellFormat(contentW, 5, fmt.Sprintf("Fecha del informe: %s", exp.FechaInforme.Format("02/01/2006")), "", 1, "L", false, 0, "")
		}
		pdf.MultiCell(contentW, 5, *exp.Informe, "", "L", false)
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write %s: %w", filePath, err)
	}
	return filePath, nil
}
