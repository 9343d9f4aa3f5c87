package infra

// pdf.go — Receipt generation using go-pdf/fpdf. Generates A7-size thermal
// receipt-style tickets with the business header, sale id and timestamp, one
// table for product lines, one for service lines, and the bold total.
// The output file is saved to storagePath/recibo_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/RolandoGio/CERRAJERIA-sub000/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// GenerarReciboPDF generates a PDF receipt for a registered Venta.
// storagePath is the directory where the PDF will be written (created if needed).
// Returns the absolute path to the generated file.
func GenerarReciboPDF(venta *model.Venta, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("recibo_%s.pdf", venta.ID)
	filePath := filepath.Join(storagePath, fileName)

	// A7 ≈ 74mm × 105mm — close to thermal receipt paper (custom size, "A7" is not in fpdf's named list)
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8 // total margins = 8mm

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, "Cerrajería", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Recibo de venta", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// ── Sale info ────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Venta %s", venta.ID), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, venta.CreatedAt.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	if venta.Usuario != nil {
		pdf.CellFormat(contentW, 4, "Atendió: "+venta.Usuario.Nombre, "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	col1 := contentW * 0.52 // line name
	col2 := contentW * 0.16 // qty
	col3 := contentW * 0.32 // subtotal

	writeHeader := func(titulo string) {
		pdf.SetFont("Helvetica", "B", 7)
		pdf.CellFormat(col1, 5, titulo, "B", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, "Cant", "B", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, "Subtotal", "B", 1, "R", false, 0, "")
		pdf.SetFont("Helvetica", "", 7)
	}
	truncar := func(nombre string) string {
		if len(nombre) > 22 {
			return nombre[:21] + "…"
		}
		return nombre
	}

	// ── Product lines ────────────────────────────────────────────────────────
	if len(venta.Items) > 0 {
		writeHeader("Producto")
		for _, item := range venta.Items {
			nombre := ""
			if item.Producto != nil {
				nombre = item.Producto.Nombre
			}
			subtotal := item.PrecioFinal.Mul(decimal.NewFromInt(int64(item.Cantidad)))
			pdf.CellFormat(col1, 5, truncar(nombre), "", 0, "L", false, 0, "")
			pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", item.Cantidad), "", 0, "C", false, 0, "")
			pdf.CellFormat(col3, 5, "$"+subtotal.StringFixed(2), "", 1, "R", false, 0, "")
		}
		pdf.Ln(1)
	}

	// ── Service lines ────────────────────────────────────────────────────────
	if len(venta.Servicios) > 0 {
		writeHeader("Servicio")
		for _, item := range venta.Servicios {
			nombre := ""
			if item.Servicio != nil {
				nombre = item.Servicio.Nombre
			}
			subtotal := item.PrecioFinal.Mul(decimal.NewFromInt(int64(item.Cantidad)))
			pdf.CellFormat(col1, 5, truncar(nombre), "", 0, "L", false, 0, "")
			pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", item.Cantidad), "", 0, "C", false, 0, "")
			pdf.CellFormat(col3, 5, "$"+subtotal.StringFixed(2), "", 1, "R", false, 0, "")
		}
		pdf.Ln(1)
	}

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Total ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "$"+venta.Total.StringFixed(2), "", 1, "R", false, 0, "")

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, "¡Gracias por su visita!", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
