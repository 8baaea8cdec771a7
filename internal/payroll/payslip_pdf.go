package payroll

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func buildPayslipPDF(p *Payslip) ([]byte, error) {
	period := fmt.Sprintf("%d", p.Year)
	if p.Month >= 1 && p.Month <= 12 {
		period = fmt.Sprintf("%s %d", monthNames[p.Month-1], p.Year)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	if p.Employee != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", p.Employee.FullName, p.Employee.EmployeeNumber))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Pay period: %s", period))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Earnings")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	writeAmountRow(pdf, "Basic", p.Basic)
	writeAmountRow(pdf, "HRA", p.HRA)
	writeAmountRow(pdf, "DA", p.DA)
	writeAmountRow(pdf, "Special Allowance", p.SpecialAllowance)
	writeAmountRow(pdf, "Loss of Pay", -p.LossOfPay)
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Deductions")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	writeAmountRow(pdf, "PF", p.PF)
	writeAmountRow(pdf, "Tax", p.Tax)
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 12)
	writeAmountRow(pdf, "Total Earnings", p.TotalEarnings)
	writeAmountRow(pdf, "Total Deductions", p.TotalDeductions)
	writeAmountRow(pdf, "Net Pay", p.NetPay)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeAmountRow(pdf *gofpdf.Fpdf, label string, amount float64) {
	pdf.Cell(90, 7, label)
	pdf.CellFormat(50, 7, fmt.Sprintf("%.2f", amount), "", 0, "R", false, 0, "")
	pdf.Ln(7)
}
