package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"yogabook/internal/authz"
	"yogabook/internal/domain"
	"yogabook/internal/store"
	"yogabook/pkg/logger"
)

// DocsService renders booking invoices and payment receipts as PDFs.
// Loaders are injectable so tests can feed data without a store.
type DocsService struct {
	Store         store.Store
	RequestID     string
	InvoiceLoader func(bookingID string) (bookingDocData, error)
	ReceiptLoader func(paymentID string) (bookingDocData, error)
}

type bookingDocData struct {
	BookingID     string
	PaymentID     string
	StudentName   string
	StudentEmail  string
	OfferingTitle string
	ItemType      string
	Date          time.Time
	Amount        float64
	Currency      string
	PaymentStatus string
	PaymentMethod string
	PaidAt        *time.Time
}

func (s DocsService) GenerateInvoice(actor domain.Actor, bookingID string) ([]byte, string, error) {
	data, err := s.loadForBooking(actor, bookingID)
	if err != nil {
		return nil, "", err
	}
	logger.Event(s.RequestID, "docs", "generate_invoice", "booking_id="+bookingID)
	return buildInvoicePDF(data)
}

func (s DocsService) GenerateReceipt(actor domain.Actor, paymentID string) ([]byte, string, error) {
	data, err := s.loadForPayment(actor, paymentID)
	if err != nil {
		return nil, "", err
	}
	logger.Event(s.RequestID, "docs", "generate_receipt", "payment_id="+paymentID)
	return buildReceiptPDF(data)
}

func (s DocsService) loadForBooking(actor domain.Actor, bookingID string) (bookingDocData, error) {
	if s.InvoiceLoader != nil {
		return s.InvoiceLoader(bookingID)
	}

	booking, err := s.Store.Bookings().GetByID(bookingID)
	if err != nil {
		return bookingDocData{}, err
	}
	if err := authz.CanAccessBooking(actor, booking); err != nil {
		return bookingDocData{}, err
	}

	var out bookingDocData
	out.BookingID = booking.ID
	out.ItemType = string(booking.ItemType)

	if student, err := s.Store.Users().GetByID(booking.StudentID); err == nil {
		out.StudentName = student.Name
		out.StudentEmail = student.Email
	}
	if info, err := resolveOffering(s.Store, booking.ItemType, booking.ItemID); err == nil {
		out.OfferingTitle = info.Title
		out.Date = info.Date
		out.Amount = info.Price
		out.Currency = info.Currency
	}
	if booking.PaymentID != "" {
		if p, err := s.Store.Payments().GetByID(booking.PaymentID); err == nil {
			out.PaymentID = p.ID
			out.Amount = p.Amount
			out.Currency = p.Currency
			out.PaymentStatus = string(p.Status)
			out.PaymentMethod = p.PaymentMethod
			out.PaidAt = p.PaidAt
		}
	}
	return out, nil
}

func (s DocsService) loadForPayment(actor domain.Actor, paymentID string) (bookingDocData, error) {
	if s.ReceiptLoader != nil {
		return s.ReceiptLoader(paymentID)
	}

	payment, err := s.Store.Payments().GetByID(paymentID)
	if err != nil {
		return bookingDocData{}, err
	}

	out := bookingDocData{
		PaymentID:     payment.ID,
		BookingID:     payment.BookingID,
		Amount:        payment.Amount,
		Currency:      payment.Currency,
		PaymentStatus: string(payment.Status),
		PaymentMethod: payment.PaymentMethod,
		PaidAt:        payment.PaidAt,
	}

	booking, err := s.Store.Bookings().GetByID(payment.BookingID)
	if err != nil {
		// dangling payment: only teachers may pull its receipt
		if err := authz.RequireTeacher(actor); err != nil {
			return bookingDocData{}, err
		}
		return out, nil
	}
	if err := authz.CanAccessBooking(actor, booking); err != nil {
		return bookingDocData{}, err
	}

	out.ItemType = string(booking.ItemType)
	if student, err := s.Store.Users().GetByID(booking.StudentID); err == nil {
		out.StudentName = student.Name
		out.StudentEmail = student.Email
	}
	if info, err := resolveOffering(s.Store, booking.ItemType, booking.ItemID); err == nil {
		out.OfferingTitle = info.Title
		out.Date = info.Date
	}
	return out, nil
}

func buildInvoicePDF(d bookingDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	invNo := "INV-" + shortID(d.BookingID)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice no : "+invNo)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued     : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Name  : "+safe(d.StudentName))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Email : "+safe(d.StudentEmail))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Details:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	desc := fmt.Sprintf("1) %s (%s) on %s", safe(d.OfferingTitle), safe(d.ItemType), dateOnly(d.Date))
	pdf.MultiCell(0, 6, desc, "", "", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+formatAmount(d.Amount, d.Currency))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This invoice covers one booking. Payment status: "+safe(d.PaymentStatus)+".", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("INVOICE_%s.pdf", shortID(d.BookingID))
	return buf.Bytes(), filename, nil
}

func buildReceiptPDF(d bookingDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "PAYMENT RECEIPT")
	pdf.Ln(12)

	paidAt := "-"
	if d.PaidAt != nil {
		paidAt = d.PaidAt.Format("2006-01-02 15:04")
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		"Receipt no : RCP-" + shortID(d.PaymentID),
		"Booking    : #" + shortID(d.BookingID),
		"Student    : " + safe(d.StudentName),
		"Offering   : " + safe(d.OfferingTitle),
		"Amount     : " + formatAmount(d.Amount, d.Currency),
		"Status     : " + safe(d.PaymentStatus),
		"Method     : " + safe(d.PaymentMethod),
		"Paid at    : " + paidAt,
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Keep this receipt as proof of payment.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("RECEIPT_%s.pdf", shortID(d.PaymentID))
	return buf.Bytes(), filename, nil
}

func safe(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func dateOnly(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

func formatAmount(amount float64, currency string) string {
	if currency == "" {
		return fmt.Sprintf("%.2f", amount)
	}
	return fmt.Sprintf("%.2f %s", amount, currency)
}

// shortID keeps filenames readable with uuid ids.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	if id == "" {
		return "unknown"
	}
	return id
}
