package services

import (
	"bytes"
	"testing"
	"time"

	"stayhub-backend/domain"
)

func TestGenerateInvoiceProducesPDF(t *testing.T) {
	svc := &InvoiceService{
		Loader: func(bookingID uint) (invoiceData, error) {
			return invoiceData{
				ReferenceCode: "BK-AB12CD34EF",
				GuestName:     "Alice Example",
				GuestEmail:    "alice@example.com",
				RoomNumber:    "201",
				RoomType:      "deluxe",
				CheckIn:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
				CheckOut:      time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC),
				Nights:        3,
				NightlyRate:   180,
				Offers: []invoiceLine{
					{Name: "Breakfast", Price: 15},
					{Name: "Spa Massage", Price: 80},
				},
				TotalPrice: 635,
				Status:     "confirmed",
			}, nil
		},
		Now: func() time.Time { return time.Date(2025, 3, 9, 9, 0, 0, 0, time.UTC) },
	}

	pdf, filename, err := svc.GenerateInvoice(1)
	if err != nil {
		t.Fatalf("GenerateInvoice: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("expected non-empty PDF output")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Errorf("output does not start with a PDF header")
	}
	if filename != "invoice_BK-AB12CD34EF.pdf" {
		t.Errorf("filename = %q, want invoice_BK-AB12CD34EF.pdf", filename)
	}
}

func TestGenerateInvoiceWithoutOffers(t *testing.T) {
	svc := &InvoiceService{
		Loader: func(bookingID uint) (invoiceData, error) {
			return invoiceData{
				ReferenceCode: "BK-0000000001",
				GuestName:     "Bob Example",
				RoomNumber:    "101",
				RoomType:      "standard",
				CheckIn:       time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
				CheckOut:      time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
				Nights:        1,
				NightlyRate:   100,
				TotalPrice:    100,
				Status:        "pending",
			}, nil
		},
	}

	pdf, _, err := svc.GenerateInvoice(2)
	if err != nil {
		t.Fatalf("GenerateInvoice: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("expected non-empty PDF output")
	}
}

func TestGenerateInvoicePropagatesLoadError(t *testing.T) {
	svc := &InvoiceService{
		Loader: func(bookingID uint) (invoiceData, error) {
			return invoiceData{}, domain.NotFoundError{Resource: "booking"}
		},
	}

	if _, _, err := svc.GenerateInvoice(99); !domain.IsNotFound(err) {
		t.Fatalf("got %v, want NotFoundError", err)
	}
}
