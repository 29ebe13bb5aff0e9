package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
	"gorm.io/gorm"

	"stayhub-backend/domain"
	"stayhub-backend/models"
	"stayhub-backend/repositories"
)

type invoiceLine struct {
	Name  string
	Price float64
}

type invoiceData struct {
	ReferenceCode string
	GuestName     string
	GuestEmail    string
	RoomNumber    string
	RoomType      string
	CheckIn       time.Time
	CheckOut      time.Time
	Nights        int
	NightlyRate   float64
	Offers        []invoiceLine
	TotalPrice    float64
	Status        string
}

// InvoiceService renders booking invoices as PDF. The Loader indirection
// lets tests feed data without a database.
type InvoiceService struct {
	Loader func(bookingID uint) (invoiceData, error)
	Now    func() time.Time
}

func NewInvoiceService(db *gorm.DB) *InvoiceService {
	repo := repositories.NewBookingRepository(db)
	return &InvoiceService{
		Loader: func(bookingID uint) (invoiceData, error) {
			booking, err := repo.GetByID(bookingID)
			if err != nil {
				return invoiceData{}, err
			}
			return invoiceDataFromBooking(booking), nil
		},
		Now: time.Now,
	}
}

func invoiceDataFromBooking(b models.Booking) invoiceData {
	data := invoiceData{
		ReferenceCode: b.ReferenceCode,
		GuestName:     b.User.FullName,
		GuestEmail:    b.User.Email,
		RoomNumber:    b.Room.RoomNumber,
		RoomType:      b.Room.RoomType,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		Nights:        domain.Nights(b.CheckIn, b.CheckOut),
		NightlyRate:   b.Room.PricePerNight,
		TotalPrice:    b.TotalPrice,
		Status:        b.Status,
	}
	if data.GuestName == "" {
		data.GuestName = b.User.Username
	}
	for _, offer := range b.SelectedOffers {
		data.Offers = append(data.Offers, invoiceLine{Name: offer.Name, Price: offer.Price})
	}
	return data
}

// GenerateInvoice returns the PDF bytes and a download filename.
func (s *InvoiceService) GenerateInvoice(bookingID uint) ([]byte, string, error) {
	data, err := s.Loader(bookingID)
	if err != nil {
		return nil, "", err
	}
	return buildInvoicePDF(data, s.now())
}

func (s *InvoiceService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func buildInvoicePDF(d invoiceData, issuedAt time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "STAYHUB INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Reference : "+d.ReferenceCode)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued    : "+issuedAt.Format("2006-01-02 15:04"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Status    : "+d.Status)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Guest : %s", d.GuestName))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Email : %s", d.GuestEmail))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Stay:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, fmt.Sprintf("Room %s (%s), %s to %s",
		d.RoomNumber, d.RoomType,
		d.CheckIn.Format("2006-01-02"), d.CheckOut.Format("2006-01-02"),
	), "", "", false)
	pdf.Ln(2)
	pdf.Cell(0, 6, fmt.Sprintf("%d night(s) x %.2f = %.2f", d.Nights, d.NightlyRate, float64(d.Nights)*d.NightlyRate))
	pdf.Ln(8)

	if len(d.Offers) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Selected offers:")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, line := range d.Offers {
			pdf.Cell(0, 6, fmt.Sprintf("- %s: %.2f", line.Name, line.Price))
			pdf.Ln(6)
		}
		pdf.Ln(2)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %.2f", d.TotalPrice))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Prices include the long-stay discount when applicable.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("invoice_%s.pdf", d.ReferenceCode)
	return buf.Bytes(), filename, nil
}
