package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"biblioteca-api/internal/logger"
	"biblioteca-api/internal/models"
)

// ReportBookReader defines the catalog scan the reporting jobs run on.
type ReportBookReader interface {
	ListRented(ctx context.Context) ([]models.RentedBookDB, error)
}

// ReportService produces the periodic administrative report and the per-user
// overdue alerts. Both are scans over the currently rented books; email
// failures are logged and never halt a scan.
type ReportService struct {
	bookReader ReportBookReader
	mailer     Mailer
	adminEmail string
}

// NewReportService creates a new ReportService.
func NewReportService(bookReader ReportBookReader, mailer Mailer, adminEmail string) *ReportService {
	return &ReportService{
		bookReader: bookReader,
		mailer:     mailer,
		adminEmail: adminEmail,
	}
}

// SendAdminReport emails a summary of every rented book, with elapsed days
// and the fine accrued so far for overdue ones, to the administrative address.
func (s *ReportService) SendAdminReport(ctx context.Context) error {
	rented, err := s.bookReader.ListRented(ctx)
	if err != nil {
		logger.Log.Errorw("admin report: failed to scan rented books", "error", err)
		return err
	}

	body := BuildAdminReport(rented, time.Now())

	if err := s.mailer.Send(ctx, s.adminEmail, "Biblioteca Virtual - Administracion - Reporte de alquileres", body); err != nil {
		logger.Log.Errorw("admin report: failed to send", "to", s.adminEmail, "error", err)
		return err
	}

	logger.Log.Infow("admin report sent", "rented_books", len(rented))
	return nil
}

// SendOverdueAlerts emails an individual overdue notice to the renting user
// of every book held beyond the grace period. A failed send is logged and the
// scan continues with the next book.
func (s *ReportService) SendOverdueAlerts(ctx context.Context) error {
	rented, err := s.bookReader.ListRented(ctx)
	if err != nil {
		logger.Log.Errorw("overdue alerts: failed to scan rented books", "error", err)
		return err
	}

	now := time.Now()
	sent := 0
	for _, book := range rented {
		elapsedDays, fine := ComputeFine(book.StartedAt, now)
		if elapsedDays <= GraceDays {
			continue
		}

		subject := "Biblioteca Virtual - Alerta de alquiler vencido - Libro: " + book.Title
		body := BuildOverdueNotice(book, elapsedDays, fine)

		if err := s.mailer.Send(ctx, book.UserEmail, subject, body); err != nil {
			logger.Log.Errorw("overdue alerts: failed to send", "to", book.UserEmail, "bookID", book.BookID, "error", err)
			continue
		}
		sent++
	}

	logger.Log.Infow("overdue alerts sent", "alerts", sent, "rented_books", len(rented))
	return nil
}

// BuildAdminReport formats the administrative summary: one row per rented
// book with user, start date, elapsed days, and fine when overdue.
func BuildAdminReport(rented []models.RentedBookDB, now time.Time) string {
	var b strings.Builder
	b.WriteString("<b>REPORTE DE LIBROS EN ALQUILER</b><br/><br/>")

	for _, book := range rented {
		elapsedDays, fine := ComputeFine(book.StartedAt, now)
		fmt.Fprintf(&b, "<b>Titulo:</b> %s <b>Usuario:</b> %s <b>Email:</b> %s <b>Fecha de alquiler:</b> %s <b>Cantidad de dias:</b> %d",
			book.Title, book.UserFullName, book.UserEmail, book.StartedAt.Format("2006-01-02"), elapsedDays)
		if elapsedDays > GraceDays {
			fmt.Fprintf(&b, " <b>Multa:</b> %d", fine)
		}
		b.WriteString("<br/><br/>")
	}

	return b.String()
}

// BuildOverdueNotice formats one overdue alert for the renting user.
func BuildOverdueNotice(book models.RentedBookDB, elapsedDays, fine int64) string {
	var b strings.Builder
	b.WriteString("<b>REPORTE DE ALQUILER VENCIDO</b><br/><br/>")
	fmt.Fprintf(&b, "<b>Titulo:</b> %s<br/>", book.Title)
	fmt.Fprintf(&b, "<b>Fecha de alquiler:</b> %s<br/>", book.StartedAt.Format("2006-01-02"))
	fmt.Fprintf(&b, "<b>Cantidad de dias:</b> %d<br/>", elapsedDays)
	fmt.Fprintf(&b, "<b>Multa:</b> %d pesos (%d pesos por dia extra)<br/>", fine, FinePerDay)
	return b.String()
}
