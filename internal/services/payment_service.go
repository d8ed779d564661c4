package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"yogabook/internal/authz"
	"yogabook/internal/domain"
	"yogabook/internal/domain/models"
	"yogabook/internal/query"
	"yogabook/internal/store"
	"yogabook/pkg/logger"
)

// PaymentService handles payment records and teacher revenue views.
// A payment references a booking by id, but the reference is not
// enforced both ways; fixtures and older flows created payments whose
// booking never pointed back.
type PaymentService struct {
	Store     store.Store
	RequestID string
}

func (s PaymentService) Create(actor domain.Actor, bookingID string, amount float64, currency string) (models.Payment, error) {
	if err := authz.RequireTeacher(actor); err != nil {
		return models.Payment{}, err
	}
	if bookingID == "" {
		return models.Payment{}, domain.ValidationError{Field: "bookingId", Msg: "required"}
	}
	if amount <= 0 {
		return models.Payment{}, domain.ValidationError{Field: "amount", Msg: "must be positive"}
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return models.Payment{}, domain.ValidationError{Field: "currency", Msg: "expected ISO 4217 code"}
	}

	created, err := s.Store.Payments().Create(models.Payment{
		BookingID: bookingID,
		Amount:    amount,
		Currency:  currency,
		Status:    models.PaymentPending,
	})
	if err != nil {
		return models.Payment{}, err
	}

	// Best effort back-reference; a missing booking is not an error here.
	if _, err := s.Store.Bookings().GetByID(bookingID); err == nil {
		if _, err := s.Store.Bookings().Update(bookingID, models.BookingUpdate{PaymentID: &created.ID}); err != nil {
			logger.Event(s.RequestID, "payment", "create", "back-reference warning: "+err.Error())
		}
	}

	logger.Event(s.RequestID, "payment", "create",
		fmt.Sprintf("payment_id=%s booking_id=%s amount=%.2f %s", created.ID, bookingID, amount, currency))
	return created, nil
}

func (s PaymentService) Get(actor domain.Actor, id string) (models.Payment, error) {
	p, err := s.Store.Payments().GetByID(id)
	if err != nil {
		return models.Payment{}, err
	}
	if err := s.guardPayment(actor, p); err != nil {
		return models.Payment{}, err
	}
	return p, nil
}

// MarkPaid stamps the payment. There is no guard on the current status:
// marking an already refunded payment paid succeeds, matching the
// permissiveness of the system this replaces.
func (s PaymentService) MarkPaid(actor domain.Actor, id, method string) (models.Payment, error) {
	if err := authz.RequireTeacher(actor); err != nil {
		return models.Payment{}, err
	}
	p, err := s.Store.Payments().GetByID(id)
	if err != nil {
		return models.Payment{}, err
	}

	now := time.Now()
	p.Status = models.PaymentPaid
	p.PaidAt = &now
	p.TransactionID = uuid.NewString()
	p.PaymentMethod = strings.TrimSpace(method)

	updated, err := s.Store.Payments().Update(p)
	if err != nil {
		return models.Payment{}, err
	}
	logger.Event(s.RequestID, "payment", "mark_paid",
		fmt.Sprintf("payment_id=%s method=%s", id, updated.PaymentMethod))
	return updated, nil
}

// ListForTeacher returns payments whose booking targets one of the
// teacher's offerings. Resolution is a linear walk per payment, which is
// fine at the data volumes this system holds.
func (s PaymentService) ListForTeacher(actor domain.Actor, teacherID string, page, pageSize int) (query.Page[models.Payment], error) {
	if err := authz.CanViewTeacherFinance(actor, teacherID); err != nil {
		return query.Page[models.Payment]{}, err
	}
	payments, err := s.paymentsOfTeacher(teacherID)
	if err != nil {
		return query.Page[models.Payment]{}, err
	}
	return query.Paginate(payments, page, pageSize), nil
}

// RevenueSummary aggregates a teacher's payments by status.
type RevenueSummary struct {
	TeacherID     string                       `json:"teacherId"`
	PaidTotal     float64                      `json:"paidTotal"`
	PendingTotal  float64                      `json:"pendingTotal"`
	OverdueTotal  float64                      `json:"overdueTotal"`
	RefundedTotal float64                      `json:"refundedTotal"`
	CountByStatus map[models.PaymentStatus]int `json:"countByStatus"`
}

func (s PaymentService) Revenue(actor domain.Actor, teacherID string) (RevenueSummary, error) {
	if err := authz.CanViewTeacherFinance(actor, teacherID); err != nil {
		return RevenueSummary{}, err
	}
	payments, err := s.paymentsOfTeacher(teacherID)
	if err != nil {
		return RevenueSummary{}, err
	}

	out := RevenueSummary{
		TeacherID:     teacherID,
		CountByStatus: map[models.PaymentStatus]int{},
	}
	for _, p := range payments {
		out.CountByStatus[p.Status]++
		switch p.Status {
		case models.PaymentPaid:
			out.PaidTotal += p.Amount
		case models.PaymentPending:
			out.PendingTotal += p.Amount
		case models.PaymentOverdue:
			out.OverdueTotal += p.Amount
		case models.PaymentRefunded:
			out.RefundedTotal += p.Amount
		}
	}
	return out, nil
}

func (s PaymentService) paymentsOfTeacher(teacherID string) ([]models.Payment, error) {
	payments, err := s.Store.Payments().List()
	if err != nil {
		return nil, err
	}

	out := []models.Payment{}
	for _, p := range payments {
		booking, err := s.Store.Bookings().GetByID(p.BookingID)
		if err != nil {
			continue // dangling reference, skip
		}
		info, err := resolveOffering(s.Store, booking.ItemType, booking.ItemID)
		if err != nil {
			continue
		}
		if info.TeacherID == teacherID {
			out = append(out, p)
		}
	}
	return out, nil
}

// guardPayment: teachers may see any payment, a student only payments of
// their own bookings.
func (s PaymentService) guardPayment(actor domain.Actor, p models.Payment) error {
	if err := authz.RequireActor(actor); err != nil {
		return err
	}
	if actor.IsTeacher() {
		return nil
	}
	booking, err := s.Store.Bookings().GetByID(p.BookingID)
	if err != nil {
		return domain.ForbiddenError{Msg: "not your payment"}
	}
	return authz.CanAccessBooking(actor, booking)
}
