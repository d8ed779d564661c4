package services

import (
	"time"

	"yogabook/internal/domain"
	"yogabook/internal/domain/models"
	"yogabook/internal/store"
)

// offeringInfo is the common shape the three offering kinds collapse to
// when the workflow only needs identity, owner and availability.
type offeringInfo struct {
	ID        string
	ItemType  models.ItemType
	Title     string
	TeacherID string
	Date      time.Time
	Capacity  int
	Booked    int
	Price     float64
	Currency  string
}

func resolveOffering(st store.Store, itemType models.ItemType, itemID string) (offeringInfo, error) {
	switch itemType {
	case models.ItemClass:
		c, err := st.Classes().GetByID(itemID)
		if err != nil {
			return offeringInfo{}, err
		}
		return offeringInfo{
			ID: c.ID, ItemType: models.ItemClass, Title: c.Title, TeacherID: c.TeacherID,
			Date: c.Date, Capacity: c.Capacity, Booked: c.BookedCount,
			Price: c.Price, Currency: c.Currency,
		}, nil
	case models.ItemCourse:
		c, err := st.Courses().GetByID(itemID)
		if err != nil {
			return offeringInfo{}, err
		}
		return offeringInfo{
			ID: c.ID, ItemType: models.ItemCourse, Title: c.Title, TeacherID: c.TeacherID,
			Date: c.StartDate, Capacity: c.Capacity, Booked: c.EnrolledCount,
			Price: c.Price, Currency: c.Currency,
		}, nil
	case models.ItemEvent:
		e, err := st.Events().GetByID(itemID)
		if err != nil {
			return offeringInfo{}, err
		}
		return offeringInfo{
			ID: e.ID, ItemType: models.ItemEvent, Title: e.Title, TeacherID: e.TeacherID,
			Date: e.Date, Capacity: e.Capacity, Booked: e.BookedCount,
			Price: e.Price, Currency: e.Currency,
		}, nil
	}
	return offeringInfo{}, domain.ValidationError{Field: "itemType", Msg: "must be class, course or event"}
}

// adjustOfferingCounter routes the booked/enrolled bookkeeping to the
// right repository.
func adjustOfferingCounter(st store.Store, itemType models.ItemType, itemID string, delta int) error {
	switch itemType {
	case models.ItemClass:
		return st.Classes().AdjustBooked(itemID, delta)
	case models.ItemCourse:
		return st.Courses().AdjustEnrolled(itemID, delta)
	case models.ItemEvent:
		return st.Events().AdjustBooked(itemID, delta)
	}
	return domain.ValidationError{Field: "itemType", Msg: "must be class, course or event"}
}
